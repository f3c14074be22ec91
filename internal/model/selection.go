package model

// Selection 会话内的级联选择状态，空字符串表示未选择
type Selection struct {
	Carrier      string `json:"carrier"`
	Model        string `json:"model"`
	Plan         string `json:"plan"` // 规范化资费标签
	ContractType string `json:"contractType"`
}

// Get 读取字段值
func (s Selection) Get(f Field) string {
	switch f {
	case FieldCarrier:
		return s.Carrier
	case FieldModel:
		return s.Model
	case FieldPlan:
		return s.Plan
	case FieldContractType:
		return s.ContractType
	}
	return ""
}

// With 设置字段并返回新状态；值发生变化时清空所有下游字段
func (s Selection) With(f Field, value string) Selection {
	if s.Get(f) == value {
		return s
	}
	switch f {
	case FieldCarrier:
		return Selection{Carrier: value}
	case FieldModel:
		return Selection{Carrier: s.Carrier, Model: value}
	case FieldPlan:
		return Selection{Carrier: s.Carrier, Model: s.Model, Plan: value}
	case FieldContractType:
		s.ContractType = value
		return s
	}
	return s
}

func (s Selection) WithCarrier(v string) Selection      { return s.With(FieldCarrier, v) }
func (s Selection) WithModel(v string) Selection        { return s.With(FieldModel, v) }
func (s Selection) WithPlan(v string) Selection         { return s.With(FieldPlan, v) }
func (s Selection) WithContractType(v string) Selection { return s.With(FieldContractType, v) }

// Complete 四个字段是否都已选择
func (s Selection) Complete() bool {
	return s.Carrier != "" && s.Model != "" && s.Plan != "" && s.ContractType != ""
}

// NextField 返回第一个未选择的字段；全部选择时 ok=false
func (s Selection) NextField() (Field, bool) {
	for _, f := range SelectionFields {
		if s.Get(f) == "" {
			return f, true
		}
	}
	return "", false
}

// IsSelectionField 判断是否为级联选择字段
func IsSelectionField(f Field) bool {
	for _, sf := range SelectionFields {
		if sf == f {
			return true
		}
	}
	return false
}
