package model

// Field 语义字段（规范列名）
type Field string

const (
	FieldCarrier      Field = "carrier"
	FieldModel        Field = "model"
	FieldPlan         Field = "plan"
	FieldContractType Field = "contract_type"
	FieldListPrice    Field = "list_price"
	FieldSubsidy      Field = "subsidy"
)

// RequiredFields 加载时必须存在的六个语义字段（按展示顺序）
var RequiredFields = []Field{
	FieldCarrier,
	FieldModel,
	FieldPlan,
	FieldContractType,
	FieldListPrice,
	FieldSubsidy,
}

// SelectionFields 级联选择的字段顺序：通信商 → 机型 → 资费 → 签约类型
var SelectionFields = []Field{
	FieldCarrier,
	FieldModel,
	FieldPlan,
	FieldContractType,
}

// Record 补贴表中的一行（已规范化）
type Record struct {
	Row           int    `json:"row"` // 源文件行号（1 起，含表头）
	Carrier       string `json:"carrier"`
	Model         string `json:"model"`
	Plan          string `json:"plan"`          // 原始资费文本，仅用于排查
	PlanCanonical string `json:"planCanonical"` // 合并近似写法后的资费标签
	ContractType  string `json:"contractType"`
	ListPrice     int64  `json:"listPrice"` // 出厂价（원）
	Subsidy       int64  `json:"subsidy"`   // 公示补贴（원）
}

// Value 按选择字段取值；计划字段返回规范化后的标签
func (r Record) Value(f Field) string {
	switch f {
	case FieldCarrier:
		return r.Carrier
	case FieldModel:
		return r.Model
	case FieldPlan:
		return r.PlanCanonical
	case FieldContractType:
		return r.ContractType
	}
	return ""
}
