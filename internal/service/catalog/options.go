package catalog

import (
	"sort"

	"hipphone/internal/model"
)

// OptionsFor 返回下一个未选择字段的可选值（去重、去空、升序）
// 空选择返回全部通信商；选择已完整时返回空切片
func (c *Catalog) OptionsFor(sel model.Selection) []string {
	field, ok := sel.NextField()
	if !ok {
		return []string{}
	}
	return c.Choices(field, sel)
}

// Choices 返回某字段的可选值，只受其上游字段约束；上游有未选择的字段时返回空切片
func (c *Catalog) Choices(field model.Field, sel model.Selection) []string {
	if !model.IsSelectionField(field) {
		return []string{}
	}

	upstream := upstreamOf(field)
	for _, f := range upstream {
		if sel.Get(f) == "" {
			return []string{}
		}
	}

	seen := make(map[string]struct{})
	out := []string{}
	for _, r := range c.Records() {
		if !matchesFields(r, sel, upstream) {
			continue
		}
		v := r.Value(field)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// CheckChoice 校验 value 是否为 field 在 sel 下的可选值；空值表示取消选择，总是允许
func (c *Catalog) CheckChoice(field model.Field, value string, sel model.Selection) error {
	if value == "" {
		return nil
	}
	choices := c.Choices(field, sel)
	for _, v := range choices {
		if v == value {
			return nil
		}
	}
	return &InvalidChoiceError{Field: field, Value: value, Choices: choices}
}

// Filter 返回匹配所有已选择字段的记录（保持原始顺序）
func (c *Catalog) Filter(sel model.Selection) []model.Record {
	out := []model.Record{}
	for _, r := range c.Records() {
		if matchesFields(r, sel, model.SelectionFields) {
			out = append(out, r)
		}
	}
	return out
}

func upstreamOf(field model.Field) []model.Field {
	for i, f := range model.SelectionFields {
		if f == field {
			return model.SelectionFields[:i]
		}
	}
	return nil
}

// matchesFields 未选择的字段不参与过滤
func matchesFields(r model.Record, sel model.Selection, fields []model.Field) bool {
	for _, f := range fields {
		want := sel.Get(f)
		if want == "" {
			continue
		}
		if r.Value(f) != want {
			return false
		}
	}
	return true
}
