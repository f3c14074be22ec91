package catalog

import "hipphone/internal/model"

// Resolve 按完整选择精确匹配一行
//
// 没有匹配时返回 *NoMatchError；多行匹配时交给 tb 取舍，tb 为 nil 时使用 MaxSubsidy。
func (c *Catalog) Resolve(sel model.Selection, tb TieBreaker) (model.Record, error) {
	if !sel.Complete() {
		return model.Record{}, ErrIncompleteSelection
	}
	if tb == nil {
		tb = MaxSubsidy
	}

	matches := c.Filter(sel)
	switch len(matches) {
	case 0:
		return model.Record{}, &NoMatchError{
			Selection:      sel,
			AvailablePlans: c.AvailablePlans(sel.Carrier, sel.Model),
		}
	case 1:
		return matches[0], nil
	}
	return tb.Pick(matches), nil
}

// AvailablePlans 某通信商+机型下的全部资费标签
func (c *Catalog) AvailablePlans(carrier, modelName string) []string {
	return c.Choices(model.FieldPlan, model.Selection{Carrier: carrier, Model: modelName})
}
