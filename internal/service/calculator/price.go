package calculator

import "hipphone/internal/model"

// ComputePrice 计算价格：base = max(0, 出厂价 - 补贴)，final = max(0, base - 门店折扣)
// 负折扣按 0 处理，不信任调用方的钳制
func ComputePrice(r model.Record, storeDiscount int64) model.PriceQuote {
	discount := ClampDiscount(storeDiscount)
	base := nonNegative(nonNegative(r.ListPrice) - nonNegative(r.Subsidy))
	return model.PriceQuote{
		ListPrice:     r.ListPrice,
		Subsidy:       r.Subsidy,
		StoreDiscount: discount,
		BasePrice:     base,
		FinalPrice:    nonNegative(base - discount),
	}
}

// ClampDiscount 折扣不能为负
func ClampDiscount(d int64) int64 {
	return nonNegative(d)
}

func nonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
