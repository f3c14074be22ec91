package model

// PriceQuote 价格计算结果（单位：원）
type PriceQuote struct {
	ListPrice     int64 `json:"listPrice"`
	Subsidy       int64 `json:"subsidy"`
	StoreDiscount int64 `json:"storeDiscount"` // 实际生效的门店折扣（已钳制为非负）
	BasePrice     int64 `json:"basePrice"`     // max(0, 出厂价 - 补贴)
	FinalPrice    int64 `json:"finalPrice"`    // max(0, basePrice - 门店折扣)
}
