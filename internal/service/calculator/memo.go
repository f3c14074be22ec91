package calculator

import (
	"fmt"

	"hipphone/internal/model"
	"hipphone/internal/util"
)

// Memo 生成可复制的选择摘要
func Memo(r model.Record, q model.PriceQuote) string {
	return fmt.Sprintf("%s | %s | %s\n출고가 %s원 - 공시 %s원 - 매장할인 %s원\n= 최종가 %s원",
		r.Carrier, r.Model, r.Plan,
		util.FormatWon(q.ListPrice),
		util.FormatWon(q.Subsidy),
		util.FormatWon(q.StoreDiscount),
		util.FormatWon(q.FinalPrice),
	)
}
