package util

import "github.com/dustin/go-humanize"

// FormatWon 金额千分位（1155000 → 1,155,000）
func FormatWon(value int64) string {
	return humanize.Comma(value)
}
