package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	nonDigitRe = regexp.MustCompile(`\D+`)
	// 小数部分（含其后的单位等），如 "500000.5"、"1,155,000.00원"
	fractionRe = regexp.MustCompile(`\.\d+\D*$`)
)

// CollapseSpaces 去首尾空白并把内部连续空白压缩为一个空格
func CollapseSpaces(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// ParseWon 解析金额单元格：截掉小数部分，再剔除所有非数字字符后按整数解析
// 空值、无法解析或溢出时返回 0，结果总是非负
func ParseWon(text string) int64 {
	// 只有一个小数点时才视为小数，避免误伤 "1.155.000" 这类写法
	if strings.Count(text, ".") == 1 {
		text = fractionRe.ReplaceAllString(text, "")
	}
	digits := nonDigitRe.ReplaceAllString(text, "")
	if digits == "" {
		return 0
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
