package parser

import (
	"regexp"
	"strings"
)

// 9.9~12.5 区间资费统一为 10만원 档
var planRangeRe = regexp.MustCompile(`\s*9\.9\s*~\s*12\.5\s*`)

var planReplacer = strings.NewReplacer(
	"청년 99", "청년99",
	"청년 89", "청년89",
	"청년 79", "청년79",
)

// CanonicalizePlan 合并手工录入导致的近似资费写法
//
// 依次执行：压缩空白 → 区间 9.9~12.5 替换为 10만원 → 去掉 "청년 NN" 中的空格 → 5g 改为 5G。
// 区间替换时两侧补空格再压缩，前后的词不会粘在一起。
func CanonicalizePlan(plan string) string {
	plan = CollapseSpaces(plan)
	plan = CollapseSpaces(planRangeRe.ReplaceAllString(plan, " 10만원 "))
	plan = planReplacer.Replace(plan)
	plan = strings.ReplaceAll(plan, "5g", "5G")
	return strings.TrimSpace(plan)
}
