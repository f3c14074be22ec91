package parser

import "hipphone/internal/model"

// RowValues 一行数据按语义字段取出的原始文本
type RowValues map[model.Field]string

// Extract 按映射从原始行中取值；越界（行被截短）视为空
func (m ColumnMapping) Extract(row []string) RowValues {
	out := make(RowValues, len(m.Fields))
	for f, fm := range m.Fields {
		if fm.ColumnIndex < len(row) {
			out[f] = row[fm.ColumnIndex]
		} else {
			out[f] = ""
		}
	}
	return out
}

// IsBlankRow 判断整行是否为空
func IsBlankRow(row []string) bool {
	for _, cell := range row {
		if CollapseSpaces(cell) != "" {
			return false
		}
	}
	return true
}
