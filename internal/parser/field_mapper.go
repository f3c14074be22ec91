package parser

import (
	"strings"

	"hipphone/internal/model"
)

// fieldAliases 语义字段 → 可接受的表头别名（小写、去首尾空白后精确匹配）
var fieldAliases = map[model.Field][]string{
	model.FieldCarrier:      {"carrier", "통신사"},
	model.FieldModel:        {"model", "모델", "모델명"},
	model.FieldPlan:         {"plan", "요금제"},
	model.FieldContractType: {"contract_type", "가입유형", "가입 유형", "가입-유형"},
	model.FieldListPrice:    {"msrp_won", "msrp", "출고가(원)", "출고가"},
	model.FieldSubsidy:      {"subsidy_won", "공시지원금(원)", "공시지원금", "지원금"},
}

// aliasIndex 别名 → 语义字段
var aliasIndex = buildAliasIndex()

func buildAliasIndex() map[string]model.Field {
	idx := make(map[string]model.Field)
	for field, aliases := range fieldAliases {
		for _, a := range aliases {
			idx[NormalizeColumnName(a)] = field
		}
	}
	return idx
}

// Aliases 返回某字段可接受的别名（副本）
func Aliases(f model.Field) []string {
	return append([]string(nil), fieldAliases[f]...)
}

// FieldMapping 单个语义字段的映射结果
type FieldMapping struct {
	Field       model.Field `json:"field"`
	ColumnIndex int         `json:"columnIndex"` // 表头中的列索引
	ColumnName  string      `json:"columnName"`  // 原始表头
}

// ColumnMapping 表头映射结果
type ColumnMapping struct {
	Fields  map[model.Field]FieldMapping `json:"fields"`
	Missing []model.Field                `json:"missing"`
}

// Complete 六个字段是否都已找到
func (m ColumnMapping) Complete() bool {
	return len(m.Missing) == 0
}

// Index 返回字段对应列索引
func (m ColumnMapping) Index(f model.Field) (int, bool) {
	fm, ok := m.Fields[f]
	if !ok {
		return 0, false
	}
	return fm.ColumnIndex, true
}

// MapColumns 按别名表把表头映射到语义字段；同一字段出现多列时取第一列
func MapColumns(columnNames []string) ColumnMapping {
	mapping := ColumnMapping{
		Fields:  make(map[model.Field]FieldMapping, len(model.RequiredFields)),
		Missing: []model.Field{},
	}

	for idx, col := range columnNames {
		field, ok := aliasIndex[NormalizeColumnName(col)]
		if !ok {
			continue
		}
		if _, seen := mapping.Fields[field]; seen {
			continue
		}
		mapping.Fields[field] = FieldMapping{
			Field:       field,
			ColumnIndex: idx,
			ColumnName:  col,
		}
	}

	for _, f := range model.RequiredFields {
		if _, ok := mapping.Fields[f]; !ok {
			mapping.Missing = append(mapping.Missing, f)
		}
	}
	return mapping
}

// NormalizeColumnName 表头规范化：去首尾空白并转小写，内部空白保留
func NormalizeColumnName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
