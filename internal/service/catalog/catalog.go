package catalog

import (
	"hipphone/internal/model"
	"hipphone/internal/parser"
	"hipphone/internal/service/excel"
)

// Catalog 一次加载得到的补贴表，加载后只读
type Catalog struct {
	source  string
	format  excel.Format
	sheet   string
	header  []string
	mapping parser.ColumnMapping
	records []model.Record
	skipped int
}

// New 直接由记录构建目录（记录会被规范化）
func New(records []model.Record) *Catalog {
	c := &Catalog{records: make([]model.Record, len(records))}
	copy(c.records, records)
	return Normalize(c)
}

// Source 文件名
func (c *Catalog) Source() string {
	if c == nil {
		return ""
	}
	return c.source
}

// Len 行数
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// Records 返回记录副本（保持原始顺序）
func (c *Catalog) Records() []model.Record {
	if c == nil {
		return []model.Record{}
	}
	out := make([]model.Record, len(c.records))
	copy(out, c.records)
	return out
}

// Header 原始表头
func (c *Catalog) Header() []string {
	if c == nil {
		return []string{}
	}
	return append([]string{}, c.header...)
}

// Mapping 语义字段 → 使用的原始表头
func (c *Catalog) Mapping() map[model.Field]string {
	out := make(map[model.Field]string)
	if c == nil {
		return out
	}
	for f, fm := range c.mapping.Fields {
		out[f] = fm.ColumnName
	}
	return out
}

// Normalize 规范化字符串字段、重新计算资费标签并保证金额非负
func Normalize(c *Catalog) *Catalog {
	if c == nil {
		return nil
	}
	out := *c
	out.records = make([]model.Record, len(c.records))
	for i, r := range c.records {
		r.Carrier = parser.CollapseSpaces(r.Carrier)
		r.Model = parser.CollapseSpaces(r.Model)
		r.Plan = parser.CollapseSpaces(r.Plan)
		r.PlanCanonical = parser.CanonicalizePlan(r.Plan)
		r.ContractType = parser.CollapseSpaces(r.ContractType)
		if r.ListPrice < 0 {
			r.ListPrice = 0
		}
		if r.Subsidy < 0 {
			r.Subsidy = 0
		}
		if r.Row == 0 {
			r.Row = i + 2
		}
		out.records[i] = r
	}
	return &out
}

// normalizeRow 把一行原始文本转换为记录；金额按 ParseWon 容错解析
func normalizeRow(values parser.RowValues, row int) model.Record {
	plan := parser.CollapseSpaces(values[model.FieldPlan])
	return model.Record{
		Row:           row,
		Carrier:       parser.CollapseSpaces(values[model.FieldCarrier]),
		Model:         parser.CollapseSpaces(values[model.FieldModel]),
		Plan:          plan,
		PlanCanonical: parser.CanonicalizePlan(plan),
		ContractType:  parser.CollapseSpaces(values[model.FieldContractType]),
		ListPrice:     parser.ParseWon(values[model.FieldListPrice]),
		Subsidy:       parser.ParseWon(values[model.FieldSubsidy]),
	}
}
