package catalog

import (
	"hipphone/internal/model"
	"hipphone/internal/service/excel"
)

// maxDiagnosticRows 诊断面板最多返回的匹配行数
const maxDiagnosticRows = 50

// Diagnostics 诊断信息：表结构、各字段去重计数、当前选择匹配的行
type Diagnostics struct {
	Source         string                 `json:"source"`
	Format         excel.Format           `json:"format"`
	Sheet          string                 `json:"sheet,omitempty"`
	Header         []string               `json:"header"`
	Mapping        map[model.Field]string `json:"mapping"`
	RowCount       int                    `json:"rowCount"`
	SkippedRows    int                    `json:"skippedRows"`
	DistinctCounts map[model.Field]int    `json:"distinctCounts"`
	Selection      model.Selection        `json:"selection"`
	MatchedCount   int                    `json:"matchedCount"`
	MatchedRows    []model.Record         `json:"matchedRows"`
}

// Diagnose 生成诊断信息
func (c *Catalog) Diagnose(sel model.Selection) Diagnostics {
	d := Diagnostics{
		Header:         c.Header(),
		Mapping:        c.Mapping(),
		RowCount:       c.Len(),
		DistinctCounts: make(map[model.Field]int, len(model.SelectionFields)),
		Selection:      sel,
	}
	if c != nil {
		d.Source = c.source
		d.Format = c.format
		d.Sheet = c.sheet
		d.SkippedRows = c.skipped
	}

	records := c.Records()
	for _, f := range model.SelectionFields {
		seen := make(map[string]struct{})
		for _, r := range records {
			if v := r.Value(f); v != "" {
				seen[v] = struct{}{}
			}
		}
		d.DistinctCounts[f] = len(seen)
	}

	matched := c.Filter(sel)
	d.MatchedCount = len(matched)
	if len(matched) > maxDiagnosticRows {
		matched = matched[:maxDiagnosticRows]
	}
	d.MatchedRows = matched
	return d
}
