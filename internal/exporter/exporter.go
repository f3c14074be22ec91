package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"hipphone/internal/store"
)

const (
	quoteSheet = "견적 이력"
	loadSheet  = "불러오기 이력"

	defaultLimit = 1000
	wonFormat    = "#,##0"
	timeLayout   = "2006-01-02 15:04:05"
)

var (
	quoteHeader = []string{"일시", "세션", "통신사", "모델명", "요금제", "가입유형", "출고가", "공시지원금", "매장할인", "최종가"}
	loadHeader  = []string{"일시", "세션", "파일명", "구분", "행 수", "상태", "오류"}
)

// Exporter 历史记录导出器（xlsx）
type Exporter struct {
	store *store.Store
}

// NewExporter 创建导出器
func NewExporter(store *store.Store) *Exporter {
	return &Exporter{store: store}
}

// ExportOptions 导出选项
type ExportOptions struct {
	SessionID string // 为空时导出全部会话的报价
	Limit     int
}

// Export 导出报价与加载历史，两张 sheet
func (e *Exporter) Export(opts ExportOptions) (*excelize.File, error) {
	if opts.Limit <= 0 {
		opts.Limit = defaultLimit
	}

	quotes, err := e.store.ListQuoteLogs(opts.SessionID, opts.Limit)
	if err != nil {
		return nil, err
	}
	loads, err := e.store.ListLoadLogs(opts.Limit)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", quoteSheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("rename sheet failed: %w", err)
	}
	if _, err := f.NewSheet(loadSheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("create sheet failed: %w", err)
	}

	styles, err := newSheetStyles(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	if err := writeQuotes(f, styles, quotes); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writeLoads(f, styles, loads); err != nil {
		_ = f.Close()
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

type sheetStyles struct {
	header int
	won    int
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return sheetStyles{}, fmt.Errorf("create header style failed: %w", err)
	}
	numFmt := wonFormat
	won, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return sheetStyles{}, fmt.Errorf("create number style failed: %w", err)
	}
	return sheetStyles{header: header, won: won}, nil
}

func writeQuotes(f *excelize.File, styles sheetStyles, quotes []store.QuoteLog) error {
	if err := writeHeader(f, quoteSheet, quoteHeader, styles.header); err != nil {
		return err
	}
	for i, q := range quotes {
		row := []interface{}{
			q.CreatedAt.Format(timeLayout), q.SessionID,
			q.Carrier, q.Model, q.Plan, q.ContractType,
			q.ListPrice, q.Subsidy, q.StoreDiscount, q.FinalPrice,
		}
		if err := setRow(f, quoteSheet, i+2, row); err != nil {
			return err
		}
	}
	if len(quotes) > 0 {
		// G..J 为金额列
		if err := f.SetCellStyle(quoteSheet, "G2", fmt.Sprintf("J%d", len(quotes)+1), styles.won); err != nil {
			return err
		}
	}
	return setColWidths(f, quoteSheet, map[string]float64{"A": 20, "B": 38, "C": 10, "D": 22, "E": 24, "F": 12, "G:J": 14})
}

func writeLoads(f *excelize.File, styles sheetStyles, loads []store.LoadLog) error {
	if err := writeHeader(f, loadSheet, loadHeader, styles.header); err != nil {
		return err
	}
	for i, l := range loads {
		row := []interface{}{
			l.CreatedAt.Format(timeLayout), l.SessionID,
			l.Filename, l.Origin, l.RowCount, l.Status, l.ErrorMessage,
		}
		if err := setRow(f, loadSheet, i+2, row); err != nil {
			return err
		}
	}
	return setColWidths(f, loadSheet, map[string]float64{"A": 20, "B": 38, "C": 28, "D": 10, "E": 8, "F": 14, "G": 60})
}

func writeHeader(f *excelize.File, sheet string, header []string, style int) error {
	row := make([]interface{}, len(header))
	for i, h := range header {
		row[i] = h
	}
	if err := setRow(f, sheet, 1, row); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return err
	}
	return f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("写入 %s 第 %d 行失败: %w", sheet, row, err)
	}
	return nil
}

// setColWidths key 为单列 "A" 或范围 "G:J"
func setColWidths(f *excelize.File, sheet string, widths map[string]float64) error {
	for cols, w := range widths {
		start, end := cols, cols
		if len(cols) == 3 && cols[1] == ':' {
			start, end = cols[:1], cols[2:]
		}
		if err := f.SetColWidth(sheet, start, end, w); err != nil {
			return err
		}
	}
	return nil
}
