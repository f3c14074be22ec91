package excel

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Format 输入文件格式
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// ErrUnsupportedFormat 扩展名既不是表格也不是 CSV
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrEmptyFile 文件没有表头行
var ErrEmptyFile = errors.New("file has no header row")

// Table 读取结果：表头 + 数据行（原始文本）
type Table struct {
	Name   string     `json:"name"`
	Format Format     `json:"format"`
	Sheet  string     `json:"sheet,omitempty"`
	Header []string   `json:"header"`
	Rows   [][]string `json:"-"`
}

// DetectFormat 按扩展名判断格式
func DetectFormat(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".csv":
		return FormatCSV, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// ReadTable 读取表格文件；工作簿只读取第一个工作表
func ReadTable(name string, r io.Reader) (*Table, error) {
	format, err := DetectFormat(name)
	if err != nil {
		return nil, err
	}

	table := &Table{Name: name, Format: format}

	var rows [][]string
	switch format {
	case FormatXLSX:
		table.Sheet, rows, err = readWorkbook(r)
	case FormatCSV:
		rows, err = readCSV(r)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	table.Header = rows[0]
	table.Rows = rows[1:]
	return table, nil
}
