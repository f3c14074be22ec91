package excel

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Parser Excel 工作簿读取器
type Parser struct {
	file *excelize.File
}

// NewParser 创建解析器
func NewParser() *Parser {
	return &Parser{}
}

// LoadFile 加载Excel文件
func (p *Parser) LoadFile(reader io.Reader) error {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return fmt.Errorf("failed to open excel: %w", err)
	}
	p.file = file
	return nil
}

// FirstSheet 返回第一个工作表名称
func (p *Parser) FirstSheet() (string, error) {
	if p.file == nil {
		return "", errors.New("no file loaded")
	}
	sheets := p.file.GetSheetList()
	if len(sheets) == 0 {
		return "", errors.New("workbook has no sheets")
	}
	return sheets[0], nil
}

// GetRows 读取工作表全部行（首行为表头）
func (p *Parser) GetRows(sheet string) ([][]string, error) {
	if p.file == nil {
		return nil, errors.New("no file loaded")
	}
	rows, err := p.file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	return rows, nil
}

// Close 关闭文件
func (p *Parser) Close() error {
	if p.file != nil {
		err := p.file.Close()
		p.file = nil
		return err
	}
	return nil
}

func readWorkbook(r io.Reader) (sheet string, rows [][]string, err error) {
	p := NewParser()
	if err := p.LoadFile(r); err != nil {
		return "", nil, err
	}
	defer p.Close()

	sheet, err = p.FirstSheet()
	if err != nil {
		return "", nil, err
	}
	rows, err = p.GetRows(sheet)
	if err != nil {
		return "", nil, err
	}
	return sheet, rows, nil
}
