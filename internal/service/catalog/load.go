package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"hipphone/internal/parser"
	"hipphone/internal/service/excel"
)

// Source 待加载的文件
type Source struct {
	Name   string
	Reader io.Reader
}

// Load 读取文件并映射表头；缺列时返回 SchemaError，不做部分加载
func Load(src Source) (*Catalog, error) {
	table, err := excel.ReadTable(src.Name, src.Reader)
	if err != nil {
		return nil, &LoadError{Source: src.Name, Err: err}
	}
	return FromTable(table)
}

// FromTable 由已读取的表格构建目录
func FromTable(table *excel.Table) (*Catalog, error) {
	mapping := parser.MapColumns(table.Header)
	if !mapping.Complete() {
		return nil, newSchemaError(table.Header, mapping.Missing)
	}

	c := &Catalog{
		source:  table.Name,
		format:  table.Format,
		sheet:   table.Sheet,
		header:  append([]string{}, table.Header...),
		mapping: mapping,
	}
	for i, row := range table.Rows {
		if parser.IsBlankRow(row) {
			c.skipped++
			continue
		}
		// 行号从 2 开始（第 1 行是表头）
		c.records = append(c.records, normalizeRow(mapping.Extract(row), i+2))
	}
	return c, nil
}

// LoadFile 从本地路径加载
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoSource, path)
		}
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()

	return Load(Source{Name: filepath.Base(path), Reader: f})
}

// Open 上传文件优先，其次默认路径；两者都没有时返回 ErrNoSource
func Open(upload *Source, defaultPath string) (*Catalog, error) {
	if upload != nil {
		return Load(*upload)
	}
	if defaultPath == "" {
		return nil, ErrNoSource
	}
	return LoadFile(defaultPath)
}
