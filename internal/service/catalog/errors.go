package catalog

import (
	"errors"
	"fmt"
	"strings"

	"hipphone/internal/model"
	"hipphone/internal/parser"
)

// ErrNoSource 既没有上传文件，默认路径也不存在
var ErrNoSource = errors.New("no catalog file available")

// ErrIncompleteSelection 四个选择字段未全部设置
var ErrIncompleteSelection = errors.New("selection is incomplete")

// LoadError 文件无法读取或已损坏
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// SchemaError 别名解析后仍缺少必需字段
type SchemaError struct {
	Required []string `json:"required"`
	Missing  []string `json:"missing"`
	Found    []string `json:"found"`
	// Accepted 每个缺失字段可接受的表头写法
	Accepted map[string][]string `json:"accepted"`
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns [%s] (required: %s; found: %s)",
		strings.Join(e.Missing, ", "),
		strings.Join(e.Required, ", "),
		strings.Join(e.Found, ", "))
}

// NoMatchError 选择完整但没有匹配行；可恢复，附带该通信商+机型下可选的资费
type NoMatchError struct {
	Selection      model.Selection `json:"selection"`
	AvailablePlans []string        `json:"availablePlans"`
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no row matches %s | %s | %s | %s (available plans: %s)",
		e.Selection.Carrier, e.Selection.Model, e.Selection.Plan, e.Selection.ContractType,
		strings.Join(e.AvailablePlans, ", "))
}

// InvalidChoiceError 选择值不在当前可选范围内
type InvalidChoiceError struct {
	Field   model.Field `json:"field"`
	Value   string      `json:"value"`
	Choices []string    `json:"choices"`
}

func (e *InvalidChoiceError) Error() string {
	return fmt.Sprintf("%q is not a valid choice for %s", e.Value, e.Field)
}

func newSchemaError(header []string, missing []model.Field) *SchemaError {
	required := make([]string, 0, len(model.RequiredFields))
	for _, f := range model.RequiredFields {
		required = append(required, string(f))
	}
	miss := make([]string, 0, len(missing))
	accepted := make(map[string][]string, len(missing))
	for _, f := range missing {
		miss = append(miss, string(f))
		accepted[string(f)] = parser.Aliases(f)
	}
	return &SchemaError{
		Required: required,
		Missing:  miss,
		Found:    append([]string{}, header...),
		Accepted: accepted,
	}
}
