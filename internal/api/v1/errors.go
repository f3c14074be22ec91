package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hipphone/internal/service/catalog"
	"hipphone/internal/service/session"
)

const (
	msgNoFile         = "CSV/XLSX 파일을 업로드하거나 올바른 경로를 입력하세요."
	msgLoadFailed     = "데이터 불러오기 실패"
	msgSchemaMissing  = "필수 컬럼이 없습니다"
	msgNoMatch        = "일치하는 데이터가 없습니다. 파일을 확인하세요."
	msgIncomplete     = "통신사, 모델, 요금제, 가입유형을 모두 선택하세요."
	msgSessionMissing = "세션을 찾을 수 없습니다"
	msgBadRequest     = "요청 형식이 올바르지 않습니다"
)

// errorBody 把领域错误转换为 HTTP 状态码与响应体
func errorBody(err error) (int, gin.H) {
	var (
		loadErr   *catalog.LoadError
		schemaErr *catalog.SchemaError
		noMatch   *catalog.NoMatchError
		invalid   *catalog.InvalidChoiceError
	)

	switch {
	case errors.As(err, &schemaErr):
		return http.StatusUnprocessableEntity, gin.H{
			"error":    msgSchemaMissing + ": " + strings.Join(schemaErr.Missing, ", "),
			"required": schemaErr.Required,
			"missing":  schemaErr.Missing,
			"found":    schemaErr.Found,
			"accepted": schemaErr.Accepted,
		}
	case errors.As(err, &loadErr):
		return http.StatusBadRequest, gin.H{
			"error":  msgLoadFailed + ": " + loadErr.Err.Error(),
			"source": loadErr.Source,
		}
	case errors.As(err, &noMatch):
		return http.StatusNotFound, gin.H{
			"error":          msgNoMatch,
			"selection":      noMatch.Selection,
			"availablePlans": noMatch.AvailablePlans,
		}
	case errors.As(err, &invalid):
		return http.StatusBadRequest, gin.H{
			"error":   "선택할 수 없는 값입니다: " + invalid.Value,
			"field":   invalid.Field,
			"choices": invalid.Choices,
		}
	case errors.Is(err, catalog.ErrNoSource):
		return http.StatusConflict, gin.H{"error": msgNoFile}
	case errors.Is(err, catalog.ErrIncompleteSelection):
		return http.StatusConflict, gin.H{"error": msgIncomplete}
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound, gin.H{"error": msgSessionMissing}
	}
	return http.StatusInternalServerError, gin.H{"error": err.Error()}
}

func abortWithError(c *gin.Context, err error) {
	status, body := errorBody(err)
	c.AbortWithStatusJSON(status, body)
}
