package calculator

import "hipphone/internal/model"

// ValidateRecord 检查命中行的可疑数据（只作提示，不影响计算）
func ValidateRecord(r model.Record) []string {
	warns := make([]string, 0, 2)

	if r.ListPrice == 0 {
		warns = append(warns, "출고가가 0원입니다. 파일의 금액 칸을 확인하세요.")
	}
	if r.Subsidy > r.ListPrice {
		warns = append(warns, "공시지원금이 출고가보다 큽니다. 기본 계산가는 0원으로 처리됩니다.")
	}

	return warns
}
