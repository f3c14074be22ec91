package parser

import (
	"testing"

	"hipphone/internal/model"
)

func TestMapColumns_EnglishHeaders(t *testing.T) {
	t.Parallel()

	m := MapColumns([]string{"carrier", "model", "plan", "contract_type", "msrp_won", "subsidy_won"})
	if !m.Complete() {
		t.Fatalf("expected complete mapping, missing=%v", m.Missing)
	}
	for i, f := range model.RequiredFields {
		idx, ok := m.Index(f)
		if !ok || idx != i {
			t.Fatalf("field %s index=%d ok=%v want %d", f, idx, ok, i)
		}
	}
}

func TestMapColumns_KoreanHeadersCaseAndWhitespace(t *testing.T) {
	t.Parallel()

	m := MapColumns([]string{" 통신사 ", "모델명", "요금제", "가입 유형", " MSRP ", "공시지원금(원)", "비고"})
	if !m.Complete() {
		t.Fatalf("expected complete mapping, missing=%v", m.Missing)
	}
	if got := m.Fields[model.FieldListPrice].ColumnName; got != " MSRP " {
		t.Fatalf("list price column=%q, want original header kept", got)
	}
	if idx, _ := m.Index(model.FieldSubsidy); idx != 5 {
		t.Fatalf("subsidy index=%d want 5", idx)
	}
}

func TestMapColumns_AliasPermutationsProduceSameSchema(t *testing.T) {
	t.Parallel()

	variants := [][]string{
		{"carrier", "model", "plan", "contract_type", "msrp_won", "subsidy_won"},
		{"통신사", "모델", "요금제", "가입유형", "출고가", "지원금"},
		{"CARRIER", "모델명", "PLAN", "가입-유형", "출고가(원)", "공시지원금"},
		{"subsidy_won", "가입유형", "요금제", "모델", "통신사", "msrp"},
	}
	for _, headers := range variants {
		m := MapColumns(headers)
		if !m.Complete() {
			t.Fatalf("headers %v: missing=%v", headers, m.Missing)
		}
		if len(m.Fields) != len(model.RequiredFields) {
			t.Fatalf("headers %v: mapped %d fields", headers, len(m.Fields))
		}
	}
}

func TestMapColumns_NoFuzzyMatch(t *testing.T) {
	t.Parallel()

	m := MapColumns([]string{"통신사명", "model", "plan", "contract", "msrp_won", "subsidy"})
	want := []model.Field{model.FieldCarrier, model.FieldContractType, model.FieldSubsidy}
	if len(m.Missing) != len(want) {
		t.Fatalf("missing=%v want %v", m.Missing, want)
	}
	for i := range want {
		if m.Missing[i] != want[i] {
			t.Fatalf("missing[%d]=%s want %s", i, m.Missing[i], want[i])
		}
	}
}

func TestMapColumns_FirstDuplicateWins(t *testing.T) {
	t.Parallel()

	m := MapColumns([]string{"carrier", "통신사", "model", "plan", "contract_type", "msrp_won", "subsidy_won"})
	if idx, _ := m.Index(model.FieldCarrier); idx != 0 {
		t.Fatalf("carrier index=%d want 0", idx)
	}
}

func TestExtract_ShortRowIsBlank(t *testing.T) {
	t.Parallel()

	m := MapColumns([]string{"carrier", "model", "plan", "contract_type", "msrp_won", "subsidy_won"})
	v := m.Extract([]string{"SKT", "S24"})
	if v[model.FieldCarrier] != "SKT" || v[model.FieldSubsidy] != "" {
		t.Fatalf("unexpected values: %v", v)
	}
}
