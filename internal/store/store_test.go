package store

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := New(filepath.Join(t.TempDir(), "hipphone.db"))
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestLoadLogs(t *testing.T) {
	st := newTestStore(t)

	if _, err := st.CreateLoadLog(LoadLog{LoadID: "l1", Filename: "a.xlsx", Origin: OriginDefault, RowCount: 10, Status: LoadStatusOK}); err != nil {
		t.Fatalf("create load log: %v", err)
	}
	if _, err := st.CreateLoadLog(LoadLog{LoadID: "l2", SessionID: "s1", Filename: "b.csv", Origin: OriginUpload, Status: LoadStatusSchemaError, ErrorMessage: "missing subsidy"}); err != nil {
		t.Fatalf("create load log: %v", err)
	}

	logs, err := st.ListLoadLogs(10)
	if err != nil {
		t.Fatalf("list load logs: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 logs, got %d", len(logs))
	}
	if logs[0].LoadID != "l2" || logs[0].Status != LoadStatusSchemaError {
		t.Fatalf("unexpected newest log: %+v", logs[0])
	}
	if logs[1].RowCount != 10 {
		t.Fatalf("row count=%d want 10", logs[1].RowCount)
	}
}

func TestQuoteLogsFilterBySession(t *testing.T) {
	st := newTestStore(t)

	for _, sid := range []string{"s1", "s2", "s1"} {
		if _, err := st.CreateQuoteLog(QuoteLog{SessionID: sid, Carrier: "SKT", Model: "S24", Plan: "P", ContractType: "C", ListPrice: 100, Subsidy: 10, FinalPrice: 90}); err != nil {
			t.Fatalf("create quote log: %v", err)
		}
	}

	all, err := st.ListQuoteLogs("", 10)
	if err != nil {
		t.Fatalf("list quote logs: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 quotes, got %d", len(all))
	}

	s1, err := st.ListQuoteLogs("s1", 10)
	if err != nil {
		t.Fatalf("list quote logs: %v", err)
	}
	if len(s1) != 2 {
		t.Fatalf("expected 2 quotes for s1, got %d", len(s1))
	}

	limited, err := st.ListQuoteLogs("", 1)
	if err != nil {
		t.Fatalf("list quote logs: %v", err)
	}
	if len(limited) != 1 || limited[0].SessionID != "s1" {
		t.Fatalf("unexpected limited result: %+v", limited)
	}
}

func TestPrune(t *testing.T) {
	st := newTestStore(t)

	if _, err := st.CreateLoadLog(LoadLog{LoadID: "l1", Filename: "a.xlsx", Origin: OriginDefault, Status: LoadStatusOK}); err != nil {
		t.Fatalf("create load log: %v", err)
	}
	if _, err := st.CreateQuoteLog(QuoteLog{SessionID: "s1", Carrier: "SKT", Model: "S24", Plan: "P", ContractType: "C"}); err != nil {
		t.Fatalf("create quote log: %v", err)
	}

	n, err := st.Prune(time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if n != 0 {
		t.Fatalf("recent rows pruned: %d", n)
	}

	n, err = st.Prune(time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 pruned rows, got %d", n)
	}
}
