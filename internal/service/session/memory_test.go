package session

import (
	"errors"
	"sync"
	"testing"
	"time"

	"hipphone/internal/model"
	"hipphone/internal/service/catalog"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]model.Record{
		{Carrier: "SKT", Model: "S24", Plan: "P", ContractType: "C", ListPrice: 100, Subsidy: 10},
	})
}

// TestNewMemoryStore 测试创建存储
func TestNewMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	if store == nil {
		t.Fatal("NewMemoryStore() returned nil")
	}
	if store.Count() != 0 {
		t.Errorf("New store should be empty, got %d sessions", store.Count())
	}
}

// TestCreateAndGet 测试创建与读取会话
func TestCreateAndGet(t *testing.T) {
	store := NewMemoryStore()
	sess := store.Create(testCatalog())

	if sess.ID == "" {
		t.Fatal("session id should not be empty")
	}
	got, err := store.Get(sess.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Catalog.Len() != 1 {
		t.Errorf("catalog rows = %d, want 1", got.Catalog.Len())
	}
}

// TestGetNotFound 测试获取不存在的会话
func TestGetNotFound(t *testing.T) {
	store := NewMemoryStore()
	if _, err := store.Get("missing"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := store.Select("missing", model.FieldCarrier, "SKT", nil); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// TestSelectCarrierResetsDownstream 测试切换通信商时下游清空
func TestSelectCarrierResetsDownstream(t *testing.T) {
	store := NewMemoryStore()
	id := store.Create(testCatalog()).ID

	for _, step := range []struct {
		field model.Field
		value string
	}{
		{model.FieldCarrier, "SKT"},
		{model.FieldModel, "S24"},
		{model.FieldPlan, "P"},
		{model.FieldContractType, "C"},
	} {
		if _, err := store.Select(id, step.field, step.value, nil); err != nil {
			t.Fatalf("Select %s failed: %v", step.field, err)
		}
	}

	sess, err := store.Select(id, model.FieldCarrier, "KT", nil)
	if err != nil {
		t.Fatalf("Select carrier failed: %v", err)
	}
	if sess.Selection != (model.Selection{Carrier: "KT"}) {
		t.Errorf("downstream not reset: %+v", sess.Selection)
	}
}

// TestSetCatalogResetsSelection 测试重新加载文件时清空选择
func TestSetCatalogResetsSelection(t *testing.T) {
	store := NewMemoryStore()
	id := store.Create(nil).ID

	if _, err := store.Select(id, model.FieldCarrier, "SKT", nil); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	sess, err := store.SetCatalog(id, testCatalog())
	if err != nil {
		t.Fatalf("SetCatalog failed: %v", err)
	}
	if sess.Selection != (model.Selection{}) {
		t.Errorf("selection should be reset, got %+v", sess.Selection)
	}
}

// TestSetStoreDiscountClamps 测试负折扣
func TestSetStoreDiscountClamps(t *testing.T) {
	store := NewMemoryStore()
	id := store.Create(nil).ID

	sess, err := store.SetStoreDiscount(id, -3000)
	if err != nil {
		t.Fatalf("SetStoreDiscount failed: %v", err)
	}
	if sess.StoreDiscount != 0 {
		t.Errorf("StoreDiscount = %d, want 0", sess.StoreDiscount)
	}
}

// TestSessionsAreIsolated 测试会话之间互不影响
func TestSessionsAreIsolated(t *testing.T) {
	store := NewMemoryStore()
	a := store.Create(testCatalog()).ID
	b := store.Create(testCatalog()).ID

	if _, err := store.Select(a, model.FieldCarrier, "SKT", nil); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	sb, _ := store.Get(b)
	if sb.Selection.Carrier != "" {
		t.Errorf("session b should be untouched, got %+v", sb.Selection)
	}
}

// TestExpire 测试过期清理
func TestExpire(t *testing.T) {
	store := NewMemoryStore()
	store.Create(nil)

	if n := store.Expire(time.Hour); n != 0 {
		t.Errorf("fresh session expired: %d", n)
	}
	if n := store.Expire(-time.Second); n != 1 {
		t.Errorf("expected 1 expired session, got %d", n)
	}
}

// TestConcurrentAccess 测试并发访问
func TestConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()
	id := store.Create(testCatalog()).ID

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = store.Select(id, model.FieldCarrier, "SKT", nil)
		}()
		go func() {
			defer wg.Done()
			_, _ = store.Get(id)
		}()
	}
	wg.Wait()

	if store.Count() != 1 {
		t.Errorf("Count = %d, want 1", store.Count())
	}
}

// TestExpireKeepsRecentlyRead 只读访问也会续期
func TestExpireKeepsRecentlyRead(t *testing.T) {
	store := NewMemoryStore()
	id := store.Create(nil).ID

	old := time.Now().Add(-2 * time.Hour)
	store.sessions[id].UpdatedAt = old
	store.sessions[id].AccessedAt = old

	if _, err := store.Get(id); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if n := store.Expire(time.Hour); n != 0 {
		t.Fatalf("session read just now should survive, expired %d", n)
	}

	store.sessions[id].AccessedAt = old
	if n := store.Expire(time.Hour); n != 1 {
		t.Fatalf("idle session should expire, expired %d", n)
	}
}

// TestSelectValidatesCurrentState 校验函数看到的是持锁时的最新状态
func TestSelectValidatesCurrentState(t *testing.T) {
	store := NewMemoryStore()
	cat := catalog.New([]model.Record{
		{Carrier: "SKT", Model: "S24", Plan: "P", ContractType: "C", ListPrice: 100, Subsidy: 10},
		{Carrier: "KT", Model: "iPhone 15", Plan: "P", ContractType: "C", ListPrice: 100, Subsidy: 10},
	})
	id := store.Create(cat).ID

	validate := func(field model.Field, value string) func(Session) error {
		return func(sess Session) error {
			return sess.Catalog.CheckChoice(field, value, sess.Selection)
		}
	}

	if _, err := store.Select(id, model.FieldCarrier, "SKT", validate(model.FieldCarrier, "SKT")); err != nil {
		t.Fatalf("select carrier: %v", err)
	}
	// 另一个请求先把通信商改为 KT
	if _, err := store.Select(id, model.FieldCarrier, "KT", validate(model.FieldCarrier, "KT")); err != nil {
		t.Fatalf("select carrier: %v", err)
	}

	sess, err := store.Select(id, model.FieldModel, "S24", validate(model.FieldModel, "S24"))
	var invalid *catalog.InvalidChoiceError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidChoiceError, got %v", err)
	}
	if sess.Selection != (model.Selection{Carrier: "KT"}) {
		t.Fatalf("selection should be unchanged, got %+v", sess.Selection)
	}
}

// TestConcurrentSelectNeverDead 并发选择后状态始终可解析
func TestConcurrentSelectNeverDead(t *testing.T) {
	store := NewMemoryStore()
	cat := catalog.New([]model.Record{
		{Carrier: "SKT", Model: "S24", Plan: "P", ContractType: "C", ListPrice: 100, Subsidy: 10},
		{Carrier: "KT", Model: "iPhone 15", Plan: "P", ContractType: "C", ListPrice: 100, Subsidy: 10},
	})
	id := store.Create(cat).ID
	if _, err := store.Select(id, model.FieldCarrier, "SKT", nil); err != nil {
		t.Fatalf("select carrier: %v", err)
	}

	check := func(field model.Field, value string) func(Session) error {
		return func(sess Session) error {
			return sess.Catalog.CheckChoice(field, value, sess.Selection)
		}
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = store.Select(id, model.FieldCarrier, "KT", check(model.FieldCarrier, "KT"))
			_, _ = store.Select(id, model.FieldCarrier, "SKT", check(model.FieldCarrier, "SKT"))
		}()
		go func() {
			defer wg.Done()
			_, _ = store.Select(id, model.FieldModel, "S24", check(model.FieldModel, "S24"))
		}()
	}
	wg.Wait()

	sess, _ := store.Get(id)
	if sess.Selection.Model != "" && len(cat.Filter(sess.Selection)) == 0 {
		t.Fatalf("dead selection: %+v", sess.Selection)
	}
}

// TestMarkQuoted 相同报价只记录一次
func TestMarkQuoted(t *testing.T) {
	store := NewMemoryStore()
	id := store.Create(nil).ID

	if changed, err := store.MarkQuoted(id, "a"); err != nil || !changed {
		t.Fatalf("first quote should be recorded: changed=%v err=%v", changed, err)
	}
	if changed, _ := store.MarkQuoted(id, "a"); changed {
		t.Fatal("same quote should not be recorded again")
	}
	if changed, _ := store.MarkQuoted(id, "b"); !changed {
		t.Fatal("changed quote should be recorded")
	}
	if _, err := store.MarkQuoted("missing", "a"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
