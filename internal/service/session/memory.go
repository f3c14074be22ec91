package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"hipphone/internal/model"
	"hipphone/internal/service/catalog"
)

// ErrNotFound 会话不存在
var ErrNotFound = errors.New("session not found")

// Session 单个用户会话：一个目录 + 一个选择状态 + 门店折扣
type Session struct {
	ID            string
	Catalog       *catalog.Catalog
	Selection     model.Selection
	StoreDiscount int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	AccessedAt    time.Time // 最近一次读写，过期判断以此为准

	lastQuote string // 最近一次写入历史的报价
}

// MemoryStore 会话的内存存储；返回的 Session 均为副本
type MemoryStore struct {
	sessions map[string]*Session
	mu       sync.Mutex
}

// NewMemoryStore 创建内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
	}
}

// Create 新建会话，cat 可以为 nil（尚未加载文件）
func (s *MemoryStore) Create(cat *catalog.Catalog) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	sess := &Session{
		ID:         uuid.New().String(),
		Catalog:    cat,
		CreatedAt:  now,
		UpdatedAt:  now,
		AccessedAt: now,
	}
	s.sessions[sess.ID] = sess
	return *sess
}

// Get 获取会话，同时刷新访问时间
func (s *MemoryStore) Get(id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	sess.AccessedAt = time.Now()
	return *sess, nil
}

// SetCatalog 替换会话目录，同时清空选择
func (s *MemoryStore) SetCatalog(id string, cat *catalog.Catalog) (Session, error) {
	return s.update(id, func(sess *Session) error {
		sess.Catalog = cat
		sess.Selection = model.Selection{}
		return nil
	})
}

// Select 设置某个选择字段，下游字段按需清空
//
// validate 在持锁状态下对当前会话执行，返回错误时不做修改；可以为 nil。
func (s *MemoryStore) Select(id string, field model.Field, value string, validate func(Session) error) (Session, error) {
	return s.update(id, func(sess *Session) error {
		if validate != nil {
			if err := validate(*sess); err != nil {
				return err
			}
		}
		sess.Selection = sess.Selection.With(field, value)
		return nil
	})
}

// ResetSelection 清空选择
func (s *MemoryStore) ResetSelection(id string) (Session, error) {
	return s.update(id, func(sess *Session) error {
		sess.Selection = model.Selection{}
		return nil
	})
}

// SetStoreDiscount 设置门店折扣（负数按 0 保存）
func (s *MemoryStore) SetStoreDiscount(id string, discount int64) (Session, error) {
	if discount < 0 {
		discount = 0
	}
	return s.update(id, func(sess *Session) error {
		sess.StoreDiscount = discount
		return nil
	})
}

// MarkQuoted 记录本次报价的标识；与上次相同时返回 false（无需重复写历史）
func (s *MemoryStore) MarkQuoted(id, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return false, ErrNotFound
	}
	sess.AccessedAt = time.Now()
	if sess.lastQuote == key {
		return false, nil
	}
	sess.lastQuote = key
	return true, nil
}

// Delete 删除会话
func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Count 会话数量
func (s *MemoryStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Expire 删除超过 ttl 未访问的会话，返回删除数量
func (s *MemoryStore) Expire(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-ttl)
	removed := 0
	for id, sess := range s.sessions {
		if sess.AccessedAt.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *MemoryStore) update(id string, fn func(*Session) error) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	if err := fn(sess); err != nil {
		return *sess, err
	}
	now := time.Now()
	sess.UpdatedAt = now
	sess.AccessedAt = now
	return *sess, nil
}
