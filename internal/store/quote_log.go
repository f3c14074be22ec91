package store

import (
	"fmt"
	"time"
)

// QuoteLog 一次报价记录
type QuoteLog struct {
	ID            int64     `json:"id"`
	SessionID     string    `json:"sessionId"`
	Carrier       string    `json:"carrier"`
	Model         string    `json:"model"`
	Plan          string    `json:"plan"`
	ContractType  string    `json:"contractType"`
	ListPrice     int64     `json:"listPrice"`
	Subsidy       int64     `json:"subsidy"`
	StoreDiscount int64     `json:"storeDiscount"`
	FinalPrice    int64     `json:"finalPrice"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CreateQuoteLog 写入报价记录
func (s *Store) CreateQuoteLog(q QuoteLog) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO quote_logs (session_id, carrier, model, plan, contract_type, list_price, subsidy, store_discount, final_price)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, q.SessionID, q.Carrier, q.Model, q.Plan, q.ContractType, q.ListPrice, q.Subsidy, q.StoreDiscount, q.FinalPrice)
	if err != nil {
		return 0, fmt.Errorf("failed to create quote log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get quote log id: %w", err)
	}
	return id, nil
}

// ListQuoteLogs 最近的报价记录；sessionID 为空时返回全部会话
func (s *Store) ListQuoteLogs(sessionID string, limit int) ([]QuoteLog, error) {
	rows, err := s.db.Query(`
		SELECT id, session_id, carrier, model, plan, contract_type, list_price, subsidy, store_discount, final_price, created_at
		FROM quote_logs
		WHERE (? = '' OR session_id = ?)
		ORDER BY id DESC
		LIMIT ?
	`, sessionID, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("query quote logs failed: %w", err)
	}
	defer rows.Close()

	out := []QuoteLog{}
	for rows.Next() {
		var it QuoteLog
		if err := rows.Scan(&it.ID, &it.SessionID, &it.Carrier, &it.Model, &it.Plan, &it.ContractType,
			&it.ListPrice, &it.Subsidy, &it.StoreDiscount, &it.FinalPrice, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan quote log failed: %w", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quote logs failed: %w", err)
	}
	return out, nil
}
