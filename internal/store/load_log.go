package store

import (
	"fmt"
	"time"
)

// 加载来源
const (
	OriginUpload  = "upload"
	OriginDefault = "default"
)

// 加载状态
const (
	LoadStatusOK           = "ok"
	LoadStatusLoadError    = "load_error"
	LoadStatusSchemaError  = "schema_error"
	LoadStatusNoSourceFile = "no_source"
)

// LoadLog 一次目录加载记录
type LoadLog struct {
	ID           int64     `json:"id"`
	LoadID       string    `json:"loadId"`
	SessionID    string    `json:"sessionId"`
	Filename     string    `json:"filename"`
	Origin       string    `json:"origin"`
	RowCount     int       `json:"rowCount"`
	Status       string    `json:"status"`
	ErrorMessage string    `json:"errorMessage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CreateLoadLog 写入加载记录，返回自增 id
func (s *Store) CreateLoadLog(l LoadLog) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO load_logs (load_id, session_id, filename, origin, row_count, status, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, l.LoadID, l.SessionID, l.Filename, l.Origin, l.RowCount, l.Status, l.ErrorMessage)
	if err != nil {
		return 0, fmt.Errorf("failed to create load log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get load log id: %w", err)
	}
	return id, nil
}

// ListLoadLogs 最近的加载记录（按 id 倒序）
func (s *Store) ListLoadLogs(limit int) ([]LoadLog, error) {
	rows, err := s.db.Query(`
		SELECT id, load_id, session_id, filename, origin, row_count, status, error_message, created_at
		FROM load_logs
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query load logs failed: %w", err)
	}
	defer rows.Close()

	out := []LoadLog{}
	for rows.Next() {
		var it LoadLog
		if err := rows.Scan(&it.ID, &it.LoadID, &it.SessionID, &it.Filename, &it.Origin,
			&it.RowCount, &it.Status, &it.ErrorMessage, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan load log failed: %w", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate load logs failed: %w", err)
	}
	return out, nil
}
