package store

import (
	"fmt"
	"time"
)

// RecordTip logs a coach question and the answer the user saw
func (db *DB) RecordTip(prompt, response string, at time.Time) (*TipExchange, error) {
	result, err := db.Exec(`
		INSERT INTO tip_log (prompt, response, asked_at)
		VALUES (?, ?, ?)
	`, prompt, response, formatTime(at))
	if err != nil {
		return nil, fmt.Errorf("recording tip: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading tip id: %w", err)
	}

	return &TipExchange{ID: id, Prompt: prompt, Response: response, AskedAt: at}, nil
}

// RecentTips returns up to limit exchanges, newest first
func (db *DB) RecentTips(limit int) ([]TipExchange, error) {
	rows, err := db.Query(`
		SELECT id, prompt, response, asked_at
		FROM tip_log
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying tips: %w", err)
	}
	defer rows.Close()

	var tips []TipExchange
	for rows.Next() {
		var tip TipExchange
		var askedAt string
		if err := rows.Scan(&tip.ID, &tip.Prompt, &tip.Response, &askedAt); err != nil {
			return nil, fmt.Errorf("scanning tip: %w", err)
		}
		if tip.AskedAt, err = parseTime(askedAt); err != nil {
			return nil, fmt.Errorf("parsing asked_at: %w", err)
		}
		tips = append(tips, tip)
	}
	return tips, rows.Err()
}
