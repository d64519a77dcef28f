// Package history keeps a best-effort SQLite log of generated ideas. The
// generation pipeline itself stays stateless; a failed write here is logged
// and never affects a response.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/ideaforge-labs/ideaforge/internal/ideagen"
)

const schema = `
CREATE TABLE IF NOT EXISTS ideas (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at TEXT NOT NULL,
	mode       TEXT NOT NULL,
	model      TEXT NOT NULL DEFAULT '',
	category   TEXT NOT NULL,
	title      TEXT NOT NULL,
	confidence INTEGER NOT NULL,
	risk_level TEXT NOT NULL,
	response   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_ideas_created_at ON ideas (created_at DESC);
`

type Entry struct {
	ID         int64  `db:"id" json:"id"`
	CreatedAt  string `db:"created_at" json:"created_at"`
	Mode       string `db:"mode" json:"mode"`
	Model      string `db:"model" json:"model,omitempty"`
	Category   string `db:"category" json:"category"`
	Title      string `db:"title" json:"title"`
	Confidence int    `db:"confidence" json:"confidence"`
	RiskLevel  string `db:"risk_level" json:"risk_level"`
	Response   string `db:"response" json:"-"`
}

// Result re-inflates the stored response payload.
func (e Entry) Result() (ideagen.Result, error) {
	var res ideagen.Result
	err := json.Unmarshal([]byte(e.Response), &res)
	return res, err
}

type Store struct {
	db *sqlx.DB
}

func Open(dbPath string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends one generated idea.
func (s *Store) Record(ctx context.Context, mode, model string, res ideagen.Result) error {
	blob, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal response: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO ideas (created_at, mode, model, category, title, confidence, risk_level, response)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), mode, model,
		res.BusinessIdea.Category, res.BusinessIdea.Title,
		res.BusinessIdea.ConfidenceScore, string(res.BusinessIdea.RiskLevel), string(blob))
	return err
}

// Recent returns the newest entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	entries := []Entry{}
	err := s.db.SelectContext(ctx, &entries,
		`SELECT id, created_at, mode, model, category, title, confidence, risk_level, response
		 FROM ideas ORDER BY id DESC LIMIT ?`, limit)
	return entries, err
}
