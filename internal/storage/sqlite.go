package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SessionStore persists one row per pipeline invocation.
type SessionStore struct {
	db *sql.DB
}

// SessionRecord is the durable trace of a run. Facts and Plan are stored as
// JSON; Plan keeps whatever shape reached the renderer (typed plan or raw
// planner text).
type SessionRecord struct {
	Identifier string
	CreatedAt  time.Time
	Language   string
	Transcript string
	Facts      []string
	Plan       any
	DocxPath   string
}

// NewSessionStore creates or opens a SQLite database.
func NewSessionStore(path string) (*SessionStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := &SessionStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

func (s *SessionStore) Close() error {
	return s.db.Close()
}

func (s *SessionStore) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			identifier TEXT PRIMARY KEY,
			created_at TEXT,
			language TEXT,
			transcript TEXT,
			facts JSON,
			plan JSON,
			docx_path TEXT
		);`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at);`,
	}

	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

func (s *SessionStore) SaveSession(ctx context.Context, rec SessionRecord) error {
	factsJSON, err := json.Marshal(rec.Facts)
	if err != nil {
		return fmt.Errorf("failed to marshal facts: %w", err)
	}
	planJSON, err := json.Marshal(rec.Plan)
	if err != nil {
		// Keep the row: a non-serializable plan must not lose the session.
		planJSON = []byte("null")
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO sessions
			(identifier, created_at, language, transcript, facts, plan, docx_path)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.Identifier,
		rec.CreatedAt.Format(time.RFC3339),
		rec.Language,
		rec.Transcript,
		string(factsJSON),
		string(planJSON),
		rec.DocxPath,
	)
	return err
}

// ListSessions returns recorded sessions, newest first. Transcript and plan
// bodies are omitted from listings.
func (s *SessionStore) ListSessions(ctx context.Context) ([]SessionRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT identifier, created_at, language, facts, docx_path
		FROM sessions ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		var createdAt, factsJSON string
		if err := rows.Scan(&rec.Identifier, &createdAt, &rec.Language, &factsJSON, &rec.DocxPath); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			rec.CreatedAt = t
		}
		if err := json.Unmarshal([]byte(factsJSON), &rec.Facts); err != nil {
			rec.Facts = nil
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// GetSession loads one full session row, including transcript and plan JSON.
func (s *SessionStore) GetSession(ctx context.Context, identifier string) (*SessionRecord, string, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT identifier, created_at, language, transcript, facts, plan, docx_path
		FROM sessions WHERE identifier = ?`, identifier)

	var rec SessionRecord
	var createdAt, factsJSON, planJSON string
	if err := row.Scan(&rec.Identifier, &createdAt, &rec.Language, &rec.Transcript, &factsJSON, &planJSON, &rec.DocxPath); err != nil {
		return nil, "", err
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		rec.CreatedAt = t
	}
	if err := json.Unmarshal([]byte(factsJSON), &rec.Facts); err != nil {
		rec.Facts = nil
	}
	return &rec, planJSON, nil
}
