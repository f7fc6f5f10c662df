// Package usage persists a ledger of upstream generation calls so the
// cost of a session can be inspected after the fact.
package usage

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/ykhadiri/alkimiya/internal/db"
	"github.com/ykhadiri/alkimiya/internal/genai"
)

// Record is one persisted upstream call.
type Record struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	Provider     string    `json:"provider"`
	Model        string    `json:"model"`
	Op           genai.Op  `json:"op"`
	InputTokens  int       `json:"inputTokens"`
	OutputTokens int       `json:"outputTokens"`
	Characters   int       `json:"characters"`
	CostUSD      float64   `json:"costUsd"`
	Duration     int64     `json:"durationMs"`
	Failed       bool      `json:"failed"`
}

// Summary aggregates the ledger.
type Summary struct {
	Calls        int     `json:"calls"`
	Failed       int     `json:"failed"`
	InputTokens  int     `json:"inputTokens"`
	OutputTokens int     `json:"outputTokens"`
	Characters   int     `json:"characters"`
	CostUSD      float64 `json:"costUsd"`
}

// Store reads and writes usage records.
type Store struct {
	db *db.DB
}

func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Create inserts a record, assigning an ID and timestamp.
func (s *Store) Create(r *Record) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(`
		INSERT INTO usage_records (id, created_at, provider, model, op, input_tokens, output_tokens, characters, cost_usd, duration_ms, failed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.CreatedAt.Format(time.RFC3339Nano), r.Provider, r.Model, string(r.Op),
		r.InputTokens, r.OutputTokens, r.Characters, r.CostUSD, r.Duration, boolToInt(r.Failed),
	)
	if err != nil {
		return fmt.Errorf("inserting usage record: %w", err)
	}
	return nil
}

// List returns the most recent records, newest first.
func (s *Store) List(limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT id, created_at, provider, model, op, input_tokens, output_tokens, characters, cost_usd, duration_ms, failed
		FROM usage_records ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying usage records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			r       Record
			created string
			op      string
			failed  int
		)
		if err := rows.Scan(&r.ID, &created, &r.Provider, &r.Model, &op,
			&r.InputTokens, &r.OutputTokens, &r.Characters, &r.CostUSD, &r.Duration, &failed); err != nil {
			return nil, fmt.Errorf("scanning usage record: %w", err)
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		r.Op = genai.Op(op)
		r.Failed = failed != 0
		records = append(records, r)
	}
	return records, rows.Err()
}

// Summarize aggregates every record in the ledger.
func (s *Store) Summarize() (Summary, error) {
	var sum Summary
	err := s.db.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(failed), 0),
		       COALESCE(SUM(input_tokens), 0),
		       COALESCE(SUM(output_tokens), 0),
		       COALESCE(SUM(characters), 0),
		       COALESCE(SUM(cost_usd), 0)
		FROM usage_records`).
		Scan(&sum.Calls, &sum.Failed, &sum.InputTokens, &sum.OutputTokens, &sum.Characters, &sum.CostUSD)
	if err != nil {
		return Summary{}, fmt.Errorf("summarizing usage: %w", err)
	}
	return sum, nil
}

// Recorder returns a genai.UsageFunc that prices and persists every
// upstream call. Persistence failures are logged, never surfaced: the
// ledger must not break an interactive request.
func (s *Store) Recorder() genai.UsageFunc {
	return func(u genai.Usage) {
		rec := &Record{
			Provider:     u.Provider,
			Model:        u.Model,
			Op:           u.Op,
			InputTokens:  u.InputTokens,
			OutputTokens: u.OutputTokens,
			Characters:   u.Characters,
			CostUSD:      EstimateCost(u.Model, u.InputTokens, u.OutputTokens, u.Characters),
			Duration:     u.Duration.Milliseconds(),
			Failed:       u.Failed,
		}
		if err := s.Create(rec); err != nil {
			log.Printf("usage: recording call: %v", err)
		}
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
