// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists conversion attempts in a local SQLite database so
// the user can see and reopen earlier outputs.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/mdesk/pkg/types"
)

const (
	dbFile = "mdesk.db"

	// defaultLimit caps Recent when the caller passes no explicit limit.
	defaultLimit = 20
)

// Store manages the conversion history database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the history database at dataDir/mdesk.db,
// creating the schema if it does not exist.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS conversions (
			id TEXT PRIMARY KEY,
			input_path TEXT NOT NULL,
			output_path TEXT,
			status TEXT NOT NULL,
			message TEXT,
			settings TEXT,
			started_at TEXT NOT NULL,
			duration_ms INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_started_at ON conversions(started_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts one finished conversion attempt. A missing ID is filled in.
func (s *Store) Record(rec types.ConversionRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	settings, err := json.Marshal(rec.Settings)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO conversions
			(id, input_path, output_path, status, message, settings, started_at, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.InputPath, rec.OutputPath, string(rec.Status), rec.Message,
		string(settings), rec.StartedAt.UTC().Format(time.RFC3339Nano),
		rec.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("inserting conversion record: %w", err)
	}
	return nil
}

// Recent returns up to n records, newest first. When n is not positive the
// default limit applies.
func (s *Store) Recent(n int) ([]types.ConversionRecord, error) {
	if n <= 0 {
		n = defaultLimit
	}

	rows, err := s.db.Query(
		`SELECT id, input_path, output_path, status, message, settings, started_at, duration_ms
		 FROM conversions ORDER BY started_at DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var recs []types.ConversionRecord
	for rows.Next() {
		var (
			rec        types.ConversionRecord
			status     string
			settings   string
			startedAt  string
			durationMS int64
		)
		if err := rows.Scan(&rec.ID, &rec.InputPath, &rec.OutputPath, &status,
			&rec.Message, &settings, &startedAt, &durationMS); err != nil {
			return nil, fmt.Errorf("scanning conversion record: %w", err)
		}

		rec.Status = types.ConversionPhase(status)
		rec.Duration = time.Duration(durationMS) * time.Millisecond

		if rec.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
			return nil, fmt.Errorf("parsing timestamp of record %s: %w", rec.ID, err)
		}
		if err := json.Unmarshal([]byte(settings), &rec.Settings); err != nil {
			return nil, fmt.Errorf("decoding settings of record %s: %w", rec.ID, err)
		}

		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// Prune deletes all but the newest keep records and returns the number removed.
func (s *Store) Prune(keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}

	res, err := s.db.Exec(
		`DELETE FROM conversions WHERE id NOT IN
			(SELECT id FROM conversions ORDER BY started_at DESC LIMIT ?)`, keep)
	if err != nil {
		return 0, fmt.Errorf("pruning history: %w", err)
	}
	return res.RowsAffected()
}
