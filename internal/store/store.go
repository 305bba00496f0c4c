package store

import (
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/zeebo/blake3"

	"codeberg.org/snonux/stevens/internal/transcriber"
)

// Entry is one stored transcription.
type Entry struct {
	Key           string
	RunID         string
	Language      string
	Alphabet      string
	Text          string
	Transcription string
	Words         []WordEntry
	CreatedAt     time.Time
}

// WordEntry is one word of a stored transcription.
type WordEntry struct {
	Text      string
	Syllables []string
	Stress    int
	Rendered  string
}

// Run is one invocation of the processor.
type Run struct {
	ID         string
	Source     string
	StartedAt  time.Time
	FinishedAt time.Time
	Succeeded  int
	Failed     int
}

// Store is a SQLite-backed transcription store.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One writer at a time keeps SQLite from returning SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, path: path}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id text PRIMARY KEY,
			source text NOT NULL,
			started_at integer NOT NULL,
			finished_at integer NOT NULL DEFAULT 0,
			succeeded integer NOT NULL DEFAULT 0,
			failed integer NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS transcriptions (
			key text PRIMARY KEY,
			run_id text NOT NULL REFERENCES runs (id),
			language text NOT NULL,
			alphabet text NOT NULL,
			text text NOT NULL,
			transcription text NOT NULL,
			created_at integer NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS words (
			key text NOT NULL REFERENCES transcriptions (key) ON DELETE CASCADE,
			position integer NOT NULL,
			word text NOT NULL,
			syllables text NOT NULL,
			stress integer NOT NULL,
			rendered text NOT NULL,
			PRIMARY KEY (key, position)
		)`,
		`CREATE INDEX IF NOT EXISTS ix_transcriptions_run ON transcriptions (run_id)`,
		`CREATE INDEX IF NOT EXISTS ix_transcriptions_created ON transcriptions (created_at)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}
	return nil
}

// Key returns the content key of text transcribed in language with cfg.
// Any setting that changes the output changes the key.
func Key(language string, cfg transcriber.Config, text string) string {
	fields := []string{
		language,
		cfg.Alphabet.String(),
		cfg.SyllabicSeparator,
		cfg.StressMark,
		cfg.WordSeparator,
		cfg.Punctuation.String(),
		text,
	}
	sum := blake3.Sum256([]byte(strings.Join(fields, "\x00")))
	return hex.EncodeToString(sum[:])
}

// NewEntry builds an entry for text from its transcription result.
func NewEntry(text string, tr *transcriber.Transcription) Entry {
	e := Entry{
		Key:           Key(tr.Language, tr.Config, text),
		Language:      tr.Language,
		Alphabet:      tr.Config.Alphabet.String(),
		Text:          text,
		Transcription: tr.String(),
	}
	for _, w := range tr.Words {
		e.Words = append(e.Words, WordEntry{
			Text:      w.Text,
			Syllables: w.Syllables,
			Stress:    w.Stress,
			Rendered:  w.Rendered,
		})
	}
	return e
}

// BeginRun records the start of a run and returns its id.
func (s *Store) BeginRun(source string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(`INSERT INTO runs (id, source, started_at) VALUES (?, ?, ?)`,
		id, source, time.Now().UnixMilli())
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}
	return id, nil
}

// FinishRun records the outcome of a run.
func (s *Store) FinishRun(id string, succeeded, failed int) error {
	res, err := s.db.Exec(`UPDATE runs SET finished_at = ?, succeeded = ?, failed = ? WHERE id = ?`,
		time.Now().UnixMilli(), succeeded, failed, id)
	if err != nil {
		return fmt.Errorf("failed to update run: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("run %s not found", id)
	}
	return nil
}

// Runs returns all runs, oldest first.
func (s *Store) Runs() ([]Run, error) {
	rows, err := s.db.Query(`SELECT id, source, started_at, finished_at, succeeded, failed
		FROM runs ORDER BY started_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r                 Run
			started, finished int64
		)
		if err := rows.Scan(&r.ID, &r.Source, &started, &finished, &r.Succeeded, &r.Failed); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.StartedAt = time.UnixMilli(started)
		if finished > 0 {
			r.FinishedAt = time.UnixMilli(finished)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Save stores e under run runID, replacing any entry with the same key.
func (s *Store) Save(runID string, e Entry) (err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.Exec(`DELETE FROM words WHERE key = ?`, e.Key); err != nil {
		return fmt.Errorf("failed to delete words: %w", err)
	}
	_, err = tx.Exec(`INSERT OR REPLACE INTO transcriptions
		(key, run_id, language, alphabet, text, transcription, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.Key, runID, e.Language, e.Alphabet, e.Text, e.Transcription, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to insert transcription: %w", err)
	}

	for i, w := range e.Words {
		_, err = tx.Exec(`INSERT INTO words (key, position, word, syllables, stress, rendered)
			VALUES (?, ?, ?, ?, ?, ?)`,
			e.Key, i, w.Text, strings.Join(w.Syllables, "-"), w.Stress, w.Rendered)
		if err != nil {
			return fmt.Errorf("failed to insert word %q: %w", w.Text, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Lookup returns the entry stored under key.
func (s *Store) Lookup(key string) (*Entry, bool, error) {
	e := &Entry{Key: key}
	var created int64
	err := s.db.QueryRow(`SELECT run_id, language, alphabet, text, transcription, created_at
		FROM transcriptions WHERE key = ?`, key).
		Scan(&e.RunID, &e.Language, &e.Alphabet, &e.Text, &e.Transcription, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to query transcription: %w", err)
	}
	e.CreatedAt = time.UnixMilli(created)

	if e.Words, err = s.words(key); err != nil {
		return nil, false, err
	}
	return e, true, nil
}

func (s *Store) words(key string) ([]WordEntry, error) {
	rows, err := s.db.Query(`SELECT word, syllables, stress, rendered
		FROM words WHERE key = ? ORDER BY position`, key)
	if err != nil {
		return nil, fmt.Errorf("failed to query words: %w", err)
	}
	defer rows.Close()

	var words []WordEntry
	for rows.Next() {
		var (
			w         WordEntry
			syllables string
		)
		if err := rows.Scan(&w.Text, &syllables, &w.Stress, &w.Rendered); err != nil {
			return nil, fmt.Errorf("failed to scan word: %w", err)
		}
		w.Syllables = strings.Split(syllables, "-")
		words = append(words, w)
	}
	return words, rows.Err()
}

// Entries returns all stored transcriptions without their words, oldest
// first.
func (s *Store) Entries() ([]Entry, error) {
	rows, err := s.db.Query(`SELECT key, run_id, language, alphabet, text, transcription, created_at
		FROM transcriptions ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transcriptions: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e       Entry
			created int64
		)
		if err := rows.Scan(&e.Key, &e.RunID, &e.Language, &e.Alphabet, &e.Text, &e.Transcription, &created); err != nil {
			return nil, fmt.Errorf("failed to scan transcription: %w", err)
		}
		e.CreatedAt = time.UnixMilli(created)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
