// SPDX-License-Identifier: MIT
//
// Package store persists per-word shape records in SQLite and answers
// grouping queries over a derived column.
//
// Write path:
//
//	Insert buffers records and commits them in batches of BatchSize inside a
//	single transaction (INSERT OR IGNORE: the first writer of a word wins).
//	Flush commits the pending batch explicitly; Close flushes and closes the
//	database, so `defer st.Close()` covers success, error and signal paths.
//
// Read path:
//
//	Queries take the read lock; Insert/Flush take the write lock. A reader
//	therefore never observes a half-committed batch. Buffered records become
//	visible after the flush that commits them.
//
// Concurrency: single writer (enforced by the lock), many concurrent readers.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

const (
	driverName = "sqlite"
	tableName  = "word_shapes"

	// DefaultBatchSize is the number of buffered records that triggers a flush.
	DefaultBatchSize = 1000

	memoryPath = ":memory:"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS word_shapes (
	word TEXT PRIMARY KEY,
	shape TEXT,
	normalized_shape TEXT,
	polygonal_shape TEXT,
	polygonal_area REAL,
	perimeter REAL
)`

const insertSQL = `INSERT OR IGNORE INTO word_shapes
	(word, shape, normalized_shape, polygonal_shape, polygonal_area, perimeter)
	VALUES (?, ?, ?, ?, ?, ?)`

// requiredColumns are checked by Validate.
var requiredColumns = []string{"word", "shape", "normalized_shape", "polygonal_shape", "polygonal_area", "perimeter"}

// Option configures a Store at Open.
type Option func(*Store)

// WithBatchSize sets how many records are buffered before an automatic flush.
// Panics if n < 1.
func WithBatchSize(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("store: WithBatchSize(%d): batch size must be >= 1", n))
	}
	return func(s *Store) { s.batchSize = n }
}

// WithLogger attaches a zap logger; the default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// Store is the SQLite-backed word store.
type Store struct {
	mu        sync.RWMutex
	db        *sql.DB
	path      string
	batchSize int
	batch     []row
	closed    bool
	log       *zap.Logger
}

// Open opens (creating if needed) the database at path and ensures the schema.
// Use ":memory:" for a private in-memory database.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	s := &Store{path: path, batchSize: DefaultBatchSize, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	if path != memoryPath {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("Open(%q): create directory: %w", path, err)
			}
		}
	}

	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("Open(%q): %w", path, err)
	}
	if path == memoryPath {
		// Every connection to ":memory:" is a separate database.
		db.SetMaxOpenConns(1)
	}
	if _, err = db.ExecContext(ctx, schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("Open(%q): create schema: %w", path, err)
	}
	s.db = db
	s.batch = make([]row, 0, s.batchSize)
	s.log.Debug("store opened", zap.String("path", path), zap.Int("batch_size", s.batchSize))

	return s, nil
}

// Path returns the database path given to Open.
func (s *Store) Path() string { return s.path }

// BatchSize returns the configured flush threshold.
func (s *Store) BatchSize() int { return s.batchSize }

// Pending returns the number of buffered, not yet committed records.
func (s *Store) Pending() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.batch)
}

// Insert buffers rec and flushes when the batch is full. Inserting a word that
// is already stored (or already buffered) is a no-op at commit time.
func (s *Store) Insert(ctx context.Context, rec Record) error {
	r, err := encodeRecord(rec)
	if err != nil {
		return fmt.Errorf("Insert: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf("Insert(%q): %w", rec.Word, ErrClosed)
	}
	s.batch = append(s.batch, r)
	if len(s.batch) >= s.batchSize {
		return s.flushLocked(ctx)
	}

	return nil
}

// Flush commits all buffered records in one transaction.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf("Flush: %w", ErrClosed)
	}

	return s.flushLocked(ctx)
}

// flushLocked commits the batch; on failure the batch is kept for a retry.
func (s *Store) flushLocked(ctx context.Context) (err error) {
	if len(s.batch) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Flush: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, insertSQL)
	if err != nil {
		return fmt.Errorf("Flush: prepare: %w", err)
	}
	defer stmt.Close()

	for _, r := range s.batch {
		if _, err = stmt.ExecContext(ctx, r.word, r.shape, r.signature, r.polygon, r.area, r.perimeter); err != nil {
			return fmt.Errorf("Flush: insert %q: %w", r.word, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("Flush: commit: %w", err)
	}
	s.log.Debug("batch committed", zap.Int("records", len(s.batch)))
	s.batch = s.batch[:0]

	return nil
}

// Close flushes pending records and closes the database. Safe to call twice.
// The flush runs with a background context so a cancelled caller context
// cannot drop buffered records.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	flushErr := s.flushLocked(context.Background())
	closeErr := s.db.Close()
	s.log.Debug("store closed", zap.String("path", s.path), zap.Error(flushErr))

	return errors.Join(flushErr, closeErr)
}

// Validate checks that the word_shapes table and all required columns exist.
func (s *Store) Validate(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return fmt.Errorf("Validate: %w", ErrClosed)
	}

	var name string
	err := s.db.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, tableName).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("Validate: table %q does not exist: %w", tableName, ErrSchema)
	}
	if err != nil {
		return fmt.Errorf("Validate: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `PRAGMA table_info(word_shapes)`)
	if err != nil {
		return fmt.Errorf("Validate: %w", err)
	}
	defer rows.Close()
	present := make(map[string]bool, len(requiredColumns))
	for rows.Next() {
		var (
			cid, notNull, pk int
			col, typ         string
			dflt             sql.NullString
		)
		if err = rows.Scan(&cid, &col, &typ, &notNull, &dflt, &pk); err != nil {
			return fmt.Errorf("Validate: %w", err)
		}
		present[col] = true
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("Validate: %w", err)
	}
	for _, col := range requiredColumns {
		if !present[col] {
			return fmt.Errorf("Validate: column %q does not exist in %q: %w", col, tableName, ErrSchema)
		}
	}

	return nil
}
