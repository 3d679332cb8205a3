// SPDX-License-Identifier: MIT
//
// File: queries.go
// Role: Read-only lookups and grouping analytics over one Column.
// Determinism:
//   - Word lists are returned in storage order (rowid asc).
//   - MostCommon breaks ties by the group whose first word was stored first.
//   - RandomShared is the only non-deterministic query.
// Concurrency:
//   - Every method holds the read lock for its whole duration.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/katalvlaran/wordwheel/shape"
)

// Get returns the full record of word.
func (s *Store) Get(ctx context.Context, word string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return Record{}, fmt.Errorf("Get(%q): %w", word, ErrClosed)
	}

	var shapeText, sigText, polyText string
	var area, perimeter any
	err := s.db.QueryRowContext(ctx,
		`SELECT shape, normalized_shape, polygonal_shape, polygonal_area, perimeter
		 FROM word_shapes WHERE word = ?`, word).Scan(&shapeText, &sigText, &polyText, &area, &perimeter)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("Get(%q): %w", word, ErrNotFound)
	}
	if err != nil {
		return Record{}, fmt.Errorf("Get(%q): %w", word, err)
	}

	rec := Record{Word: word, PolygonArea: renderValue(area), Perimeter: renderValue(perimeter)}
	if rec.Shape, err = decodeCoords(shapeText); err != nil {
		return Record{}, fmt.Errorf("Get(%q): shape: %w", word, err)
	}
	if rec.PolygonShape, err = decodeCoords(polyText); err != nil {
		return Record{}, fmt.Errorf("Get(%q): polygonal_shape: %w", word, err)
	}
	if rec.Signature, err = decodeSignature(sigText); err != nil {
		return Record{}, fmt.Errorf("Get(%q): %w", word, err)
	}

	return rec, nil
}

// Count returns the number of committed records.
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return 0, fmt.Errorf("Count: %w", ErrClosed)
	}

	return s.countLocked(ctx)
}

func (s *Store) countLocked(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM word_shapes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}

	return n, nil
}

// Lookup returns the stored value of col for word, rendered as text.
// Numeric columns are rendered with shape.FormatSignificant(v, shape.Digits).
func (s *Store) Lookup(ctx context.Context, word string, col Column) (string, error) {
	const method = "Lookup"
	if err := checkColumn(method, col); err != nil {
		return "", err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return "", fmt.Errorf("%s(%q): %w", method, word, ErrClosed)
	}

	var raw any
	err := s.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM word_shapes WHERE word = ?`, string(col)), word).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%s(%q, %s): no shape data: %w", method, word, col.Name(), ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("%s(%q, %s): %w", method, word, col.Name(), err)
	}

	return renderValue(raw), nil
}

// Peers returns every word (word included) whose col value equals word's.
func (s *Store) Peers(ctx context.Context, word string, col Column) ([]string, error) {
	const method = "Peers"
	if err := checkColumn(method, col); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, fmt.Errorf("%s(%q): %w", method, word, ErrClosed)
	}

	return s.peersLocked(ctx, method, word, col)
}

func (s *Store) peersLocked(ctx context.Context, method, word string, col Column) ([]string, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM word_shapes WHERE word = ?`, word).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s(%q, %s): %w", method, word, col.Name(), ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s(%q, %s): %w", method, word, col.Name(), err)
	}

	q := fmt.Sprintf(`SELECT word FROM word_shapes
		WHERE %[1]s = (SELECT %[1]s FROM word_shapes WHERE word = ?)
		ORDER BY rowid`, string(col))

	return s.words(ctx, method, q, word)
}

// MostCommon returns all words of the largest group for col.
// Ties go to the group whose earliest word was stored first.
func (s *Store) MostCommon(ctx context.Context, col Column) ([]string, error) {
	const method = "MostCommon"
	if err := checkColumn(method, col); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, fmt.Errorf("%s: %w", method, ErrClosed)
	}

	q := fmt.Sprintf(`SELECT word FROM word_shapes
		WHERE %[1]s = (
			SELECT %[1]s FROM word_shapes
			GROUP BY %[1]s
			ORDER BY COUNT(*) DESC, MIN(rowid) ASC
			LIMIT 1)
		ORDER BY rowid`, string(col))
	out, err := s.words(ctx, method, q)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s(%s): store is empty: %w", method, col.Name(), ErrNotFound)
	}

	return out, nil
}

// PercentageUnique returns 100 × (words alone in their group) / (all words).
// An empty store yields ErrNotFound.
func (s *Store) PercentageUnique(ctx context.Context, col Column) (float64, error) {
	const method = "PercentageUnique"
	if err := checkColumn(method, col); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return 0, fmt.Errorf("%s: %w", method, ErrClosed)
	}

	total, err := s.countLocked(ctx)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, fmt.Errorf("%s(%s): store is empty: %w", method, col.Name(), ErrNotFound)
	}

	var unique int
	q := fmt.Sprintf(`SELECT COUNT(*) FROM (
		SELECT %[1]s FROM word_shapes GROUP BY %[1]s HAVING COUNT(*) = 1)`, string(col))
	if err = s.db.QueryRowContext(ctx, q).Scan(&unique); err != nil {
		return 0, fmt.Errorf("%s(%s): %w", method, col.Name(), err)
	}

	return float64(unique) / float64(total) * 100, nil
}

// TotalDistinct returns the number of distinct col values.
func (s *Store) TotalDistinct(ctx context.Context, col Column) (int, error) {
	const method = "TotalDistinct"
	if err := checkColumn(method, col); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return 0, fmt.Errorf("%s: %w", method, ErrClosed)
	}

	var n int
	q := fmt.Sprintf(`SELECT COUNT(DISTINCT %s) FROM word_shapes`, string(col))
	if err := s.db.QueryRowContext(ctx, q).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s(%s): %w", method, col.Name(), err)
	}

	return n, nil
}

// LongestShared returns the peers of the longest word that shares its col
// value with at least one other word (group cardinality > 1). Among equally
// long words the first stored wins.
func (s *Store) LongestShared(ctx context.Context, col Column) ([]string, error) {
	const method = "LongestShared"
	if err := checkColumn(method, col); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, fmt.Errorf("%s: %w", method, ErrClosed)
	}

	q := fmt.Sprintf(`SELECT word FROM word_shapes
		WHERE %[1]s IN (SELECT %[1]s FROM word_shapes GROUP BY %[1]s HAVING COUNT(*) > 1)
		ORDER BY LENGTH(word) DESC, rowid ASC
		LIMIT 1`, string(col))
	longest, err := s.words(ctx, method, q)
	if err != nil {
		return nil, err
	}
	if len(longest) == 0 {
		return nil, fmt.Errorf("%s(%s): no shared groups: %w", method, col.Name(), ErrNotFound)
	}

	return s.peersLocked(ctx, method, longest[0], col)
}

// RandomShared returns one word drawn uniformly from groups with more than two
// members. The threshold is deliberately stricter than LongestShared's.
func (s *Store) RandomShared(ctx context.Context, col Column) (string, error) {
	const method = "RandomShared"
	if err := checkColumn(method, col); err != nil {
		return "", err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return "", fmt.Errorf("%s: %w", method, ErrClosed)
	}

	q := fmt.Sprintf(`SELECT word FROM word_shapes
		WHERE %[1]s IN (SELECT %[1]s FROM word_shapes GROUP BY %[1]s HAVING COUNT(*) > 2)
		ORDER BY RANDOM()
		LIMIT 1`, string(col))
	out, err := s.words(ctx, method, q)
	if err != nil {
		return "", err
	}
	if len(out) == 0 {
		return "", fmt.Errorf("%s(%s): no group with more than two words: %w", method, col.Name(), ErrNotFound)
	}

	return out[0], nil
}

// words runs q and collects the first column of every row.
func (s *Store) words(ctx context.Context, method, q string, args ...any) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var w string
		if err = rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		out = append(out, w)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return out, nil
}

// renderValue turns a scanned column value into its canonical text.
func renderValue(raw any) string {
	switch v := raw.(type) {
	case float64:
		return shape.FormatSignificant(v, shape.Digits)
	case int64:
		return shape.FormatSignificant(float64(v), shape.Digits)
	case []byte:
		return string(v)
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
