// SPDX-License-Identifier: MIT

package ingest

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/katalvlaran/wordwheel/shape"
	"github.com/katalvlaran/wordwheel/signature"
	"github.com/katalvlaran/wordwheel/store"
)

// ErrNoSource is returned by Run when the source is nil.
var ErrNoSource = errors.New("ingest: no dictionary source")

// Sink receives computed records. *store.Store satisfies it.
type Sink interface {
	Insert(ctx context.Context, rec store.Record) error
}

// flusher is implemented by sinks that buffer (store.Store does).
type flusher interface {
	Flush(ctx context.Context) error
}

// Stats counts what a run did with its input.
type Stats struct {
	Lines   int // lines read
	Stored  int // records handed to the sink
	Skipped int // lines that are not words
	Failed  int // words whose signature could not be computed
}

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the logger; the default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.log = l
		}
	}
}

// WithProgress calls fn with the running Stats every n lines.
// Panics if n < 1 or fn is nil.
func WithProgress(n int, fn func(Stats)) Option {
	if n < 1 {
		panic(fmt.Sprintf("ingest: WithProgress(%d): interval must be >= 1", n))
	}
	if fn == nil {
		panic("ingest: WithProgress: nil callback")
	}
	return func(p *Processor) {
		p.every = n
		p.progress = fn
	}
}

// Processor runs the dictionary pipeline into a Sink.
type Processor struct {
	sink     Sink
	log      *zap.Logger
	every    int
	progress func(Stats)
	sign     func(string) (*big.Int, error)
}

// NewProcessor returns a Processor writing to sink. Panics if sink is nil.
func NewProcessor(sink Sink, opts ...Option) *Processor {
	if sink == nil {
		panic("ingest: NewProcessor: nil sink")
	}
	p := &Processor{sink: sink, log: zap.NewNop(), sign: signature.Of}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Run consumes src until it is exhausted, ctx is done, or the sink fails.
// On success a buffering sink is flushed before returning.
func (p *Processor) Run(ctx context.Context, src Source) (Stats, error) {
	var st Stats
	if src == nil {
		return st, ErrNoSource
	}

	for {
		if err := ctx.Err(); err != nil {
			return st, fmt.Errorf("Run: interrupted after %d lines: %w", st.Lines, err)
		}
		line, ok := src.Next()
		if !ok {
			break
		}
		st.Lines++
		if err := p.process(ctx, line, &st); err != nil {
			return st, err
		}
		if p.progress != nil && st.Lines%p.every == 0 {
			p.progress(st)
		}
	}
	if err := src.Err(); err != nil {
		return st, fmt.Errorf("Run: read after %d lines: %w", st.Lines, err)
	}

	if f, ok := p.sink.(flusher); ok {
		if err := f.Flush(ctx); err != nil {
			return st, fmt.Errorf("Run: %w", err)
		}
	}
	p.log.Info("dictionary processed",
		zap.Int("lines", st.Lines),
		zap.Int("stored", st.Stored),
		zap.Int("skipped", st.Skipped),
		zap.Int("failed", st.Failed))

	return st, nil
}

// process handles one line; only sink errors are returned.
func (p *Processor) process(ctx context.Context, line string, st *Stats) error {
	word, ok := Sanitize(line)
	if !ok {
		st.Skipped++
		return nil
	}

	sig, err := p.sign(word)
	if err != nil {
		st.Failed++
		p.log.Warn("signature failed, word skipped", zap.String("word", word), zap.Error(err))
		return nil
	}
	m := shape.Measure(word)
	rec := store.Record{
		Word:         word,
		Shape:        m.Shape,
		Signature:    sig,
		PolygonShape: m.PolygonShape,
		PolygonArea:  m.PolygonArea,
		Perimeter:    m.Perimeter,
	}
	if err = p.sink.Insert(ctx, rec); err != nil {
		return fmt.Errorf("Run: store %q: %w", word, err)
	}
	st.Stored++

	return nil
}
