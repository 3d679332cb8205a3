// SPDX-License-Identifier: MIT

package ingest_test

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/wordwheel/ingest"
	"github.com/katalvlaran/wordwheel/signature"
	"github.com/katalvlaran/wordwheel/store"
)

// memSink records inserts in order.
type memSink struct {
	recs    []store.Record
	flushed int
	failOn  string
}

func (m *memSink) Insert(_ context.Context, rec store.Record) error {
	if rec.Word == m.failOn {
		return errors.New("disk full")
	}
	m.recs = append(m.recs, rec)
	return nil
}

func (m *memSink) Flush(context.Context) error {
	m.flushed++
	return nil
}

func (m *memSink) words() []string {
	out := make([]string, len(m.recs))
	for i, r := range m.recs {
		out[i] = r.Word
	}
	return out
}

func TestSanitize(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"abc", "abc", true},
		{"  Wheel\t", "wheel", true},
		{"HELLO\r", "hello", true},
		{"", "", false},
		{"   ", "", false},
		{"don't", "", false},
		{"café", "", false},
		{"two words", "", false},
		{"abc1", "", false},
	}
	for _, tc := range cases {
		got, ok := ingest.Sanitize(tc.in)
		assert.Equal(t, tc.ok, ok, "Sanitize(%q)", tc.in)
		assert.Equal(t, tc.want, got, "Sanitize(%q)", tc.in)
	}
}

func TestReaderSource(t *testing.T) {
	src := ingest.NewReaderSource(strings.NewReader("abc\r\nbca\n\nxyz"))
	var lines []string
	for {
		l, ok := src.Next()
		if !ok {
			break
		}
		lines = append(lines, l)
	}
	require.NoError(t, src.Err())
	assert.Equal(t, []string{"abc", "bca", "", "xyz"}, lines)
}

func TestRun_CountsAndOrder(t *testing.T) {
	sink := &memSink{}
	p := ingest.NewProcessor(sink, ingest.WithLogger(zaptest.NewLogger(t)))

	st, err := p.Run(context.Background(), ingest.NewReaderSource(strings.NewReader("Abc\nit's\n\nBCA\ncba\n")))
	require.NoError(t, err)
	assert.Equal(t, ingest.Stats{Lines: 5, Stored: 3, Skipped: 2}, st)
	assert.Equal(t, []string{"abc", "bca", "cba"}, sink.words())
	assert.Equal(t, 1, sink.flushed)

	want, err := signature.Of("abc")
	require.NoError(t, err)
	for _, r := range sink.recs {
		assert.Zero(t, want.Cmp(r.Signature), r.Word)
		assert.Len(t, r.Shape, 3)
	}
}

func TestRun_NilSource(t *testing.T) {
	_, err := ingest.NewProcessor(&memSink{}).Run(context.Background(), nil)
	require.ErrorIs(t, err, ingest.ErrNoSource)
}

func TestRun_SinkErrorAborts(t *testing.T) {
	sink := &memSink{failOn: "bca"}
	st, err := ingest.NewProcessor(sink).Run(context.Background(),
		ingest.NewReaderSource(strings.NewReader("abc\nbca\ncba\n")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, 1, st.Stored)
	assert.Equal(t, []string{"abc"}, sink.words())
	assert.Zero(t, sink.flushed)
}

type failingReader struct{ sent bool }

func (f *failingReader) Read(p []byte) (int, error) {
	if !f.sent {
		f.sent = true
		return copy(p, "abc\n"), nil
	}
	return 0, io.ErrUnexpectedEOF
}

func TestRun_SourceError(t *testing.T) {
	sink := &memSink{}
	st, err := ingest.NewProcessor(sink).Run(context.Background(), ingest.NewReaderSource(&failingReader{}))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, 1, st.Stored)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sink := &memSink{}
	p := ingest.NewProcessor(sink, ingest.WithProgress(2, func(ingest.Stats) { cancel() }))

	st, err := p.Run(ctx, ingest.NewReaderSource(strings.NewReader("a\nb\nc\nd\n")))
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, st.Lines)
	assert.Equal(t, []string{"a", "b"}, sink.words())
}

func TestRun_Progress(t *testing.T) {
	var seen []int
	p := ingest.NewProcessor(&memSink{}, ingest.WithProgress(2, func(s ingest.Stats) {
		seen = append(seen, s.Lines)
	}))
	_, err := p.Run(context.Background(), ingest.NewReaderSource(strings.NewReader("a\nb\nc\nd\ne\n")))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, seen)
}

func TestOptionsPanic(t *testing.T) {
	assert.Panics(t, func() { ingest.WithProgress(0, func(ingest.Stats) {}) })
	assert.Panics(t, func() { ingest.WithProgress(1, nil) })
	assert.Panics(t, func() { ingest.NewProcessor(nil) })
}

// TestRun_IntoStore ingests into a real store and checks peer grouping.
func TestRun_IntoStore(t *testing.T) {
	ctx := context.Background()
	st, err := store.Open(ctx, filepath.Join(t.TempDir(), "words.db"), store.WithBatchSize(2))
	require.NoError(t, err)
	defer func() { require.NoError(t, st.Close()) }()

	stats, err := ingest.NewProcessor(st).Run(ctx,
		ingest.NewReaderSource(strings.NewReader("abc\nbca\ncba\nxyz\nabca\nabc\n")))
	require.NoError(t, err)
	assert.Equal(t, 6, stats.Stored)
	assert.Zero(t, st.Pending())

	n, err := st.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	peers, err := st.Peers(ctx, "abc", store.Signature)
	require.NoError(t, err)
	assert.Equal(t, []string{"abc", "bca", "cba", "xyz"}, peers)

	peers, err = st.Peers(ctx, "abca", store.Signature)
	require.NoError(t, err)
	assert.Equal(t, []string{"abca"}, peers)
}
