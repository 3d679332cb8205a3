// SPDX-License-Identifier: MIT
//
// Package ingest turns a dictionary (one word per line) into stored records.
//
// Pipeline per line:
//
//	Sanitize -> shape.Measure -> signature.Of -> Sink.Insert
//
// Lines that do not sanitize to a word are skipped silently and counted.
// A word whose signature cannot be computed is logged, counted and skipped;
// it never aborts the run. A Sink error or a source error aborts the run.
//
// Run is a single sequential pass. Cancellation is checked between words;
// whatever the sink already buffered is the sink's to flush (store.Store
// flushes on Close).
package ingest
