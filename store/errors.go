// SPDX-License-Identifier: MIT
// Package: wordwheel/store
//
// File: errors.go
// Role: sentinel errors for the store package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Call sites wrap them with the method and the offending word/column:
//     fmt.Errorf("%s(%q): %w", method, word, ErrNotFound).

package store

import "errors"

// ErrNotFound indicates that the requested word, or any row for an aggregate
// query, is absent from the store.
var ErrNotFound = errors.New("store: not found")

// ErrInvalidColumn indicates a query column outside {signature, polygonArea, perimeter}.
var ErrInvalidColumn = errors.New("store: invalid column")

// ErrSchema indicates that an opened database lacks the word_shapes table or one of its columns.
var ErrSchema = errors.New("store: schema validation failed")

// ErrClosed indicates use of a Store after Close.
var ErrClosed = errors.New("store: closed")
