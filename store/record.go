// SPDX-License-Identifier: MIT

package store

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/jbeda/geom"
)

// Record is everything stored for one word. Records are immutable once written.
type Record struct {
	Word         string
	Shape        []geom.Coord // rounded, word order
	Signature    *big.Int
	PolygonShape []geom.Coord // full precision, alphabetical
	PolygonArea  string       // 10 significant digits
	Perimeter    string       // 10 significant digits
}

// row is the serialized form of a Record, in column order.
type row struct {
	word, shape, signature, polygon, area, perimeter string
}

func encodeRecord(r Record) (row, error) {
	if r.Signature == nil {
		return row{}, fmt.Errorf("encode %q: nil signature", r.Word)
	}
	shapeText, err := encodeCoords(r.Shape)
	if err != nil {
		return row{}, fmt.Errorf("encode %q shape: %w", r.Word, err)
	}
	polyText, err := encodeCoords(r.PolygonShape)
	if err != nil {
		return row{}, fmt.Errorf("encode %q polygon: %w", r.Word, err)
	}

	return row{
		word:      r.Word,
		shape:     shapeText,
		signature: r.Signature.String(),
		polygon:   polyText,
		area:      r.PolygonArea,
		perimeter: r.Perimeter,
	}, nil
}

// encodeCoords writes points as a JSON list of [x, y] pairs.
func encodeCoords(points []geom.Coord) (string, error) {
	pairs := make([][2]float64, len(points))
	for i, p := range points {
		pairs[i] = [2]float64{p.X, p.Y}
	}
	b, err := json.Marshal(pairs)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

func decodeCoords(text string) ([]geom.Coord, error) {
	var pairs [][2]float64
	if err := json.Unmarshal([]byte(text), &pairs); err != nil {
		return nil, err
	}
	out := make([]geom.Coord, len(pairs))
	for i, p := range pairs {
		out[i] = geom.Coord{X: p[0], Y: p[1]}
	}

	return out, nil
}

func decodeSignature(text string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, fmt.Errorf("signature %q is not a decimal integer", text)
	}

	return n, nil
}
