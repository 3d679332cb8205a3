// SPDX-License-Identifier: MIT

package store

import (
	"fmt"
	"strings"
)

// Column selects the derived value that analytical queries group by.
// Its value is the stored column name.
type Column string

// Queryable columns.
const (
	Signature   Column = "normalized_shape"
	PolygonArea Column = "polygonal_area"
	Perimeter   Column = "perimeter"
)

// Columns lists the queryable columns in display order.
var Columns = []Column{Signature, PolygonArea, Perimeter}

// columnAliases maps user-facing names (and the stored names) to columns.
var columnAliases = map[string]Column{
	"signature":        Signature,
	"normalized_shape": Signature,
	"polygonarea":      PolygonArea,
	"polygon_area":     PolygonArea,
	"polygonal_area":   PolygonArea,
	"area":             PolygonArea,
	"perimeter":        Perimeter,
}

// ParseColumn resolves a column by name (case-insensitive), e.g. "signature",
// "polygonArea", "perimeter". Unknown names fail with ErrInvalidColumn.
func ParseColumn(name string) (Column, error) {
	if c, ok := columnAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c, nil
	}

	return "", fmt.Errorf("ParseColumn(%q): %w", name, ErrInvalidColumn)
}

// Name returns the user-facing name of c.
func (c Column) Name() string {
	switch c {
	case Signature:
		return "signature"
	case PolygonArea:
		return "polygonArea"
	case Perimeter:
		return "perimeter"
	}

	return string(c)
}

// String implements fmt.Stringer.
func (c Column) String() string { return c.Name() }

// checkColumn guards every query; c is interpolated into SQL only after this passes.
func checkColumn(method string, c Column) error {
	switch c {
	case Signature, PolygonArea, Perimeter:
		return nil
	}

	return fmt.Errorf("%s: column %q: %w", method, string(c), ErrInvalidColumn)
}
