// SPDX-License-Identifier: MIT

package shape

import (
	"strconv"
	"strings"
)

// zero is the rendering of an exact zero measurement.
const zero = "0"

// FormatSignificant renders v positionally (never in scientific notation) with
// exactly digits significant digits, keeping trailing zeros.
//
//	FormatSignificant(0.24107336051064607, 10) == "0.2410733605"
//	FormatSignificant(1.5, 10)                 == "1.500000000"
//	FormatSignificant(0, 10)                   == "0"
//
// Values whose integer part has at least digits digits are rendered without a
// fractional part. Non-positive digits are treated as 1.
func FormatSignificant(v float64, digits int) string {
	if v == 0 {
		return zero
	}
	if digits < 1 {
		digits = 1
	}

	// 'e' formatting does the rounding: "d.ddddddddde±XX".
	sci := strconv.FormatFloat(v, 'e', digits-1, 64)
	var sign string
	if sci[0] == '-' {
		sign, sci = "-", sci[1:]
	}
	mant, expText, _ := strings.Cut(sci, "e")
	exp, err := strconv.Atoi(expText)
	if err != nil {
		// NaN and ±Inf have no exponent; keep strconv's spelling.
		return sign + sci
	}
	mant = strings.Replace(mant, ".", "", 1)

	var b strings.Builder
	b.WriteString(sign)
	switch {
	case exp < 0:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -exp-1))
		b.WriteString(mant)
	case exp+1 >= len(mant):
		b.WriteString(mant)
		b.WriteString(strings.Repeat("0", exp+1-len(mant)))
	default:
		b.WriteString(mant[:exp+1])
		b.WriteByte('.')
		b.WriteString(mant[exp+1:])
	}

	return b.String()
}
