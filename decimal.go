package urlenc

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

func formatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

func formatUint(u uint64) string {
	return strconv.FormatUint(u, 10)
}

// formatBig formats integers wider than 64 bits, such as 128-bit values.
func formatBig(b *big.Int) string {
	return b.Text(10)
}

// formatFloat returns the shortest decimal text that parses back to f at the
// given bit size. Plain notation is used unless the magnitude is very small
// or very large, in which case the exponent is written without a plus sign
// or leading zeros ("1e21", "1e-7").
func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		s := strconv.FormatFloat(f, 'e', -1, bits)
		mant, exp, _ := strings.Cut(s, "e")
		sign := ""
		if exp[0] == '-' {
			sign = "-"
		}
		return mant + "e" + sign + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(f, 'f', -1, bits)
}
