package binfrac

import "strings"

// log10of2 approximates log10(2) for converting a binary exponent into a
// decimal one. The short literal is kept so displayed estimates match earlier
// releases exactly.
const log10of2 = 0.301

// ZoomDepth estimates the zoom depth encoded by a viewport width's binary
// fraction string.
//
// The estimate counts the leading zero bits immediately after the binary
// point: a width of 2^-n corresponds to roughly 10^-(n*log10(2)), so the
// returned decimalExp is floor(n * 0.301) and binaryExp is n itself.
//
// The estimate is advisory only and is reported best-effort: if the string
// has no binary point there is nothing to count, and ok is false rather than
// zero. Callers should omit the zoom depth display entirely when ok is
// false.
func ZoomDepth(binary string) (decimalExp, binaryExp int, ok bool) {
	_, frac, found := strings.Cut(binary, ".")
	if !found {
		return 0, 0, false
	}
	n := 0
	for n < len(frac) && frac[n] == '0' {
		n++
	}
	return int(float64(n) * log10of2), n, true
}
