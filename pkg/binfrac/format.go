package binfrac

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

const (
	// mantissaDigits is the number of fraction digits shown in scientific
	// notation.
	mantissaDigits = 50

	// maxPlainWidth is the display width limit for plain decimal strings.
	// Truncation is a plain slice with no ellipsis, matching the output of
	// earlier releases.
	maxPlainWidth = 80
)

// sciThreshold is the magnitude below which values switch to scientific
// notation: nonzero |v| < 1e-10.
var sciThreshold = apd.New(1, -10)

// Format renders a converted decimal value for display.
//
// Nonzero values with magnitude strictly below 1e-10 are rendered in
// normalized scientific notation with a 50-digit mantissa. Everything else
// is rendered as a plain decimal string truncated to 80 characters.
// Formatting never mutates the value, so repeated calls yield identical
// strings.
func Format(d *apd.Decimal) string {
	if d.Sign() != 0 {
		abs := new(apd.Decimal).Set(d)
		abs.Negative = false
		if abs.Cmp(sciThreshold) < 0 {
			return formatScientific(d)
		}
	}
	s := d.Text('f')
	if len(s) > maxPlainWidth {
		s = s[:maxPlainWidth]
	}
	return s
}

// formatScientific renders d as d.dddd...E±xx with exactly mantissaDigits
// fraction digits and a signed exponent of at least two digits.
func formatScientific(d *apd.Decimal) string {
	// Round to one leading digit plus the mantissa, half-even.
	rctx := apd.BaseContext.WithPrecision(mantissaDigits + 1)
	rounded := new(apd.Decimal)
	if _, err := rctx.Round(rounded, d); err != nil {
		// Rounding a finite decimal cannot fail; fall back to the raw form.
		return d.Text('E')
	}

	digits := rounded.Coeff.String()
	exponent := int(rounded.Exponent) + len(digits) - 1

	var b strings.Builder
	if rounded.Negative {
		b.WriteByte('-')
	}
	b.WriteByte(digits[0])
	b.WriteByte('.')
	frac := digits[1:]
	b.WriteString(frac)
	for i := len(frac); i < mantissaDigits; i++ {
		b.WriteByte('0')
	}
	fmt.Fprintf(&b, "E%+03d", exponent)
	return b.String()
}
