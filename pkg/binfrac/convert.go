// Package binfrac converts sign-magnitude binary fraction strings into exact
// decimal values.
//
// Viewport coordinates are stored as binary fraction strings (for example
// "-110.0101") whose fractional part can run to thousands of bits at extreme
// zoom depths. Converting through native floating point would compound
// rounding error across those bits, so this package computes the decimal
// value with arbitrary-precision decimal arithmetic at a fixed working
// precision of 1000 significant digits.
//
// Conversion and display are separate concerns: Convert produces the exact
// value, Format renders it in a bounded human-readable form, and ZoomDepth
// derives an advisory zoom estimate from the raw binary string. Only Format
// ever truncates.
package binfrac

import (
	"strings"

	"github.com/cockroachdb/apd/v3"

	fwerrors "github.com/fractalwonder/fwdecode/pkg/errors"
)

// Precision is the working precision, in significant decimal digits, for all
// conversion arithmetic. It bounds the depth at which fractional bits still
// contribute distinguishable decimal digits.
const Precision = 1000

// decCtx is the shared arithmetic context. It is never mutated after
// initialization, so concurrent conversions are safe.
var decCtx = apd.BaseContext.WithPrecision(Precision)

// Convert converts a binary fraction string to its exact decimal value.
//
// The accepted grammar is an optional leading "-", an integer part of binary
// digits (empty means zero), and an optional "." followed by fractional
// binary digits. The empty string converts to zero. A leading "+" is not
// accepted.
//
// Each fractional bit at 1-indexed position i contributes 2^(-i), summed in
// decimal arithmetic at Precision significant digits. Any character outside
// [01.-] yields an INVALID_INPUT error.
func Convert(s string) (*apd.Decimal, error) {
	result := new(apd.Decimal)
	if s == "" {
		return result, nil
	}

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	if intPart != "" {
		if _, ok := result.Coeff.SetString(intPart, 2); !ok {
			return nil, fwerrors.New(fwerrors.ErrCodeInvalidInput, "invalid binary integer part %q", intPart)
		}
	}

	if fracPart != "" {
		frac, err := convertFraction(fracPart)
		if err != nil {
			return nil, err
		}
		if _, err := decCtx.Add(result, result, frac); err != nil {
			return nil, fwerrors.Wrap(fwerrors.ErrCodeInternal, err, "decimal addition failed")
		}
	}

	if negative {
		result.Neg(result)
	}
	return result, nil
}

// convertFraction sums 2^(-i) for every set bit in the fractional part.
// The running power of two is halved once per position rather than
// recomputed, so the whole pass is linear in the string length.
func convertFraction(fracPart string) (*apd.Decimal, error) {
	var (
		frac = new(apd.Decimal)
		bit  = apd.New(1, 0)
		two  = apd.New(2, 0)
	)
	for i := 0; i < len(fracPart); i++ {
		if _, err := decCtx.Quo(bit, bit, two); err != nil {
			return nil, fwerrors.Wrap(fwerrors.ErrCodeInternal, err, "decimal division failed")
		}
		switch fracPart[i] {
		case '1':
			if _, err := decCtx.Add(frac, frac, bit); err != nil {
				return nil, fwerrors.Wrap(fwerrors.ErrCodeInternal, err, "decimal addition failed")
			}
		case '0':
			// contributes nothing
		default:
			return nil, fwerrors.New(fwerrors.ErrCodeInvalidInput, "invalid binary fraction digit %q", fracPart[i])
		}
	}
	return frac, nil
}
