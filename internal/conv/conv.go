// Package conv provides checked integer conversions for the transition
// table codec and the automaton packages.
//
// Narrowing that would lose information indicates a programming error (an
// automaton far larger than any table the codec can represent), so these
// helpers panic instead of returning an error.
package conv

import "math"

// IntToInt32 converts n to int32.
// Panics if n is outside the int32 range.
//
//go:inline
func IntToInt32(n int) int32 {
	if n < math.MinInt32 || n > math.MaxInt32 {
		panic("integer overflow: int value out of int32 range")
	}
	return int32(n)
}

// Uint32ToInt32 reinterprets the bits of a big-endian cell as a signed value.
//
//go:inline
func Uint32ToInt32(n uint32) int32 {
	return int32(n) //nolint:gosec // G115: two's complement reinterpretation is intended
}

// Int32ToUint32 reinterprets a signed cell as its unsigned bit pattern.
//
//go:inline
func Int32ToUint32(n int32) uint32 {
	return uint32(n) //nolint:gosec // G115: two's complement reinterpretation is intended
}
