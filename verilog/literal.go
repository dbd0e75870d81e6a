package verilog

import (
	"strconv"
	"strings"
)

// FormatLiteral renders a width-w literal of value v as `w'hH`, H being the
// lowercase hex form of v with no leading zeros and no width mask — the
// caller is responsible for passing a value that already fits in w bits.
func FormatLiteral(width int, value uint64) string {
	return strconv.Itoa(width) + "'h" + strconv.FormatUint(value, 16)
}

// FormatDontCare renders a width-w don't-care as `w'b` followed by w
// copies of 'x'.
func FormatDontCare(width int) string {
	return strconv.Itoa(width) + "'b" + strings.Repeat("x", width)
}

// FormatSelectConst constant-folds a SelectBits applied to a Const of the
// given value: the slice [hi:lo] of value, rendered as a `width'hH`
// literal where width = hi-lo+1 and H = (value >> lo) & ((1<<width)-1).
func FormatSelectConst(value uint64, hi, lo int) string {
	width := hi - lo + 1
	mask := uint64(1)<<uint(width) - 1
	sliced := (value >> uint(lo)) & mask
	return FormatLiteral(width, sliced)
}
