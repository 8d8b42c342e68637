package des

import (
	"fmt"
	"strings"
)

// Permute moves bits of an inputBits-wide value into an outputBits-wide value.
// table[i] is the 1-based source position of output bit i, counted from the
// most significant bit of each field. Widths may differ (E grows 32 to 48,
// PC-1 shrinks 64 to 56) and a source bit may be used more than once.
func Permute(input uint64, inputBits, outputBits uint, table []uint8) uint64 {
	var result uint64

	for i, pos := range table {
		sourceBit := inputBits - uint(pos)
		destBit := outputBits - 1 - uint(i)

		result |= ((input >> sourceBit) & 1) << destBit
	}

	return result
}

// FormatBinary renders the low width bits of value MSB first in groups of
// eight, the way the DES worksheets print intermediate values.
func FormatBinary(value uint64, width uint) string {
	var sb strings.Builder
	for i := width; i > 0; i-- {
		fmt.Fprintf(&sb, "%d", (value>>(i-1))&1)
		if (i-1)%8 == 0 && i != 1 {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
