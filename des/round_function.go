package des

type DESRoundFunction struct{}

func expand(half uint32) uint64 {
	return Permute(uint64(half), 32, 48, ExpansionTable[:])
}

// substitute runs the eight S-boxes over a 48-bit value. Group 0 is the most
// significant six bits; its outer bits pick the row and the inner four the
// column.
func substitute(mixed uint64) uint32 {
	var result uint32

	for box := 0; box < 8; box++ {
		group := uint8(mixed>>(42-6*box)) & 0x3F

		row := (group>>4)&0x2 | group&0x1
		col := (group >> 1) & 0xF

		result = result<<4 | uint32(SBoxes[box][row][col])
	}

	return result
}

func permuteP(value uint32) uint32 {
	return uint32(Permute(uint64(value), 32, 32, PBox[:]))
}

// Apply computes f(R, K) = P(S(E(R) xor K)).
func (rf *DESRoundFunction) Apply(half uint32, roundKey uint64) uint32 {
	mixed := expand(half) ^ (roundKey & mask48)

	return permuteP(substitute(mixed))
}
