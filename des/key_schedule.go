package des

type DESKeySchedule struct{}

// PC1 reduces a 64-bit key to the 56-bit C0:D0 value, dropping parity bits.
func PC1(key uint64) uint64 {
	return Permute(key, 64, 56, PC1Table[:])
}

// PC2 compresses a 56-bit C:D value into a 48-bit round key. Bits above 56
// are ignored.
func PC2(cd uint64) uint64 {
	return Permute(cd&mask56, 56, 48, PC2Table[:])
}

func rotateLeft28(value uint32, shifts uint8) uint32 {
	value &= mask28
	if shifts == 0 {
		return value
	}

	return ((value << shifts) | (value >> (28 - shifts))) & mask28
}

func splitHalves(cd uint64) (uint32, uint32) {
	return uint32((cd >> 28) & mask28), uint32(cd & mask28)
}

func joinHalves(c, d uint32) uint64 {
	return uint64(c&mask28)<<28 | uint64(d&mask28)
}

// GenerateRoundKeys derives K1..K16. Weak and semi-weak keys go through the
// same steps as any other key.
func (dks *DESKeySchedule) GenerateRoundKeys(masterKey uint64) [RoundsCount]uint64 {
	var roundKeys [RoundsCount]uint64

	c, d := splitHalves(PC1(masterKey))

	for round := 0; round < RoundsCount; round++ {
		c = rotateLeft28(c, RoundRotations[round])
		d = rotateLeft28(d, RoundRotations[round])

		roundKeys[round] = PC2(joinHalves(c, d))
	}

	return roundKeys
}
