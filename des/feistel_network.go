package des

import (
	"fmt"
)

// FeistelNetwork runs sixteen rounds over a 64-bit block with round keys that
// are generated once, when the network is built.
type FeistelNetwork struct {
	roundFunction IRoundFunction

	roundKeys [RoundsCount]uint64
}

func NewFeistelNetwork(
	keyScheduleImpl IKeySchedule,
	roundFunctionImpl IRoundFunction,
	key uint64,
) (*FeistelNetwork, error) {

	if keyScheduleImpl == nil {
		return nil, fmt.Errorf("key schedule implementation cannot be nil")
	}
	if roundFunctionImpl == nil {
		return nil, fmt.Errorf("round function implementation cannot be nil")
	}

	return newFeistelNetwork(keyScheduleImpl, roundFunctionImpl, key), nil
}

func newFeistelNetwork(keySchedule IKeySchedule, roundFunction IRoundFunction, key uint64) *FeistelNetwork {
	return &FeistelNetwork{
		roundFunction: roundFunction,
		roundKeys:     keySchedule.GenerateRoundKeys(key),
	}
}

func (fn *FeistelNetwork) RoundKeys() [RoundsCount]uint64 {
	return fn.roundKeys
}

func splitBlock(block uint64) (uint32, uint32) {
	return uint32(block >> 32), uint32(block)
}

func combineBlocks(left, right uint32) uint64 {
	return uint64(left)<<32 | uint64(right)
}

func (fn *FeistelNetwork) round(left, right uint32, roundKey uint64) (uint32, uint32) {
	return right, left ^ fn.roundFunction.Apply(right, roundKey)
}

// EncryptBlock applies K1..K16 and returns R16:L16.
func (fn *FeistelNetwork) EncryptBlock(plainBlock uint64) uint64 {
	left, right := splitBlock(plainBlock)

	for round := 0; round < RoundsCount; round++ {
		left, right = fn.round(left, right, fn.roundKeys[round])
	}

	return combineBlocks(right, left)
}

// DecryptBlock is EncryptBlock with the round keys taken from the end.
func (fn *FeistelNetwork) DecryptBlock(cipherBlock uint64) uint64 {
	left, right := splitBlock(cipherBlock)

	for round := RoundsCount - 1; round >= 0; round-- {
		left, right = fn.round(left, right, fn.roundKeys[round])
	}

	return combineBlocks(right, left)
}
