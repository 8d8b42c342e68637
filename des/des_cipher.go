// Package des implements the DES block cipher over single 64-bit blocks.
//
// Bit positions in every table follow FIPS 46-3: 1-based, bit 1 is the most
// significant bit of the field. Permute is the only place that converts them
// to machine shifts.
package des

import "fmt"

// Key is a 64-bit DES key. Parity bits are carried but never checked.
type Key uint64

func (k Key) String() string {
	return fmt.Sprintf("0x%016X", uint64(k))
}

func (k Key) GoString() string {
	return fmt.Sprintf("Key(0x%016X)", uint64(k))
}

// DESCipher is immutable after NewDESCipher and safe for concurrent use.
type DESCipher struct {
	feistel *FeistelNetwork
	key     Key
}

func NewDESCipher(key uint64) *DESCipher {
	return &DESCipher{
		feistel: newFeistelNetwork(&DESKeySchedule{}, &DESRoundFunction{}, key),
		key:     Key(key),
	}
}

func InitialPermutation(block uint64) uint64 {
	return Permute(block, 64, 64, IP[:])
}

func FinalPermutation(block uint64) uint64 {
	return Permute(block, 64, 64, FP[:])
}

func (des *DESCipher) Key() Key {
	return des.key
}

// Subkeys returns K1..K16; index 0 is the first round.
func (des *DESCipher) Subkeys() [RoundsCount]uint64 {
	return des.feistel.RoundKeys()
}

func (des *DESCipher) Encrypt(block uint64) uint64 {
	return FinalPermutation(des.feistel.EncryptBlock(InitialPermutation(block)))
}

func (des *DESCipher) Decrypt(block uint64) uint64 {
	return FinalPermutation(des.feistel.DecryptBlock(InitialPermutation(block)))
}

func (des *DESCipher) EncryptBlock(plainBlock uint64) uint64 {
	return des.Encrypt(plainBlock)
}

func (des *DESCipher) DecryptBlock(cipherBlock uint64) uint64 {
	return des.Decrypt(cipherBlock)
}
