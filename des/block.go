package des

import (
	"crypto/cipher"
	"encoding/binary"
	"strconv"
)

type KeySizeError int

func (k KeySizeError) Error() string {
	return "des: invalid key size " + strconv.Itoa(int(k))
}

type blockCipher struct {
	des *DESCipher
}

// NewBlock wraps a DESCipher as a cipher.Block. Key and blocks are read
// big-endian, so results match other DES implementations byte for byte.
func NewBlock(key []byte) (cipher.Block, error) {
	if len(key) != BlockSize {
		return nil, KeySizeError(len(key))
	}

	return &blockCipher{des: NewDESCipher(binary.BigEndian.Uint64(key))}, nil
}

func (c *blockCipher) BlockSize() int { return BlockSize }

func (c *blockCipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("des: input not full block")
	}
	if len(dst) < BlockSize {
		panic("des: output not full block")
	}
	binary.BigEndian.PutUint64(dst, c.des.Encrypt(binary.BigEndian.Uint64(src)))
}

func (c *blockCipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("des: input not full block")
	}
	if len(dst) < BlockSize {
		panic("des: output not full block")
	}
	binary.BigEndian.PutUint64(dst, c.des.Decrypt(binary.BigEndian.Uint64(src)))
}
