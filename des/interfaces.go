package des

type IKeySchedule interface {
	GenerateRoundKeys(masterKey uint64) [RoundsCount]uint64
}

type IRoundFunction interface {
	Apply(half uint32, roundKey uint64) uint32
}

type ISymmetricCipher interface {
	EncryptBlock(plainBlock uint64) uint64
	DecryptBlock(cipherBlock uint64) uint64
}
