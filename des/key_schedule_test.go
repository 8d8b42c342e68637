package des

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var expectedSubkeys = [RoundsCount]uint64{
	0x1B02EFFC7072,
	0x79AED9DBC9E5,
	0x55FC8A42CF99,
	0x72ADD6DB351D,
	0x7CEC07EB53A8,
	0x63A53E507B2F,
	0xEC84B7F618BC,
	0xF78A3AC13BFB,
	0xE0DBEBEDE781,
	0xB1F347BA464F,
	0x215FD3DED386,
	0x7571F59467E9,
	0x97C5D1FABA41,
	0x5F43B7F2E73A,
	0xBF918D3D3F0A,
	0xCB3D8B0E17F5,
}

func TestPC1(t *testing.T) {
	result := PC1(testKey)

	assert.Equal(t, uint64(0x00F0CCAAF556678F), result)
	assert.Zero(t, result>>56, "PC-1 result must fit in 56 bits")
}

func TestPC1IgnoresParityBits(t *testing.T) {
	assert.Equal(t, PC1(testKey), PC1(testKey^0x0101010101010101))
	assert.Zero(t, PC1(0x0101010101010101))
}

func TestPC2(t *testing.T) {
	tests := []struct {
		name  string
		cd    uint64
		round uint64
	}{
		{"K1", 0x00E19955FAACCF1E, 0x1B02EFFC7072},
		{"K2", 0x00C332ABF5599E3D, 0x79AED9DBC9E5},
		{"K3", 0x000CCAAFF56678F5, 0x55FC8A42CF99},
		{"K4", 0x00332ABFC599E3D5, 0x72ADD6DB351D},
		{"K5", 0x00CCAAFF06678F55, 0x7CEC07EB53A8},
		{"K6", 0x0032ABFC399E3D55, 0x63A53E507B2F},
		{"K7", 0x00CAAFF0C678F556, 0xEC84B7F618BC},
		{"K8", 0x002ABFC339E3D559, 0xF78A3AC13BFB},
		{"K9", 0x00557F8663C7AAB3, 0xE0DBEBEDE781},
		{"K10", 0x0055FE199F1EAACC, 0xB1F347BA464F},
		{"K11", 0x0057F8665C7AAB33, 0x215FD3DED386},
		{"K12", 0x005FE19951EAACCF, 0x7571F59467E9},
		{"K13", 0x007F866557AAB33C, 0x97C5D1FABA41},
		{"K14", 0x00FE19955EAACCF1, 0x5F43B7F2E73A},
		{"K15", 0x00F866557AAB33C7, 0xBF918D3D3F0A},
		{"K16", 0x00F0CCAAF556678F, 0xCB3D8B0E17F5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PC2(tt.cd)
			assert.Equal(t, tt.round, result)
			assert.Zero(t, result>>48)
		})
	}
}

func TestPC2MasksAbove56Bits(t *testing.T) {
	assert.Equal(t, PC2(0x00F0CCAAF556678F), PC2(0xFFF0CCAAF556678F))
}

func TestSplitAndJoinHalves(t *testing.T) {
	c, d := splitHalves(0x00F0CCAAF556678F)

	assert.Equal(t, uint32(0x0F0CCAAF), c)
	assert.Equal(t, uint32(0x0556678F), d)
	assert.Equal(t, uint64(0x00F0CCAAF556678F), joinHalves(c, d))
}

func TestRotateLeft28(t *testing.T) {
	tests := []struct {
		name   string
		value  uint32
		shifts uint8
		want   uint32
	}{
		{"identity", 0x0F0CCAAF, 0, 0x0F0CCAAF},
		{"one", 0x0F0CCAAF, 1, 0x0E19955F},
		{"two", 0x0E19955F, 2, 0x0866557F},
		{"wraps_msb", 0x08000000, 1, 0x00000001},
		{"wraps_two_msbs", 0x0C000000, 2, 0x00000003},
		{"drops_high_nibble", 0xF0000001, 1, 0x00000002},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rotateLeft28(tt.value, tt.shifts))
		})
	}
}

func TestRoundRotationsReturnHalvesToStart(t *testing.T) {
	var total int
	for _, r := range RoundRotations {
		require.Contains(t, []uint8{1, 2}, r)
		total += int(r)
	}
	require.Equal(t, 28, total)

	c0, d0 := splitHalves(PC1(testKey))
	c, d := c0, d0
	for _, r := range RoundRotations {
		c = rotateLeft28(c, r)
		d = rotateLeft28(d, r)
	}

	assert.Equal(t, c0, c)
	assert.Equal(t, d0, d)
}

func TestGenerateRoundKeys(t *testing.T) {
	ks := &DESKeySchedule{}

	assert.Equal(t, expectedSubkeys, ks.GenerateRoundKeys(testKey))
}

func TestGenerateRoundKeysWeakKeys(t *testing.T) {
	ks := &DESKeySchedule{}

	// all subkeys of a weak key are equal
	for _, key := range []uint64{0x0101010101010101, 0xFEFEFEFEFEFEFEFE, 0xE0E0E0E0F1F1F1F1, 0x1F1F1F1F0E0E0E0E} {
		subkeys := ks.GenerateRoundKeys(key)
		for i, sk := range subkeys {
			assert.Equal(t, subkeys[0], sk, "key 0x%016X round %d", key, i+1)
			assert.Zero(t, sk>>48)
		}
	}

	semiWeak := ks.GenerateRoundKeys(0xE001E001E001E001)
	for _, sk := range semiWeak {
		assert.Zero(t, sk>>48)
	}
}
