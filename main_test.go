package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nPaBwaYT/des/value"
)

func TestRunEncryptDecrypt(t *testing.T) {
	tests := []struct {
		name    string
		encrypt bool
		key     string
		text    string
		format  string
		want    string
	}{
		{"encrypt_hex", true, "0x133457799BBCDFF1", "0x0123456789ABCDEF", "", "85E813540F0AB405"},
		{"encrypt_ignores_format", true, "0x133457799BBCDFF1", "0x0123456789ABCDEF", "decimal", "85E813540F0AB405"},
		{"encrypt_decimal_inputs", true, "1383827165325090801", "81985529216486895", "hex", "85E813540F0AB405"},
		{"decrypt_hex", false, "0x133457799BBCDFF1", "0x85E813540F0AB405", "hex", "0123456789ABCDEF"},
		{"decrypt_decimal", false, "0x133457799BBCDFF1", "0x85E813540F0AB405", "decimal", "81985529216486895"},
		{"decrypt_binary", false, "0x133457799BBCDFF1", "0b1000010111101000000100110101010000001111000010101011010000000101", "binary",
			"0000000100100011010001010110011110001001101010111100110111101111"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(tt.encrypt, tt.key, tt.text, tt.format, false, io.Discard)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunTextRoundTrip(t *testing.T) {
	encrypted, err := run(true, "password", "DES test", "", false, io.Discard)
	require.NoError(t, err)

	decrypted, err := run(false, "password", "0x"+encrypted, "text", false, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "DES test", decrypted)
}

func TestRunReadsFiles(t *testing.T) {
	dir := t.TempDir()
	keyPath := filepath.Join(dir, "key")
	textPath := filepath.Join(dir, "text")
	require.NoError(t, os.WriteFile(keyPath, []byte("0x133457799BBCDFF1\n"), 0644))
	require.NoError(t, os.WriteFile(textPath, []byte("0x0123456789ABCDEF"), 0644))

	got, err := run(true, keyPath, textPath, "", false, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "85E813540F0AB405", got)
}

func TestRunErrors(t *testing.T) {
	_, err := run(true, "0xZZ", "1", "", false, io.Discard)
	assert.ErrorIs(t, err, value.ErrInvalidFormat)

	_, err = run(true, "1", " ", "", false, io.Discard)
	assert.ErrorIs(t, err, value.ErrEmptyString)

	_, err = run(false, "1", "1", "base64", false, io.Discard)
	assert.Error(t, err)
}

func TestRunVerbosePrintsSubkeys(t *testing.T) {
	var buf bytes.Buffer

	_, err := run(true, "0x133457799BBCDFF1", "0x0123456789ABCDEF", "", true, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "0x133457799BBCDFF1")
	assert.Contains(t, out, "1B02EFFC7072")
	assert.Contains(t, out, "CB3D8B0E17F5")
}
