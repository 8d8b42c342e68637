// Package value turns command line and request text into 64-bit DES keys and
// blocks, and formats results for printing.
package value

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Parse accepts a decimal literal, the path of a regular file whose contents
// are parsed with ParseLiteral, or anything ParseLiteral accepts.
func Parse(s string) (uint64, error) {
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return n, nil
	}

	if info, err := os.Stat(s); err == nil && info.Mode().IsRegular() {
		return ParseFile(s)
	}

	return ParseLiteral(s)
}

// ParseInline is Parse without the file lookup, for input that arrives over
// the network.
func ParseInline(s string) (uint64, error) {
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return n, nil
	}

	return ParseLiteral(s)
}

// ParseFile parses the trimmed contents of path.
func ParseFile(path string) (uint64, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, newError(ErrMissingFile, path, "", err)
		}
		return 0, newError(ErrFileRead, path, "", err)
	}

	if strings.TrimSpace(string(contents)) == "" {
		return 0, newError(ErrEmptyFile, path, "", nil)
	}

	return ParseLiteral(string(contents))
}

// ParseLiteral never touches the filesystem. After trimming it reads, in
// order: 0x hex, 0b binary, an 8 character ASCII string packed little-endian,
// and finally a decimal number.
func ParseLiteral(s string) (uint64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, newError(ErrEmptyString, "", "", nil)
	}

	if strings.HasPrefix(trimmed, "0x") || strings.HasPrefix(trimmed, "0X") {
		return parseRadix(trimmed, trimmed[2:], 16, "hex")
	}

	if strings.HasPrefix(trimmed, "0b") || strings.HasPrefix(trimmed, "0B") {
		digits := trimmed[2:]
		if strings.Trim(digits, "01") != "" {
			return 0, newError(ErrInvalidFormat, trimmed, "binary string contains invalid characters", nil)
		}
		return parseRadix(trimmed, digits, 2, "binary")
	}

	if len(trimmed) == 8 {
		return asciiToUint64(trimmed)
	}

	n, err := strconv.ParseUint(trimmed, 10, 64)
	if err != nil {
		return 0, newError(ErrInvalidFormat, trimmed, decimalDetail(trimmed, err), err)
	}
	return n, nil
}

func parseRadix(input, digits string, base int, name string) (uint64, error) {
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return 0, nil
	}

	n, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, newError(ErrInvalidFormat, input, name+" parsing failed", err)
	}
	return n, nil
}

func decimalDetail(s string, err error) string {
	switch {
	case strings.HasPrefix(s, "-"):
		return "negative numbers not allowed"
	case errors.Is(err, strconv.ErrRange):
		return "number too large for u64"
	default:
		return "contains invalid digits"
	}
}

func asciiToUint64(s string) (uint64, error) {
	if len(s) != 8 {
		return 0, newError(ErrInvalidByteString, s, "", nil)
	}

	var result uint64
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return 0, newError(ErrConversion, s, "string contains non-ASCII characters", nil)
		}
		result |= uint64(s[i]) << (8 * i)
	}
	return result, nil
}
