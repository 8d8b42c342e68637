package value

import (
	"encoding/binary"
	"fmt"
	"strings"
)

type OutputFormat int

const (
	FormatHex OutputFormat = iota
	FormatBinary
	FormatOctal
	FormatDecimal
	FormatText
)

var formatNames = map[OutputFormat]string{
	FormatHex:     "hex",
	FormatBinary:  "binary",
	FormatOctal:   "octal",
	FormatDecimal: "decimal",
	FormatText:    "text",
}

func (f OutputFormat) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("OutputFormat(%d)", int(f))
}

// ParseOutputFormat maps a format name to an OutputFormat. An empty name
// selects hex.
func ParseOutputFormat(name string) (OutputFormat, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return FormatHex, nil
	}

	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	return FormatHex, fmt.Errorf("unknown output format %q", name)
}

// Format renders v. Text is the reverse of the 8 character input form: the
// bytes of v in little-endian order, trailing NULs dropped.
func Format(v uint64, f OutputFormat) string {
	switch f {
	case FormatBinary:
		return fmt.Sprintf("%064b", v)
	case FormatOctal:
		return fmt.Sprintf("%022o", v)
	case FormatDecimal:
		return fmt.Sprintf("%d", v)
	case FormatText:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], v)
		return strings.TrimRight(string(buf[:]), "\x00")
	default:
		return fmt.Sprintf("%016X", v)
	}
}
