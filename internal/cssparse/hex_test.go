package cssparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		input      string
		r, g, b, a uint8
	}{
		{"#fff", 255, 255, 255, 255},
		{"#FFF", 255, 255, 255, 255},
		{"#ffff", 255, 255, 255, 255},
		{"#ffffff", 255, 255, 255, 255},
		{"#ffffffff", 255, 255, 255, 255},
		{"#000", 0, 0, 0, 255},
		{"#0000", 0, 0, 0, 0},
		{"#2ae", 0x22, 0xaa, 0xee, 255},
		{"#2AE", 0x22, 0xaa, 0xee, 255},
		{"#22aaee", 0x22, 0xaa, 0xee, 255},
		{"#22AAEE", 0x22, 0xaa, 0xee, 255},
		{"#12345678", 0x12, 0x34, 0x56, 0x78},
		{"#8004", 0x88, 0x00, 0x00, 0x44},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r, g, b, a, err := ParseHex([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, [4]uint8{tt.r, tt.g, tt.b, tt.a}, [4]uint8{r, g, b, a})
		})
	}
}

func TestParseHexRejects(t *testing.T) {
	for _, input := range []string{
		"#",
		"#f",
		"#ff",
		"#fffff",    // five digits
		"#fffffff",  // seven digits
		"#fffffffff",
		"#ggg",
		"#ffg",
		"#ffffgg",
		"#fff ",   // trailing byte
		"# fff",   // embedded space
		"#fff;",
	} {
		t.Run(input, func(t *testing.T) {
			_, _, _, _, err := ParseHex([]byte(input))
			assert.Error(t, err)
		})
	}
}
