package vibrant_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AppsByDan/vibrant"
	"github.com/mazznoer/csscolorparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func parseU8(t *testing.T, input string) vibrant.ValU8 {
	t.Helper()
	var c vibrant.ValU8
	require.NoError(t, vibrant.ParseString(input, &c), "parsing %q", input)
	return c
}

func TestParseWhiteForms(t *testing.T) {
	// Every spelling of opaque white must land on the same bytes.
	for _, input := range []string{
		"white",
		"WHITE",
		"White",
		"#fff",
		"#ffff",
		"#ffffff",
		"#ffffffff",
		"rgb(255, 255, 255)",
		"rgb(255 255 255)",
		"rgb(100%, 100%, 100%)",
		"rgb(100% 100% 100%)",
		"rgba(255, 255, 255, 1)",
		"rgba(255 255 255 1)",
		"rgba(255, 255, 255, 100%)",
		"rgb(255 255 255 / 1)",
		"rgb(255 255 255/1)",
		"rgb(255, 255, 255 / 1)",
		"hsl(0, 0%, 100%)",
		"hsl(0 0 100)",
		"hsla(0, 0, 100, 1)",
		"hwb(0, 0%, 0%)",
		"hwb(0 0 0)",
		"hwba(120, 0, 0, 1)",
		"lab(100, 0, 0)",
		"laba(100 0 0 1)",
	} {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, vibrant.ValU8{R: 255, G: 255, B: 255, A: 255}, parseU8(t, input))
		})
	}
}

func TestParseHSL(t *testing.T) {
	tests := []struct {
		input string
		want  vibrant.ValU8
	}{
		{"hsl(180.0, 50%, 50%)", vibrant.ValU8{R: 64, G: 191, B: 191, A: 255}},
		{"hsl(119.999999999, 50.000000001%, 50%)", vibrant.ValU8{R: 64, G: 191, B: 64, A: 255}},
		{"hsl(16777216, 50%, 50%)", vibrant.ValU8{R: 64, G: 191, B: 98, A: 255}},
		{"hsl(16777216.999999999, 50%, 50%)", vibrant.ValU8{R: 64, G: 191, B: 98, A: 255}},
		{"hsl(30, 100%, 50%)", vibrant.ValU8{R: 255, G: 128, B: 0, A: 255}},
		{"hsl(720, 0, 100)", vibrant.ValU8{R: 255, G: 255, B: 255, A: 255}},
		{"hsl(0, 200, 50)", vibrant.ValU8{R: 255, G: 0, B: 0, A: 255}},
		{"hsla(0, 100%, 50%, 0.5)", vibrant.ValU8{R: 255, G: 0, B: 0, A: 128}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseU8(t, tt.input))
		})
	}
}

func TestParseHWB(t *testing.T) {
	tests := []struct {
		input string
		want  vibrant.ValU8
	}{
		{"hwb(0, 20%, 20%)", vibrant.ValU8{R: 204, G: 51, B: 51, A: 255}},
		{"hwb(0, 200, -50)", vibrant.ValU8{R: 255, G: 255, B: 255, A: 255}},
		{"hwb(120 50 50)", vibrant.ValU8{R: 128, G: 128, B: 128, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseU8(t, tt.input))
		})
	}
}

func TestParseLCHAndLAB(t *testing.T) {
	tests := []struct {
		input string
		want  vibrant.ValU8
	}{
		{"lch(53.23 104.55 40)", vibrant.ValU8{R: 255, G: 0, B: 0, A: 255}},
		{"lch(87.73 119.78 136.02)", vibrant.ValU8{R: 0, G: 255, B: 0, A: 255}},
		{"lch(32.3 133.81 306.28)", vibrant.ValU8{R: 0, G: 0, B: 255, A: 255}},
		{"lch(53.59 0 0)", vibrant.ValU8{R: 128, G: 128, B: 128, A: 255}},
		{"lcha(53.59 0 0 0.5)", vibrant.ValU8{R: 128, G: 128, B: 128, A: 128}},
		{"lab(53.23 80.11 67.22)", vibrant.ValU8{R: 255, G: 0, B: 0, A: 255}},
		{"lab(87.73 -86.18 83.18)", vibrant.ValU8{R: 0, G: 255, B: 0, A: 255}},
		{"lab(32.3 79.19 -107.86)", vibrant.ValU8{R: 0, G: 0, B: 255, A: 255}},
		{"lab(53.59 0 0)", vibrant.ValU8{R: 128, G: 128, B: 128, A: 255}},
		{"lab(100 0 0)", vibrant.ValU8{R: 255, G: 255, B: 255, A: 255}},
		{"lab(0 0 0)", vibrant.ValU8{R: 0, G: 0, B: 0, A: 255}},
		{"laba(53.59, 0, 0, 0.5)", vibrant.ValU8{R: 128, G: 128, B: 128, A: 128}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseU8(t, tt.input))
		})
	}
}

func TestParseOklchAndOklab(t *testing.T) {
	tests := []struct {
		input string
		want  vibrant.ValU8
	}{
		{"oklch(0.627955 0.25766 29.233)", vibrant.ValU8{R: 255, G: 0, B: 0, A: 255}},
		{"oklch(62.7955% 0.25766 29.233)", vibrant.ValU8{R: 255, G: 0, B: 0, A: 255}},
		{"oklch(0.866440 0.2948 142.5)", vibrant.ValU8{R: 0, G: 255, B: 0, A: 255}},
		{"oklch(0.452014 0.3132 264.05)", vibrant.ValU8{R: 0, G: 0, B: 255, A: 255}},
		{"oklch(0.5978 0 0)", vibrant.ValU8{R: 127, G: 127, B: 127, A: 255}},
		{"oklcha(0.5978 0 0 0.5)", vibrant.ValU8{R: 127, G: 127, B: 127, A: 128}},
		{"oklab(0.627955 0.224863 0.125846)", vibrant.ValU8{R: 255, G: 0, B: 0, A: 255}},
		{"oklab(62.7955% 0.224863 0.125846)", vibrant.ValU8{R: 255, G: 0, B: 0, A: 255}},
		{"oklab(0.866440 -0.233887 0.179498)", vibrant.ValU8{R: 0, G: 255, B: 0, A: 255}},
		{"oklab(0.452014 -0.032457 -0.311528)", vibrant.ValU8{R: 0, G: 0, B: 255, A: 255}},
		{"oklab(0.5978 0 0)", vibrant.ValU8{R: 127, G: 127, B: 127, A: 255}},
		{"oklaba(0.5978, 0, 0, 0.5)", vibrant.ValU8{R: 127, G: 127, B: 127, A: 128}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseU8(t, tt.input))
		})
	}
}

func TestParseHexForms(t *testing.T) {
	tests := []struct {
		input string
		want  vibrant.ValU8
	}{
		{"#2ae", vibrant.ValU8{R: 0x22, G: 0xaa, B: 0xee, A: 255}},
		{"#2AE", vibrant.ValU8{R: 0x22, G: 0xaa, B: 0xee, A: 255}},
		{"#22aaee", vibrant.ValU8{R: 0x22, G: 0xaa, B: 0xee, A: 255}},
		{"#22aaee80", vibrant.ValU8{R: 0x22, G: 0xaa, B: 0xee, A: 0x80}},
		{"#0000", vibrant.ValU8{R: 0, G: 0, B: 0, A: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseU8(t, tt.input))
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"#",
		"#f",
		"#ff",
		"#fffff",
		"#fffffff",
		"#ggg",
		"#fff ;",
		"xxx(0,0,0)",
		"RGB(0,0,0)",
		"rgb()",
		"rgb(0)",
		"rgb(0,)",
		"rgb(0,0)",
		"rgb(0,0,)",
		"rgb(0, 0, 0,)",
		"rgb(0, 0, 0, 0)",
		"rgba(0, 0, 0 / 0)",
		"rgb(0, 0 0)",
		"rgb(0 0, 0)",
		"rgb(0, 0, 0",
		"rgb(0, 0, 0) junk",
		"hsl(16777217, 50%, 50%)",
		"hsl(180.1234567890, 50%, 50%)",
		"hsl(12a, 50%, 50%)",
		"hsl(a, 50%, 50%)",
		"hsl(12.1a, 50%, 50%)",
		"hsl(12.a, 50%, 50%)",
		"whit",
		"whitest",
		"notacolor",
		strings.Repeat("a", 21), // past the keyword length ceiling
	} {
		t.Run(input, func(t *testing.T) {
			var c vibrant.ValU8
			err := vibrant.ParseString(input, &c)
			require.Error(t, err)
			assert.ErrorIs(t, err, vibrant.ErrInvalidColor)
		})
	}
}

func TestParseInputCap(t *testing.T) {
	pad := strings.Repeat(" ", vibrant.MaxInputLen)

	t.Run("at the cap", func(t *testing.T) {
		// Trailing whitespace inside a function is legal, so pad a
		// valid color out to exactly the limit.
		input := "rgb(1, 2, 3" + pad[:vibrant.MaxInputLen-len("rgb(1, 2, 3)")] + ")"
		require.Len(t, input, vibrant.MaxInputLen)
		assert.Equal(t, vibrant.ValU8{R: 1, G: 2, B: 3, A: 255}, parseU8(t, input))
	})

	t.Run("past the cap", func(t *testing.T) {
		input := "rgb(1, 2, 3)" + pad
		var c vibrant.ValU8
		err := vibrant.ParseString(input, &c)
		require.Error(t, err)

		var parseErr *vibrant.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.LessOrEqual(t, len(parseErr.Input), vibrant.MaxInputLen)
	})
}

func TestParseNilArguments(t *testing.T) {
	assert.Error(t, vibrant.Parse(nil, nil))
	assert.Error(t, vibrant.ParseString("white", nil))

	var c vibrant.ValU8
	assert.Error(t, vibrant.Parse(nil, &c), "nil input has no color in it")
}

func TestParseReceiverUntouchedOnError(t *testing.T) {
	c := vibrant.ValU8{R: 9, G: 9, B: 9, A: 9}
	require.Error(t, vibrant.ParseString("rgb(0, 0 0)", &c))
	assert.Equal(t, vibrant.ValU8{R: 9, G: 9, B: 9, A: 9}, c)
}

func TestParseNamedColorsFixture(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("test", "fixtures", "named-colors.yaml"))
	require.NoError(t, err, "failed to read fixture")

	var expected map[string]string
	require.NoError(t, yaml.Unmarshal(content, &expected))
	require.Len(t, expected, 149)

	for name, hex := range expected {
		t.Run(name, func(t *testing.T) {
			var fromName, fromHex vibrant.ValU8
			require.NoError(t, vibrant.ParseString(name, &fromName))
			require.NoError(t, vibrant.ParseString(hex, &fromHex))
			assert.Equal(t, fromHex, fromName, "%s should mean %s", name, hex)

			upper := strings.ToUpper(name)
			var fromUpper vibrant.ValU8
			require.NoError(t, vibrant.ParseString(upper, &fromUpper))
			assert.Equal(t, fromName, fromUpper)
		})
	}
}

// Cross-check simple forms against an independent CSS color parser.
func TestParseAgainstReferenceParser(t *testing.T) {
	for _, input := range []string{
		"#2ae",
		"#22aaee",
		"#22aaee80",
		"rgb(1, 2, 3)",
		"rgb(255 128 0)",
		"rgba(10, 20, 30, 1)",
		"white",
		"rebeccapurple",
		"tomato",
		"cadetblue",
		"transparent",
	} {
		t.Run(input, func(t *testing.T) {
			want, err := csscolorparser.Parse(input)
			require.NoError(t, err)

			got := parseU8(t, input)
			assert.Equal(t, uint8(want.R*255+0.5), got.R)
			assert.Equal(t, uint8(want.G*255+0.5), got.G)
			assert.Equal(t, uint8(want.B*255+0.5), got.B)
			assert.Equal(t, uint8(want.A*255+0.5), got.A)
		})
	}
}
