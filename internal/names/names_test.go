package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a uint8
	}{
		{"white", 255, 255, 255, 255},
		{"black", 0, 0, 0, 255},
		{"red", 255, 0, 0, 255},
		{"rebeccapurple", 102, 51, 153, 255},
		{"aliceblue", 240, 248, 255, 255},
		{"lightgoldenrodyellow", 250, 250, 210, 255},
		{"transparent", 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a, ok := Lookup(tt.name)
			require.True(t, ok)
			assert.Equal(t, [4]uint8{tt.r, tt.g, tt.b, tt.a}, [4]uint8{r, g, b, a})
		})
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	for _, name := range []string{"WHITE", "White", "wHiTe", "REBECCAPURPLE"} {
		_, _, _, _, ok := Lookup(name)
		assert.True(t, ok, "%q should resolve", name)
	}
}

func TestLookupMisses(t *testing.T) {
	for _, name := range []string{
		"",
		"no", // below the length floor
		"notarealcolornameatalllll",
		"whitest",
		"gren",
		"rgb",
	} {
		_, _, _, _, ok := Lookup(name)
		assert.False(t, ok, "%q should not resolve", name)
	}
}

func TestTableShape(t *testing.T) {
	assert.Equal(t, 149, Count())
	for name, c := range table {
		assert.GreaterOrEqual(t, len(name), minNameLen, "name %q too short", name)
		assert.LessOrEqual(t, len(name), maxNameLen, "name %q too long", name)
		if name != "transparent" {
			assert.Equal(t, uint8(255), c[3], "%q should be opaque", name)
		}
	}
}
