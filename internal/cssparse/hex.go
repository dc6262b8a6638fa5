package cssparse

import "fmt"

// ParseHex decodes a '#'-prefixed hex color. Supported shapes are #rgb,
// #rgba, #rrggbb and #rrggbbaa; the short forms duplicate each nibble.
// Alpha defaults to 255. No surrounding whitespace or trailing bytes are
// tolerated, the input must be exactly the hex literal.
func ParseHex(input []byte) (r, g, b, a uint8, err error) {
	var comp [4]uint8
	n := 0

	switch len(input) {
	case 4, 5:
		for i := 1; i < len(input); i++ {
			v, ok := hexNibble(input[i])
			if !ok {
				return 0, 0, 0, 0, fmt.Errorf("invalid hex digit %q", input[i])
			}
			comp[n] = v<<4 | v
			n++
		}
	case 7, 9:
		for i := 1; i < len(input); i += 2 {
			hi, ok := hexNibble(input[i])
			if !ok {
				return 0, 0, 0, 0, fmt.Errorf("invalid hex digit %q", input[i])
			}
			lo, ok := hexNibble(input[i+1])
			if !ok {
				return 0, 0, 0, 0, fmt.Errorf("invalid hex digit %q", input[i+1])
			}
			comp[n] = hi<<4 | lo
			n++
		}
	default:
		return 0, 0, 0, 0, fmt.Errorf("hex color needs 3, 4, 6 or 8 digits, got %d", len(input)-1)
	}

	a = 255
	if n == 4 {
		a = comp[3]
	}
	return comp[0], comp[1], comp[2], a, nil
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
