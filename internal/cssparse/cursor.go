// Package cssparse scans CSS color text: hex forms, and the functional
// notations rgb, hsl, hwb, lch, lab, oklch and oklab with their "a"
// suffixed aliases. It produces structured calls; interpreting argument
// units and converting colorspaces happens in the packages above it.
package cssparse

// cursor is a forward-only view over the input. Consume helpers advance
// pos on success and leave it untouched on failure, which lets the
// grammar try alternatives without backtracking state.
type cursor struct {
	buf []byte
	pos int
}

func (c *cursor) eof() bool {
	return c.pos >= len(c.buf)
}

// consumeWhitespace skips spaces and tabs, returning how many bytes it
// consumed.
func (c *cursor) consumeWhitespace() int {
	n := 0
	for c.pos < len(c.buf) {
		if ch := c.buf[c.pos]; ch != ' ' && ch != '\t' {
			break
		}
		c.pos++
		n++
	}
	return n
}

// consumeLit consumes lit if it is the next run of bytes.
func (c *cursor) consumeLit(lit string) bool {
	if len(c.buf)-c.pos < len(lit) {
		return false
	}
	for i := 0; i < len(lit); i++ {
		if c.buf[c.pos+i] != lit[i] {
			return false
		}
	}
	c.pos += len(lit)
	return true
}

// consumeByte consumes a single expected byte.
func (c *cursor) consumeByte(b byte) bool {
	if c.pos < len(c.buf) && c.buf[c.pos] == b {
		c.pos++
		return true
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
