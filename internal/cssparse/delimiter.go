package cssparse

// delimiter tracks the separator style of one argument list. The first
// separator decides between comma mode and space mode; every later
// separator in the same list must match, so "rgb(0, 0 0)" fails.
type delimiter struct {
	comma  bool
	locked bool
}

// consume reads one argument separator. Leading whitespace is always
// consumed, even when the separator itself is then rejected.
func (d *delimiter) consume(c *cursor) bool {
	spaces := c.consumeWhitespace()
	if !d.locked {
		d.locked = true
		if c.consumeByte(',') {
			d.comma = true
			return true
		}
		return spaces > 0
	}
	if d.comma {
		return c.consumeByte(',')
	}
	return spaces > 0
}
