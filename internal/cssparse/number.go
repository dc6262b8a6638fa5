package cssparse

const (
	// numberMax caps the magnitude of any scanned literal at 2^24, the
	// largest range where single-precision floats still hold every
	// integer exactly.
	numberMax = 1 << 24

	// maxFractionDigits caps how many digits may follow the decimal
	// point before the literal is rejected outright.
	maxFractionDigits = 9
)

// scanNumber consumes one optionally signed decimal literal and returns
// its value. ok is false both when the cursor does not sit on a number
// (no digits consumed, cursor untouched) and when the literal breaks the
// magnitude or fraction-digit limits.
//
// The integer part fails hard as soon as the next digit would push the
// accumulated value past numberMax. Fraction digits accumulate only
// while the value is still below numberMax and the place value is
// nonzero; once either gives out, remaining digits are consumed without
// effect, but the digit count limit still applies to them.
func (c *cursor) scanNumber() (float64, bool) {
	sp := c.pos
	sign := 1.0
	if sp < len(c.buf) {
		switch c.buf[sp] {
		case '-':
			sign = -1
			sp++
		case '+':
			sp++
		}
	}

	res := 0.0
	digits := 0
	for sp < len(c.buf) && isDigit(c.buf[sp]) {
		d := float64(c.buf[sp] - '0')
		if res > (numberMax-d)/10 {
			return 0, false
		}
		res = res*10 + d
		digits++
		sp++
	}

	if sp < len(c.buf) && c.buf[sp] == '.' {
		sp++
		f := 0.1
		n := 0
		for sp < len(c.buf) && isDigit(c.buf[sp]) {
			if n >= maxFractionDigits {
				return 0, false
			}
			n++
			if res < numberMax && f > 0 {
				val := float64(c.buf[sp]-'0') * f
				if res > numberMax-val {
					return 0, false
				}
				res += val
				f *= 0.1
			}
			sp++
		}
		digits += n
	}

	// A sign or a lone '.' without any digit is not a number.
	if digits == 0 {
		return 0, false
	}

	c.pos = sp
	return sign * res, true
}
