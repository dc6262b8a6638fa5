package cssparse

import (
	"errors"
	"fmt"
)

// Fn identifies one of the seven functional notations.
type Fn uint8

const (
	FnRGB Fn = iota
	FnHSL
	FnHWB
	FnLCH
	FnLAB
	FnOklch
	FnOklab
)

// String returns the CSS keyword for the function.
func (f Fn) String() string {
	switch f {
	case FnRGB:
		return "rgb"
	case FnHSL:
		return "hsl"
	case FnHWB:
		return "hwb"
	case FnLCH:
		return "lch"
	case FnLAB:
		return "lab"
	case FnOklch:
		return "oklch"
	case FnOklab:
		return "oklab"
	}
	return "unknown"
}

// ErrNotFunction reports input that does not begin with a known function
// keyword. Callers fall through to named-color lookup on it; any other
// error from ParseFunction is final.
var ErrNotFunction = errors.New("not a color function")

// Call is one fully parsed function invocation. Args always holds four
// values in notation order; the fourth is alpha, synthesized as a bare 1
// when the text omits it.
type Call struct {
	Fn   Fn
	Args [4]Value
}

var keywords = []struct {
	name string
	fn   Fn
}{
	{"rgb", FnRGB},
	{"hsl", FnHSL},
	{"hwb", FnHWB},
	{"lch", FnLCH},
	{"lab", FnLAB},
	{"oklch", FnOklch},
	{"oklab", FnOklab},
}

// ParseFunction parses a complete functional-notation color. Function
// keywords are case sensitive. An "a" suffix makes the fourth argument
// mandatory, delimited like the first three; without the suffix alpha is
// optional behind a '/'. The input must end at the closing parenthesis,
// trailing whitespace aside.
func ParseFunction(input []byte) (Call, error) {
	var call Call

	// Shortest valid form is xxx(0,0,0).
	if len(input) < len("xxx(0,0,0)") {
		return call, ErrNotFunction
	}

	c := cursor{buf: input}

	matched := false
	for _, kw := range keywords {
		if c.consumeLit(kw.name) {
			call.Fn = kw.fn
			matched = true
			break
		}
	}
	if !matched {
		return call, ErrNotFunction
	}

	alphaSuffix := c.consumeByte('a')

	c.consumeWhitespace()
	if !c.consumeByte('(') {
		return call, fmt.Errorf("expected '(' after %s", call.Fn)
	}

	var delim delimiter
	for i := 0; i < 3; i++ {
		c.consumeWhitespace()
		if !c.consumeValue(&call.Args[i]) {
			return call, fmt.Errorf("expected value for %s argument %d", call.Fn, i+1)
		}
		if i < 2 && !delim.consume(&c) {
			return call, fmt.Errorf("expected separator after %s argument %d", call.Fn, i+1)
		}
	}

	if alphaSuffix {
		if !delim.consume(&c) {
			return call, fmt.Errorf("expected separator before %sa alpha", call.Fn)
		}
		c.consumeWhitespace()
		if !c.consumeValue(&call.Args[3]) {
			return call, fmt.Errorf("expected alpha value for %sa", call.Fn)
		}
	} else {
		c.consumeWhitespace()
		if c.consumeByte('/') {
			c.consumeWhitespace()
			if !c.consumeValue(&call.Args[3]) {
				return call, fmt.Errorf("expected alpha value after '/'")
			}
		} else {
			call.Args[3] = Value{Num: 1, Unit: UnitNumber}
		}
	}

	c.consumeWhitespace()
	if !c.consumeByte(')') {
		return call, fmt.Errorf("unterminated %s function", call.Fn)
	}
	c.consumeWhitespace()
	if !c.eof() {
		return call, fmt.Errorf("trailing input after %s function", call.Fn)
	}

	for _, arg := range call.Args {
		if arg.Unit == UnitUnset {
			return call, fmt.Errorf("%s argument left unresolved", call.Fn)
		}
	}

	return call, nil
}
