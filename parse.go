package vibrant

import (
	"errors"
	"fmt"

	"github.com/AppsByDan/vibrant/internal/cssparse"
	"github.com/AppsByDan/vibrant/internal/names"
)

// MaxInputLen bounds the text accepted by Parse and ParseString.
const MaxInputLen = 128

// Parse interprets a CSS color string and writes the result to recv.
// Accepted forms are '#'-prefixed hex colors, the functional notations
// rgb, hsl, hwb, lch, lab, oklch and oklab with their "a" suffixed
// aliases, and the CSS color keywords. Function keywords are case
// sensitive, color keywords are not. The whole input must be a single
// color; recv is written only on success.
func Parse(input []byte, recv Receiver) error {
	if recv == nil {
		return &ArgumentError{Func: "Parse", Reason: "nil receiver"}
	}
	if len(input) == 0 {
		return newParseError(input, "empty input")
	}
	if len(input) > MaxInputLen {
		return newParseError(input[:MaxInputLen], fmt.Sprintf("input exceeds %d bytes", MaxInputLen))
	}

	if input[0] == '#' {
		r, g, b, a, err := cssparse.ParseHex(input)
		if err != nil {
			return newParseError(input, err.Error())
		}
		recv.setBytes(r, g, b, a)
		return nil
	}

	call, err := cssparse.ParseFunction(input)
	if errors.Is(err, cssparse.ErrNotFunction) {
		if r, g, b, a, ok := names.Lookup(string(input)); ok {
			recv.setBytes(r, g, b, a)
			return nil
		}
		return newParseError(input, "unrecognized color")
	}
	if err != nil {
		return newParseError(input, err.Error())
	}

	return dispatch(call, recv)
}

// ParseString is the string form of [Parse].
func ParseString(s string, recv Receiver) error {
	return Parse([]byte(s), recv)
}

// dispatch resolves each argument against its colorspace role and hands
// off to the direct conversion entry points.
func dispatch(call cssparse.Call, recv Receiver) error {
	args := call.Args
	alpha := args[3].Unit01()
	switch call.Fn {
	case cssparse.FnRGB:
		return RGB(args[0].Byte(), args[1].Byte(), args[2].Byte(), alpha, recv)
	case cssparse.FnHSL:
		return HSL(args[0].Hue(), args[1].Percent(), args[2].Percent(), alpha, recv)
	case cssparse.FnHWB:
		return HWB(args[0].Hue(), args[1].Percent(), args[2].Percent(), alpha, recv)
	case cssparse.FnLCH:
		return LCH(args[0].Percent(), args[1].LCHChroma(), args[2].Hue(), alpha, recv)
	case cssparse.FnLAB:
		return LAB(args[0].Percent(), args[1].LABAxis(), args[2].LABAxis(), alpha, recv)
	case cssparse.FnOklch:
		return OKLCH(args[0].OkLightness(), args[1].OklabAxis(), args[2].Hue(), alpha, recv)
	default:
		return OKLAB(args[0].OkLightness(), args[1].OklabAxis(), args[2].OklabAxis(), alpha, recv)
	}
}
