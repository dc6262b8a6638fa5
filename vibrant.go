// Package vibrant parses CSS color strings and converts HSL, HWB, CIE
// LAB/LCH and Oklab/OKLCH coordinates into sRGB.
//
// Every entry point delivers its result through a [Receiver], which
// selects the channel representation:
//
//	var c vibrant.ValU8
//	if err := vibrant.ParseString("hsl(180, 50%, 50%)", &c); err != nil {
//		// not a color
//	}
//	// c.R, c.G, c.B, c.A hold bytes
//
// On any error the receiver is left untouched.
package vibrant

import (
	"math"

	"github.com/AppsByDan/vibrant/internal/convert"
)

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// RGB builds an sRGB color from byte channels and a unit-interval
// alpha. Alpha is clamped into [0, 1].
func RGB(r, g, b uint8, alpha float64, recv Receiver) error {
	if recv == nil {
		return &ArgumentError{Func: "RGB", Reason: "nil receiver"}
	}
	if !finite(alpha) {
		return &ArgumentError{Func: "RGB", Reason: "non-finite alpha"}
	}
	recv.setBytes(r, g, b, unitToByte(convert.Clamp01(alpha)))
	return nil
}

// HSL builds a color from hue in degrees and saturation and lightness
// on the 0-100 scale. The hue is reduced into [0, 360); saturation,
// lightness and alpha are clamped to their ranges.
func HSL(hue, saturation, lightness, alpha float64, recv Receiver) error {
	if recv == nil {
		return &ArgumentError{Func: "HSL", Reason: "nil receiver"}
	}
	if !finite(hue, saturation, lightness, alpha) {
		return &ArgumentError{Func: "HSL", Reason: "non-finite argument"}
	}
	r, g, b := convert.HSLToRGB(
		convert.NormalizeDeg(hue),
		convert.Clamp0100(saturation),
		convert.Clamp0100(lightness),
	)
	recv.setUnit(r, g, b, convert.Clamp01(alpha))
	return nil
}

// HWB builds a color from hue in degrees and whiteness and blackness on
// the 0-100 scale. When whiteness and blackness sum past 100 the result
// is the gray w/(w+b) regardless of hue.
func HWB(hue, whiteness, blackness, alpha float64, recv Receiver) error {
	if recv == nil {
		return &ArgumentError{Func: "HWB", Reason: "nil receiver"}
	}
	if !finite(hue, whiteness, blackness, alpha) {
		return &ArgumentError{Func: "HWB", Reason: "non-finite argument"}
	}
	r, g, b := convert.HWBToRGB(
		convert.NormalizeDeg(hue),
		convert.Clamp0100(whiteness),
		convert.Clamp0100(blackness),
	)
	recv.setUnit(r, g, b, convert.Clamp01(alpha))
	return nil
}

// LAB builds a color from CIE L*a*b* coordinates against the D65 white
// point. Lightness is clamped into [0, 100]; a and b are unbounded, and
// out-of-gamut results clamp per sRGB channel.
func LAB(lightness, a, b, alpha float64, recv Receiver) error {
	if recv == nil {
		return &ArgumentError{Func: "LAB", Reason: "nil receiver"}
	}
	if !finite(lightness, a, b, alpha) {
		return &ArgumentError{Func: "LAB", Reason: "non-finite argument"}
	}
	red, green, blue := convert.LABToRGB(convert.Clamp0100(lightness), a, b)
	recv.setUnit(red, green, blue, convert.Clamp01(alpha))
	return nil
}

// LCH builds a color from CIE LCH coordinates, hue in degrees. It is
// the polar form of [LAB].
func LCH(lightness, chroma, hue, alpha float64, recv Receiver) error {
	if recv == nil {
		return &ArgumentError{Func: "LCH", Reason: "nil receiver"}
	}
	if !finite(lightness, chroma, hue, alpha) {
		return &ArgumentError{Func: "LCH", Reason: "non-finite argument"}
	}
	a, b := convert.PolarToCartesian(chroma, hue)
	return LAB(lightness, a, b, alpha, recv)
}

// OKLAB builds a color from Oklab coordinates. Lightness is clamped
// into [0, 100] so both the CSS unit scale and the raw 0-1 scale pass
// through unchanged; a and b are unbounded.
func OKLAB(lightness, a, b, alpha float64, recv Receiver) error {
	if recv == nil {
		return &ArgumentError{Func: "OKLAB", Reason: "nil receiver"}
	}
	if !finite(lightness, a, b, alpha) {
		return &ArgumentError{Func: "OKLAB", Reason: "non-finite argument"}
	}
	red, green, blue := convert.OklabToRGB(convert.Clamp0100(lightness), a, b)
	recv.setUnit(red, green, blue, convert.Clamp01(alpha))
	return nil
}

// OKLCH builds a color from OKLCH coordinates, hue in degrees. It is
// the polar form of [OKLAB].
func OKLCH(lightness, chroma, hue, alpha float64, recv Receiver) error {
	if recv == nil {
		return &ArgumentError{Func: "OKLCH", Reason: "nil receiver"}
	}
	if !finite(lightness, chroma, hue, alpha) {
		return &ArgumentError{Func: "OKLCH", Reason: "non-finite argument"}
	}
	a, b := convert.PolarToCartesian(chroma, hue)
	return OKLAB(lightness, a, b, alpha, recv)
}
