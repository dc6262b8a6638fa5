package cssparse

// Unit marks how a scanned argument was written.
type Unit uint8

const (
	// UnitUnset means the value was never filled in; it survives only
	// through parser bugs, and the grammar rejects it before returning.
	UnitUnset Unit = iota
	// UnitPercent marks a literal with a trailing '%'.
	UnitPercent
	// UnitNumber marks a bare numeric literal.
	UnitNumber
)

// Value is one scanned function argument: the numeric literal plus its
// unit marker. How the pair maps onto a colorspace coordinate depends on
// the argument position, which is why the interpretation helpers live
// here as methods instead of being applied during the scan.
type Value struct {
	Num  float64
	Unit Unit
}

// consumeValue scans a number followed by an optional '%'.
func (c *cursor) consumeValue(v *Value) bool {
	num, ok := c.scanNumber()
	if !ok {
		return false
	}
	v.Num = num
	if c.consumeByte('%') {
		v.Unit = UnitPercent
	} else {
		v.Unit = UnitNumber
	}
	return true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Unit01 interprets the value as a unit-interval quantity: percentages
// map 0-100% onto [0, 1], bare numbers are clamped into [0, 1]. Used for
// alpha and for rgb percentage channels.
func (v Value) Unit01() float64 {
	if v.Unit == UnitPercent {
		return clamp(v.Num, 0, 100) / 100
	}
	return clamp(v.Num, 0, 1)
}

// Percent clamps the value into [0, 100]; bare numbers and percentages
// read the same here. Used for saturation, lightness, whiteness,
// blackness and LAB/LCH lightness.
func (v Value) Percent() float64 {
	return clamp(v.Num, 0, 100)
}

// Byte interprets the value as an rgb channel: percentages scale onto
// [0, 255], bare numbers round to nearest and clamp.
func (v Value) Byte() uint8 {
	if v.Unit == UnitPercent {
		return uint8(clamp(v.Num, 0, 100)/100*255 + 0.5)
	}
	return uint8(clamp(v.Num+0.5, 0, 255))
}

// Hue returns the raw angle in degrees. A percent sign on a hue is
// consumed by the scanner but carries no meaning.
func (v Value) Hue() float64 {
	return v.Num
}

// LCHChroma maps 0-100% onto the 0-150 chroma range; bare numbers pass
// through unclamped.
func (v Value) LCHChroma() float64 {
	if v.Unit == UnitPercent {
		return clamp(v.Num, 0, 100) * 1.5
	}
	return v.Num
}

// LABAxis maps -100%..100% onto the -125..125 a/b range; bare numbers
// pass through unclamped.
func (v Value) LABAxis() float64 {
	if v.Unit == UnitPercent {
		return clamp(v.Num, -100, 100) * 1.25
	}
	return v.Num
}

// OkLightness maps 0-100% onto [0, 1]; bare numbers are clamped into
// [0, 1].
func (v Value) OkLightness() float64 {
	if v.Unit == UnitPercent {
		return clamp(v.Num, 0, 100) / 100
	}
	return clamp(v.Num, 0, 1)
}

// OklabAxis maps -100%..100% onto the -0.4..0.4 a/b range; bare numbers
// pass through unclamped.
func (v Value) OklabAxis() float64 {
	if v.Unit == UnitPercent {
		return clamp(v.Num, -100, 100) * 0.004
	}
	return v.Num
}
