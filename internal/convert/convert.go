// Package convert holds the colorspace math that maps HSL, HWB, CIE
// LAB/LCH and Oklab/OKLCH coordinates onto gamma-encoded sRGB channels.
//
// Every function is generic over the float width so callers can run the
// pipeline in float32 or float64 without converting at the boundary.
package convert

import "math"

// Float constrains the numeric width of the conversion pipeline.
type Float interface {
	~float32 | ~float64
}

// CIE constants shared by the LAB conversions.
const (
	cieEpsilon = 216.0 / 24389.0
	cieKappa   = 24389.0 / 27.0
)

// D65 reference white.
const (
	whiteX = 0.95047
	whiteY = 1.0
	whiteZ = 1.08883
)

// Clamp limits v to [lo, hi].
func Clamp[F Float](v, lo, hi F) F {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to the unit interval.
func Clamp01[F Float](v F) F {
	return Clamp(v, 0, 1)
}

// Clamp0100 limits v to the percentage range.
func Clamp0100[F Float](v F) F {
	return Clamp(v, 0, 100)
}

// NormalizeDeg reduces an angle in degrees into [0, 360).
func NormalizeDeg[F Float](deg F) F {
	a := mod(deg, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// HSLToRGB converts hue in degrees and saturation/lightness on the 0-100
// scale to sRGB channels in [0, 1]. Hue must already be normalized and
// saturation/lightness clamped.
func HSLToRGB[F Float](hue, saturation, lightness F) (r, g, b F) {
	s := saturation / 100
	l := lightness / 100
	return hslChannel(hue, s, l, 0), hslChannel(hue, s, l, 8), hslChannel(hue, s, l, 4)
}

func hslChannel[F Float](h, s, l, n F) F {
	k := mod(n+h/30, 12)
	a := s * min(l, 1-l)
	return l - a*max(-1, min(k-3, min(9-k, 1)))
}

// HWBToRGB converts hue in degrees and whiteness/blackness on the 0-100
// scale to sRGB channels in [0, 1]. When whiteness and blackness sum to
// one or more the result is the achromatic gray w/(w+b).
func HWBToRGB[F Float](hue, whiteness, blackness F) (F, F, F) {
	w := whiteness / 100
	bk := blackness / 100
	if w+bk >= 1 {
		gray := w / (w + bk)
		return gray, gray, gray
	}
	r, g, b := HSLToRGB(hue, F(100), F(50))
	scale := 1 - w - bk
	return r*scale + w, g*scale + w, b*scale + w
}

// LABToRGB converts CIE L*a*b* coordinates (D65 white point) to
// gamma-encoded sRGB channels clamped into [0, 1]. Lightness must
// already be clamped to [0, 100]; a and b are unbounded.
func LABToRGB[F Float](lightness, a, b F) (F, F, F) {
	fy := (lightness + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200

	fx3 := fx * fx * fx
	fz3 := fz * fz * fz

	var xr, yr, zr F
	if fx3 > cieEpsilon {
		xr = fx3
	} else {
		xr = (116*fx - 16) / cieKappa
	}
	if lightness > cieKappa*cieEpsilon {
		yr = fy * fy * fy
	} else {
		yr = lightness / cieKappa
	}
	if fz3 > cieEpsilon {
		zr = fz3
	} else {
		zr = (116*fz - 16) / cieKappa
	}

	x := xr * whiteX
	y := yr * whiteY
	z := zr * whiteZ

	rl := 3.2404542*x - 1.5371385*y - 0.4985314*z
	gl := -0.9692660*x + 1.8760108*y + 0.0415560*z
	bl := 0.0556434*x - 0.2040259*y + 1.0572252*z

	return Clamp01(gamma(rl)), Clamp01(gamma(gl)), Clamp01(gamma(bl))
}

// OklabToRGB converts Oklab coordinates to gamma-encoded sRGB channels
// clamped into [0, 1].
func OklabToRGB[F Float](lightness, a, b F) (F, F, F) {
	lp := lightness + 0.3963377774*a + 0.2158037573*b
	mp := lightness - 0.1055613423*a - 0.0638541728*b
	sp := lightness - 0.0894841775*a - 1.2914855480*b

	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	rl := 4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	gl := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	bl := -0.0041960863*l - 0.7034186147*m + 1.7076147009*s

	return Clamp01(gamma(rl)), Clamp01(gamma(gl)), Clamp01(gamma(bl))
}

// PolarToCartesian maps chroma and a hue angle in degrees onto the a/b
// axes of LAB or Oklab.
func PolarToCartesian[F Float](chroma, hueDeg F) (a, b F) {
	rad := hueDeg * (math.Pi / 180)
	return chroma * cos(rad), chroma * sin(rad)
}

// gamma applies the sRGB transfer curve to one linear channel.
func gamma[F Float](u F) F {
	if u > 0.0031308 {
		return 1.055*pow(u, 1.0/2.4) - 0.055
	}
	return 12.92 * u
}

func mod[F Float](x, y F) F {
	return F(math.Mod(float64(x), float64(y)))
}

func pow[F Float](x, y F) F {
	return F(math.Pow(float64(x), float64(y)))
}

func cos[F Float](x F) F {
	return F(math.Cos(float64(x)))
}

func sin[F Float](x F) F {
	return F(math.Sin(float64(x)))
}
