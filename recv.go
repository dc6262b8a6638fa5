package vibrant

// Receiver is the output sink every conversion and parse entry point
// writes through. It is a closed sum over six delivery modes: byte,
// float32 and float64 channels, each either by value or by reference.
// Value receivers expose the result as struct fields; reference
// receivers write through caller-supplied pointers and skip any that
// are nil.
//
// A Receiver is touched only on success, and a successful call writes
// every requested channel exactly once. Sharing one Receiver between
// concurrent calls needs caller-side synchronization.
type Receiver interface {
	setBytes(r, g, b, a uint8)
	setUnit(r, g, b, a float64)
}

// unitToByte quantizes a clamped unit-interval channel.
func unitToByte(x float64) uint8 {
	return uint8(x*255 + 0.5)
}

// ValU8 receives the color as bytes in [0, 255].
type ValU8 struct {
	R, G, B, A uint8
}

func (v *ValU8) setBytes(r, g, b, a uint8) {
	v.R, v.G, v.B, v.A = r, g, b, a
}

func (v *ValU8) setUnit(r, g, b, a float64) {
	v.R, v.G, v.B, v.A = unitToByte(r), unitToByte(g), unitToByte(b), unitToByte(a)
}

// ValF32 receives the color as float32 channels in [0, 1].
type ValF32 struct {
	R, G, B, A float32
}

func (v *ValF32) setBytes(r, g, b, a uint8) {
	v.R, v.G, v.B, v.A = float32(r)/255, float32(g)/255, float32(b)/255, float32(a)/255
}

func (v *ValF32) setUnit(r, g, b, a float64) {
	v.R, v.G, v.B, v.A = float32(r), float32(g), float32(b), float32(a)
}

// ValF64 receives the color as float64 channels in [0, 1].
type ValF64 struct {
	R, G, B, A float64
}

func (v *ValF64) setBytes(r, g, b, a uint8) {
	v.R, v.G, v.B, v.A = float64(r)/255, float64(g)/255, float64(b)/255, float64(a)/255
}

func (v *ValF64) setUnit(r, g, b, a float64) {
	v.R, v.G, v.B, v.A = r, g, b, a
}

// RefU8 writes byte channels through pointers; nil pointers skip their
// channel.
type RefU8 struct {
	R, G, B, A *uint8
}

func (v *RefU8) setBytes(r, g, b, a uint8) {
	if v.R != nil {
		*v.R = r
	}
	if v.G != nil {
		*v.G = g
	}
	if v.B != nil {
		*v.B = b
	}
	if v.A != nil {
		*v.A = a
	}
}

func (v *RefU8) setUnit(r, g, b, a float64) {
	v.setBytes(unitToByte(r), unitToByte(g), unitToByte(b), unitToByte(a))
}

// RefF32 writes float32 channels through pointers; nil pointers skip
// their channel.
type RefF32 struct {
	R, G, B, A *float32
}

func (v *RefF32) setBytes(r, g, b, a uint8) {
	v.setUnit(float64(r)/255, float64(g)/255, float64(b)/255, float64(a)/255)
}

func (v *RefF32) setUnit(r, g, b, a float64) {
	if v.R != nil {
		*v.R = float32(r)
	}
	if v.G != nil {
		*v.G = float32(g)
	}
	if v.B != nil {
		*v.B = float32(b)
	}
	if v.A != nil {
		*v.A = float32(a)
	}
}

// RefF64 writes float64 channels through pointers; nil pointers skip
// their channel.
type RefF64 struct {
	R, G, B, A *float64
}

func (v *RefF64) setBytes(r, g, b, a uint8) {
	v.setUnit(float64(r)/255, float64(g)/255, float64(b)/255, float64(a)/255)
}

func (v *RefF64) setUnit(r, g, b, a float64) {
	if v.R != nil {
		*v.R = r
	}
	if v.G != nil {
		*v.G = g
	}
	if v.B != nil {
		*v.B = b
	}
	if v.A != nil {
		*v.A = a
	}
}
