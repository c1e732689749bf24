package charconv

import (
	"fmt"
	"math"
	"strings"

	"github.com/shogo82148/int128"
)

// Layout describes a binary floating-point interchange format:
// the number of stored fraction bits, the width of the exponent field,
// the exponent bias, and whether the leading integer bit of the
// significand is stored explicitly (as in the x87 extended format).
//
// Layout values are immutable and safe for concurrent use.
type Layout struct {
	name     string
	fracBits int  // stored fraction bits, excluding an implicit integer bit
	expBits  int  // width of the biased exponent field
	bias     int  // exponent bias
	explicit bool // the integer bit is stored in the mantissa field
}

var (
	// Binary16 is the IEEE 754 half precision layout.
	Binary16 = Layout{name: "binary16", fracBits: 10, expBits: 5, bias: 15}
	// Binary32 is the IEEE 754 single precision layout (float32).
	Binary32 = Layout{name: "binary32", fracBits: 23, expBits: 8, bias: 127}
	// Binary64 is the IEEE 754 double precision layout (float64).
	Binary64 = Layout{name: "binary64", fracBits: 52, expBits: 11, bias: 1023}
	// Extended80 is the x87 80-bit extended precision layout.
	// Its 64-bit mantissa field holds an explicit integer bit.
	Extended80 = Layout{name: "extended80", fracBits: 63, expBits: 15, bias: 16383, explicit: true}
	// Binary128 is the IEEE 754 quadruple precision layout.
	Binary128 = Layout{name: "binary128", fracBits: 112, expBits: 15, bias: 16383}
)

var layouts = [...]Layout{Binary16, Binary32, Binary64, Extended80, Binary128}

// LayoutByName returns the predeclared layout with the given name.
// Names are matched case-insensitively; "half", "single", "float32",
// "double", "float64", "extended" and "quad" are accepted as aliases.
func LayoutByName(name string) (Layout, error) {
	switch n := strings.ToLower(name); n {
	case "half", "float16":
		return Binary16, nil
	case "single", "float32":
		return Binary32, nil
	case "double", "float64":
		return Binary64, nil
	case "extended", "long double":
		return Extended80, nil
	case "quad", "float128":
		return Binary128, nil
	default:
		for _, l := range layouts {
			if l.name == n {
				return l, nil
			}
		}
	}
	return Layout{}, fmt.Errorf("unknown layout %q: %w", name, ErrInvalid)
}

// String returns the name of the layout.
func (l Layout) String() string {
	return l.name
}

// Prec returns the precision of the layout in bits,
// including the integer bit.
func (l Layout) Prec() int {
	return l.fracBits + 1
}

// Width returns the size of the interchange encoding in bits.
func (l Layout) Width() int {
	return 1 + l.expBits + l.mantBits()
}

// MinExp returns the unbiased exponent of the smallest normal number.
func (l Layout) MinExp() int {
	return 1 - l.bias
}

// MaxExp returns the unbiased exponent of the largest finite number.
func (l Layout) MaxExp() int {
	return l.bias
}

// maxBiased returns the biased exponent field of infinities and NaNs.
func (l Layout) maxBiased() uint32 {
	return 1<<l.expBits - 1
}

// mantBits returns the width of the mantissa field.
func (l Layout) mantBits() int {
	if l.explicit {
		return l.fracBits + 1
	}
	return l.fracBits
}

// intBit returns the mantissa field with only the integer bit set.
// For layouts with an implicit integer bit the result is zero.
func (l Layout) intBit() int128.Uint128 {
	if !l.explicit {
		return int128.Uint128{}
	}
	return bit128(l.fracBits)
}

// Bits is a binary floating-point value split into its fields.
// Exp is the biased exponent field and Mant is the mantissa field as it is
// stored, that is, including the integer bit for [Extended80].
// The zero value is +0 in every layout.
type Bits struct {
	Neg  bool
	Exp  uint32
	Mant int128.Uint128
}

// Zero returns a zero with the given sign.
func (l Layout) Zero(neg bool) Bits {
	return Bits{Neg: neg}
}

// Inf returns an infinity with the given sign.
func (l Layout) Inf(neg bool) Bits {
	return Bits{Neg: neg, Exp: l.maxBiased(), Mant: l.intBit()}
}

// NaN returns a quiet NaN with the given sign and an empty payload.
func (l Layout) NaN(neg bool) Bits {
	m := or128(l.intBit(), bit128(l.fracBits-1))
	return Bits{Neg: neg, Exp: l.maxBiased(), Mant: m}
}

// Max returns the largest finite magnitude with the given sign.
func (l Layout) Max(neg bool) Bits {
	return Bits{Neg: neg, Exp: l.maxBiased() - 1, Mant: mask128(l.mantBits())}
}

// IsInf reports whether b is an infinity in layout l.
func (l Layout) IsInf(b Bits) bool {
	return b.Exp == l.maxBiased() && b.Mant == l.intBit()
}

// IsNaN reports whether b is a NaN in layout l.
func (l Layout) IsNaN(b Bits) bool {
	return b.Exp == l.maxBiased() && b.Mant != l.intBit()
}

// Pack returns the interchange encoding of b, right-aligned in 128 bits.
// For example, the encoding of a [Binary64] value is in the L field and
// can be passed to [math.Float64frombits].
func (l Layout) Pack(b Bits) int128.Uint128 {
	mb := l.mantBits()
	u := and128(b.Mant, mask128(mb))
	exp := uint64(b.Exp) & (1<<l.expBits - 1)
	// The exponent field starts at bit mb; for 128-bit layouts it lands
	// entirely in the high word.
	switch {
	case mb >= 64:
		u.H |= exp << (mb - 64)
	case mb+l.expBits > 64:
		u.L |= exp << mb
		u.H |= exp >> (64 - mb)
	default:
		u.L |= exp << mb
	}
	if b.Neg {
		sb := mb + l.expBits
		u = or128(u, bit128(sb))
	}
	return u
}

// Unpack is the inverse of [Layout.Pack].
func (l Layout) Unpack(u int128.Uint128) Bits {
	mb := l.mantBits()
	sb := mb + l.expBits
	var b Bits
	b.Mant = and128(u, mask128(mb))
	b.Neg = and128(u, bit128(sb)) != int128.Uint128{}
	var exp uint64
	switch {
	case mb >= 64:
		exp = u.H >> (mb - 64)
	case mb+l.expBits > 64:
		exp = u.L>>mb | u.H<<(64-mb)
	default:
		exp = u.L >> mb
	}
	b.Exp = uint32(exp & (1<<l.expBits - 1))
	return b
}

// toFloat64 returns b as a float64, assuming l is [Binary64].
func (l Layout) toFloat64(b Bits) float64 {
	return math.Float64frombits(l.Pack(b).L)
}

// toFloat32 returns b as a float32, assuming l is [Binary32].
func (l Layout) toFloat32(b Bits) float32 {
	return math.Float32frombits(uint32(l.Pack(b).L))
}

// bit128 returns a 128-bit value with only bit i set.
func bit128(i int) int128.Uint128 {
	if i >= 64 {
		return int128.Uint128{H: 1 << (i - 64)}
	}
	return int128.Uint128{L: 1 << i}
}

// mask128 returns a 128-bit value with the low n bits set.
func mask128(n int) int128.Uint128 {
	switch {
	case n >= 128:
		return int128.Uint128{H: math.MaxUint64, L: math.MaxUint64}
	case n >= 64:
		return int128.Uint128{H: 1<<(n-64) - 1, L: math.MaxUint64}
	default:
		return int128.Uint128{L: 1<<n - 1}
	}
}

func and128(x, y int128.Uint128) int128.Uint128 {
	return int128.Uint128{H: x.H & y.H, L: x.L & y.L}
}

func or128(x, y int128.Uint128) int128.Uint128 {
	return int128.Uint128{H: x.H | y.H, L: x.L | y.L}
}
