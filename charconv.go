package charconv

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Format selects the grammar of numeric literals accepted by [FromChars].
type Format uint8

const (
	// Scientific accepts a decimal mantissa followed by a mandatory
	// exponent: [sign] digits ['.' digits] ('e'|'E') [sign] digits.
	// The integer digits may be omitted when fraction digits are present,
	// as in ".5e1".
	Scientific Format = 1 << iota
	// Fixed accepts a decimal mantissa without exponent:
	// [sign] digits ['.' digits].
	Fixed
	// Hex accepts a hexadecimal mantissa followed by a mandatory binary
	// exponent written in decimal: [sign] hexdigits ['.' hexdigits]
	// ('p'|'P') [sign] digits. The "0x" prefix is not part of the grammar.
	Hex
	// General accepts a decimal mantissa followed by an optional exponent.
	General = Fixed | Scientific
)

// String returns the name of the format.
func (f Format) String() string {
	switch f {
	case Scientific:
		return "scientific"
	case Fixed:
		return "fixed"
	case Hex:
		return "hex"
	case General:
		return "general"
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// ParseFormat returns the format with the given name.
// The names are the ones returned by [Format.String], matched
// case-insensitively, and their first letters.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "scientific", "s", "e":
		return Scientific, nil
	case "fixed", "f":
		return Fixed, nil
	case "hex", "x", "a":
		return Hex, nil
	case "general", "g":
		return General, nil
	}
	return 0, fmt.Errorf("unknown format %q: %w", name, ErrInvalid)
}

func (f Format) valid() bool {
	switch f {
	case Scientific, Fixed, Hex, General:
		return true
	}
	return false
}

var (
	// ErrInvalid is returned if the input does not start with a numeric
	// literal or a special value.
	ErrInvalid = errors.New("invalid argument")
	// ErrRange is wrapped by [ErrOverflow] and [ErrUnderflow].
	ErrRange = errors.New("result out of range")
	// ErrOverflow is returned if the magnitude of a literal rounds above
	// the largest finite value of the layout.
	ErrOverflow = fmt.Errorf("overflow: %w", ErrRange)
	// ErrUnderflow is returned if the magnitude of a nonzero literal
	// rounds to zero.
	ErrUnderflow = fmt.Errorf("underflow: %w", ErrRange)
)

// FromChars converts the longest prefix of b that is a numeric literal in
// format f to the nearest value of type T, rounding half to even.
// It returns the number of bytes consumed and one of the following:
//
//   - nil: the prefix b[:n] was converted and *dst holds the result.
//   - [ErrInvalid]: b does not start with a literal; n is 0 and *dst is
//     left unchanged.
//   - [ErrOverflow]: b[:n] is a literal whose magnitude is too large;
//     *dst holds an infinity with the sign of the literal.
//   - [ErrUnderflow]: b[:n] is a nonzero literal whose magnitude rounds to
//     zero; *dst holds a zero with the sign of the literal.
//
// Case-insensitive "inf", "infinity", "nan" and "nan(...)", optionally
// signed, are accepted in every format.
// Types with the size of float32 use [Binary32], all others use [Binary64].
//
// FromChars never reads beyond len(b) and never writes to b.
func FromChars[T constraints.Float](b []byte, dst *T, f Format) (int, error) {
	l := layoutOf[T]()
	v, n, err := fromChars(b, l, f)
	if n == 0 {
		return 0, err
	}
	if l == Binary32 {
		*dst = T(l.toFloat32(v))
	} else {
		*dst = T(l.toFloat64(v))
	}
	return n, err
}

// FromCharsBits is like [FromChars], but converts to any layout and
// stores the result as [Bits].
func FromCharsBits(b []byte, dst *Bits, l Layout, f Format) (int, error) {
	v, n, err := fromChars(b, l, f)
	if n == 0 {
		return 0, err
	}
	*dst = v
	return n, err
}

// layoutOf returns the layout of the float type T.
func layoutOf[T constraints.Float]() Layout {
	var x T
	if unsafe.Sizeof(x) == 4 {
		return Binary32
	}
	return Binary64
}

// fromChars returns the converted value and the consumed length.
// The length is 0 if and only if the input is invalid.
func fromChars[S text](s S, l Layout, f Format) (Bits, int, error) {
	if !f.valid() {
		return Bits{}, 0, ErrInvalid
	}
	if neg, nan, n, ok := special(s); ok {
		if nan {
			return l.NaN(neg), n, nil
		}
		return l.Inf(neg), n, nil
	}
	r := scan(s, f)
	if !r.ok {
		return Bits{}, 0, ErrInvalid
	}
	v, err := convert(s, r, l)
	return v, r.n, err
}

// Parse converts a string to the nearest value of layout l.
// The whole string must be a numeric literal in [General] format,
// a hexadecimal literal with a "0x" or "0X" prefix, or a special value:
//
//	1.234
//	-1234
//	+0.000001234e-3
//	0x1.8p-3
//	-Infinity
//	nan
//
// If the literal is out of range, Parse returns the saturated value
// (an infinity or a zero with the sign of the literal) together with an
// error wrapping [ErrOverflow] or [ErrUnderflow].
func Parse(s string, l Layout) (Bits, error) {
	var (
		v   Bits
		n   int
		err error
	)
	body, hex := trimHexPrefix(s)
	if hex {
		v, n, err = fromChars(body, l, Hex)
	} else {
		body = s
		v, n, err = fromChars(body, l, General)
	}
	switch {
	case n == 0:
		return Bits{}, fmt.Errorf("no number in %q: %w", s, ErrInvalid)
	case n != len(body):
		return Bits{}, fmt.Errorf("invalid character %q in %q: %w", body[n], s, ErrInvalid)
	case err != nil:
		return v, fmt.Errorf("parsing %q: %w", s, err)
	}
	return v, nil
}

// trimHexPrefix removes the "0x" or "0X" prefix that follows the optional
// sign of s. It returns false if s has no such prefix or if the prefix is
// not followed by a hexadecimal digit or a point.
func trimHexPrefix(s string) (string, bool) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if i+2 >= len(s) || s[i] != '0' || lower(s[i+1]) != 'x' {
		return s, false
	}
	if _, ok := hexDigit(s[i+2]); !ok && s[i+2] != '.' {
		return s, false
	}
	return s[:i] + s[i+2:], true
}

// ParseFloat converts a string to a float64 like [Parse].
// If bitSize is 32, the result is rounded to float32 precision,
// that is, it still has type float64 but can be converted to float32
// without changing its value.
func ParseFloat(s string, bitSize int) (float64, error) {
	if bitSize == 32 {
		v, err := Parse(s, Binary32)
		return float64(Binary32.toFloat32(v)), err
	}
	v, err := Parse(s, Binary64)
	return Binary64.toFloat64(v), err
}
