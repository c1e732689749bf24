/*
Package charconv converts textual numbers to binary floating-point values.
It implements correctly rounded conversion of decimal and hexadecimal
floating-point literals, infinities and NaNs to the IEEE 754 binary16,
binary32, binary64 and binary128 layouts and to the x87 80-bit extended
layout.

# Conversions

[FromChars] and [FromCharsBits] convert the longest prefix of a byte slice
that is a literal in one of the following formats:

	| Format       | Grammar                                                  |
	| ------------ | -------------------------------------------------------- |
	| [Fixed]      | [sign] digits ['.' digits]                               |
	| [Scientific] | [sign] digits ['.' digits] ('e'|'E') [sign] digits       |
	| [Hex]        | [sign] hexdigits ['.' hexdigits] ('p'|'P') [sign] digits |
	| [General]    | [sign] digits ['.' digits] [('e'|'E') [sign] digits]     |

At least one mantissa digit is required.
Exponents are mandatory in [Scientific] and [Hex]: a literal without a
well-formed exponent is rejected as a whole.
In [General] a malformed exponent is simply not consumed,
so "1.5e" is the literal "1.5" followed by "e".
The exponent of a hexadecimal literal is a power of two written in
decimal, and the "0x" prefix is not part of the [Hex] grammar.

The special values "inf", "infinity", "nan" and "nan(payload)" are accepted
in every format, ignoring case and with an optional sign.
The payload of a NaN is consumed but ignored; the result is a quiet NaN.

[Parse], [ParseFloat], [MustParse] and [MustParseFloat] convert whole
strings and also accept hexadecimal literals with a "0x" prefix.

# Rounding

Every conversion is correctly rounded: the result is the representable
value nearest to the exact value of the literal, and at an exact tie the
one with an even mantissa is chosen.
This holds regardless of the length of the literal.

Each conversion takes one of two paths:

 1. Literals with at most 19 significant digits and a small exponent are
    converted to float32 and float64 with a single floating-point
    multiplication or division, which is exact up to the final rounding.

 2. All other literals are converted with [big.Int] arithmetic.
    Only the significant digits that can influence rounding to the target
    layout are retained; any further digits are folded into a sticky flag.
    For float64 this is at most 770 digits, so the cost of a conversion
    does not depend on the number of digits in the input beyond scanning.

Hexadecimal literals use the same rounding engine with binary scaling,
so their conversion is exact whenever the mantissa fits the layout.

# Errors

All functions except the Must functions are panic-free and pure.
[FromChars] and [FromCharsBits] return one of the following errors:

  - [ErrInvalid]: the input does not start with a literal.
    Nothing is consumed and the destination is not modified.
  - [ErrOverflow]: the literal is too large for the layout.
    The whole literal is consumed and the destination is set to infinity.
  - [ErrUnderflow]: the literal is nonzero but rounds to zero.
    The whole literal is consumed and the destination is set to zero.

[ErrOverflow] and [ErrUnderflow] both wrap [ErrRange].
Results that are subnormal but nonzero are not errors.

[big.Int]: https://pkg.go.dev/math/big#Int
*/
package charconv
