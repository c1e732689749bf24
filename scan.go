package charconv

// maxExpDigitsValue is the saturation point of scanned exponents.
// Any exponent at or beyond it overflows or underflows every layout,
// unless the mantissa carries about as many leading or trailing zeros.
const maxExpDigitsValue = 1 << 30

// span is a half-open range [beg, end) of byte positions.
type span struct {
	beg, end int
}

func (r span) len() int {
	return r.end - r.beg
}

// scanResult is the syntactic shape of a numeric literal.
// It records positions only; digits are interpreted by the accumulator.
type scanResult struct {
	neg  bool
	hex  bool // mantissa digits are hexadecimal, exponent is binary
	intg span // integer digits
	frac span // fraction digits
	eneg bool // exponent sign
	exp  int  // exponent value, saturated at maxExpDigitsValue
	n    int  // consumed length
	ok   bool
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// hexDigit returns the value of the hexadecimal digit c.
// If c is not a hexadecimal digit, ok is false.
func hexDigit(c byte) (d byte, ok bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= lower(c) && lower(c) <= 'f':
		return lower(c) - 'a' + 10, true
	}
	return 0, false
}

// digit returns the value of c as a mantissa digit in the given base.
func digit(c byte, hex bool) (d byte, ok bool) {
	if hex {
		return hexDigit(c)
	}
	if isDigit(c) {
		return c - '0', true
	}
	return 0, false
}

// scan finds the longest prefix of s that is a numeric literal in format f.
//
// The mantissa is scanned first and the exponent second.
// When the exponent is optional (General), a malformed exponent is not
// consumed and the mantissa alone is the literal.
// When the exponent is mandatory (Scientific, Hex), a missing or malformed
// exponent invalidates the whole literal.
// Fixed never consumes an exponent.
func scan[S text](s S, f Format) scanResult {
	var r scanResult
	pos := 0
	r.hex = f == Hex

	// Sign
	if pos < len(s) {
		switch s[pos] {
		case '-':
			r.neg = true
			pos++
		case '+':
			pos++
		}
	}

	// Integer
	r.intg.beg = pos
	for pos < len(s) {
		if _, ok := digit(s[pos], r.hex); !ok {
			break
		}
		pos++
	}
	r.intg.end = pos

	// Fraction
	r.frac = span{pos, pos}
	if pos < len(s) && s[pos] == '.' {
		pos++
		r.frac.beg = pos
		for pos < len(s) {
			if _, ok := digit(s[pos], r.hex); !ok {
				break
			}
			pos++
		}
		r.frac.end = pos
	}

	if r.intg.len()+r.frac.len() == 0 {
		return scanResult{}
	}

	// Exponential part
	var mark byte
	switch f {
	case Fixed:
		r.n, r.ok = pos, true
		return r
	case Hex:
		mark = 'p'
	default:
		mark = 'e'
	}
	end, eneg, exp, ok := scanExp(s, pos, mark)
	switch {
	case ok:
		r.eneg, r.exp = eneg, exp
		pos = end
	case f == General:
		// The exponent is optional: keep the mantissa.
	default:
		return scanResult{}
	}
	r.n, r.ok = pos, true
	return r
}

// scanExp scans ('e'|'E') [sign] digit+ (or the 'p' form) starting at pos.
// It returns the position after the exponent, the sign, and the saturated
// value. If there is no well-formed exponent at pos, ok is false.
func scanExp[S text](s S, pos int, mark byte) (end int, neg bool, exp int, ok bool) {
	if pos >= len(s) || lower(s[pos]) != mark {
		return pos, false, 0, false
	}
	pos++
	if pos < len(s) {
		switch s[pos] {
		case '-':
			neg = true
			pos++
		case '+':
			pos++
		}
	}
	beg := pos
	for pos < len(s) && isDigit(s[pos]) {
		if exp <= (maxExpDigitsValue-9)/10 {
			exp = exp*10 + int(s[pos]-'0')
		} else {
			exp = maxExpDigitsValue
		}
		pos++
	}
	if pos == beg {
		return pos, false, 0, false
	}
	return pos, neg, exp, true
}
