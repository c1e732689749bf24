package charconv

import (
	"math"

	"github.com/shogo82148/int128"
)

// Exact powers of ten representable in float64 and float32.
var (
	float64pow10 = [...]float64{
		1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
		1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
		1e20, 1e21, 1e22,
	}
	float32pow10 = [...]float32{1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10}
)

// convert converts the literal scanned into r to the nearest value
// of layout l.
func convert[S text](s S, r scanResult, l Layout) (Bits, error) {
	sig, ok := accumulateFast(s, r)
	if ok {
		if b, ok := convertFast(sig, l); ok {
			return b, nil
		}
		sig.big = getBint()
		sig.big.setFint(sig.coef)
	} else {
		sig = accumulateSlow(s, r, l)
	}
	defer putBint(sig.big)
	return convertSlow(sig, l)
}

// convertFast converts a short decimal significand using a single
// floating-point multiplication or division, which is correctly rounded
// when both operands are exact.
// It returns false if the significand does not qualify.
func convertFast(sig significand, l Layout) (Bits, bool) {
	if sig.coef == 0 {
		return l.Zero(sig.neg), true
	}
	switch l {
	case Binary64:
		if sig.coef > 1<<53 {
			return Bits{}, false
		}
		f := float64(sig.coef)
		if sig.neg {
			f = -f
		}
		switch {
		case sig.scale == 0:
		case sig.scale > 0 && sig.scale <= 15+22:
			// The coefficient may absorb some of the power of ten.
			if sig.scale > 22 {
				f *= float64pow10[sig.scale-22]
				if f > 1e15 || f < -1e15 {
					return Bits{}, false
				}
				sig.scale = 22
			}
			f *= float64pow10[sig.scale]
		case sig.scale < 0 && sig.scale >= -22:
			f /= float64pow10[-sig.scale]
		default:
			return Bits{}, false
		}
		return l.Unpack(int128.Uint128{L: math.Float64bits(f)}), true
	case Binary32:
		if sig.coef > 1<<24 {
			return Bits{}, false
		}
		f := float32(sig.coef)
		if sig.neg {
			f = -f
		}
		switch {
		case sig.scale == 0:
		case sig.scale > 0 && sig.scale <= 7+10:
			if sig.scale > 10 {
				f *= float32pow10[sig.scale-10]
				if f > 1e7 || f < -1e7 {
					return Bits{}, false
				}
				sig.scale = 10
			}
			f *= float32pow10[sig.scale]
		case sig.scale < 0 && sig.scale >= -10:
			f /= float32pow10[-sig.scale]
		default:
			return Bits{}, false
		}
		return l.Unpack(int128.Uint128{L: uint64(math.Float32bits(f))}), true
	}
	return Bits{}, false
}

// convertSlow converts a significand of any length using exact integer
// arithmetic.
func convertSlow(sig significand, l Layout) (Bits, error) {
	if sig.big.sign() == 0 {
		return l.Zero(sig.neg), nil
	}

	p := l.Prec()
	num := getBint()
	defer putBint(num)
	den := getBint()
	defer putBint(den)

	if sig.hex {
		// The value is in [2^(top-1), 2^top).
		top := sig.scale + sig.big.bitLen()
		switch {
		case top-1 > l.MaxExp():
			return l.Inf(sig.neg), ErrOverflow
		case top <= l.MinExp()-p:
			// Below half of the smallest subnormal.
			return l.Zero(sig.neg), ErrUnderflow
		}
		den.setFint(1)
		if sig.scale >= 0 {
			num.lshBits(sig.big, sig.scale)
		} else {
			num.setBint(sig.big)
			den.lshBits(den, -sig.scale)
		}
		return l.round(sig.neg, num, den, sig.trunc)
	}

	// The value is in [10^(top-1), 10^top).
	top := sig.scale + sig.prec
	switch {
	case top-1 > int(float64(l.MaxExp()+1)*log10of2)+1:
		return l.Inf(sig.neg), ErrOverflow
	case top < int(math.Floor(float64(l.MinExp()-p)*log10of2))-1:
		return l.Zero(sig.neg), ErrUnderflow
	}
	if sig.scale >= 0 {
		num.lsh(sig.big, sig.scale)
		den.setFint(1)
	} else {
		num.setBint(sig.big)
		den.pow10(-sig.scale)
	}
	return l.round(sig.neg, num, den, sig.trunc)
}

// round returns the value of layout l nearest to num / den, rounding
// half to even. If trunc is true, the true value is slightly above
// num / den and never equal to a midpoint.
//
// The quotient is computed with two extra bits: a round bit and a sticky
// bit that is set if any lower bit, the remainder, or trunc is nonzero.
func (l Layout) round(neg bool, num, den *bint, trunc bool) (Bits, error) {
	p := l.Prec()
	q := getBint()
	defer putBint(q)
	r := getBint()
	defer putBint(r)
	t := getBint()
	defer putBint(t)

	// Find e such that q = ⌊num / (den × 2^e)⌋ has exactly p+2 bits.
	// The first estimate yields p+2 or p+3 bits.
	e := num.bitLen() - den.bitLen() - (p + 2)
	for {
		if e >= 0 {
			t.lshBits(den, e)
			q.quoRem(num, t, r)
		} else {
			t.lshBits(num, -e)
			q.quoRem(t, den, r)
		}
		if q.bitLen() <= p+2 {
			break
		}
		e++
	}
	if r.sign() != 0 || trunc {
		q.stick()
	}

	// The leading bit of q has weight 2^exp.
	exp := e + p + 1

	// Denormalize below the smallest normal exponent.
	if exp < l.MinExp() {
		q.rshSticky(q, l.MinExp()-exp)
		exp = l.MinExp()
	}

	// Round half to even using the two bottom bits.
	round := q.low2()
	q.rshBits(q, 2)
	if q.isOdd() {
		round |= 1
	}
	if round == 3 {
		q.inc(q)
		if q.bitLen() > p {
			q.rshBits(q, 1)
			exp++
		}
	}

	switch {
	case exp > l.MaxExp():
		return l.Inf(neg), ErrOverflow
	case q.sign() == 0:
		return l.Zero(neg), ErrUnderflow
	}

	b := Bits{Neg: neg, Mant: q.uint128()}
	if q.bitLen() == p {
		b.Exp = uint32(exp + l.bias)
	}
	if !l.explicit {
		b.Mant = and128(b.Mant, mask128(l.fracBits))
	}
	return b, nil
}
