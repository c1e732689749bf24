package charconv

import "math"

// log10of2 is log10(2).
const log10of2 = 0.30102999566398119521

// guardDigits is the number of digits retained beyond the longest
// midpoint between two adjacent values of a layout.
const guardDigits = 2

// significand is the exact value of a scanned literal in the form
//
//	coef × 10^scale, or coef × 2^scale for hexadecimal literals,
//
// where coef holds the significant digits of the literal without leading
// or trailing zeros.
// If the literal has more significant digits than the layout can ever need
// for rounding, the excess is dropped and trunc is set if any dropped digit
// is nonzero. The true value is then strictly between coef × base^scale
// and the next multiple of the weight of the last digit within budget.
type significand struct {
	neg   bool
	hex   bool
	coef  fint  // coefficient, if it fits in 19 decimal digits
	big   *bint // coefficient of the slow tier
	prec  int   // number of retained digits
	scale int
	trunc bool
}

// digitBudget returns the maximal number of significant decimal digits
// that can influence rounding to layout l.
//
// Every midpoint between two adjacent values of l is an odd multiple of
// 2^-q for q = bias - 1 + prec, and none of them is as large as 2^MinExp
// when they need all q fractional digits; hence no midpoint has more than
// q + 1 + ⌊MinExp × log10(2)⌋ significant digits.
func (l Layout) digitBudget() int {
	q := l.bias - 1 + l.Prec()
	return q + 1 + int(math.Floor(float64(l.MinExp())*log10of2)) + guardDigits
}

// hexBudget returns the maximal number of significant hexadecimal digits
// that can influence rounding to layout l: the digits covering the
// precision and the two rounding bits, plus a guard digit.
func (l Layout) hexBudget() int {
	return (l.Prec()+2+3)/4 + 1
}

// digitWeight returns the position of the i-th byte of s relative to the
// point: the last integer digit has weight 0, the first fraction digit
// has weight -1.
func (r scanResult) digitWeight(i int) int {
	if i < r.intg.end {
		return r.intg.end - 1 - i
	}
	return r.frac.beg - 1 - i
}

// signedExp returns the signed exponent of the literal.
func (r scanResult) signedExp() int {
	if r.eneg {
		return -r.exp
	}
	return r.exp
}

// accumulateFast collects the significant digits of a decimal literal
// into a fint.
// It returns false if the literal is hexadecimal or has more than 19
// significant digits.
func accumulateFast[S text](s S, r scanResult) (significand, bool) {
	var (
		sig     significand
		coef    fint
		prec    int
		pending int // zeros after the last nonzero digit
		weight  int // weight of the last nonzero digit
		ok      bool
	)
	if r.hex {
		return significand{}, false
	}
	for _, d := range [2]span{r.intg, r.frac} {
		for i := d.beg; i < d.end; i++ {
			c := s[i] - '0'
			if c == 0 {
				if prec > 0 {
					pending++
				}
				continue
			}
			if prec+pending+1 > maxFintPrec {
				return significand{}, false
			}
			coef, ok = coef.fsa(pending+1, c)
			if !ok {
				return significand{}, false
			}
			prec += pending + 1
			pending = 0
			weight = r.digitWeight(i)
		}
	}
	sig.neg = r.neg
	sig.coef = coef
	sig.prec = prec
	if coef != 0 {
		sig.scale = weight + r.signedExp()
	}
	return sig, true
}

// accumulateSlow collects the significant digits of a literal into
// a *big.Int, retaining no more digits than needed to round to layout l.
// Decimal digits are gathered in 19-digit chunks before touching the
// *big.Int.
// The caller must release sig.big with putBint.
func accumulateSlow[S text](s S, r scanResult, l Layout) significand {
	var (
		sig     significand
		chunk   fint
		clen    int // digits in chunk
		prec    int // digits in big and chunk, including flushed zeros
		pending int // zeros after the last nonzero digit
		weight  int // weight of the last retained nonzero digit
		budget  int
		dig     byte
	)
	sig.neg = r.neg
	sig.hex = r.hex
	sig.big = getBint()
	sig.big.setFint(0)

	budget = l.digitBudget()
	if r.hex {
		budget = l.hexBudget()
	}

loop:
	for _, d := range [2]span{r.intg, r.frac} {
		for i := d.beg; i < d.end; i++ {
			dig, _ = digit(s[i], r.hex)
			if dig == 0 {
				if prec > 0 {
					pending++
				}
				continue
			}
			if prec+pending+1 > budget {
				sig.trunc = true
				break loop
			}
			switch {
			case r.hex:
				sig.big.lshBits(sig.big, 4*(pending+1))
				t := getBint()
				t.setDigit(dig)
				sig.big.add(sig.big, t)
				putBint(t)
			case clen+pending+1 <= maxFintPrec:
				chunk, _ = chunk.fsa(pending+1, dig)
				clen += pending + 1
			default:
				sig.big.fsa(sig.big, clen, chunk)
				sig.big.lsh(sig.big, pending)
				chunk, clen = fint(dig), 1
			}
			prec += pending + 1
			pending = 0
			weight = r.digitWeight(i)
		}
	}
	if !r.hex {
		sig.big.fsa(sig.big, clen, chunk)
	}

	sig.prec = prec
	if prec > 0 {
		sig.scale = weight
		if r.hex {
			sig.scale *= 4
		}
		sig.scale += r.signedExp()
	}
	return sig
}
