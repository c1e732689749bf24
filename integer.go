package charconv

import (
	"math/big"
	"sync"

	"github.com/shogo82148/int128"
)

// fint (Fast INTeger) is a wrapper around uint64.
type fint uint64

// maxFint is a maximum value of fint.
const maxFint = 9_999_999_999_999_999_999

// maxFintPrec is a maximum length of fint in decimal digits.
const maxFintPrec = 19

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]fint{
	1,                          // 10^0
	10,                         // 10^1
	100,                        // 10^2
	1_000,                      // 10^3
	10_000,                     // 10^4
	100_000,                    // 10^5
	1_000_000,                  // 10^6
	10_000_000,                 // 10^7
	100_000_000,                // 10^8
	1_000_000_000,              // 10^9
	10_000_000_000,             // 10^10
	100_000_000_000,            // 10^11
	1_000_000_000_000,          // 10^12
	10_000_000_000_000,         // 10^13
	100_000_000_000_000,        // 10^14
	1_000_000_000_000_000,      // 10^15
	10_000_000_000_000_000,     // 10^16
	100_000_000_000_000_000,    // 10^17
	1_000_000_000_000_000_000,  // 10^18
	10_000_000_000_000_000_000, // 10^19
}

// add calculates x + y and checks overflow.
func (x fint) add(y fint) (z fint, ok bool) {
	if maxFint-x < y {
		return 0, false
	}
	z = x + y
	return z, true
}

// mul calculates x * y and checks overflow.
func (x fint) mul(y fint) (z fint, ok bool) {
	if y == 0 {
		return 0, true
	}
	z = x * y
	if z/y != x {
		return 0, false
	}
	if z > maxFint {
		return 0, false
	}
	return z, true
}

// lsh (Left Shift) calculates x * 10^shift and checks overflow.
func (x fint) lsh(shift int) (z fint, ok bool) {
	// Special cases
	switch {
	case shift <= 0:
		return x, true
	case shift == 1 && x < maxFint/10: // to speed up common case
		return x * 10, true
	case shift >= len(pow10):
		return 0, false
	}
	// General case
	y := pow10[shift]
	return x.mul(y)
}

// fsa (Fused Shift and Addition) calculates x * 10^shift + b and checks overflow.
func (x fint) fsa(shift int, b byte) (z fint, ok bool) {
	z, ok = x.lsh(shift)
	if !ok {
		return 0, false
	}
	z, ok = z.add(fint(b))
	if !ok {
		return 0, false
	}
	return z, true
}

// bint (Big INTeger) is a wrapper around big.Int.
type bint big.Int

// bpow10 is a cache of powers of 10, where bpow10[x] = 10^x.
// Powers up to 10^38 cover every shift made by 19-digit chunks.
var bpow10 = [...]*bint{
	newBintFromPow10(0),
	newBintFromPow10(1),
	newBintFromPow10(2),
	newBintFromPow10(3),
	newBintFromPow10(4),
	newBintFromPow10(5),
	newBintFromPow10(6),
	newBintFromPow10(7),
	newBintFromPow10(8),
	newBintFromPow10(9),
	newBintFromPow10(10),
	newBintFromPow10(11),
	newBintFromPow10(12),
	newBintFromPow10(13),
	newBintFromPow10(14),
	newBintFromPow10(15),
	newBintFromPow10(16),
	newBintFromPow10(17),
	newBintFromPow10(18),
	newBintFromPow10(19),
	newBintFromPow10(20),
	newBintFromPow10(21),
	newBintFromPow10(22),
	newBintFromPow10(23),
	newBintFromPow10(24),
	newBintFromPow10(25),
	newBintFromPow10(26),
	newBintFromPow10(27),
	newBintFromPow10(28),
	newBintFromPow10(29),
	newBintFromPow10(30),
	newBintFromPow10(31),
	newBintFromPow10(32),
	newBintFromPow10(33),
	newBintFromPow10(34),
	newBintFromPow10(35),
	newBintFromPow10(36),
	newBintFromPow10(37),
	newBintFromPow10(38),
}

// newBintFromPow10 creates a *big.Int equal to 10^power.
func newBintFromPow10(power int) *bint {
	z := (*bint)(new(big.Int))
	z.pow10(power)
	return z
}

func (z *bint) sign() int {
	return (*big.Int)(z).Sign()
}

func (z *bint) setBint(x *bint) {
	(*big.Int)(z).Set((*big.Int)(x))
}

func (z *bint) setInt64(x int64) {
	(*big.Int)(z).SetInt64(x)
}

func (z *bint) setFint(x fint) {
	(*big.Int)(z).SetUint64(uint64(x))
}

// setDigit sets z to the value of a single hexadecimal or decimal digit.
func (z *bint) setDigit(d byte) {
	z.setFint(fint(d))
}

// uint128 converts z to a 128-bit unsigned integer.
// If z cannot be represented in 128 bits, the result is undefined.
func (z *bint) uint128() int128.Uint128 {
	x := (*big.Int)(z)
	var u int128.Uint128
	u.L = x.Uint64()
	h := getBint()
	defer putBint(h)
	(*big.Int)(h).Rsh(x, 64)
	u.H = (*big.Int)(h).Uint64()
	return u
}

// add calculates z = x + y.
func (z *bint) add(x, y *bint) {
	(*big.Int)(z).Add((*big.Int)(x), (*big.Int)(y))
}

// inc calcualtes z = x + 1.
func (z *bint) inc(x *bint) {
	y := bpow10[0]
	z.add(x, y)
}

// mul calculates z = x * y.
func (z *bint) mul(x, y *bint) {
	// Copying x, y to prevent heap allocations.
	if z == x {
		b := getBint()
		defer putBint(b)
		b.setBint(x)
		x = b
	}
	if z == y {
		b := getBint()
		defer putBint(b)
		b.setBint(y)
		y = b
	}
	(*big.Int)(z).Mul((*big.Int)(x), (*big.Int)(y))
}

// exp calculates z = x^y.
// If y is negative, the result is unpredictable.
func (z *bint) exp(x, y *bint) {
	(*big.Int)(z).Exp((*big.Int)(x), (*big.Int)(y), nil)
}

// pow10 calculates z = 10^power.
// If power is negative, the result is unpredictable.
func (z *bint) pow10(power int) {
	x := getBint()
	defer putBint(x)
	x.setInt64(10)
	y := getBint()
	defer putBint(y)
	y.setInt64(int64(power))
	z.exp(x, y)
}

// quoRem calculates z and r such that x = z * y + r.
func (z *bint) quoRem(x, y, r *bint) {
	(*big.Int)(z).QuoRem((*big.Int)(x), (*big.Int)(y), (*big.Int)(r))
}

func (z *bint) isOdd() bool {
	return (*big.Int)(z).Bit(0) != 0
}

// lsh (Left Shift) calculates z = x * 10^shift.
func (z *bint) lsh(x *bint, shift int) {
	var y *bint
	if shift < len(bpow10) {
		y = bpow10[shift]
	} else {
		y = getBint()
		defer putBint(y)
		y.pow10(shift)
	}
	z.mul(x, y)
}

// fsa (Fused Shift and Addition) calculates z = x * 10^shift + f.
func (z *bint) fsa(x *bint, shift int, f fint) {
	y := getBint()
	defer putBint(y)
	y.setFint(f)
	z.lsh(x, shift)
	z.add(z, y)
}

// bitLen returns length of z in binary digits.
// bitLen assumes that 0 has no digits.
func (z *bint) bitLen() int {
	return (*big.Int)(z).BitLen()
}

// bit returns the value of the i'th binary digit of z.
func (z *bint) bit(i int) uint {
	return (*big.Int)(z).Bit(i)
}

// lshBits (Left Shift) calculates z = x * 2^shift.
func (z *bint) lshBits(x *bint, shift int) {
	(*big.Int)(z).Lsh((*big.Int)(x), uint(shift))
}

// rshBits (Right Shift) calculates z = x / 2^shift and rounds result
// towards zero.
func (z *bint) rshBits(x *bint, shift int) {
	(*big.Int)(z).Rsh((*big.Int)(x), uint(shift))
}

// rshSticky (Right Shift) calculates z = x / 2^shift and sets the lowest
// bit of z if any of the discarded bits of x is 1.
func (z *bint) rshSticky(x *bint, shift int) {
	// Special cases
	switch {
	case shift <= 0:
		z.setBint(x)
		return
	case shift >= x.bitLen():
		if x.sign() != 0 {
			z.setFint(1)
		} else {
			z.setFint(0)
		}
		return
	}
	// General case
	sticky := (*big.Int)(x).TrailingZeroBits() < uint(shift)
	z.rshBits(x, shift)
	if sticky {
		z.stick()
	}
}

// stick sets the lowest binary digit of z.
func (z *bint) stick() {
	(*big.Int)(z).SetBit((*big.Int)(z), 0, 1)
}

// low2 returns the two lowest binary digits of z.
func (z *bint) low2() uint {
	return z.bit(1)<<1 | z.bit(0)
}

// pool is a cache of reusable *big.Int instances.
var pool = sync.Pool{
	New: func() any {
		return (*bint)(new(big.Int))
	},
}

// getBint obtains a *big.Int from the pool.
func getBint() *bint {
	return pool.Get().(*bint)
}

// putBint returns the *big.Int into the pool.
func putBint(b *bint) {
	pool.Put(b)
}
