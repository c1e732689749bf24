package charconv

import (
	"fmt"
	"math/big"
	"math/rand"
	"strings"
	"testing"
)

func TestConvertFast(t *testing.T) {
	// Every significand accepted by the fast path must agree with the
	// exact path.
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 20000; i++ {
		var s string
		switch i % 3 {
		case 0:
			s = fmt.Sprintf("%de%d", r.Int63n(1<<54), r.Intn(80)-40)
		case 1:
			s = fmt.Sprintf("%d.%de%d", r.Intn(1e7), r.Intn(1e9), r.Intn(40)-20)
		default:
			s = fmt.Sprintf("-%de%d", r.Int63n(1<<25), r.Intn(40)-20)
		}
		for _, l := range []Layout{Binary32, Binary64} {
			if err := checkTiers(s, l); err != nil {
				t.Error(err)
			}
		}
	}
}

func FuzzConvertFast(f *testing.F) {
	for _, s := range []string{
		"1", "0.1", "9007199254740993", "123456789e-22", "1e37", "16777217", "3.4e38",
		"999999999999999e22", "9999999999999999e22",
	} {
		f.Add(s)
	}

	f.Fuzz(
		func(t *testing.T, s string) {
			for _, l := range []Layout{Binary32, Binary64} {
				if err := checkTiers(s, l); err != nil {
					t.Error(err)
				}
			}
		},
	)
}

// checkTiers converts s with the fast path, if possible, and with the exact
// path and reports any difference.
func checkTiers(s string, l Layout) error {
	r := scan(s, General)
	if !r.ok {
		return nil
	}
	sig, ok := accumulateFast(s, r)
	if !ok {
		return nil
	}
	fast, ok := convertFast(sig, l)
	if !ok {
		return nil
	}
	sig.big = getBint()
	defer putBint(sig.big)
	sig.big.setFint(sig.coef)
	slow, err := convertSlow(sig, l)
	if err != nil {
		return fmt.Errorf("convertSlow(%q, %v) failed: %w", s, l, err)
	}
	if fast != slow {
		return fmt.Errorf("convertFast(%q, %v) = %+v, whereas convertSlow(%q, %v) = %+v", s, l, fast, s, l, slow)
	}
	return nil
}

func TestAccumulate(t *testing.T) {
	tests := []struct {
		s         string
		wantCoef  uint64
		wantPrec  int
		wantScale int
	}{
		{"0", 0, 0, 0},
		{"000.000", 0, 0, 0},
		{"1", 1, 1, 0},
		{"100", 1, 1, 2},
		{"0.00100", 1, 1, -3},
		{"120.0340", 120034, 6, -3},
		{"1.5e10", 15, 2, 9},
		{"9999999999999999999", 9999999999999999999, 19, 0},
		{"-7e-3", 7, 1, -3},
	}
	for _, tt := range tests {
		r := scan(tt.s, General)

		fast, ok := accumulateFast(tt.s, r)
		if !ok {
			t.Errorf("accumulateFast(%q) failed", tt.s)
			continue
		}
		if uint64(fast.coef) != tt.wantCoef || fast.prec != tt.wantPrec || fast.scale != tt.wantScale {
			t.Errorf("accumulateFast(%q) = %v, %v, %v, want %v, %v, %v",
				tt.s, fast.coef, fast.prec, fast.scale, tt.wantCoef, tt.wantPrec, tt.wantScale)
		}

		slow := accumulateSlow(tt.s, r, Binary64)
		coef := (*big.Int)(slow.big)
		if !coef.IsUint64() || coef.Uint64() != tt.wantCoef || slow.prec != tt.wantPrec || slow.scale != tt.wantScale || slow.trunc {
			t.Errorf("accumulateSlow(%q) = %v, %v, %v, %v, want %v, %v, %v, false",
				tt.s, coef, slow.prec, slow.scale, slow.trunc, tt.wantCoef, tt.wantPrec, tt.wantScale)
		}
		putBint(slow.big)
	}
}

func TestAccumulateSlow_Budget(t *testing.T) {
	tests := []struct {
		s         string
		l         Layout
		f         Format
		wantPrec  int
		wantScale int
		wantTrunc bool
	}{
		{"1" + strings.Repeat("0", 30) + "1", Binary16, General, 1, 31, true},
		{"1" + strings.Repeat("0", 30), Binary16, General, 1, 30, false},
		{"1" + strings.Repeat("0", 21) + "1", Binary16, General, 23, 0, false},
		{"1" + strings.Repeat("0", 22) + "1", Binary16, General, 1, 23, true},
		{"0.000" + strings.Repeat("7", 30), Binary16, General, 23, -26, true},
		{"1." + strings.Repeat("0", 26) + "1p0", Binary64, Hex, 1, 0, true},
		{"1." + strings.Repeat("0", 13) + "1p0", Binary64, Hex, 15, -56, false},
		{"1." + strings.Repeat("0", 28) + "1p0", Binary128, Hex, 30, -116, false},
		{"1." + strings.Repeat("0", 29) + "1p0", Binary128, Hex, 1, 0, true},
	}
	for _, tt := range tests {
		r := scan(tt.s, tt.f)
		sig := accumulateSlow(tt.s, r, tt.l)
		if sig.prec != tt.wantPrec || sig.scale != tt.wantScale || sig.trunc != tt.wantTrunc {
			t.Errorf("accumulateSlow(%q, %v) = %v, %v, %v, want %v, %v, %v",
				tt.s, tt.l, sig.prec, sig.scale, sig.trunc, tt.wantPrec, tt.wantScale, tt.wantTrunc)
		}
		putBint(sig.big)
	}
}
