package main

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/govalues/charconv"
	"github.com/scott-cotton/cli"
)

// result is one converted literal.
type result struct {
	Input  string
	N      int
	Bits   string
	Value  string
	Status string
}

func fromChars(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	// Negative literals follow "--", which the parser hands back as is.
	if i := slices.Index(args, "--"); i >= 0 {
		args = slices.Delete(args, i, i+1)
	}
	logger := cfg.logger(cc.Err)
	pal := cfg.palette(cc.Out)

	emit := func(in string) {
		res := convert(in, cfg.Layout, cfg.Format, cfg.Whole)
		logger.Debug("convert",
			"input", in,
			"layout", cfg.Layout,
			"format", cfg.Format,
			"consumed", res.N,
			"status", res.Status)
		fmt.Fprintln(cc.Out, res.line(pal))
	}

	if len(args) != 0 {
		for _, arg := range args {
			emit(arg)
		}
		return nil
	}
	sc := bufio.NewScanner(cc.In)
	for sc.Scan() {
		emit(sc.Text())
	}
	if err := sc.Err(); err != nil {
		logger.Error("reading input", "err", err)
		return err
	}
	return nil
}

// convert converts the longest prefix of in that is a literal in format f
// to layout l. If whole is set, that prefix must be all of in.
func convert(in string, l charconv.Layout, f charconv.Format, whole bool) result {
	var b charconv.Bits
	n, err := charconv.FromCharsBits([]byte(in), &b, l, f)
	if whole && n != len(in) {
		n, err = 0, charconv.ErrInvalid
	}
	res := result{Input: in, N: n, Status: status(err)}
	if n == 0 {
		return res
	}
	res.Bits = hexBits(l, b)
	res.Value = value(l, b)
	return res
}

func status(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, charconv.ErrOverflow):
		return "overflow"
	case errors.Is(err, charconv.ErrUnderflow):
		return "underflow"
	case errors.Is(err, charconv.ErrInvalid):
		return "invalid"
	}
	return err.Error()
}

// hexBits returns the interchange encoding of b as a zero-padded
// hexadecimal number.
func hexBits(l charconv.Layout, b charconv.Bits) string {
	u := l.Pack(b)
	w := (l.Width() + 3) / 4
	if w > 16 {
		return fmt.Sprintf("0x%0*x%016x", w-16, u.H, u.L)
	}
	return fmt.Sprintf("0x%0*x", w, u.L)
}

// value returns the shortest decimal form of b for the layouts that have
// a native Go type, and "-" otherwise.
func value(l charconv.Layout, b charconv.Bits) string {
	u := l.Pack(b)
	switch l {
	case charconv.Binary64:
		return strconv.FormatFloat(math.Float64frombits(u.L), 'g', -1, 64)
	case charconv.Binary32:
		return strconv.FormatFloat(float64(math.Float32frombits(uint32(u.L))), 'g', -1, 32)
	}
	return "-"
}

func (r result) line(pal *palette) string {
	st := pal.OK("%s", r.Status)
	if r.Status != "ok" {
		st = pal.Err("%s", r.Status)
	}
	if r.N == 0 {
		return fmt.Sprintf("%s\t%d\t%s", pal.Input("%q", r.Input), r.N, st)
	}
	return fmt.Sprintf("%s\t%d\t%s\t%s\t%s",
		pal.Input("%q", r.Input), r.N, pal.Bits("%s", r.Bits), pal.Value("%s", r.Value), st)
}
