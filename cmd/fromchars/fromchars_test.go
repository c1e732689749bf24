package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/govalues/charconv"
	"github.com/scott-cotton/cli"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		in    string
		l     charconv.Layout
		f     charconv.Format
		whole bool
		want  result
	}{
		{"1", charconv.Binary64, charconv.General, false, result{"1", 1, "0x3ff0000000000000", "1", "ok"}},
		{"0.1abc", charconv.Binary64, charconv.General, false, result{"0.1abc", 3, "0x3fb999999999999a", "0.1", "ok"}},
		{"-1.5e", charconv.Binary32, charconv.General, false, result{"-1.5e", 4, "0xbfc00000", "-1.5", "ok"}},
		{"1p-1", charconv.Binary16, charconv.Hex, false, result{"1p-1", 4, "0x3800", "-", "ok"}},
		{"1e400", charconv.Binary64, charconv.General, false, result{"1e400", 5, "0x7ff0000000000000", "+Inf", "overflow"}},
		{"1e-400", charconv.Binary64, charconv.General, false, result{"1e-400", 6, "0x0000000000000000", "0", "underflow"}},
		{"1", charconv.Extended80, charconv.General, false, result{"1", 1, "0x3fff8000000000000000", "-", "ok"}},
		{"1", charconv.Binary128, charconv.General, false, result{"1", 1, "0x3fff0000000000000000000000000000", "-", "ok"}},
		{"x", charconv.Binary64, charconv.General, false, result{"x", 0, "", "", "invalid"}},
		{"1.8p1", charconv.Binary64, charconv.Hex, true, result{"1.8p1", 5, "0x4008000000000000", "3", "ok"}},
		{"1.5x", charconv.Binary64, charconv.General, true, result{"1.5x", 0, "", "", "invalid"}},
		{"1.5e", charconv.Binary64, charconv.General, true, result{"1.5e", 0, "", "", "invalid"}},
		{"-1e999", charconv.Binary32, charconv.General, true, result{"-1e999", 6, "0xff800000", "-Inf", "overflow"}},
		{"1e-999", charconv.Binary32, charconv.Scientific, true, result{"1e-999", 6, "0x00000000", "0", "underflow"}},

		// The format applies to whole literals too.
		{"1.5", charconv.Binary64, charconv.Scientific, true, result{"1.5", 0, "", "", "invalid"}},
		{"1.5", charconv.Binary64, charconv.Scientific, false, result{"1.5", 0, "", "", "invalid"}},
		{"1.5e3", charconv.Binary64, charconv.Fixed, true, result{"1.5e3", 0, "", "", "invalid"}},
		{"1.5e3", charconv.Binary64, charconv.Fixed, false, result{"1.5e3", 3, "0x3ff8000000000000", "1.5", "ok"}},
		{"0x1p3", charconv.Binary64, charconv.Hex, true, result{"0x1p3", 0, "", "", "invalid"}},
	}
	for _, tt := range tests {
		got := convert(tt.in, tt.l, tt.f, tt.whole)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("convert(%q, %v, %v, %v) mismatch (-want +got):\n%s", tt.in, tt.l, tt.f, tt.whole, diff)
		}
	}
}

func TestLine(t *testing.T) {
	pal := plainPalette()
	tests := []struct {
		r    result
		want string
	}{
		{result{"1", 1, "0x3c00", "-", "ok"}, "\"1\"\t1\t0x3c00\t-\tok"},
		{result{"?", 0, "", "", "invalid"}, "\"?\"\t0\tinvalid"},
	}
	for _, tt := range tests {
		if got := tt.r.line(pal); got != tt.want {
			t.Errorf("%v.line() = %q, want %q", tt.r, got, tt.want)
		}
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func newTestContext(in string, out, errOut *bytes.Buffer) *cli.Context {
	return &cli.Context{
		In:  io.NopCloser(strings.NewReader(in)),
		Out: nopWriteCloser{out},
		Err: nopWriteCloser{errOut},
		Go:  context.Background(),
	}
}

func TestMainCommand(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			name string
			args []string
			in   string
			want []string
		}{
			{
				name: "args",
				args: []string{"1", "0.1abc"},
				in:   "2\n",
				want: []string{
					"\"1\"\t1\t0x3ff0000000000000\t1\tok",
					"\"0.1abc\"\t3\t0x3fb999999999999a\t0.1\tok",
				},
			},
			{
				name: "stdin",
				in:   "1.5\nx\n",
				want: []string{
					"\"1.5\"\t3\t0x3ff8000000000000\t1.5\tok",
					"\"x\"\t0\tinvalid",
				},
			},
			{
				name: "layout and format",
				args: []string{"-l", "binary16", "-f", "hex", "1p-1"},
				want: []string{"\"1p-1\"\t4\t0x3800\t-\tok"},
			},
			{
				name: "aliases",
				args: []string{"--layout", "single", "--format", "s", "1e-999", "1.5"},
				want: []string{
					"\"1e-999\"\t6\t0x00000000\t0\tunderflow",
					"\"1.5\"\t0\tinvalid",
				},
			},
			{
				name: "whole",
				args: []string{"-w", "1.5e", "2"},
				want: []string{
					"\"1.5e\"\t0\tinvalid",
					"\"2\"\t1\t0x4000000000000000\t2\tok",
				},
			},
			{
				name: "negative",
				args: []string{"-w", "--", "-1.5"},
				want: []string{"\"-1.5\"\t4\t0xbff8000000000000\t-1.5\tok"},
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				var out, errOut bytes.Buffer
				cc := newTestContext(tt.in, &out, &errOut)
				if err := MainCommand().Run(cc, tt.args); err != nil {
					t.Fatalf("Run(%q) failed: %v", tt.args, err)
				}
				got := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("Run(%q) output mismatch (-want +got):\n%s", tt.args, diff)
				}
			})
		}
	})

	t.Run("verbose", func(t *testing.T) {
		var out, errOut bytes.Buffer
		cc := newTestContext("", &out, &errOut)
		if err := MainCommand().Run(cc, []string{"-v", "1"}); err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		if got := errOut.String(); !strings.Contains(got, "msg=convert") || !strings.Contains(got, "status=ok") {
			t.Errorf("Run logged %q, want a convert record", got)
		}
	})

	t.Run("usage", func(t *testing.T) {
		tests := map[string][]string{
			"format":        {"-f", "bogus", "1"},
			"layout":        {"-l", "bogus", "1"},
			"missing value": {"1", "-l"},
			"unknown":       {"-q", "1"},
		}
		for name, args := range tests {
			t.Run(name, func(t *testing.T) {
				var out, errOut bytes.Buffer
				cc := newTestContext("", &out, &errOut)
				err := MainCommand().Run(cc, args)
				if !errors.Is(err, cli.ErrUsage) {
					t.Errorf("Run(%q) error = %v, want %v", args, err, cli.ErrUsage)
				}
				if out.Len() != 0 {
					t.Errorf("Run(%q) wrote %q, want nothing", args, out.String())
				}
			})
		}
	})
}
