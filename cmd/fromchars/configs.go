package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/govalues/charconv"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Whole   bool `cli:"name=w aliases=whole desc='require each literal to be consumed entirely in the selected format'"`
	Color   bool `cli:"name=color desc='color output even when not writing to a terminal'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log conversions to stderr'"`

	Format charconv.Format
	Layout charconv.Layout

	Main *cli.Command
}

func (cfg *MainConfig) formatOpt(_ *cli.Context, v string) (any, error) {
	f, err := charconv.ParseFormat(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Format = f
	return f, nil
}

func (cfg *MainConfig) layoutOpt(_ *cli.Context, v string) (any, error) {
	l, err := charconv.LayoutByName(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Layout = l
	return l, nil
}

func (cfg *MainConfig) logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

func (cfg *MainConfig) palette(w io.Writer) *palette {
	if cfg.Color {
		return newPalette()
	}
	f, ok := w.(*os.File)
	if !ok {
		return plainPalette()
	}
	if isatty.IsTerminal(f.Fd()) {
		return newPalette()
	}
	return plainPalette()
}
