package main

import (
	"github.com/govalues/charconv"
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Format: charconv.General, Layout: charconv.Binary64}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "f",
			Aliases:     []string{"format"},
			Description: "literal format: general/g, scientific/s, fixed/f, hex/x",
			Type:        cli.NamedFuncOpt(cfg.formatOpt, "(format)"),
		},
		&cli.Opt{
			Name:        "l",
			Aliases:     []string{"layout"},
			Description: "target layout: binary16, binary32, binary64, extended80, binary128",
			Type:        cli.NamedFuncOpt(cfg.layoutOpt, "(layout)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "fromchars").
		WithSynopsis("fromchars [opts] [literals]").
		WithDescription("fromchars converts numeric literals to binary floating-point values.\n" +
			"Each literal, or each line of stdin if none is given, is printed with\n" +
			"the number of bytes consumed, the encoded bits, the value and the status.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fromChars(cfg, cc, args)
		})
}
