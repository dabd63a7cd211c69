package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "indentfmt").
		WithSynopsis("indentfmt [opts] [files]").
		WithDescription("indentfmt canonicalizes XML and JSON with a configurable indent unit.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtMain(cfg, cc, args)
		}).
		WithSubs(DetectCommand(cfg))
}

func DetectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DetectConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("detect").
		WithAliases("d").
		WithSynopsis("detect [files]").
		WithDescription("Print the detected content type (xml, json or unsupported) per input.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return detectMain(cfg, cc, args)
		})
	cfg.Detect = cmd
	return cmd
}
