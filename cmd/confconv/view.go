package main

import (
	"io"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return runView(cfg.MainConfig, cc.Out, cc.In, args)
}

func runView(cfg *MainConfig, w io.Writer, in io.Reader, args []string) error {
	return eachFile(inputFiles(args), func(i int, file string) error {
		tree, err := loadTree(cfg, in, file)
		if err != nil {
			return err
		}
		if err := writeSep(cfg, w, i); err != nil {
			return err
		}
		return writeNode(cfg, w, tree, true)
	})
}
