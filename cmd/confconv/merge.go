package main

import (
	"fmt"
	"io"

	"github.com/signadot/confconv/ir"
	"github.com/signadot/confconv/patch"

	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return runMerge(cfg.MainConfig, cc.Out, cc.In, args)
}

func runMerge(cfg *MainConfig, w io.Writer, in io.Reader, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: merge requires at least one file", cli.ErrUsage)
	}
	docs := make([]*ir.Node, len(args))
	err := eachFile(args, func(i int, file string) error {
		tree, err := loadTree(cfg, in, file)
		docs[i] = tree
		return err
	})
	if err != nil {
		return err
	}
	res, err := patch.MergeAll(docs...)
	if err != nil {
		return err
	}
	return writeNode(cfg, w, res, true)
}
