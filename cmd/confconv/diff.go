package main

import (
	"fmt"
	"io"

	"github.com/signadot/confconv/libdiff"
	"github.com/signadot/confconv/patch"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	differs, err := runDiff(cfg, cc.Out, cc.In, args)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func runDiff(cfg *DiffConfig, w io.Writer, in io.Reader, args []string) (bool, error) {
	if len(args) != 2 {
		return false, fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := loadTree(cfg.MainConfig, in, args[0])
	if err != nil {
		return false, err
	}
	b, err := loadTree(cfg.MainConfig, in, args[1])
	if err != nil {
		return false, err
	}
	changes := libdiff.Diff(a, b)
	if cfg.Reverse {
		changes = libdiff.Reverse(changes)
		a, b = b, a
	}
	if len(changes) == 0 {
		return false, nil
	}
	if cfg.MergePatch {
		mp, err := patch.Diff(a, b)
		if err != nil {
			return true, err
		}
		return true, writeNode(cfg.MainConfig, w, mp, true)
	}
	return true, libdiff.Write(w, changes, cfg.useColor(w, true))
}
