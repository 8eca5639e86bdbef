package main

import (
	"fmt"
	"io"

	"github.com/signadot/confconv/format"
	"github.com/signadot/confconv/ir"
	"github.com/signadot/confconv/patch"

	"github.com/scott-cotton/cli"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return runPatch(cfg, cc.Out, cc.In, args)
}

func runPatch(cfg *PatchConfig, w io.Writer, in io.Reader, args []string) error {
	if cfg.PatchFile == "" {
		return fmt.Errorf("%w: patch requires -p <patchfile>", cli.ErrUsage)
	}
	p, err := getPatch(cfg, in)
	if err != nil {
		return err
	}
	apply := patch.Merge
	if p.Type == ir.ArrayType {
		apply = patch.Apply
	}
	return eachFile(inputFiles(args), func(i int, file string) error {
		tree, err := loadTree(cfg.MainConfig, in, file)
		if err != nil {
			return err
		}
		res, err := apply(tree, p)
		if err != nil {
			return err
		}
		if err := writeSep(cfg.MainConfig, w, i); err != nil {
			return err
		}
		return writeNode(cfg.MainConfig, w, res, true)
	})
}

// getPatch loads the patch file, whose format comes from its suffix
// before -I.
func getPatch(cfg *PatchConfig, in io.Reader) (*ir.Node, error) {
	f, err := format.FromPath(cfg.PatchFile)
	if err != nil {
		f, err = cfg.inFormat(cfg.PatchFile)
		if err != nil {
			return nil, err
		}
	}
	c, err := loadDocFormat(cfg.MainConfig, in, cfg.PatchFile, f)
	if err != nil {
		return nil, err
	}
	return c.ToValue()
}
