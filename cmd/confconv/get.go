package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return runGet(cfg.MainConfig, cc.Out, cc.In, args)
}

func runGet(cfg *MainConfig, w io.Writer, in io.Reader, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	return eachFile(inputFiles(args[1:]), func(i int, file string) error {
		tree, err := loadTree(cfg, in, file)
		if err != nil {
			return err
		}
		node, err := tree.GetPath(path)
		if err != nil {
			return err
		}
		if node == nil {
			return fmt.Errorf("nothing at %q", path)
		}
		if err := writeSep(cfg, w, i); err != nil {
			return err
		}
		return writeNode(cfg, w, node, true)
	})
}
