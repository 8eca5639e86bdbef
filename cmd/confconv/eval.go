package main

import (
	"fmt"
	"io"

	"github.com/signadot/confconv/eval"
	"github.com/signadot/confconv/ir"

	"github.com/scott-cotton/cli"
)

func evalCmd(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Expand {
		return runExpand(cfg.MainConfig, cc.Out, cc.In, cfg.Env, args)
	}
	truthy, err := runEval(cfg.MainConfig, cc.Out, cc.In, cfg.Env, cfg.Quiet, args)
	if err != nil {
		return err
	}
	if cfg.Quiet && !truthy {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// runEval evaluates args[0] against each file and reports whether every
// result was truthy. Nothing is written when quiet is set.
func runEval(cfg *MainConfig, w io.Writer, in io.Reader, env eval.Env, quiet bool, args []string) (bool, error) {
	if len(args) == 0 {
		return false, fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	code := args[0]
	truthy := true
	err := eachFile(inputFiles(args[1:]), func(i int, file string) error {
		tree, err := loadTree(cfg, in, file)
		if err != nil {
			return err
		}
		res, err := eval.Eval(tree, code, env)
		if err != nil {
			return err
		}
		truthy = truthy && ir.Truth(res)
		if quiet {
			return nil
		}
		if err := writeSep(cfg, w, i); err != nil {
			return err
		}
		return writeNode(cfg, w, res, true)
	})
	return truthy, err
}

func runExpand(cfg *MainConfig, w io.Writer, in io.Reader, env eval.Env, args []string) error {
	return eachFile(inputFiles(args), func(i int, file string) error {
		tree, err := loadTree(cfg, in, file)
		if err != nil {
			return err
		}
		if err := eval.ExpandEnv(tree, env); err != nil {
			return err
		}
		if err := writeSep(cfg, w, i); err != nil {
			return err
		}
		return writeNode(cfg, w, tree, true)
	})
}
