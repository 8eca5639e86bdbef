package main

import (
	"io"
	"strings"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return runConvert(cfg.MainConfig, cc.Out, cc.In, args)
}

func runConvert(cfg *MainConfig, w io.Writer, in io.Reader, args []string) error {
	return eachFile(inputFiles(args), func(i int, file string) error {
		c, err := loadDoc(cfg, in, file)
		if err != nil {
			return err
		}
		if err := writeSep(cfg, w, i); err != nil {
			return err
		}
		if cfg.useColor(w, false) {
			tree, err := c.ToValue()
			if err != nil {
				return err
			}
			return writeNode(cfg, w, tree, false)
		}
		out, err := c.To(cfg.outFormat())
		if err != nil {
			return err
		}
		if out != "" && !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		_, err = io.WriteString(w, out)
		return err
	})
}
