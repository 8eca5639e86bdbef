package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/confconv/encode"
	"github.com/signadot/confconv/eval"
	"github.com/signadot/confconv/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Indent int  `cli:"name=indent aliases=spaces desc='indentation width for yaml and json'"`
	Color  bool `cli:"name=color desc='encode with color'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	File *FileConfig
	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

// optSet reports whether the main option name was given on the command
// line.
func (cfg *MainConfig) optSet(name string) bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

func (cfg *MainConfig) fileConfig() *FileConfig {
	if cfg.File == nil {
		fc := defaultFileConfig()
		cfg.File = &fc
	}
	return cfg.File
}

func (cfg *MainConfig) indent() int {
	if cfg.optSet("indent") {
		return cfg.Indent
	}
	return *cfg.fileConfig().Indent
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	f, err := format.ParseFormat(cfg.fileConfig().Output)
	if err != nil {
		return format.YAMLFormat
	}
	return f
}

// inFormat returns the format of the input named path: the -I format if
// given, otherwise the format of its suffix.
func (cfg *MainConfig) inFormat(path string) (format.Format, error) {
	if cfg.InFormat != nil {
		return *cfg.InFormat, nil
	}
	if path == "-" {
		return 0, fmt.Errorf("%w: -I is required to read stdin", cli.ErrUsage)
	}
	f, err := format.FromPath(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %w; use -I to set the input format", cli.ErrUsage, err)
	}
	return f, nil
}

// useColor decides on colored output. -color wins, then the config file.
// Otherwise color is used when auto is set and w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer, auto bool) bool {
	if cfg.optSet("color") || cfg.Color {
		return cfg.Color
	}
	if c := cfg.fileConfig().Color; c != nil {
		return *c
	}
	if !auto {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer, auto bool) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.Indent(cfg.indent()),
	}
	if cfg.useColor(w, auto) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env    eval.Env
	Expand bool `cli:"name=x aliases=expand desc='expand $[expr] references in the documents instead'"`
	Quiet  bool `cli:"name=q aliases=quiet desc='print nothing, exit 1 unless every result is truthy'"`

	Eval *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse    bool `cli:"name=r desc='reverse the diff'"`
	MergePatch bool `cli:"name=m aliases=merge-patch desc='output the diff as a merge patch'"`

	Diff *cli.Command
}

type MergeConfig struct {
	*MainConfig

	Merge *cli.Command
}

type PatchConfig struct {
	*MainConfig
	PatchFile string `cli:"name=p aliases=patch desc='patch file: a json patch array or a merge patch object'"`

	Patch *cli.Command
}
