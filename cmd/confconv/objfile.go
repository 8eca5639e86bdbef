package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/confconv"
	"github.com/signadot/confconv/encode"
	"github.com/signadot/confconv/format"
	"github.com/signadot/confconv/ir"
	"github.com/signadot/confconv/properties"

	"go.uber.org/multierr"
)

func readInput(in io.Reader, path string) ([]byte, error) {
	r := in
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// loadDoc reads and converts the document at path, "-" being in.
func loadDoc(cfg *MainConfig, in io.Reader, path string) (*confconv.Converter, error) {
	f, err := cfg.inFormat(path)
	if err != nil {
		return nil, err
	}
	return loadDocFormat(cfg, in, path, f)
}

func loadDocFormat(cfg *MainConfig, in io.Reader, path string, f format.Format) (*confconv.Converter, error) {
	d, err := readInput(in, path)
	if err != nil {
		return nil, err
	}
	c := confconv.New(confconv.WithSpaces(cfg.indent())).From(f, string(d))
	if err := c.Convert(); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return c, nil
}

func loadTree(cfg *MainConfig, in io.Reader, path string) (*ir.Node, error) {
	c, err := loadDoc(cfg, in, path)
	if err != nil {
		return nil, err
	}
	return c.ToValue()
}

func inputFiles(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

// eachFile calls fn on every file and combines the errors.
func eachFile(files []string, fn func(i int, file string) error) error {
	var errs error
	for i, file := range files {
		if err := fn(i, file); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", file, err))
		}
	}
	return errs
}

func writeSep(cfg *MainConfig, w io.Writer, i int) error {
	if i == 0 || cfg.outFormat() != format.YAMLFormat {
		return nil
	}
	_, err := io.WriteString(w, "---\n")
	return err
}

// writeNode writes node in the output format. Scalars written as
// properties are written bare.
func writeNode(cfg *MainConfig, w io.Writer, node *ir.Node, auto bool) error {
	if cfg.outFormat() == format.PropertiesFormat && node.Type.IsLeaf() {
		_, err := io.WriteString(w, properties.ScalarString(node)+"\n")
		return err
	}
	if err := encode.Encode(node, w, cfg.encOpts(w, auto)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
