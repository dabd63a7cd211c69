package main

import (
	"fmt"
	"io"
	"os"

	"github.com/indentfmt/indentfmt"
	"github.com/indentfmt/indentfmt/debug"
	"github.com/indentfmt/indentfmt/format"

	"github.com/scott-cotton/cli"
)

func fmtMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		cfg.Main.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	opts, err := cfg.options()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmtReader(cfg, cc.Out, cc.In, "<stdin>", opts)
	}
	differs := false
	for _, file := range args {
		d, err := fmtFile(cfg, cc.Out, file, opts)
		if err != nil {
			return err
		}
		differs = differs || d
	}
	if cfg.List && differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func fmtReader(cfg *MainConfig, w io.Writer, r io.Reader, name string, opts []indentfmt.Option) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", name, err)
	}
	out, err := formatInput(cfg, name, string(in), opts)
	if err != nil {
		return err
	}
	if cfg.Diff {
		return printDiff(w, name, string(in), out)
	}
	_, err = w.Write([]byte(out))
	return err
}

// fmtFile formats one file and reports whether its content changed.
func fmtFile(cfg *MainConfig, w io.Writer, file string, opts []indentfmt.Option) (bool, error) {
	if file == "-" {
		return false, fmtReader(cfg, w, os.Stdin, "<stdin>", opts)
	}
	in, err := os.ReadFile(file)
	if err != nil {
		return false, fmt.Errorf("could not read %q: %w", file, err)
	}
	out, err := formatInput(cfg, file, string(in), opts)
	if err != nil {
		return false, fmt.Errorf("%s: %w", file, err)
	}
	differs := out != string(in)
	switch {
	case cfg.Diff:
		if differs {
			if err := printDiff(w, file, string(in), out); err != nil {
				return differs, err
			}
		}
	case cfg.List:
		if differs {
			fmt.Fprintln(w, file)
		}
	case cfg.Write:
		if differs {
			st, err := os.Stat(file)
			if err != nil {
				return differs, err
			}
			if err := os.WriteFile(file, []byte(out), st.Mode().Perm()); err != nil {
				return differs, fmt.Errorf("could not write %q: %w", file, err)
			}
		}
	default:
		if _, err := w.Write([]byte(out)); err != nil {
			return differs, err
		}
	}
	return differs, nil
}

func formatInput(cfg *MainConfig, name, in string, opts []indentfmt.Option) (string, error) {
	declared := cfg.declared()
	if declared == format.PlainTextFormat && name != "<stdin>" {
		declared = format.DetectFilename(name, in)
	}
	f := format.Detect(in, declared)
	debug.Logf(debug.Format(), "indentfmt: %s detected as %s", name, f)
	return indentfmt.Format(in, f, opts...)
}

func detectMain(cfg *DetectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Detect.Parse(cc, args)
	if err != nil {
		cfg.Detect.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		in, err := io.ReadAll(cc.In)
		if err != nil {
			return err
		}
		fmt.Fprintln(cc.Out, format.Detect(string(in), cfg.declared()))
		return nil
	}
	for _, file := range args {
		in, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("could not read %q: %w", file, err)
		}
		f := format.Detect(string(in), cfg.declared())
		if cfg.declared() == format.PlainTextFormat {
			f = format.DetectFilename(file, string(in))
		}
		fmt.Fprintf(cc.Out, "%s: %s\n", file, f)
	}
	return nil
}
