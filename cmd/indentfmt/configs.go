package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/indentfmt/indentfmt"
	"github.com/indentfmt/indentfmt/format"

	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Indent    string `cli:"name=indent desc='indent unit for both formats: a width, tab, or a literal string'"`
	JSONInd   string `cli:"name=json-indent desc='JSON indent unit, overrides -indent'"`
	XMLInd    string `cli:"name=xml-indent desc='XML indent unit, overrides -indent'"`
	SortKeys  bool   `cli:"name=sortkeys desc='sort JSON object keys'"`
	X         bool   `cli:"name=x aliases=xml desc='treat input as xml'"`
	J         bool   `cli:"name=j aliases=json desc='treat input as json'"`
	Write     bool   `cli:"name=w desc='write results back to source files'"`
	List      bool   `cli:"name=l desc='list files whose formatting differs'"`
	Diff      bool   `cli:"name=d desc='print diffs instead of formatted output'"`
	NoConfig  bool   `cli:"name=no-config desc='skip .indentfmt.yaml lookup'"`

	Main *cli.Command
}

type DetectConfig struct {
	*MainConfig

	Detect *cli.Command
}

// declared returns the format the user forced on the command line, or
// PlainTextFormat to let content sniffing decide.
func (cfg *MainConfig) declared() format.Format {
	switch {
	case cfg.X:
		return format.XMLFormat
	case cfg.J:
		return format.JSONFormat
	default:
		return format.PlainTextFormat
	}
}

// options folds the config file (unless disabled) and the command
// line flags, flags winning, into formatting options.
func (cfg *MainConfig) options() ([]indentfmt.Option, error) {
	res := []indentfmt.Option{}
	if !cfg.NoConfig {
		fileOpts, err := loadFileConfig(".")
		if err != nil {
			return nil, err
		}
		res = append(res, fileOpts...)
	}
	if cfg.Indent != "" {
		unit, err := indentUnit(cfg.Indent)
		if err != nil {
			return nil, err
		}
		res = append(res, indentfmt.JSONIndent(unit), indentfmt.XMLIndent(unit))
	}
	if cfg.JSONInd != "" {
		unit, err := indentUnit(cfg.JSONInd)
		if err != nil {
			return nil, err
		}
		res = append(res, indentfmt.JSONIndent(unit))
	}
	if cfg.XMLInd != "" {
		unit, err := indentUnit(cfg.XMLInd)
		if err != nil {
			return nil, err
		}
		res = append(res, indentfmt.XMLIndent(unit))
	}
	if cfg.SortKeys {
		res = append(res, indentfmt.SortKeys(true))
	}
	return res, nil
}

// indentUnit turns a flag or config value into a literal indent
// string: a decimal width means that many spaces, "tab" or "\t"
// means one tab, anything else is taken literally.
func indentUnit(v string) (string, error) {
	if n, err := strconv.Atoi(v); err == nil {
		if n < 0 || n > 64 {
			return "", fmt.Errorf("%w: indent width %d out of range", cli.ErrUsage, n)
		}
		return strings.Repeat(" ", n), nil
	}
	switch v {
	case "tab", `\t`:
		return "\t", nil
	}
	return v, nil
}
