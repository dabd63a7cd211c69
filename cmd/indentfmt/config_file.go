package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/indentfmt/indentfmt"

	"github.com/goccy/go-yaml"
)

const configName = ".indentfmt.yaml"

// fileConfig mirrors the recognized settings of the original tool:
// widths or literal indent strings, and the key-sort flag.
type fileConfig struct {
	JSONIndent   any  `yaml:"json_indent"`
	JSONSortKeys bool `yaml:"json_sortkeys"`
	XMLIndent    any  `yaml:"xml_indent"`
}

// loadFileConfig searches dir and its parents for .indentfmt.yaml and
// converts it to options. A missing file yields no options.
func loadFileConfig(dir string) ([]indentfmt.Option, error) {
	path, err := findConfig(dir)
	if err != nil || path == "" {
		return nil, err
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	fc := &fileConfig{}
	if err := yaml.Unmarshal(d, fc); err != nil {
		return nil, fmt.Errorf("could not parse %q: %w", path, err)
	}
	res := []indentfmt.Option{}
	if unit, ok, err := configUnit(fc.JSONIndent, path); err != nil {
		return nil, err
	} else if ok {
		res = append(res, indentfmt.JSONIndent(unit))
	}
	if unit, ok, err := configUnit(fc.XMLIndent, path); err != nil {
		return nil, err
	} else if ok {
		res = append(res, indentfmt.XMLIndent(unit))
	}
	if fc.JSONSortKeys {
		res = append(res, indentfmt.SortKeys(true))
	}
	return res, nil
}

func findConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		path := filepath.Join(dir, configName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func configUnit(v any, path string) (string, bool, error) {
	switch t := v.(type) {
	case nil:
		return "", false, nil
	case int:
		unit, err := indentUnit(fmt.Sprintf("%d", t))
		return unit, err == nil, err
	case uint64:
		unit, err := indentUnit(fmt.Sprintf("%d", t))
		return unit, err == nil, err
	case string:
		unit, err := indentUnit(t)
		return unit, err == nil, err
	default:
		return "", false, fmt.Errorf("bad indent value %v in %q", v, path)
	}
}
