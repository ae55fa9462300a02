package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

// YAML is a kong.ConfigurationLoader for YAML configuration files.
//
// Top-level keys are flag names, with words separated by "-" or "_":
//
//     log-level: debug
//     graph_file: tree.gv
//     pdf: true
func YAML(r io.Reader) (kong.Resolver, error) {
	values := map[string]interface{}{}
	err := yaml.NewDecoder(r).Decode(&values)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	var f kong.ResolverFunc = func(kctx *kong.Context, parent *kong.Path, flag *kong.Flag) (interface{}, error) {
		raw, ok := values[flag.Name]
		if !ok {
			raw, ok = values[strings.ReplaceAll(flag.Name, "-", "_")]
		}
		if !ok || raw == nil {
			return nil, nil
		}
		value, err := cast.ToStringE(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", flag.Name, err)
		}
		return value, nil
	}
	return f, nil
}
