package main

import (
	"flag"
	"fmt"

	fs "github.com/ungerik/go-fs"
	"gopkg.in/yaml.v3"

	"github.com/domonda/go-texttable"
)

// loadConfig returns the default configuration
// overwritten by the YAML or JSON file at path if path is not empty.
func loadConfig(path string) (*texttable.Config, error) {
	config := texttable.NewDefaultConfig()
	if path == "" {
		return config, nil
	}
	data, err := fs.File(path).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return config, nil
}

// configFlags are command line overrides of the config file.
type configFlags struct {
	edges         string
	noPadding     bool
	numeric       bool
	centerHeader  bool
	keepTrailing  bool
	fullwidthChar string
}

func (f *configFlags) register(flags *flag.FlagSet) {
	flags.StringVar(&f.edges, "edges", "", "Markdown table edges: Auto, Normal or Borderless")
	flags.BoolVar(&f.noPadding, "no-padding", false, "Write separator cells without spaces inside the pipes")
	flags.BoolVar(&f.numeric, "numeric", false, "Right align numeric columns")
	flags.BoolVar(&f.centerHeader, "center-header", false, "Center the content of header rows")
	flags.BoolVar(&f.keepTrailing, "keep-trailing", false, "Keep trailing whitespace of formatted lines")
	flags.StringVar(&f.fullwidthChar, "fullwidth", "", "Characters counted as 2 columns wide")
}

// apply overwrites config with the flags that were set on the command line.
func (f *configFlags) apply(flags *flag.FlagSet, config *texttable.Config) error {
	var err error
	flags.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "edges":
			if e := config.Markdown.TableEdgesType.UnmarshalText([]byte(f.edges)); e != nil {
				err = e
			}
		case "no-padding":
			config.Markdown.OneSpacePadding = !f.noPadding
		case "numeric":
			config.Common.RightAlignedNumeric = f.numeric
		case "center-header":
			config.Common.CenterAlignedHeader = f.centerHeader
		case "keep-trailing":
			config.Common.TrimTrailingWhitespace = !f.keepTrailing
		case "fullwidth":
			config.Common.ExplicitFullwidthChars = append(config.Common.ExplicitFullwidthChars, f.fullwidthChar)
		}
	})
	if err != nil {
		return err
	}
	return config.Validate()
}
