package texttable

import (
	"errors"
	"fmt"
	"strings"
)

// TableEdgesType configures if Markdown tables
// keep their outermost pipe delimiters.
type TableEdgesType string

const (
	// TableEdgesAuto decides per table, see Formatter.IsBorderless.
	TableEdgesAuto TableEdgesType = "Auto"
	// TableEdgesNormal always writes the outer pipes.
	TableEdgesNormal TableEdgesType = "Normal"
	// TableEdgesBorderless never writes the outer pipes.
	TableEdgesBorderless TableEdgesType = "Borderless"
)

// Valid returns if t is one of the defined TableEdgesType values.
func (t TableEdgesType) Valid() bool {
	switch t {
	case TableEdgesAuto, TableEdgesNormal, TableEdgesBorderless:
		return true
	}
	return false
}

// MarshalText implements encoding.TextMarshaler
func (t TableEdgesType) MarshalText() ([]byte, error) {
	if t == "" {
		return []byte(TableEdgesAuto), nil
	}
	return []byte(t), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
// accepting the value names case insensitively.
func (t *TableEdgesType) UnmarshalText(text []byte) error {
	for _, v := range []TableEdgesType{TableEdgesAuto, TableEdgesNormal, TableEdgesBorderless} {
		if strings.EqualFold(string(text), string(v)) {
			*t = v
			return nil
		}
	}
	return fmt.Errorf("invalid markdown.tableEdgesType: %q", text)
}

// MarkdownConfig holds the options for pipe delimited tables.
type MarkdownConfig struct {
	// OneSpacePadding writes separator cells with one space
	// inside the pipe delimiters like "| --- |" instead of "|-----|".
	OneSpacePadding bool `json:"oneSpacePadding" yaml:"oneSpacePadding"`

	// TableEdgesType selects if the outer pipes are written.
	TableEdgesType TableEdgesType `json:"tableEdgesType" yaml:"tableEdgesType"`
}

// CommonConfig holds the options for all table formats.
type CommonConfig struct {
	// ExplicitFullwidthChars are counted as 2 columns wide
	// independent of their Unicode East Asian width.
	ExplicitFullwidthChars []string `json:"explicitFullwidthChars" yaml:"explicitFullwidthChars"`

	// TrimTrailingWhitespace removes trailing whitespace
	// from every formatted line.
	TrimTrailingWhitespace bool `json:"trimTrailingWhitespace" yaml:"trimTrailingWhitespace"`

	// CenterAlignedHeader centers the content of header rows.
	CenterAlignedHeader bool `json:"centerAlignedHeader" yaml:"centerAlignedHeader"`

	// RightAlignedNumeric right aligns columns
	// where all body cells look numeric.
	RightAlignedNumeric bool `json:"rightAlignedNumeric" yaml:"rightAlignedNumeric"`
}

// Config is the configuration passed to every detection and formatting
// call. There is no package level configuration state.
//
// Example:
//
//	config := NewDefaultConfig()
//	config.Common.RightAlignedNumeric = true
//	edits := FormatAll(Lines(lines), config)
type Config struct {
	Markdown MarkdownConfig `json:"markdown" yaml:"markdown"`
	Common   CommonConfig   `json:"common" yaml:"common"`

	// NumberParser decides which cells are numeric
	// for Common.RightAlignedNumeric.
	// If nil, then NewStringParser() is used.
	NumberParser NumberParser `json:"-" yaml:"-"`
}

// NewDefaultConfig returns a Config with the defaults:
//   - Markdown.OneSpacePadding: true
//   - Markdown.TableEdgesType: Auto
//   - Common.TrimTrailingWhitespace: true
//   - all other options false or empty
func NewDefaultConfig() *Config {
	return &Config{
		Markdown: MarkdownConfig{
			OneSpacePadding: true,
			TableEdgesType:  TableEdgesAuto,
		},
		Common: CommonConfig{
			TrimTrailingWhitespace: true,
		},
	}
}

// Validate checks the Config.
// It can be safely called on a nil receiver.
func (c *Config) Validate() error {
	switch {
	case c == nil:
		return errors.New("<nil> texttable.Config")
	case c.Markdown.TableEdgesType != "" && !c.Markdown.TableEdgesType.Valid():
		return fmt.Errorf("invalid markdown.tableEdgesType: %q", c.Markdown.TableEdgesType)
	}
	for _, chars := range c.Common.ExplicitFullwidthChars {
		if chars == "" {
			return errors.New("empty string in common.explicitFullwidthChars")
		}
	}
	return nil
}

// configOrDefault returns config or NewDefaultConfig() if config is nil.
func configOrDefault(config *Config) *Config {
	if config == nil {
		return NewDefaultConfig()
	}
	return config
}

func (c *Config) numberParser() NumberParser {
	if c.NumberParser == nil {
		return NewStringParser()
	}
	return c.NumberParser
}

func (c *Config) widthCounter() *WidthCounter {
	return NewWidthCounter(c.Common.ExplicitFullwidthChars)
}
