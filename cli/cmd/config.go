package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/titanous/json5"

	"github.com/ardnew/logfront/pkg"
	"github.com/ardnew/logfront/rules"
)

// Format identifies the syntax of a configuration file.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON5
)

// String returns the conventional file extension of f, without the dot.
func (f Format) String() string {
	if f == FormatJSON5 {
		return "json5"
	}

	return "yaml"
}

// FormatOf returns the format of the configuration file at path, determined
// by its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json5", ".json":
		return FormatJSON5, nil
	default:
		return 0, ErrUnknownFormat.Wrap(fmt.Errorf("%q", path))
	}
}

func (f Format) unmarshal(data []byte, v any) error {
	if f == FormatJSON5 {
		return json5.Unmarshal(data, v)
	}

	return yaml.Unmarshal(data, v)
}

// rulesKey is the top-level configuration key holding level rules.
const rulesKey = "rules"

// Config is a decoded configuration file.
//
// Every top-level key other than "rules" names a command-line flag (without
// the leading dashes), and its value is the flag's default. Scalars are
// rendered as strings and lists as comma-separated strings, which is the form
// kong expects from a resolver.
type Config struct {
	Flags map[string]any
	Rules []rules.Rule
}

// DecodeConfig decodes a configuration document in the given format.
// An empty document decodes to an empty Config.
func DecodeConfig(data []byte, format Format) (*Config, error) {
	cfg := &Config{Flags: map[string]any{}}

	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	var flags map[string]any
	if err := format.unmarshal(data, &flags); err != nil {
		return nil, pkg.ErrConfigDecode.Wrapf("%s", format).Wrap(err)
	}

	var doc struct {
		Rules []rules.Rule `json:"rules" yaml:"rules"`
	}
	if err := format.unmarshal(data, &doc); err != nil {
		return nil, pkg.ErrRuleDecode.Wrapf("%s", format).Wrap(err)
	}

	delete(flags, rulesKey)

	for key, val := range flags {
		cfg.Flags[key] = resolverValue(val)
	}

	cfg.Rules = doc.Rules

	return cfg, nil
}

// LoadConfig reads and decodes the configuration file at path.
// The format is chosen with [FormatOf].
func LoadConfig(path string) (*Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkg.ErrReadInput.Wrap(err)
	}

	return DecodeConfig(data, format)
}

// RuleSet compiles the level rules of c.
func (c *Config) RuleSet() (*rules.Set, error) {
	if c == nil {
		return rules.Compile()
	}

	return rules.Compile(c.Rules...)
}

func resolverValue(v any) any {
	switch v := v.(type) {
	case nil, bool, string:
		return v

	case []any:
		part := make([]string, 0, len(v))
		for _, e := range v {
			part = append(part, fmt.Sprint(resolverValue(e)))
		}

		return strings.Join(part, ",")

	default:
		// Kong requires numbers as strings for parsing
		return fmt.Sprint(v)
	}
}
