package classify

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// DefaultOperators are the infix operators recognized by default.
var DefaultOperators = []string{
	">>>", "==", "<=", "<>", "<<", ">=", ">>",
	"=", "<", ">", "+", "-", "*", "/",
}

type Config struct {
	Infix            bool     `yaml:"infix"`
	Operators        []string `yaml:"operators"`
	Hexa             bool     `yaml:"hexa"`
	RawStrings       bool     `yaml:"rawStrings"`
	MultilineStrings bool     `yaml:"multilineStrings"`
}

func DefaultConfig() Config {
	return Config{
		Infix:            true,
		Operators:        append([]string(nil), DefaultOperators...),
		Hexa:             true,
		RawStrings:       true,
		MultilineStrings: true,
	}
}

type fileConfig struct {
	Infix            *bool    `yaml:"infix"`
	Operators        []string `yaml:"operators"`
	Hexa             *bool    `yaml:"hexa"`
	RawStrings       *bool    `yaml:"rawStrings"`
	MultilineStrings *bool    `yaml:"multilineStrings"`
}

// ParseConfig reads a yaml config.  Keys absent from d keep their
// default values.
func ParseConfig(d []byte) (Config, error) {
	cfg := DefaultConfig()
	fc := &fileConfig{}
	if err := yaml.Unmarshal(d, fc); err != nil {
		return cfg, fmt.Errorf("error parsing classifier config: %w", err)
	}
	set := func(dst *bool, v *bool) {
		if v != nil {
			*dst = *v
		}
	}
	set(&cfg.Infix, fc.Infix)
	set(&cfg.Hexa, fc.Hexa)
	set(&cfg.RawStrings, fc.RawStrings)
	set(&cfg.MultilineStrings, fc.MultilineStrings)
	if fc.Operators != nil {
		cfg.Operators = fc.Operators
	}
	for _, op := range cfg.Operators {
		if op == "" || strings.ContainsAny(op, " \t\n") {
			return cfg, fmt.Errorf("%w: bad operator %q", ErrConfig, op)
		}
	}
	return cfg, nil
}

func LoadConfig(path string) (Config, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), err
	}
	cfg, err := ParseConfig(d)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
