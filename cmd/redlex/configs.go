package main

import (
	"io"
	"os"

	"github.com/signadot/redlex/classify"
	"github.com/signadot/redlex/encode"
	"github.com/signadot/redlex/parse"
	"github.com/signadot/redlex/token"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Spans   bool `cli:"name=spans desc='include byte spans'"`
	NoClass bool `cli:"name=raw desc='disable the default classifier'"`

	Classifier *classify.Classifier

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) configOpt(_ *cli.Context, a string) (any, error) {
	c, err := classify.LoadConfig(a)
	if err != nil {
		return nil, err
	}
	cfg.Classifier = classify.New(c)
	theLog.Debug("loaded classifier config", "path", a)
	return a, nil
}

func (cfg *MainConfig) classifier() token.Classifier {
	if cfg.NoClass {
		return token.NoClassifier{}
	}
	if cfg.Classifier == nil {
		cfg.Classifier = classify.Default()
	}
	return cfg.Classifier
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseClassifier(cfg.classifier()),
	}
}

func (cfg *MainConfig) scanOpts() []token.ScanOption {
	return []token.ScanOption{
		token.ScanClassifier(cfg.classifier()),
	}
}

// colors returns the colors for w, or nil when output is plain.  Without
// an explicit -color, terminals get color.
func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.Color {
		return encode.NewColors()
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" && opt.Value != nil {
			return nil
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeSpans(cfg.Spans),
	}
	if c := cfg.colors(w); c != nil {
		res = append(res, encode.EncodeColors(c))
	}
	return res
}

type TokensConfig struct {
	*MainConfig
	Where string `cli:"name=where desc='only print tokens matching an expr-lang expression'"`

	Tokens *cli.Command
}

type TreeConfig struct {
	*MainConfig
	Expect string `cli:"name=expect desc='compare the dump against a fixture file'"`

	Tree *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ReplConfig struct {
	*MainConfig
	History string `cli:"name=history desc='history file (default ~/.redlex_history)'"`

	Repl *cli.Command
}
