package main

import (
	"fmt"
	"strconv"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"

	"github.com/signadot/redlex/encode"
	"github.com/signadot/redlex/ir"
	"github.com/signadot/redlex/token"
)

// tokenEnv is the environment of -where expressions.
type tokenEnv struct {
	Type  string
	Class string
	Text  string
	Start int
	End   int
	Line  int
	Col   int
}

func compileWhere(where string) (*vm.Program, error) {
	if where == "" {
		return nil, nil
	}
	prg, err := expr.Compile(where, expr.Env(tokenEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: bad -where expression: %w", cli.ErrUsage, err)
	}
	return prg, nil
}

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		return err
	}
	prg, err := compileWhere(cfg.Where)
	if err != nil {
		return err
	}
	colors := cfg.colors(cc.Out)
	return eachInput(cc, args, func(name string, d []byte) error {
		doc := token.NewPosDoc(d)
		for _, tok := range token.Tokenize(nil, d, cfg.scanOpts()...) {
			line, col := doc.LineCol(tok.Start)
			env := tokenEnv{
				Type:  tok.Type.String(),
				Class: ir.ClassOf(tok.Type).String(),
				Text:  tok.Text(d),
				Start: tok.Start,
				End:   tok.End,
				Line:  line + 1,
				Col:   col + 1,
			}
			if prg != nil {
				out, err := expr.Run(prg, env)
				if err != nil {
					return err
				}
				if !out.(bool) {
					continue
				}
			}
			if _, err := fmt.Fprintln(cc.Out, formatToken(&env, ir.ClassOf(tok.Type), colors)); err != nil {
				return err
			}
		}
		return nil
	})
}

func formatToken(env *tokenEnv, cl ir.Class, colors *encode.Colors) string {
	pos := fmt.Sprintf("%d:%d", env.Line, env.Col)
	text := strconv.Quote(env.Text)
	typ := env.Type
	if colors != nil {
		pos = colors.Color(cl, encode.SpanColor, pos)
		typ = colors.Color(cl, encode.TypeColor, typ)
		text = colors.Color(cl, encode.TextColor, text)
	}
	return fmt.Sprintf("%s\t%s\t%s", pos, typ, text)
}
