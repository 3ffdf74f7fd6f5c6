package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/redlex/ir"
	"github.com/signadot/redlex/parse"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	n := 0
	err = eachInput(cc, args, func(name string, d []byte) error {
		t, _ := parse.Parse(d, cfg.parseOpts()...)
		for i := range t.Diags {
			diag := &t.Diags[i]
			line, col := t.Doc().LineCol(diag.Start)
			if _, err := fmt.Fprintf(cc.Out, "%s:%d:%d: %s\n", name, line+1, col+1, describe(t, diag)); err != nil {
				return err
			}
			n++
		}
		return nil
	})
	if err != nil {
		return err
	}
	if n > 0 {
		theLog.Warn("check failed", "diagnostics", n)
		return cli.ExitCodeErr(1)
	}
	return nil
}

func describe(t *ir.Tree, d *ir.Diag) string {
	switch d.Kind {
	case ir.UnterminatedDiag:
		return fmt.Sprintf("unterminated %s", d.Type)
	default:
		return fmt.Sprintf("invalid %q", t.Src[d.Start:d.End])
	}
}
