package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/redlex/encode"
	"github.com/signadot/redlex/libdiff"
	"github.com/signadot/redlex/parse"
)

func tree(cfg *TreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tree.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expect != "" {
		return expectTree(cfg, cc, args)
	}
	opts := cfg.encOpts(cc.Out)
	return eachInput(cc, args, func(name string, d []byte) error {
		t, err := parse.Parse(d, cfg.parseOpts()...)
		if err != nil {
			theLog.Warn("recovered", "file", name, "diagnostics", len(t.Diags))
		}
		return encode.Encode(t, cc.Out, opts...)
	})
}

// expectTree compares the plain dump of each input with the fixture.
func expectTree(cfg *TreeConfig, cc *cli.Context, args []string) error {
	want, err := os.ReadFile(cfg.Expect)
	if err != nil {
		return fmt.Errorf("could not read fixture: %w", err)
	}
	failed := false
	err = eachInput(cc, args, func(name string, d []byte) error {
		t, _ := parse.Parse(d, cfg.parseOpts()...)
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(t, buf, encode.EncodeSpans(cfg.Spans)); err != nil {
			return err
		}
		diff := libdiff.DiffText(string(want), buf.String())
		if diff == "" {
			return nil
		}
		failed = true
		_, err := fmt.Fprintf(cc.Out, "--- %s\n+++ %s\n%s", cfg.Expect, name, diff)
		return err
	})
	if err != nil {
		return err
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}
