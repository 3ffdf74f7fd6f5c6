package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/scott-cotton/cli"

	"github.com/signadot/redlex/encode"
	"github.com/signadot/redlex/ir"
	"github.com/signadot/redlex/parse"
)

const (
	promptMain  = "redlex> "
	promptCont  = "   ...> "
	historyFile = ".redlex_history"
)

func repl(cfg *ReplConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Repl.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: repl takes no arguments", cli.ErrUsage)
	}
	histPath := cfg.History
	if histPath == "" {
		home, _ := os.UserHomeDir()
		histPath = filepath.Join(home, historyFile)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		f, err := os.Create(histPath)
		if err != nil {
			theLog.Warn("could not save history", "path", histPath, "error", err)
			return
		}
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}()

	opts := cfg.encOpts(cc.Out)
	for {
		t, ok := readTree(cfg, ln)
		if !ok {
			fmt.Fprintln(cc.Out)
			return nil
		}
		if t == nil {
			continue
		}
		if err := encode.Encode(t, cc.Out, opts...); err != nil {
			return err
		}
		for i := range t.Diags {
			fmt.Fprintln(cc.Out, t.DiagErr(&t.Diags[i]))
		}
		ln.AppendHistory(strings.ReplaceAll(string(t.Src), "\n", " "))
	}
}

// readTree prompts until the input parses without unterminated
// containers.  It returns false at end of input.
func readTree(cfg *ReplConfig, ln *liner.State) (*ir.Tree, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return nil, false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return nil, true
		}
		if err != nil {
			return nil, false
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if strings.TrimSpace(b.String()) == "" {
			return nil, true
		}
		t, _ := parse.ParseString(b.String(), cfg.parseOpts()...)
		if !incomplete(t) {
			return t, true
		}
	}
}

func incomplete(t *ir.Tree) bool {
	for i := range t.Diags {
		if t.Diags[i].Kind == ir.UnterminatedDiag {
			return true
		}
	}
	return false
}
