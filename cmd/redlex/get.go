package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/redlex/encode"
	"github.com/signadot/redlex/parse"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a node path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	opts := cfg.encOpts(cc.Out)
	return eachInput(cc, args[1:], func(name string, d []byte) error {
		t, _ := parse.Parse(d, cfg.parseOpts()...)
		ids, err := t.ListPath(nil, path)
		if err != nil {
			return err
		}
		for _, id := range ids {
			if err := encode.EncodeNode(t, id, cc.Out, opts...); err != nil {
				return err
			}
		}
		return nil
	})
}
