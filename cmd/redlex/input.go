package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
)

// eachInput calls f with the contents of each file, "-" or no files
// meaning standard input.
func eachInput(cc *cli.Context, files []string, f func(name string, d []byte) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		if err := f(file, d); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

func readInput(cc *cli.Context, file string) ([]byte, error) {
	if file == "-" {
		d, err := io.ReadAll(cc.In)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return d, nil
	}
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	return d, nil
}
