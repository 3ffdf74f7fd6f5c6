// Package encode writes trees as indented, line oriented dumps.
//
// # Usage
//
//	tree, _ := parse.Parse([]byte(`x: [a 1]`))
//	err := encode.Encode(tree, os.Stdout)
//
// produces
//
//	sequence
//	  set-word x:
//	  block
//	    word a
//	    number 1
//
// Options add byte spans and terminal colors.
//
// # Related Packages
//
//   - github.com/signadot/redlex/ir - Tree representation
//   - github.com/signadot/redlex/parse - Parse text to trees
package encode
