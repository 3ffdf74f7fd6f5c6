// Package parse builds the expression tree of Red source text.
//
// # Usage
//
//	tree, err := parse.Parse([]byte(`x: func [a] [a + 1]`))
//	if err != nil {
//	    // tree is still complete; err lists recovered diagnostics
//	}
//
//	// Parse with the default classifier
//	tree, err := parse.Parse(data, parse.ParseClassifier(classify.Default()))
//
// Parse never fails to produce a tree.  Unrecognized input becomes error
// leaves and containers left open at end of input end there, each with
// a diagnostic in [ir.Tree.Diags].
//
// # Related Packages
//
//   - github.com/signadot/redlex/token - Token scanning
//   - github.com/signadot/redlex/ir - Tree representation
//   - github.com/signadot/redlex/encode - Tree dumps
package parse
