package parse

import (
	"github.com/signadot/redlex/token"
)

type parseOpts struct {
	classifier token.Classifier
	keywords   bool
	includes   bool
}

func (o *parseOpts) ScanOpts() []token.ScanOption {
	if o.classifier == nil {
		return nil
	}
	return []token.ScanOption{token.ScanClassifier(o.classifier)}
}

type ParseOption func(*parseOpts)

// ParseClassifier sets the classifier for operators, hex literals and
// raw and multiline strings.
func ParseClassifier(c token.Classifier) ParseOption {
	return func(o *parseOpts) { o.classifier = c }
}

// ParseKeywords controls recognition of the function, does, context,
// while and loop constructs.  It is on by default.
func ParseKeywords(v bool) ParseOption {
	return func(o *parseOpts) { o.keywords = v }
}

// ParseIncludes controls recognition of top level #include directives.
// It is on by default.
func ParseIncludes(v bool) ParseOption {
	return func(o *parseOpts) { o.includes = v }
}
