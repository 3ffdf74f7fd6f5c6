// Package classify provides the default [token.Classifier] for Red
// source: whitespace delimited infix operators, uppercase hex literals
// ending in 'h', %{...}% raw strings and brace delimited multiline
// strings.
//
// The recognized classes and the operator table are configured with a
// [Config], which may be loaded from yaml.
package classify
