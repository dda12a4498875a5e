// Package ast defines the abstract syntax tree for Java compilation units
// and the scope-binding layer that threads every node into its lexical
// context. Nodes are built by New* constructors which wire their children;
// enclosing scopes are assigned exactly once, after which the tree is
// read-only for resolution and code generation.
package ast

import "github.com/dhamidi/ono/compiler"

// Locatable is implemented by everything that sits at a source location.
type Locatable interface {
	Location() compiler.Location
}

// Located is embedded in every node.
type Located struct {
	loc compiler.Location
}

func At(loc compiler.Location) Located {
	return Located{loc: loc}
}

func (l Located) Location() compiler.Location {
	return l.loc
}

// CompileError builds a recoverable source error at the node's location.
func (l Located) CompileError(format string, args ...any) error {
	return compiler.NewError(l.loc, format, args...)
}
