// Package compiler holds the contracts shared by all passes of the ono
// compiler front-end: source locations, the two kinds of errors (recoverable
// source errors and fatal internal errors), and the per-unit pass driver.
package compiler

import "fmt"

// Location identifies a point in a source file. The zero value is Nowhere.
type Location struct {
	File   string
	Line   int
	Column int
}

// Nowhere marks objects that have no source location, e.g. synthesized nodes.
var Nowhere = Location{}

func At(file string, line, column int) Location {
	return Location{File: file, Line: line, Column: column}
}

func (l Location) IsKnown() bool {
	return l.Line != 0 || l.Column != 0 || l.File != ""
}

func (l Location) String() string {
	if !l.IsKnown() {
		return "(unknown location)"
	}
	if l.File == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}
