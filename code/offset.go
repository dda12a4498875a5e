// Package code carries the small pieces of code-generation state that the
// syntax tree has to hold on to: branch target offsets reserved before their
// final position is known, and the fix-ups that patch them.
package code

import "github.com/dhamidi/ono/compiler"

// Offset is a placeholder for a byte offset in a generated code attribute.
// Break and continue statements reserve one before code generation knows
// where the jump will land; Resolve assigns the final value exactly once.
type Offset struct {
	value    int
	resolved bool
}

func NewOffset() *Offset {
	return &Offset{}
}

func (o *Offset) Resolved() bool {
	return o.resolved
}

// Resolve assigns the final byte offset. Resolving twice is a bug in the
// code generator and panics.
func (o *Offset) Resolve(value int) {
	if o.resolved {
		compiler.Internalf("offset already resolved to %d", o.value)
	}
	o.value = value
	o.resolved = true
}

// Value returns the resolved byte offset and panics when the offset was
// never resolved.
func (o *Offset) Value() int {
	if !o.resolved {
		compiler.Internalf("offset not yet resolved")
	}
	return o.value
}

// FixUp is a deferred patch against generated code. Implementations capture
// the offsets they need and apply themselves once all offsets are resolved.
type FixUp interface {
	FixUp()
}
