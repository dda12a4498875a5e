package ast

import "github.com/dhamidi/ono/compiler"

// Scope is a link in the upward chain from any node to its compilation
// unit. Nodes are their own scopes: a statement's enclosing scope is the
// block or function that contains it, a type's is the declaration it is
// written in, and so on up to the CompilationUnit, which has none.
type Scope interface {
	EnclosingScope() Scope
}

// ClassInitializerName is the name of the synthesized function that wraps a
// class's static initializers and field assignments.
const ClassInitializerName = "<clinit>"

// ConstructorName is the name under which constructors are declared
// internally.
const ConstructorName = "<init>"

// isClassInitializerScope reports whether s is the synthesized static
// initializer function. Statements are bound into their blocks before that
// wrapper exists, so re-binding them to it is always ignored.
func isClassInitializerScope(s Scope) bool {
	md, ok := s.(*MethodDeclarator)
	return ok && md.Name == ClassInitializerName
}

// setScope assigns s to *slot exactly once. Assigning the same scope again
// is a no-op; assigning a different one is an internal error, except when
// the new scope is the synthesized static initializer.
func setScope(slot *Scope, at Locatable, what string, s Scope) {
	if *slot != nil && *slot != s {
		if isClassInitializerScope(s) {
			return
		}
		compiler.Internalf("enclosing scope already set for %s at %s", what, at.Location())
	}
	*slot = s
}

// getScope returns the scope stored in slot and panics when the node was
// never bound.
func getScope(slot Scope, at Locatable, what string) Scope {
	if slot == nil {
		compiler.Internalf("enclosing scope not yet set for %s at %s", what, at.Location())
	}
	return slot
}

// scopePeeker is implemented by the node base types so the chain walkers
// below can read the scope slot of a not-yet-bound node without tripping
// the bound-node check in getScope.
type scopePeeker interface {
	enclosingScopeOrNil() Scope
}

func peekEnclosingScope(s Scope) Scope {
	if p, ok := s.(scopePeeker); ok {
		return p.enclosingScopeOrNil()
	}
	return s.EnclosingScope()
}

// EnclosingTypeDeclaration walks the scope chain upward to the nearest type
// declaration, or nil when s is not inside one or the chain is incomplete.
func EnclosingTypeDeclaration(s Scope) TypeDeclaration {
	for ; s != nil; s = peekEnclosingScope(s) {
		if td, ok := s.(TypeDeclaration); ok {
			return td
		}
		if _, ok := s.(*CompilationUnit); ok {
			return nil
		}
	}
	return nil
}

// EnclosingCompilationUnit walks the scope chain upward to the compilation
// unit, or nil when the chain is incomplete.
func EnclosingCompilationUnit(s Scope) *CompilationUnit {
	for ; s != nil; s = peekEnclosingScope(s) {
		if cu, ok := s.(*CompilationUnit); ok {
			return cu
		}
	}
	return nil
}

// scoped is any node that has been, or should have been, bound into the
// scope chain.
type scoped interface {
	Locatable
	EnclosingScope() Scope
}

// EnclosingScopeOfTypeDeclaration makes the scope surrounding a type
// declaration addressable as a scope of its own. Types named in an extends
// or implements clause resolve here, outside the declared type, so that a
// class can extend a type with its own simple name.
type EnclosingScopeOfTypeDeclaration struct {
	TypeDeclaration TypeDeclaration
}

func (e *EnclosingScopeOfTypeDeclaration) EnclosingScope() Scope {
	return e.TypeDeclaration.EnclosingScope()
}

func (e *EnclosingScopeOfTypeDeclaration) enclosingScopeOrNil() Scope {
	return peekEnclosingScope(e.TypeDeclaration)
}

func (e *EnclosingScopeOfTypeDeclaration) String() string {
	return "enclosing scope of " + e.TypeDeclaration.ClassName()
}
