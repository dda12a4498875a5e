package ast

import (
	"github.com/dhamidi/ono/compiler"
)

// maxScopeDepth bounds the upward walk during verification so that a
// corrupted chain with a cycle is reported instead of looping forever.
const maxScopeDepth = 10000

// VerifyScopes checks that every node reachable from the unit's type
// declarations is bound into a scope chain that ends at the unit itself.
// Construction binds most of the tree; this pass catches nodes that were
// assembled by hand and never attached.
func VerifyScopes(cu *CompilationUnit) error {
	tr := &Traverser{
		TypeDeclaration: func(td TypeDeclaration) error { return verifyChain(cu, "type declaration", td) },
		BlockStatement:  func(bs BlockStatement) error { return verifyChain(cu, "statement", bs) },
		Rvalue:          func(rv Rvalue) error { return verifyChain(cu, "expression", rv) },
		Type:            func(t Type) error { return verifyChain(cu, "type", t) },
	}
	return tr.TraverseCompilationUnit(cu)
}

func verifyChain(cu *CompilationUnit, what string, n scoped) error {
	s, err := enclosingScopeOf(cu, what, n)
	if err != nil {
		return err
	}
	for depth := 0; depth < maxScopeDepth; depth++ {
		if top, ok := s.(*CompilationUnit); ok {
			if top != cu {
				return compiler.NewError(n.Location(),
					"%s is bound into a foreign compilation unit %s", what, top.UnitName())
			}
			return nil
		}
		next, ok := s.(scoped)
		if !ok {
			// CatchClause and EnclosingScopeOfTypeDeclaration delegate
			// without a location of their own.
			inner, err := enclosingScopeOfBare(cu, what, n, s)
			if err != nil {
				return err
			}
			s = inner
			continue
		}
		inner, err := enclosingScopeOf(cu, what, next)
		if err != nil {
			return err
		}
		s = inner
	}
	return compiler.NewError(n.Location(), "scope chain of %s does not reach the compilation unit", what)
}

// enclosingScopeOf asks a node for its enclosing scope, converting the
// internal "not yet set" panic into a located, recoverable error.
func enclosingScopeOf(cu *CompilationUnit, what string, n scoped) (s Scope, err error) {
	defer func() {
		if r := recover(); r != nil {
			ie, ok := r.(*compiler.InternalError)
			if !ok {
				panic(r)
			}
			err = compiler.NewError(n.Location(), "in %s: unbound %s: %s", cu.UnitName(), what, ie.Message)
		}
	}()
	return n.EnclosingScope(), nil
}

func enclosingScopeOfBare(cu *CompilationUnit, what string, n scoped, link Scope) (s Scope, err error) {
	defer func() {
		if r := recover(); r != nil {
			ie, ok := r.(*compiler.InternalError)
			if !ok {
				panic(r)
			}
			err = compiler.NewError(n.Location(), "in %s: broken scope chain above %s: %s", cu.UnitName(), what, ie.Message)
		}
	}()
	return link.EnclosingScope(), nil
}
