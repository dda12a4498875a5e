package ast

import (
	"fmt"
	"strings"
)

// Atom is anything that can appear where the parser cannot yet tell a
// package prefix, a type and an expression apart: `a.b.c` starts out as an
// atom and is reclassified once scopes are known.
type Atom interface {
	Locatable
	fmt.Stringer
	AcceptAtom(v AtomVisitor) error
}

// Type is a type as written in the source, before resolution.
type Type interface {
	Atom
	// SetEnclosingScope binds the type and any types it contains into the
	// scope chain. Binding is write-once; see setScope.
	SetEnclosingScope(s Scope)
	EnclosingScope() Scope
	AcceptType(v TypeVisitor) error
	typeNode() *typeBase
}

// ConstantValue is the cached result of constant evaluation for an
// expression. Known distinguishes "not evaluated or not constant" from a
// constant whose value is nil (the null literal).
type ConstantValue struct {
	Known bool
	Value any
}

// Rvalue is an expression that produces a value.
type Rvalue interface {
	Atom
	ArrayInitializerOrRvalue
	EnclosingScope() Scope
	// Constant returns the cached constant value of the expression.
	Constant() ConstantValue
	// SetConstant records the expression's constant value. A nil value
	// records the null constant, not absence.
	SetConstant(value any)
	AcceptRvalue(v RvalueVisitor) error
	AcceptElementValue(v ElementValueVisitor) error
	rvalueNode() *rvalueBase
}

// Lvalue is an expression that additionally designates a storage location.
type Lvalue interface {
	Rvalue
	AcceptLvalue(v LvalueVisitor) error
}

// ArrayInitializerOrRvalue is what may initialize a variable declarator or
// an array element: an expression or a nested array initializer.
type ArrayInitializerOrRvalue interface {
	Locatable
	arrayInitializerOrRvalue()
}

type typeBase struct {
	Located
	enclosing Scope
}

func (t *typeBase) typeNode() *typeBase { return t }

func (t *typeBase) SetEnclosingScope(s Scope) {
	setScope(&t.enclosing, t, "type", s)
}

func (t *typeBase) EnclosingScope() Scope {
	return getScope(t.enclosing, t, "type")
}

func (t *typeBase) enclosingScopeOrNil() Scope { return t.enclosing }

type rvalueBase struct {
	Located
	enclosing Scope
	constant  ConstantValue
}

func (r *rvalueBase) rvalueNode() *rvalueBase       { return r }
func (r *rvalueBase) arrayInitializerOrRvalue()     {}
func (r *rvalueBase) Constant() ConstantValue       { return r.constant }
func (r *rvalueBase) SetConstant(value any)         { r.constant = ConstantValue{Known: true, Value: value} }

func (r *rvalueBase) EnclosingScope() Scope {
	return getScope(r.enclosing, r, "expression")
}

func (r *rvalueBase) enclosingScopeOrNil() Scope { return r.enclosing }

// Package is a package prefix that survived reclassification of an
// ambiguous name, e.g. the `java.util` in `java.util.List.of`.
type Package struct {
	Located
	Name string
}

func NewPackage(l Located, name string) *Package {
	return &Package{Located: l, Name: name}
}

func (p *Package) String() string                  { return p.Name }
func (p *Package) AcceptAtom(v AtomVisitor) error  { return v.VisitPackage(p) }

func joinIdentifiers(identifiers []string) string {
	return strings.Join(identifiers, ".")
}
