package ast

import "github.com/dhamidi/ono/compiler"

// ToType converts an atom to a type, or returns nil if the atom cannot
// denote one. An ambiguous name converts to the reference type it spells.
func ToType(a Atom) Type {
	switch n := a.(type) {
	case *AmbiguousName:
		return n.ToType()
	case Type:
		return n
	}
	return nil
}

// ToTypeOrError is ToType with a recoverable error instead of nil.
func ToTypeOrError(a Atom) (Type, error) {
	if t := ToType(a); t != nil {
		return t, nil
	}
	return nil, compiler.NewError(a.Location(), "expression %q is not a type", a)
}

// ToRvalue converts an atom to an rvalue, or returns nil if the atom is
// not an expression.
func ToRvalue(a Atom) Rvalue {
	if rv, ok := a.(Rvalue); ok {
		return rv
	}
	return nil
}

// ToRvalueOrError is ToRvalue with a recoverable error instead of nil.
func ToRvalueOrError(a Atom) (Rvalue, error) {
	if rv := ToRvalue(a); rv != nil {
		return rv, nil
	}
	return nil, compiler.NewError(a.Location(), "expression %q is not an rvalue", a)
}

// ToLvalue converts an atom to an lvalue, or returns nil if the atom does
// not designate a storage location.
func ToLvalue(a Atom) Lvalue {
	if lv, ok := a.(Lvalue); ok {
		return lv
	}
	return nil
}

// ToLvalueOrError is ToLvalue with a recoverable error instead of nil.
func ToLvalueOrError(a Atom) (Lvalue, error) {
	if lv := ToLvalue(a); lv != nil {
		return lv, nil
	}
	return nil, compiler.NewError(a.Location(), "expression %q is not an lvalue", a)
}
