package ast

import (
	"fmt"
	"strings"
)

// Annotation is one of the three source forms of an annotation.
type Annotation interface {
	Locatable
	ElementValue
	fmt.Stringer
	AnnotationType() Type
	SetEnclosingScope(s Scope)
	AcceptAnnotation(v AnnotationVisitor) error
}

// ElementValue is what may appear as an annotation element: an expression,
// a nested annotation or an element value array.
type ElementValue interface {
	Locatable
	AcceptElementValue(v ElementValueVisitor) error
}

// bindElementValue threads an element value and everything below it into
// the scope chain.
func bindElementValue(ev ElementValue, s Scope) {
	switch n := ev.(type) {
	case Rvalue:
		SetEnclosingScope(n, s)
	case Annotation:
		n.SetEnclosingScope(s)
	case *ElementValueArrayInitializer:
		for _, v := range n.Values {
			bindElementValue(v, s)
		}
	}
}

// MarkerAnnotation is an annotation without an argument list, `@Foo`.
type MarkerAnnotation struct {
	Located
	Type Type
}

func NewMarkerAnnotation(annotationType Type) *MarkerAnnotation {
	return &MarkerAnnotation{Located: At(annotationType.Location()), Type: annotationType}
}

func (a *MarkerAnnotation) AnnotationType() Type { return a.Type }
func (a *MarkerAnnotation) String() string       { return "@" + a.Type.String() }

func (a *MarkerAnnotation) SetEnclosingScope(s Scope) {
	a.Type.SetEnclosingScope(s)
}

func (a *MarkerAnnotation) AcceptAnnotation(v AnnotationVisitor) error {
	return v.VisitMarkerAnnotation(a)
}

func (a *MarkerAnnotation) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitAnnotationElement(a)
}

// SingleElementAnnotation is `@Foo(value)`.
type SingleElementAnnotation struct {
	Located
	Type         Type
	ElementValue ElementValue
}

func NewSingleElementAnnotation(annotationType Type, elementValue ElementValue) *SingleElementAnnotation {
	return &SingleElementAnnotation{
		Located:      At(annotationType.Location()),
		Type:         annotationType,
		ElementValue: elementValue,
	}
}

func (a *SingleElementAnnotation) AnnotationType() Type { return a.Type }

func (a *SingleElementAnnotation) String() string {
	return "@" + a.Type.String() + "(...)"
}

func (a *SingleElementAnnotation) SetEnclosingScope(s Scope) {
	a.Type.SetEnclosingScope(s)
	bindElementValue(a.ElementValue, s)
}

func (a *SingleElementAnnotation) AcceptAnnotation(v AnnotationVisitor) error {
	return v.VisitSingleElementAnnotation(a)
}

func (a *SingleElementAnnotation) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitAnnotationElement(a)
}

// ElementValuePair is one `name = value` element of a normal annotation.
type ElementValuePair struct {
	Name         string
	ElementValue ElementValue
}

// NormalAnnotation is `@Foo(a = x, b = y)`.
type NormalAnnotation struct {
	Located
	Type              Type
	ElementValuePairs []ElementValuePair
}

func NewNormalAnnotation(annotationType Type, pairs []ElementValuePair) *NormalAnnotation {
	return &NormalAnnotation{
		Located:           At(annotationType.Location()),
		Type:              annotationType,
		ElementValuePairs: pairs,
	}
}

func (a *NormalAnnotation) AnnotationType() Type { return a.Type }

func (a *NormalAnnotation) String() string {
	names := make([]string, len(a.ElementValuePairs))
	for i, p := range a.ElementValuePairs {
		names[i] = p.Name + " = ..."
	}
	return "@" + a.Type.String() + "(" + strings.Join(names, ", ") + ")"
}

func (a *NormalAnnotation) SetEnclosingScope(s Scope) {
	a.Type.SetEnclosingScope(s)
	for _, p := range a.ElementValuePairs {
		bindElementValue(p.ElementValue, s)
	}
}

func (a *NormalAnnotation) AcceptAnnotation(v AnnotationVisitor) error {
	return v.VisitNormalAnnotation(a)
}

func (a *NormalAnnotation) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitAnnotationElement(a)
}

// ElementValueArrayInitializer is `{ v1, v2, ... }` in element position.
type ElementValueArrayInitializer struct {
	Located
	Values []ElementValue
}

func NewElementValueArrayInitializer(l Located, values []ElementValue) *ElementValueArrayInitializer {
	return &ElementValueArrayInitializer{Located: l, Values: values}
}

func (e *ElementValueArrayInitializer) String() string { return "{ ... }" }

func (e *ElementValueArrayInitializer) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitElementValueArrayInitializer(e)
}
