package ast

import (
	"errors"
	"testing"

	"github.com/dhamidi/ono/compiler"
)

func TestUnrollLeftAssociation(t *testing.T) {
	a := NewAmbiguousName(testLoc(1), []string{"a"})
	b := NewAmbiguousName(testLoc(1), []string{"b"})
	c := NewAmbiguousName(testLoc(1), []string{"c"})

	sum := NewBinaryOperation(testLoc(1),
		NewBinaryOperation(testLoc(1), a, "+", b), "+", c)

	operands := sum.UnrollLeftAssociation()
	if len(operands) != 3 {
		t.Fatalf("UnrollLeftAssociation() has %d operands, want 3", len(operands))
	}
	for i, want := range []Rvalue{a, b, c} {
		if operands[i] != want {
			t.Errorf("operands[%d] = %v, want %v", i, operands[i], want)
		}
	}
}

func TestUnrollLeftAssociationStopsAtOtherOperator(t *testing.T) {
	a := NewAmbiguousName(testLoc(1), []string{"a"})
	b := NewAmbiguousName(testLoc(1), []string{"b"})
	c := NewAmbiguousName(testLoc(1), []string{"c"})

	product := NewBinaryOperation(testLoc(1), a, "*", b)
	sum := NewBinaryOperation(testLoc(1), product, "+", c)

	operands := sum.UnrollLeftAssociation()
	if len(operands) != 2 {
		t.Fatalf("UnrollLeftAssociation() has %d operands, want 2", len(operands))
	}
	if operands[0] != Rvalue(product) || operands[1] != Rvalue(c) {
		t.Errorf("operands = %v, want [a * b, c]", operands)
	}
}

func TestAmbiguousNameToType(t *testing.T) {
	block := NewBlock(testLoc(1))
	name := NewAmbiguousNamePrefix(testLoc(2), []string{"java", "util", "List", "size"}, 3)
	SetEnclosingScope(name, block)

	typ := name.ToType()
	ref, ok := typ.(*ReferenceType)
	if !ok {
		t.Fatalf("ToType() = %T, want *ReferenceType", typ)
	}
	if got, want := len(ref.Identifiers), 3; got != want {
		t.Fatalf("reference type has %d identifiers, want %d", got, want)
	}
	if ref.Identifiers[2] != "List" {
		t.Errorf("last identifier = %q, want %q", ref.Identifiers[2], "List")
	}
	if got := ref.EnclosingScope(); got != Scope(block) {
		t.Errorf("reference type scope = %v, want the name's scope", got)
	}
	if again := name.ToType(); again != typ {
		t.Error("ToType() computed a second type, want the cached one")
	}
}

func TestExpressionStatementShapes(t *testing.T) {
	lv := func() Lvalue { return NewAmbiguousName(testLoc(1), []string{"x"}) }
	one := func() Rvalue { return NewIntegerLiteral(testLoc(1), "1") }

	allowed := []struct {
		name string
		expr Rvalue
	}{
		{"assignment", NewAssignment(testLoc(1), lv(), "=", one())},
		{"crement", NewPostCrement(testLoc(1), lv(), "++")},
		{"method invocation", NewMethodInvocation(testLoc(1), nil, "f", nil)},
		{"superclass method invocation", NewSuperclassMethodInvocation(testLoc(1), "f", nil)},
		{"class instance creation", NewNewClassInstance(testLoc(1), nil,
			NewReferenceType(testLoc(1), []string{"Object"}, nil), nil)},
	}
	for _, tt := range allowed {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewExpressionStatement(tt.expr); err != nil {
				t.Errorf("NewExpressionStatement(%s): %v", tt.name, err)
			}
		})
	}

	rejected := []struct {
		name string
		expr Rvalue
	}{
		{"literal", one()},
		{"binary operation", NewBinaryOperation(testLoc(1), one(), "+", one())},
		{"ambiguous name", NewAmbiguousName(testLoc(1), []string{"x"})},
		{"parenthesized assignment", NewParenthesizedExpression(testLoc(1),
			NewAssignment(testLoc(1), lv(), "=", one()))},
	}
	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewExpressionStatement(tt.expr)
			if err == nil {
				t.Fatal("expected an error, got nil")
			}
			var srcErr *compiler.Error
			if !errors.As(err, &srcErr) {
				t.Fatalf("error is %T, want *compiler.Error", err)
			}
			if !srcErr.Location.IsKnown() {
				t.Error("error has no location")
			}
		})
	}
}

func TestCrementConstructors(t *testing.T) {
	operand := NewAmbiguousName(testLoc(1), []string{"i"})

	pre := NewPreCrement(testLoc(1), "++", operand)
	if !pre.Pre || pre.Operator != "++" {
		t.Errorf("NewPreCrement: Pre = %v, Operator = %q", pre.Pre, pre.Operator)
	}

	post := NewPostCrement(testLoc(2), NewAmbiguousName(testLoc(2), []string{"i"}), "--")
	if post.Pre || post.Operator != "--" {
		t.Errorf("NewPostCrement: Pre = %v, Operator = %q", post.Pre, post.Operator)
	}
}

func TestSimpleConstantCarriesItsValue(t *testing.T) {
	c := NewSimpleConstant(testLoc(1), int64(42))
	cv := c.Constant()
	if !cv.Known {
		t.Fatal("Constant() reports unknown, want known")
	}
	if cv.Value != any(int64(42)) {
		t.Errorf("Constant() = %v, want 42", cv.Value)
	}

	// The null constant is a known constant whose value is nil.
	nullConst := NewSimpleConstant(testLoc(1), nil)
	if cv := nullConst.Constant(); !cv.Known || cv.Value != nil {
		t.Errorf("null constant = %+v, want known with nil value", cv)
	}

	null := NewNullLiteral(testLoc(2))
	if null.Value != "null" {
		t.Errorf("null literal value = %q, want %q", null.Value, "null")
	}
}
