package ast

import "testing"

func TestStatementConstructionBindsSubexpressions(t *testing.T) {
	lhs := NewAmbiguousName(testLoc(1), []string{"x"})
	b := NewAmbiguousName(testLoc(1), []string{"b"})
	c := NewAmbiguousName(testLoc(1), []string{"c"})
	sum := NewBinaryOperation(testLoc(1), b, "+", c)
	assignment := NewAssignment(testLoc(1), lhs, "=", sum)

	stmt, err := NewExpressionStatement(assignment)
	if err != nil {
		t.Fatalf("NewExpressionStatement: %v", err)
	}

	for _, e := range []Rvalue{assignment, lhs, sum, b, c} {
		if got := e.EnclosingScope(); got != Scope(stmt) {
			t.Errorf("%s bound to %v, want the statement", e, got)
		}
	}
}

func TestBindingReachesTypesInsideExpressions(t *testing.T) {
	target := NewReferenceType(testLoc(1), []string{"String"}, nil)
	cast := NewCast(testLoc(1), target, NewAmbiguousName(testLoc(1), []string{"x"}))

	stmt := NewReturnStatement(testLoc(1), cast)
	if got := target.EnclosingScope(); got != Scope(stmt) {
		t.Errorf("cast target type bound to %v, want the statement", got)
	}

	instType := NewReferenceType(testLoc(2), []string{"List"}, nil)
	inst := NewInstanceof(testLoc(2), NewAmbiguousName(testLoc(2), []string{"y"}), instType)
	stmt2 := NewReturnStatement(testLoc(2), inst)
	if got := instType.EnclosingScope(); got != Scope(stmt2) {
		t.Errorf("instanceof type bound to %v, want the statement", got)
	}
}

func TestArrayInitializerBindsRecursively(t *testing.T) {
	one := NewIntegerLiteral(testLoc(1), "1")
	two := NewIntegerLiteral(testLoc(1), "2")
	inner := NewArrayInitializer(testLoc(1), []ArrayInitializerOrRvalue{one, two})
	three := NewIntegerLiteral(testLoc(1), "3")
	outer := NewArrayInitializer(testLoc(1), []ArrayInitializerOrRvalue{inner, three})

	block := NewBlock(testLoc(1))
	SetEnclosingScope(outer, block)

	for _, e := range []Rvalue{one, two, three} {
		if got := e.EnclosingScope(); got != Scope(block) {
			t.Errorf("%s bound to %v, want the block", e, got)
		}
	}
}

func TestAnonymousClassDeclarationBoundAsAWhole(t *testing.T) {
	decl := NewAnonymousClassDeclaration(testLoc(1),
		NewReferenceType(testLoc(1), []string{"Runnable"}, nil))
	decl.AddDeclaredMethod(emptyMethod("run", []BlockStatement{NewEmptyStatement(testLoc(2))}))

	instance := NewNewAnonymousClassInstance(testLoc(1), nil, decl, nil)
	stmt := NewReturnStatement(testLoc(1), instance)

	if got := decl.EnclosingScope(); got != Scope(stmt) {
		t.Errorf("anonymous class bound to %v, want the statement", got)
	}
	// The body was bound at construction time and stays bound to the
	// declaration, not to the surrounding statement.
	run := decl.MethodDeclaration("run")
	if run == nil {
		t.Fatal("anonymous class lost its run method")
	}
	if got := run.DeclaringType(); got != TypeDeclaration(decl) {
		t.Errorf("run declared in %v, want the anonymous class", got)
	}
}

func TestBindingMethodArgumentsAndTargets(t *testing.T) {
	target := NewAmbiguousName(testLoc(1), []string{"System", "out"})
	arg := NewStringLiteral(testLoc(1), `"hi"`)
	call := NewMethodInvocation(testLoc(1), target, "println", []Rvalue{arg})

	stmt, err := NewExpressionStatement(call)
	if err != nil {
		t.Fatalf("NewExpressionStatement: %v", err)
	}
	if got := target.EnclosingScope(); got != Scope(stmt) {
		t.Errorf("invocation target bound to %v, want the statement", got)
	}
	if got := arg.EnclosingScope(); got != Scope(stmt) {
		t.Errorf("argument bound to %v, want the statement", got)
	}
}
