package ast

import (
	"errors"
	"testing"
)

// buildTraverserTestUnit assembles a unit covering the node kinds the
// traverser descends into: imports, a class with a field, constructor,
// methods, control flow, an anonymous class and an enum.
func buildTraverserTestUnit(t *testing.T) *CompilationUnit {
	t.Helper()

	unit := NewCompilationUnit("Test.java")
	unit.SetPackageDeclaration(NewPackageDeclaration(testLoc(1), "pkg"))
	unit.AddImportDeclaration(NewSingleTypeImportDeclaration(testLoc(2), []string{"java", "util", "List"}))

	outer := newTestClass(t, unit, "Outer")

	outer.AddFieldDeclaration(NewFieldDeclaration(
		testLoc(3), "", NewModifiers(ModPrivate),
		NewBasicType(testLoc(3), PrimitiveInt),
		[]*VariableDeclarator{NewVariableDeclarator(testLoc(3), "count", 0,
			NewIntegerLiteral(testLoc(3), "0"))}))

	setCount, err := NewExpressionStatement(NewAssignment(
		testLoc(5),
		NewFieldAccessExpression(testLoc(5), NewThisReference(testLoc(5)), "count"),
		"=",
		NewAmbiguousName(testLoc(5), []string{"count"})))
	if err != nil {
		t.Fatalf("NewExpressionStatement: %v", err)
	}
	outer.AddConstructor(NewConstructorDeclarator(
		testLoc(4), "", NewModifiers(ModPublic),
		NewFormalParameters(testLoc(4), []*FormalParameter{
			NewFormalParameter(testLoc(4), false, NewBasicType(testLoc(4), PrimitiveInt), "count"),
		}, false),
		nil, nil, []BlockStatement{setCount}))

	body := NewBlock(testLoc(8))
	body.AddStatement(mustExpressionStatement(t,
		NewPostCrement(testLoc(9), NewAmbiguousName(testLoc(9), []string{"i"}), "++")))
	loop := NewWhileStatement(testLoc(8),
		NewBinaryOperation(testLoc(8),
			NewAmbiguousName(testLoc(8), []string{"i"}), "<",
			NewAmbiguousName(testLoc(8), []string{"count"})),
		body)
	outer.AddDeclaredMethod(NewMethodDeclarator(
		testLoc(7), "", NewModifiers(ModPublic), nil,
		NewBasicType(testLoc(7), PrimitiveVoid), "spin",
		NewFormalParameters(testLoc(7), []*FormalParameter{
			NewFormalParameter(testLoc(7), false, NewBasicType(testLoc(7), PrimitiveInt), "i"),
		}, false),
		nil, []BlockStatement{loop}))

	anon := NewAnonymousClassDeclaration(testLoc(12),
		NewReferenceType(testLoc(12), []string{"Runnable"}, nil))
	anon.AddDeclaredMethod(emptyMethod("run", []BlockStatement{NewEmptyStatement(testLoc(13))}))
	outer.AddDeclaredMethod(NewMethodDeclarator(
		testLoc(11), "", NewModifiers(ModPublic), nil,
		NewReferenceType(testLoc(11), []string{"Runnable"}, nil), "task",
		NewFormalParameters(testLoc(11), nil, false), nil,
		[]BlockStatement{NewReturnStatement(testLoc(12),
			NewNewAnonymousClassInstance(testLoc(12), nil, anon, nil))}))

	enum, err := NewPackageMemberEnumDeclaration(
		testLoc(20), "", NewModifiers(ModPublic), "Tone", nil)
	if err != nil {
		t.Fatalf("NewPackageMemberEnumDeclaration: %v", err)
	}
	enum.AddConstant(NewEnumConstant(testLoc(21), "", nil, "FORMAL", nil))
	unit.AddPackageMemberTypeDeclaration(enum)

	return unit
}

// mustExpressionStatement wraps NewExpressionStatement for expressions the
// test knows to be statement-shaped.
func mustExpressionStatement(t *testing.T, rvalue Rvalue) *ExpressionStatement {
	t.Helper()
	s, err := NewExpressionStatement(rvalue)
	if err != nil {
		t.Fatalf("NewExpressionStatement: %v", err)
	}
	return s
}

func TestTraverserVisitsAllNodeKinds(t *testing.T) {
	unit := buildTraverserTestUnit(t)

	var types, statements, rvalues, typeRefs, imports int
	seen := make(map[TypeDeclaration]bool)
	tr := &Traverser{
		TypeDeclaration: func(td TypeDeclaration) error {
			types++
			seen[td] = true
			return nil
		},
		BlockStatement: func(bs BlockStatement) error { statements++; return nil },
		Rvalue:         func(rv Rvalue) error { rvalues++; return nil },
		Type:           func(tp Type) error { typeRefs++; return nil },
		Import:         func(id ImportDeclaration) error { imports++; return nil },
	}
	if err := tr.TraverseCompilationUnit(unit); err != nil {
		t.Fatalf("TraverseCompilationUnit: %v", err)
	}

	// Outer, the anonymous class, the enum and its constant.
	if types != 4 {
		t.Errorf("visited %d type declarations, want 4", types)
	}
	if imports != 1 {
		t.Errorf("visited %d imports, want 1", imports)
	}
	if statements == 0 || rvalues == 0 || typeRefs == 0 {
		t.Errorf("visited %d statements, %d rvalues, %d types, want all > 0",
			statements, rvalues, typeRefs)
	}

	for _, pmtd := range unit.PackageMemberTypeDeclarations() {
		if !seen[pmtd] {
			t.Errorf("top-level declaration %s was not visited", pmtd)
		}
	}
}

func TestTraverserDescendsIntoAnonymousClasses(t *testing.T) {
	unit := buildTraverserTestUnit(t)

	var sawAnonymous bool
	var sawEmptyInsideRun bool
	tr := &Traverser{
		TypeDeclaration: func(td TypeDeclaration) error {
			if _, ok := td.(*AnonymousClassDeclaration); ok {
				sawAnonymous = true
			}
			return nil
		},
		BlockStatement: func(bs BlockStatement) error {
			if _, ok := bs.(*EmptyStatement); ok {
				sawEmptyInsideRun = true
			}
			return nil
		},
	}
	if err := tr.TraverseCompilationUnit(unit); err != nil {
		t.Fatalf("TraverseCompilationUnit: %v", err)
	}
	if !sawAnonymous {
		t.Error("anonymous class declaration was not visited")
	}
	if !sawEmptyInsideRun {
		t.Error("statement inside the anonymous class body was not visited")
	}
}

func TestTraverserHookErrorAbortsWalk(t *testing.T) {
	unit := buildTraverserTestUnit(t)

	boom := errors.New("stop here")
	var calls int
	tr := &Traverser{
		Rvalue: func(rv Rvalue) error {
			calls++
			return boom
		},
	}
	err := tr.TraverseCompilationUnit(unit)
	if !errors.Is(err, boom) {
		t.Fatalf("TraverseCompilationUnit = %v, want the hook's error", err)
	}
	if calls != 1 {
		t.Errorf("hook called %d times after returning an error, want 1", calls)
	}
}

func TestTraverserWithoutHooksJustDescends(t *testing.T) {
	unit := buildTraverserTestUnit(t)
	tr := &Traverser{}
	if err := tr.TraverseCompilationUnit(unit); err != nil {
		t.Fatalf("TraverseCompilationUnit: %v", err)
	}
}
