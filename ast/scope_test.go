package ast

import (
	"strings"
	"testing"

	"github.com/dhamidi/ono/compiler"
)

func testLoc(line int) Located {
	return At(compiler.At("Test.java", line, 1))
}

// expectInternalError fails the test unless fn panics with an
// *compiler.InternalError whose message contains substr.
func expectInternalError(t *testing.T, substr string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected internal error containing %q, got no panic", substr)
		}
		ie, ok := r.(*compiler.InternalError)
		if !ok {
			t.Fatalf("expected *compiler.InternalError, got %T: %v", r, r)
		}
		if !strings.Contains(ie.Message, substr) {
			t.Errorf("internal error = %q, want it to contain %q", ie.Message, substr)
		}
	}()
	fn()
}

func newTestClass(t *testing.T, unit *CompilationUnit, name string) *PackageMemberClassDeclaration {
	t.Helper()
	d, err := NewPackageMemberClassDeclaration(
		testLoc(1), "", NewModifiers(ModPublic), name, nil, nil, nil)
	if err != nil {
		t.Fatalf("NewPackageMemberClassDeclaration(%q): %v", name, err)
	}
	unit.AddPackageMemberTypeDeclaration(d)
	return d
}

func emptyMethod(name string, statements []BlockStatement) *MethodDeclarator {
	return NewMethodDeclarator(
		testLoc(2), "", NewModifiers(ModPublic), nil,
		NewBasicType(testLoc(2), PrimitiveVoid), name,
		NewFormalParameters(testLoc(2), nil, false), nil, statements)
}

func TestSetEnclosingScopeIsWriteOnce(t *testing.T) {
	block1 := NewBlock(testLoc(1))
	block2 := NewBlock(testLoc(2))
	stmt := NewEmptyStatement(testLoc(3))

	stmt.SetEnclosingScope(block1)
	stmt.SetEnclosingScope(block1) // same scope again is a no-op

	if got := stmt.EnclosingScope(); got != Scope(block1) {
		t.Fatalf("EnclosingScope() = %v, want block1", got)
	}

	expectInternalError(t, "enclosing scope already set", func() {
		stmt.SetEnclosingScope(block2)
	})
}

func TestRebindToClassInitializerIsIgnored(t *testing.T) {
	block := NewBlock(testLoc(1))
	stmt := NewEmptyStatement(testLoc(2))
	stmt.SetEnclosingScope(block)

	clinit := emptyMethod(ClassInitializerName, nil)
	stmt.SetEnclosingScope(clinit)

	if got := stmt.EnclosingScope(); got != Scope(block) {
		t.Fatalf("EnclosingScope() = %v, want the original block", got)
	}
}

func TestEnclosingScopeUnboundPanics(t *testing.T) {
	stmt := NewEmptyStatement(testLoc(1))
	expectInternalError(t, "enclosing scope not yet set", func() {
		_ = stmt.EnclosingScope()
	})
}

func TestEnclosingTypeDeclaration(t *testing.T) {
	unit := NewCompilationUnit("Test.java")
	outer := newTestClass(t, unit, "Outer")

	stmt := NewEmptyStatement(testLoc(3))
	method := emptyMethod("f", []BlockStatement{stmt})
	outer.AddDeclaredMethod(method)

	if got := EnclosingTypeDeclaration(stmt); got != TypeDeclaration(outer) {
		t.Errorf("EnclosingTypeDeclaration(stmt) = %v, want Outer", got)
	}
	if got := EnclosingTypeDeclaration(outer.EnclosingScope()); got != nil {
		t.Errorf("EnclosingTypeDeclaration(unit) = %v, want nil", got)
	}
}

// The chain walkers are used on trees that are still being assembled, so a
// chain that has not reached a type or unit yet yields nil instead of the
// unbound-node panic.
func TestChainWalkersOnIncompleteChains(t *testing.T) {
	unbound := NewEmptyStatement(testLoc(1))
	if got := EnclosingTypeDeclaration(unbound); got != nil {
		t.Errorf("EnclosingTypeDeclaration(unbound statement) = %v, want nil", got)
	}

	// A statement inside a method whose declaring type is not set yet.
	stmt := NewEmptyStatement(testLoc(2))
	orphan := emptyMethod("f", []BlockStatement{stmt})
	if got := EnclosingTypeDeclaration(stmt); got != nil {
		t.Errorf("EnclosingTypeDeclaration(orphaned stmt) = %v, want nil", got)
	}
	if got := EnclosingCompilationUnit(orphan); got != nil {
		t.Errorf("EnclosingCompilationUnit(orphan method) = %v, want nil", got)
	}
}

func TestEnclosingCompilationUnit(t *testing.T) {
	unit := NewCompilationUnit("Test.java")
	outer := newTestClass(t, unit, "Outer")

	stmt := NewEmptyStatement(testLoc(3))
	method := emptyMethod("f", []BlockStatement{stmt})
	outer.AddDeclaredMethod(method)

	if got := EnclosingCompilationUnit(stmt); got != unit {
		t.Errorf("EnclosingCompilationUnit(stmt) = %v, want the unit", got)
	}

	unbound := NewBlock(testLoc(4))
	if got := EnclosingCompilationUnit(unbound); got != nil {
		t.Errorf("EnclosingCompilationUnit(unbound block) = %v, want nil", got)
	}
}

func TestEnclosingScopeOfTypeDeclaration(t *testing.T) {
	unit := NewCompilationUnit("Test.java")
	unit.SetPackageDeclaration(NewPackageDeclaration(testLoc(1), "pkg"))
	outer := newTestClass(t, unit, "Outer")

	bridge := &EnclosingScopeOfTypeDeclaration{TypeDeclaration: outer}
	if got := bridge.EnclosingScope(); got != Scope(unit) {
		t.Errorf("bridge.EnclosingScope() = %v, want the unit", got)
	}
	if got := bridge.String(); !strings.Contains(got, "pkg.Outer") {
		t.Errorf("bridge.String() = %q, want it to mention pkg.Outer", got)
	}
}

func TestSupertypesResolveOutsideTheDeclaredType(t *testing.T) {
	unit := NewCompilationUnit("Test.java")
	base := NewReferenceType(testLoc(1), []string{"Base"}, nil)
	d, err := NewPackageMemberClassDeclaration(
		testLoc(1), "", NewModifiers(ModPublic), "Base", nil, base, nil)
	if err != nil {
		t.Fatalf("NewPackageMemberClassDeclaration: %v", err)
	}
	unit.AddPackageMemberTypeDeclaration(d)

	bridge, ok := base.EnclosingScope().(*EnclosingScopeOfTypeDeclaration)
	if !ok {
		t.Fatalf("extended type bound to %T, want *EnclosingScopeOfTypeDeclaration", base.EnclosingScope())
	}
	if bridge.TypeDeclaration != TypeDeclaration(d) {
		t.Errorf("bridge wraps %v, want the declaring class", bridge.TypeDeclaration)
	}
}
