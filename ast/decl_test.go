package ast

import (
	"strings"
	"testing"
)

func TestPackageMemberClassName(t *testing.T) {
	unit := NewCompilationUnit("Test.java")
	unit.SetPackageDeclaration(NewPackageDeclaration(testLoc(1), "com.example"))
	outer := newTestClass(t, unit, "Outer")

	if got := outer.ClassName(); got != "com.example.Outer" {
		t.Errorf("ClassName() = %q, want %q", got, "com.example.Outer")
	}
}

func TestDefaultPackageClassName(t *testing.T) {
	unit := NewCompilationUnit("Test.java")
	outer := newTestClass(t, unit, "Outer")

	if got := outer.ClassName(); got != "Outer" {
		t.Errorf("ClassName() = %q, want %q", got, "Outer")
	}
}

func TestMemberTypeNames(t *testing.T) {
	unit := NewCompilationUnit("Test.java")
	unit.SetPackageDeclaration(NewPackageDeclaration(testLoc(1), "pkg"))
	outer := newTestClass(t, unit, "Outer")

	inner := NewMemberClassDeclaration(
		testLoc(2), "", NewModifiers(ModPublic), "Inner", nil, nil, nil)
	outer.AddMemberTypeDeclaration(inner)

	innermost := NewMemberInterfaceDeclaration(
		testLoc(3), "", NewModifiers(ModPublic), "Innermost", nil, nil)
	inner.AddMemberTypeDeclaration(innermost)

	if got := inner.ClassName(); got != "pkg.Outer$Inner" {
		t.Errorf("inner.ClassName() = %q, want %q", got, "pkg.Outer$Inner")
	}
	if got := innermost.ClassName(); got != "pkg.Outer$Inner$Innermost" {
		t.Errorf("innermost.ClassName() = %q, want %q", got, "pkg.Outer$Inner$Innermost")
	}
}

func TestAnonymousClassNames(t *testing.T) {
	unit := NewCompilationUnit("Test.java")
	unit.SetPackageDeclaration(NewPackageDeclaration(testLoc(1), "pkg"))
	outer := newTestClass(t, unit, "Outer")

	first := NewAnonymousClassDeclaration(testLoc(2), NewReferenceType(testLoc(2), []string{"Runnable"}, nil))
	first.SetEnclosingScope(outer)
	second := NewAnonymousClassDeclaration(testLoc(3), NewReferenceType(testLoc(3), []string{"Runnable"}, nil))
	second.SetEnclosingScope(outer)

	if got := first.ClassName(); got != "pkg.Outer$1" {
		t.Errorf("first.ClassName() = %q, want %q", got, "pkg.Outer$1")
	}
	if got := second.ClassName(); got != "pkg.Outer$2" {
		t.Errorf("second.ClassName() = %q, want %q", got, "pkg.Outer$2")
	}

	// The name is computed once and cached; re-asking must not bump the
	// counter.
	if got := first.ClassName(); got != "pkg.Outer$1" {
		t.Errorf("first.ClassName() second call = %q, want %q", got, "pkg.Outer$1")
	}

	third := NewAnonymousClassDeclaration(testLoc(4), NewReferenceType(testLoc(4), []string{"Runnable"}, nil))
	third.SetEnclosingScope(outer)
	if got := third.ClassName(); got != "pkg.Outer$3" {
		t.Errorf("third.ClassName() = %q, want %q", got, "pkg.Outer$3")
	}
}

func TestLocalClassNameCounterIsIndependent(t *testing.T) {
	unit := NewCompilationUnit("Test.java")
	unit.SetPackageDeclaration(NewPackageDeclaration(testLoc(1), "pkg"))
	outer := newTestClass(t, unit, "Outer")

	// Consume an anonymous class number first; the local class counter
	// must not be affected.
	anon := NewAnonymousClassDeclaration(testLoc(2), NewReferenceType(testLoc(2), []string{"Runnable"}, nil))
	anon.SetEnclosingScope(outer)
	if got := anon.ClassName(); got != "pkg.Outer$1" {
		t.Fatalf("anon.ClassName() = %q, want %q", got, "pkg.Outer$1")
	}

	helper := NewLocalClassDeclaration(
		testLoc(3), "", NewModifiers(0), "Helper", nil, nil, nil)
	stmt := NewLocalClassDeclarationStatement(helper)
	method := emptyMethod("f", []BlockStatement{stmt})
	outer.AddDeclaredMethod(method)

	if got := helper.ClassName(); got != "pkg.Outer$1$Helper" {
		t.Errorf("helper.ClassName() = %q, want %q", got, "pkg.Outer$1$Helper")
	}

	again := NewLocalClassDeclaration(
		testLoc(4), "", NewModifiers(0), "Helper", nil, nil, nil)
	stmt2 := NewLocalClassDeclarationStatement(again)
	method2 := emptyMethod("g", []BlockStatement{stmt2})
	outer.AddDeclaredMethod(method2)

	if got := again.ClassName(); got != "pkg.Outer$2$Helper" {
		t.Errorf("second helper.ClassName() = %q, want %q", got, "pkg.Outer$2$Helper")
	}
}

func TestPackageMemberModifierRestrictions(t *testing.T) {
	tests := []struct {
		name string
		make func() error
	}{
		{
			name: "private class",
			make: func() error {
				_, err := NewPackageMemberClassDeclaration(
					testLoc(1), "", NewModifiers(ModPrivate), "C", nil, nil, nil)
				return err
			},
		},
		{
			name: "static enum",
			make: func() error {
				_, err := NewPackageMemberEnumDeclaration(
					testLoc(1), "", NewModifiers(ModStatic), "E", nil)
				return err
			},
		},
		{
			name: "protected interface",
			make: func() error {
				_, err := NewPackageMemberInterfaceDeclaration(
					testLoc(1), "", NewModifiers(ModProtected), "I", nil, nil)
				return err
			},
		},
		{
			name: "private annotation type",
			make: func() error {
				_, err := NewPackageMemberAnnotationTypeDeclaration(
					testLoc(1), "", NewModifiers(ModPrivate), "A")
				return err
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.make()
			if err == nil {
				t.Fatal("expected an error, got nil")
			}
			if !strings.Contains(err.Error(), "not allowed") {
				t.Errorf("error = %q, want it to mention the forbidden modifier", err)
			}
		})
	}
}

func TestDefaultConstructorSynthesized(t *testing.T) {
	unit := NewCompilationUnit("Test.java")
	outer := newTestClass(t, unit, "Outer")

	if got := outer.DeclaredConstructors(); len(got) != 0 {
		t.Fatalf("DeclaredConstructors() = %d constructors, want 0", len(got))
	}

	ctors := outer.ConstructorDeclarations()
	if len(ctors) != 1 {
		t.Fatalf("ConstructorDeclarations() = %d constructors, want 1 synthesized", len(ctors))
	}
	def := ctors[0]
	if !def.Modifiers.Flags.IsPublic() {
		t.Errorf("synthesized constructor modifiers = %v, want public", def.Modifiers.Flags)
	}
	if len(def.Parameters.Parameters) != 0 {
		t.Errorf("synthesized constructor has %d parameters, want 0", len(def.Parameters.Parameters))
	}
	if got := def.DeclaringType(); got != TypeDeclaration(outer) {
		t.Errorf("synthesized constructor declaring type = %v, want Outer", got)
	}

	declared := NewConstructorDeclarator(
		testLoc(2), "", NewModifiers(ModPublic),
		NewFormalParameters(testLoc(2), nil, false), nil, nil, nil)
	outer.AddConstructor(declared)
	ctors = outer.ConstructorDeclarations()
	if len(ctors) != 1 || ctors[0] != declared {
		t.Errorf("ConstructorDeclarations() after declaring one = %v, want just the declared one", ctors)
	}
}

func TestSyntheticFields(t *testing.T) {
	unit := NewCompilationUnit("Test.java")
	unit.SetPackageDeclaration(NewPackageDeclaration(testLoc(1), "pkg"))
	outer := newTestClass(t, unit, "Outer")

	inner := NewMemberClassDeclaration(
		testLoc(2), "", NewModifiers(0), "Inner", nil, nil, nil)
	outer.AddMemberTypeDeclaration(inner)

	objectType := ResolvedType(Primitive("java.lang.Object"))

	inner.DefineSyntheticField(SyntheticField{Name: "this$0", Type: objectType})
	inner.DefineSyntheticField(SyntheticField{Name: "this$0", Type: objectType}) // same type: no-op

	if got := len(inner.SyntheticFields()); got != 1 {
		t.Fatalf("SyntheticFields() has %d entries, want 1", got)
	}

	expectInternalError(t, "redefined", func() {
		inner.DefineSyntheticField(SyntheticField{Name: "this$0", Type: PrimitiveInt})
	})

	// Member classes never capture local variables.
	expectInternalError(t, "cannot capture", func() {
		inner.DefineSyntheticField(SyntheticField{Name: "val$x", Type: PrimitiveInt})
	})

	expectInternalError(t, "this$", func() {
		inner.DefineSyntheticField(SyntheticField{Name: "outer", Type: PrimitiveInt})
	})

	// A static member class has no enclosing instance to reference.
	nested := NewMemberClassDeclaration(
		testLoc(3), "", NewModifiers(ModStatic), "Nested", nil, nil, nil)
	outer.AddMemberTypeDeclaration(nested)
	expectInternalError(t, "no enclosing instance", func() {
		nested.DefineSyntheticField(SyntheticField{Name: "this$0", Type: objectType})
	})
}

func TestSyntheticFieldsSortedByName(t *testing.T) {
	unit := NewCompilationUnit("Test.java")
	outer := newTestClass(t, unit, "Outer")

	local := NewLocalClassDeclaration(
		testLoc(2), "", NewModifiers(0), "Helper", nil, nil, nil)
	stmt := NewLocalClassDeclarationStatement(local)
	outer.AddDeclaredMethod(emptyMethod("f", []BlockStatement{stmt}))

	local.DefineSyntheticField(SyntheticField{Name: "val$b", Type: PrimitiveInt})
	local.DefineSyntheticField(SyntheticField{Name: "this$0", Type: Primitive("Outer")})
	local.DefineSyntheticField(SyntheticField{Name: "val$a", Type: PrimitiveLong})

	fields := local.SyntheticFields()
	want := []string{"this$0", "val$a", "val$b"}
	if len(fields) != len(want) {
		t.Fatalf("SyntheticFields() has %d entries, want %d", len(fields), len(want))
	}
	for i, name := range want {
		if fields[i].Name != name {
			t.Errorf("fields[%d].Name = %q, want %q", i, fields[i].Name, name)
		}
	}
}

func TestSyntheticFieldResolvedFieldView(t *testing.T) {
	f := SyntheticField{Name: "this$0", Type: Primitive("Outer")}
	var rf ResolvedField = &f
	if got := rf.FieldName(); got != "this$0" {
		t.Errorf("FieldName() = %q, want %q", got, "this$0")
	}
	if got := rf.FieldType().String(); got != "Outer" {
		t.Errorf("FieldType() = %q, want %q", got, "Outer")
	}
}

func TestEnumConstants(t *testing.T) {
	unit := NewCompilationUnit("Test.java")
	unit.SetPackageDeclaration(NewPackageDeclaration(testLoc(1), "pkg"))

	enum, err := NewPackageMemberEnumDeclaration(
		testLoc(2), "", NewModifiers(ModPublic), "Tone", nil)
	if err != nil {
		t.Fatalf("NewPackageMemberEnumDeclaration: %v", err)
	}
	unit.AddPackageMemberTypeDeclaration(enum)

	formal := NewEnumConstant(testLoc(3), "", nil, "FORMAL", nil)
	enum.AddConstant(formal)
	enum.AddConstant(NewEnumConstant(testLoc(4), "", nil, "CASUAL", nil))

	if enum.ModifierFlags()&ModEnum == 0 {
		t.Error("enum declaration is missing the enum modifier bit")
	}
	if got := len(enum.Constants()); got != 2 {
		t.Fatalf("Constants() has %d entries, want 2", got)
	}
	if got := formal.EnclosingScope(); got != Scope(enum) {
		t.Errorf("constant enclosing scope = %v, want the enum", got)
	}
	if got := formal.ClassName(); got != "FORMAL" {
		t.Errorf("constant ClassName() = %q, want %q", got, "FORMAL")
	}
}
