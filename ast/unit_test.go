package ast

import "testing"

func TestCompilationUnitName(t *testing.T) {
	if got := NewCompilationUnit("A.java").UnitName(); got != "A.java" {
		t.Errorf("UnitName() = %q, want %q", got, "A.java")
	}
	if got := NewCompilationUnit("").UnitName(); got != "(unnamed unit)" {
		t.Errorf("UnitName() = %q, want %q", got, "(unnamed unit)")
	}
}

func TestCompilationUnitHasNoEnclosingScope(t *testing.T) {
	unit := NewCompilationUnit("A.java")
	expectInternalError(t, "no enclosing scope", func() {
		_ = unit.EnclosingScope()
	})
}

func TestPackageMemberTypeDeclarationLookup(t *testing.T) {
	unit := NewCompilationUnit("A.java")
	unit.SetPackageDeclaration(NewPackageDeclaration(testLoc(1), "pkg"))
	outer := newTestClass(t, unit, "Outer")
	newTestClass(t, unit, "Other")

	if got := unit.PackageMemberTypeDeclaration("Outer"); got != PackageMemberTypeDeclaration(outer) {
		t.Errorf("lookup(Outer) = %v, want the declaration", got)
	}
	if got := unit.PackageMemberTypeDeclaration("Missing"); got != nil {
		t.Errorf("lookup(Missing) = %v, want nil", got)
	}
	if got := len(unit.PackageMemberTypeDeclarations()); got != 2 {
		t.Errorf("unit holds %d top-level types, want 2", got)
	}
	if got := outer.DeclaringCompilationUnit(); got != unit {
		t.Errorf("DeclaringCompilationUnit() = %v, want the unit", got)
	}
	if got := unit.PackageName(); got != "pkg" {
		t.Errorf("PackageName() = %q, want %q", got, "pkg")
	}
}

func TestImportDeclarationStrings(t *testing.T) {
	tests := []struct {
		name string
		id   ImportDeclaration
		want string
	}{
		{
			name: "single type",
			id:   NewSingleTypeImportDeclaration(testLoc(1), []string{"java", "util", "List"}),
			want: "import java.util.List;",
		},
		{
			name: "on demand",
			id:   NewTypeImportOnDemandDeclaration(testLoc(2), []string{"java", "util"}),
			want: "import java.util.*;",
		},
		{
			name: "single static",
			id:   NewSingleStaticImportDeclaration(testLoc(3), []string{"java", "lang", "Math", "max"}),
			want: "import static java.lang.Math.max;",
		},
		{
			name: "static on demand",
			id:   NewStaticImportOnDemandDeclaration(testLoc(4), []string{"java", "lang", "Math"}),
			want: "import static java.lang.Math.*;",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
