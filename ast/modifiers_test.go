package ast

import "testing"

func TestModifierString(t *testing.T) {
	tests := []struct {
		name string
		m    Modifier
		want string
	}{
		{"none", 0, ""},
		{"public", ModPublic, "public"},
		{"canonical order", ModFinal | ModStatic | ModPublic, "public static final"},
		{"abstract method", ModAbstract | ModPublic, "public abstract"},
		{"keywordless bits omitted", ModEnum | ModSynthetic | ModInterface | ModAnnotation, ""},
		{"transient field", ModTransient | ModPrivate, "private transient"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVarargsSharesTheTransientBit(t *testing.T) {
	// The class file format reuses 0x0080; which meaning applies depends
	// on the declaration kind, so printing a method's modifiers must mask
	// ModVarargs first.
	if ModVarargs != ModTransient {
		t.Fatal("ModVarargs and ModTransient must alias the same bit")
	}
	m := ModPublic | ModVarargs
	if got := (m &^ ModVarargs).String(); got != "public" {
		t.Errorf("masked String() = %q, want %q", got, "public")
	}
}

func TestModifiersSetOperations(t *testing.T) {
	m := NewModifiers(ModPublic)

	m2 := m.Add(ModStatic | ModFinal)
	if m2.Flags != ModPublic|ModStatic|ModFinal {
		t.Errorf("Add: Flags = %v, want public static final", m2.Flags)
	}
	if m.Flags != ModPublic {
		t.Error("Add mutated the receiver")
	}

	m3 := m2.Remove(ModStatic)
	if m3.Flags != ModPublic|ModFinal {
		t.Errorf("Remove: Flags = %v, want public final", m3.Flags)
	}

	m4 := m3.ChangeAccess(ModPrivate)
	if m4.Flags != ModPrivate|ModFinal {
		t.Errorf("ChangeAccess: Flags = %v, want private final", m4.Flags)
	}
	if !m4.Flags.IsPrivate() || m4.Flags.IsPublic() {
		t.Error("ChangeAccess left the old access bits in place")
	}
}

func TestVariableArityMethodGetsVarargsBit(t *testing.T) {
	m := NewMethodDeclarator(
		testLoc(1), "", NewModifiers(ModPublic), nil,
		NewBasicType(testLoc(1), PrimitiveVoid), "f",
		NewFormalParameters(testLoc(1), []*FormalParameter{
			NewFormalParameter(testLoc(1), false,
				NewArrayType(NewReferenceType(testLoc(1), []string{"String"}, nil)), "args"),
		}, true),
		nil, nil)
	if m.Modifiers.Flags&ModVarargs == 0 {
		t.Error("variable arity method is missing the varargs bit")
	}
}
