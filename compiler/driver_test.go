package compiler

import (
	"strings"
	"testing"
)

type fakeUnit string

func (u fakeUnit) UnitName() string { return string(u) }

func TestDriverCollectsSourceErrors(t *testing.T) {
	d := NewDriver()

	var ran []string
	record := func(name string) Pass {
		return PassFunc{PassName: name, Func: func(unit Unit) error {
			ran = append(ran, name+"/"+unit.UnitName())
			return nil
		}}
	}
	failing := PassFunc{PassName: "check", Func: func(unit Unit) error {
		return NewError(At(unit.UnitName(), 1, 1), "bad input")
	}}

	err := d.Run(
		[]Unit{fakeUnit("A.java"), fakeUnit("B.java")},
		[]Pass{record("first"), failing, record("last")},
	)
	if err == nil {
		t.Fatal("Run = nil, want an error summarizing the failures")
	}
	if !strings.Contains(err.Error(), "2 error(s)") {
		t.Errorf("Run error = %q, want it to count 2 errors", err)
	}

	// Source errors do not stop the run: every pass ran on every unit.
	want := []string{"first/A.java", "last/A.java", "first/B.java", "last/B.java"}
	if len(ran) != len(want) {
		t.Fatalf("ran %v, want %v", ran, want)
	}
	for i := range want {
		if ran[i] != want[i] {
			t.Errorf("ran[%d] = %q, want %q", i, ran[i], want[i])
		}
	}

	collected := d.Errors()
	if len(collected) != 2 {
		t.Fatalf("Errors() has %d entries, want 2", len(collected))
	}
	if collected[0].Location.File != "A.java" || collected[1].Location.File != "B.java" {
		t.Errorf("errors collected out of order: %v", collected)
	}
}

func TestDriverStopsOnInternalError(t *testing.T) {
	d := NewDriver()

	var lastRan bool
	passes := []Pass{
		PassFunc{PassName: "explode", Func: func(unit Unit) error {
			Internalf("invariant violated in %s", unit.UnitName())
			return nil
		}},
		PassFunc{PassName: "after", Func: func(unit Unit) error {
			lastRan = true
			return nil
		}},
	}

	err := d.Run([]Unit{fakeUnit("A.java")}, passes)
	if err == nil {
		t.Fatal("Run = nil, want the internal error")
	}
	if !strings.Contains(err.Error(), `pass "explode" on "A.java"`) {
		t.Errorf("Run error = %q, want it to name the pass and unit", err)
	}
	if !strings.Contains(err.Error(), "internal error") {
		t.Errorf("Run error = %q, want it to carry the internal error", err)
	}
	if lastRan {
		t.Error("a later pass ran after an internal error")
	}
	if len(d.Errors()) != 0 {
		t.Errorf("Errors() = %v, want none for an internal error", d.Errors())
	}
}

func TestDriverDoesNotCatchForeignPanics(t *testing.T) {
	d := NewDriver()
	defer func() {
		if recover() == nil {
			t.Fatal("a non-InternalError panic was swallowed")
		}
	}()
	_ = d.Run([]Unit{fakeUnit("A.java")}, []Pass{
		PassFunc{PassName: "boom", Func: func(unit Unit) error {
			panic("unrelated")
		}},
	})
}

func TestErrorString(t *testing.T) {
	located := NewError(At("A.java", 3, 7), "unexpected %q", "}")
	if got, want := located.Error(), `A.java:3:7: unexpected "}"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	bare := NewError(Nowhere, "no context")
	if got := bare.Error(); got != "no context" {
		t.Errorf("Error() = %q, want %q", got, "no context")
	}
}

func TestLocationString(t *testing.T) {
	tests := []struct {
		name string
		loc  Location
		want string
	}{
		{"full", At("A.java", 3, 7), "A.java:3:7"},
		{"no file", Location{Line: 3, Column: 7}, "3:7"},
		{"nowhere", Nowhere, "(unknown location)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.loc.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInternalfPanicsWithInternalError(t *testing.T) {
	defer func() {
		r := recover()
		ie, ok := r.(*InternalError)
		if !ok {
			t.Fatalf("recovered %T, want *InternalError", r)
		}
		if got, want := ie.Error(), "internal error: slot 3 reused"; got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	}()
	Internalf("slot %d reused", 3)
}
