package ast

import (
	"testing"

	"github.com/dhamidi/ono/code"
)

func TestLocalVariableSlotLiveRangeIsWriteOnce(t *testing.T) {
	slot := NewLocalVariableSlot("i", PrimitiveInt, 1)

	start := code.NewOffset()
	slot.SetStart(start)
	if slot.Start() != start {
		t.Error("Start() does not return the assigned offset")
	}
	expectInternalError(t, "already set", func() {
		slot.SetStart(code.NewOffset())
	})

	end := code.NewOffset()
	slot.SetEnd(end)
	expectInternalError(t, "already set", func() {
		slot.SetEnd(code.NewOffset())
	})
}

func TestLocalVariableSlotAssignment(t *testing.T) {
	v := NewLocalVariable(true, PrimitiveInt)

	expectInternalError(t, "no slot", func() {
		_ = v.SlotIndex()
	})

	slot := NewLocalVariableSlot("i", PrimitiveInt, 3)
	v.SetSlot(slot)
	if got := v.SlotIndex(); got != 3 {
		t.Errorf("SlotIndex() = %d, want 3", got)
	}

	expectInternalError(t, "already assigned", func() {
		v.SetSlot(NewLocalVariableSlot("j", PrimitiveInt, 4))
	})
}

func TestLocalVariableString(t *testing.T) {
	if got := NewLocalVariable(true, PrimitiveInt).String(); got != "final int" {
		t.Errorf("String() = %q, want %q", got, "final int")
	}
	if got := NewLocalVariable(false, PrimitiveLong).String(); got != "long" {
		t.Errorf("String() = %q, want %q", got, "long")
	}
}

func TestLocalVariableSlotString(t *testing.T) {
	named := NewLocalVariableSlot("i", PrimitiveInt, 1)
	if got := named.String(); got != "slot 1: int i" {
		t.Errorf("String() = %q, want %q", got, "slot 1: int i")
	}
	anonymous := NewLocalVariableSlot("", PrimitiveInt, 2)
	if got := anonymous.String(); got != "slot 2: int (anonymous)" {
		t.Errorf("String() = %q, want %q", got, "slot 2: int (anonymous)")
	}
}
