package ast

import (
	"fmt"

	"github.com/dhamidi/ono/code"
	"github.com/dhamidi/ono/compiler"
)

// LocalVariableSlot is the storage assigned to a local variable in a
// function's frame: the slot index plus the code range within which the
// variable is live. Start and end are set exactly once, when code
// generation enters and leaves the variable's scope.
type LocalVariableSlot struct {
	Name  string
	Type  ResolvedType
	Index int

	start *code.Offset
	end   *code.Offset
}

func NewLocalVariableSlot(name string, resolvedType ResolvedType, index int) *LocalVariableSlot {
	return &LocalVariableSlot{Name: name, Type: resolvedType, Index: index}
}

func (s *LocalVariableSlot) Start() *code.Offset { return s.start }
func (s *LocalVariableSlot) End() *code.Offset   { return s.end }

func (s *LocalVariableSlot) SetStart(start *code.Offset) {
	if s.start != nil {
		compiler.Internalf("start of live range already set for slot %d (%s)", s.Index, s.Name)
	}
	s.start = start
}

func (s *LocalVariableSlot) SetEnd(end *code.Offset) {
	if s.end != nil {
		compiler.Internalf("end of live range already set for slot %d (%s)", s.Index, s.Name)
	}
	s.end = end
}

func (s *LocalVariableSlot) String() string {
	name := s.Name
	if name == "" {
		name = "(anonymous)"
	}
	return fmt.Sprintf("slot %d: %s %s", s.Index, s.Type, name)
}

// LocalVariable is the compile-time description of a local variable or
// parameter: its declared type, finality, and, once allocated, its slot.
type LocalVariable struct {
	Final bool
	Type  ResolvedType
	Slot  *LocalVariableSlot
}

func NewLocalVariable(final bool, resolvedType ResolvedType) *LocalVariable {
	return &LocalVariable{Final: final, Type: resolvedType}
}

func (v *LocalVariable) SetSlot(slot *LocalVariableSlot) {
	if v.Slot != nil {
		compiler.Internalf("slot already assigned to local variable %q", v.Slot.Name)
	}
	v.Slot = slot
}

// SlotIndex returns the variable's frame slot and panics when no slot was
// ever assigned.
func (v *LocalVariable) SlotIndex() int {
	if v.Slot == nil {
		compiler.Internalf("local variable has no slot assigned")
	}
	return v.Slot.Index
}

func (v *LocalVariable) String() string {
	s := ""
	if v.Final {
		s = "final "
	}
	return s + v.Type.String()
}
