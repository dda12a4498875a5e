package ast

import "strings"

// Modifier is a bit set of declaration modifiers. The bit values coincide
// with the class file access flags so that declarations translate directly.
type Modifier uint16

const (
	ModPublic       Modifier = 0x0001
	ModPrivate      Modifier = 0x0002
	ModProtected    Modifier = 0x0004
	ModStatic       Modifier = 0x0008
	ModFinal        Modifier = 0x0010
	ModSynchronized Modifier = 0x0020
	ModVolatile     Modifier = 0x0040
	ModTransient    Modifier = 0x0080
	ModVarargs      Modifier = 0x0080
	ModNative       Modifier = 0x0100
	ModInterface    Modifier = 0x0200
	ModAbstract     Modifier = 0x0400
	ModStrictfp     Modifier = 0x0800
	ModSynthetic    Modifier = 0x1000
	ModAnnotation   Modifier = 0x2000
	ModEnum         Modifier = 0x4000

	// ModAccess masks the three access modifiers.
	ModAccess = ModPublic | ModPrivate | ModProtected
)

var modifierNames = []struct {
	flag Modifier
	name string
}{
	{ModPublic, "public"},
	{ModPrivate, "private"},
	{ModProtected, "protected"},
	{ModStatic, "static"},
	{ModFinal, "final"},
	{ModSynchronized, "synchronized"},
	{ModVolatile, "volatile"},
	{ModTransient, "transient"},
	{ModNative, "native"},
	{ModAbstract, "abstract"},
	{ModStrictfp, "strictfp"},
}

// String renders the set bits in canonical declaration order. Bits without
// a source keyword (varargs, synthetic, enum) are omitted.
func (m Modifier) String() string {
	var parts []string
	for _, mn := range modifierNames {
		if m&mn.flag != 0 {
			parts = append(parts, mn.name)
		}
	}
	return strings.Join(parts, " ")
}

func (m Modifier) IsPublic() bool    { return m&ModPublic != 0 }
func (m Modifier) IsPrivate() bool   { return m&ModPrivate != 0 }
func (m Modifier) IsProtected() bool { return m&ModProtected != 0 }
func (m Modifier) IsStatic() bool    { return m&ModStatic != 0 }
func (m Modifier) IsFinal() bool     { return m&ModFinal != 0 }
func (m Modifier) IsAbstract() bool  { return m&ModAbstract != 0 }
func (m Modifier) IsDefaultAccess() bool {
	return m&ModAccess == 0
}

// Modifiers couples the modifier bit set of a declaration with its
// annotations.
type Modifiers struct {
	Flags       Modifier
	Annotations []Annotation
}

func NewModifiers(flags Modifier) Modifiers {
	return Modifiers{Flags: flags}
}

func (m Modifiers) IsBlank() bool {
	return m.Flags == 0 && len(m.Annotations) == 0
}

func (m Modifiers) Add(flags Modifier) Modifiers {
	return Modifiers{Flags: m.Flags | flags, Annotations: m.Annotations}
}

func (m Modifiers) Remove(flags Modifier) Modifiers {
	return Modifiers{Flags: m.Flags &^ flags, Annotations: m.Annotations}
}

// ChangeAccess replaces the access bits with the given ones.
func (m Modifiers) ChangeAccess(access Modifier) Modifiers {
	return Modifiers{Flags: m.Flags&^ModAccess | access&ModAccess, Annotations: m.Annotations}
}

func (m Modifiers) setEnclosingScope(s Scope) {
	for _, a := range m.Annotations {
		a.SetEnclosingScope(s)
	}
}
