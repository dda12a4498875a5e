package ast

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dhamidi/ono/compiler"
)

// TypeDeclaration is any class, interface, enum or annotation type
// declaration. A type declaration is a scope: its members resolve names
// through it.
type TypeDeclaration interface {
	Locatable
	Scope
	fmt.Stringer
	Annotations() []Annotation
	ModifierFlags() Modifier
	SetEnclosingScope(s Scope)
	// ClassName returns the qualified binary name of the declared type,
	// e.g. "pkg.Outer$Inner" or "pkg.Outer$1".
	ClassName() string
	// CreateLocalTypeName forms the binary name of a local type declared
	// directly or indirectly inside this one, bumping this declaration's
	// local class counter.
	CreateLocalTypeName(localTypeName string) string
	// CreateAnonymousClassName forms the binary name of the next anonymous
	// class inside this declaration, bumping the anonymous class counter.
	CreateAnonymousClassName() string
	AddDeclaredMethod(m *MethodDeclarator)
	MethodDeclarations() []*MethodDeclarator
	MethodDeclaration(name string) *MethodDeclarator
	AddMemberTypeDeclaration(m MemberTypeDeclaration)
	MemberTypeDeclarations() []MemberTypeDeclaration
	MemberTypeDeclaration(name string) MemberTypeDeclaration
	AcceptTypeDeclaration(v TypeDeclarationVisitor) error
	typeDeclaration() *typeDeclarationBase
}

// NamedTypeDeclaration is a type declaration with a simple name, i.e.
// everything but anonymous classes and enum constants.
type NamedTypeDeclaration interface {
	TypeDeclaration
	Name() string
}

// MemberTypeDeclaration is a type declared inside another type. It is both
// a type declaration and a body declaration of the enclosing type.
type MemberTypeDeclaration interface {
	NamedTypeDeclaration
	TypeBodyDeclaration
}

// PackageMemberTypeDeclaration is a top-level type declaration.
type PackageMemberTypeDeclaration interface {
	NamedTypeDeclaration
	SetDeclaringCompilationUnit(cu *CompilationUnit)
	DeclaringCompilationUnit() *CompilationUnit
}

// InnerClassDeclaration is a class with access to an enclosing instance or
// enclosing local variables: anonymous, local and non-static member
// classes. Such classes carry synthetic fields that transport the outer
// instance ("this$N") and captured variables ("val$x") into the instance.
// Which fields a particular class needs depends on where it is used: the
// outer instance field is mandatory for non-private non-static member
// classes, optional for the other variants in non-static context, and
// forbidden in static context. The resolver decides; the declarations only
// reject fields that can never be valid for their variant.
type InnerClassDeclaration interface {
	TypeDeclaration
	DefineSyntheticField(field SyntheticField)
	SyntheticFields() []SyntheticField
}

// EnumDeclaration is a member or package member enum declaration.
type EnumDeclaration interface {
	NamedTypeDeclaration
	AddConstant(c *EnumConstant)
	Constants() []*EnumConstant
}

// SyntheticField is a compiler-generated instance field of an inner class.
// The name is "this$N" for an enclosing instance reference or "val$x" for
// the captured local variable x.
type SyntheticField struct {
	Name string
	Type ResolvedType
}

func (f *SyntheticField) FieldName() string       { return f.Name }
func (f *SyntheticField) FieldType() ResolvedType { return f.Type }

type typeDeclarationBase struct {
	Located
	Modifiers      Modifiers
	TypeParameters []*TypeParameter

	// self points at the concrete declaration embedding this base; the
	// New* constructors set it.
	self TypeDeclaration

	enclosing           Scope
	methods             []*MethodDeclarator
	memberTypes         []MemberTypeDeclaration
	anonymousClassCount int
	localClassCount     int
}

func (d *typeDeclarationBase) typeDeclaration() *typeDeclarationBase { return d }

func (d *typeDeclarationBase) Annotations() []Annotation { return d.Modifiers.Annotations }
func (d *typeDeclarationBase) ModifierFlags() Modifier   { return d.Modifiers.Flags }

func (d *typeDeclarationBase) SetEnclosingScope(s Scope) {
	setScope(&d.enclosing, d, "type declaration", s)
	d.Modifiers.setEnclosingScope(s)
	for _, tp := range d.TypeParameters {
		tp.setEnclosingScope(s)
	}
}

func (d *typeDeclarationBase) EnclosingScope() Scope {
	return getScope(d.enclosing, d, "type declaration")
}

func (d *typeDeclarationBase) enclosingScopeOrNil() Scope { return d.enclosing }

func (d *typeDeclarationBase) AddDeclaredMethod(m *MethodDeclarator) {
	m.SetDeclaringType(d.self)
	d.methods = append(d.methods, m)
}

func (d *typeDeclarationBase) MethodDeclarations() []*MethodDeclarator { return d.methods }

func (d *typeDeclarationBase) MethodDeclaration(name string) *MethodDeclarator {
	for _, m := range d.methods {
		if m.Name == name {
			return m
		}
	}
	return nil
}

func (d *typeDeclarationBase) AddMemberTypeDeclaration(m MemberTypeDeclaration) {
	m.SetDeclaringType(d.self)
	d.memberTypes = append(d.memberTypes, m)
}

func (d *typeDeclarationBase) MemberTypeDeclarations() []MemberTypeDeclaration {
	return d.memberTypes
}

func (d *typeDeclarationBase) MemberTypeDeclaration(name string) MemberTypeDeclaration {
	for _, m := range d.memberTypes {
		if m.Name() == name {
			return m
		}
	}
	return nil
}

func (d *typeDeclarationBase) CreateLocalTypeName(localTypeName string) string {
	d.localClassCount++
	return fmt.Sprintf("%s$%d$%s", d.self.ClassName(), d.localClassCount, localTypeName)
}

func (d *typeDeclarationBase) CreateAnonymousClassName() string {
	d.anonymousClassCount++
	return fmt.Sprintf("%s$%d", d.self.ClassName(), d.anonymousClassCount)
}

// classDeclarationBase carries what all class-like declarations share:
// constructors, field declarations and initializers in declaration order,
// and the synthetic field table.
type classDeclarationBase struct {
	typeDeclarationBase

	constructors []*ConstructorDeclarator

	// fieldDeclarationsAndInitializers holds FieldDeclaration and
	// Initializer nodes in the order they appear in the body.
	fieldDeclarationsAndInitializers []BlockStatement

	syntheticFields map[string]SyntheticField
}

func (d *classDeclarationBase) AddConstructor(c *ConstructorDeclarator) {
	c.SetDeclaringType(d.self)
	d.constructors = append(d.constructors, c)
}

func (d *classDeclarationBase) AddFieldDeclaration(f *FieldDeclaration) {
	f.SetDeclaringType(d.self)
	d.fieldDeclarationsAndInitializers = append(d.fieldDeclarationsAndInitializers, f)
}

func (d *classDeclarationBase) AddInitializer(i *Initializer) {
	i.SetDeclaringType(d.self)
	d.fieldDeclarationsAndInitializers = append(d.fieldDeclarationsAndInitializers, i)
}

// FieldDeclarationsAndInitializers returns the field declarations and
// instance/static initializers in declaration order. Synthetic fields are
// not included.
func (d *classDeclarationBase) FieldDeclarationsAndInitializers() []BlockStatement {
	return d.fieldDeclarationsAndInitializers
}

// DeclaredConstructors returns only the constructors written in the
// source.
func (d *classDeclarationBase) DeclaredConstructors() []*ConstructorDeclarator {
	return d.constructors
}

// ConstructorDeclarations returns the declared constructors, or a
// synthesized public default constructor when there are none.
func (d *classDeclarationBase) ConstructorDeclarations() []*ConstructorDeclarator {
	if len(d.constructors) > 0 {
		return d.constructors
	}
	def := NewConstructorDeclarator(
		At(d.Location()),
		"",
		NewModifiers(ModPublic),
		NewFormalParameters(At(d.Location()), nil, false),
		nil,
		nil,
		nil,
	)
	def.SetDeclaringType(d.self)
	return []*ConstructorDeclarator{def}
}

// defineSyntheticField records a synthetic field. Redefining a field with
// the same name and type is a no-op; with a different type it is an
// internal error, as is a name outside the "this$"/"val$" namespace.
func (d *classDeclarationBase) defineSyntheticField(field SyntheticField) {
	if !strings.HasPrefix(field.Name, "this$") && !strings.HasPrefix(field.Name, "val$") {
		compiler.Internalf("synthetic field %q: name must start with \"this$\" or \"val$\"", field.Name)
	}
	if prev, ok := d.syntheticFields[field.Name]; ok {
		if prev.Type != field.Type {
			compiler.Internalf(
				"synthetic field %q redefined with type %s, previously %s",
				field.Name, field.Type, prev.Type,
			)
		}
		return
	}
	if d.syntheticFields == nil {
		d.syntheticFields = make(map[string]SyntheticField)
	}
	d.syntheticFields[field.Name] = field
}

func (d *classDeclarationBase) syntheticFieldList() []SyntheticField {
	names := make([]string, 0, len(d.syntheticFields))
	for name := range d.syntheticFields {
		names = append(names, name)
	}
	sort.Strings(names)
	fields := make([]SyntheticField, len(names))
	for i, name := range names {
		fields[i] = d.syntheticFields[name]
	}
	return fields
}

// namedClassDeclarationBase adds name, doc comment and supertypes.
type namedClassDeclarationBase struct {
	classDeclarationBase
	DocComment       string
	name             string
	ExtendedType     Type
	ImplementedTypes []Type
}

func (d *namedClassDeclarationBase) Name() string { return d.name }

// initNamedClass wires the base and binds the supertypes into the scope
// surrounding the declaration, so that a class may extend a type with its
// own simple name.
func (d *namedClassDeclarationBase) initNamedClass(self TypeDeclaration) {
	d.self = self
	outer := &EnclosingScopeOfTypeDeclaration{TypeDeclaration: self}
	if d.ExtendedType != nil {
		d.ExtendedType.SetEnclosingScope(outer)
	}
	for _, t := range d.ImplementedTypes {
		t.SetEnclosingScope(outer)
	}
}

// AnonymousClassDeclaration is a class declaration without a name,
// appearing as part of a `new BaseType() { ... }` expression.
type AnonymousClassDeclaration struct {
	classDeclarationBase

	// BaseType is the class extended or the single interface implemented.
	BaseType Type

	className string
}

func NewAnonymousClassDeclaration(l Located, baseType Type) *AnonymousClassDeclaration {
	d := &AnonymousClassDeclaration{
		classDeclarationBase: classDeclarationBase{
			typeDeclarationBase: typeDeclarationBase{Located: l, Modifiers: NewModifiers(ModPrivate | ModFinal)},
		},
		BaseType: baseType,
	}
	d.self = d
	baseType.SetEnclosingScope(&EnclosingScopeOfTypeDeclaration{TypeDeclaration: d})
	return d
}

// ClassName computes and caches the name on first use: the name of the
// nearest enclosing type declaration plus "$" plus that declaration's next
// anonymous class number.
func (d *AnonymousClassDeclaration) ClassName() string {
	if d.className == "" {
		enclosing := EnclosingTypeDeclaration(d.EnclosingScope())
		if enclosing == nil {
			compiler.Internalf("anonymous class at %s has no enclosing type declaration", d.Location())
		}
		d.className = enclosing.CreateAnonymousClassName()
	}
	return d.className
}

func (d *AnonymousClassDeclaration) DefineSyntheticField(field SyntheticField) {
	d.defineSyntheticField(field)
}
func (d *AnonymousClassDeclaration) SyntheticFields() []SyntheticField { return d.syntheticFieldList() }

func (d *AnonymousClassDeclaration) String() string { return "new " + d.BaseType.String() + "() { ... }" }

func (d *AnonymousClassDeclaration) AcceptTypeDeclaration(v TypeDeclarationVisitor) error {
	return v.VisitAnonymousClassDeclaration(d)
}

// LocalClassDeclaration is a class declared inside a function body.
type LocalClassDeclaration struct {
	namedClassDeclarationBase

	className string
}

func NewLocalClassDeclaration(
	l Located,
	docComment string,
	modifiers Modifiers,
	name string,
	typeParameters []*TypeParameter,
	extendedType Type,
	implementedTypes []Type,
) *LocalClassDeclaration {
	d := &LocalClassDeclaration{
		namedClassDeclarationBase: namedClassDeclarationBase{
			classDeclarationBase: classDeclarationBase{
				typeDeclarationBase: typeDeclarationBase{Located: l, Modifiers: modifiers, TypeParameters: typeParameters},
			},
			DocComment:       docComment,
			name:             name,
			ExtendedType:     extendedType,
			ImplementedTypes: implementedTypes,
		},
	}
	d.initNamedClass(d)
	return d
}

// ClassName computes and caches the name on first use: the name of the
// nearest enclosing type declaration plus "$" plus that declaration's next
// local class number plus "$" plus the simple name.
func (d *LocalClassDeclaration) ClassName() string {
	if d.className == "" {
		enclosing := EnclosingTypeDeclaration(d.EnclosingScope())
		if enclosing == nil {
			compiler.Internalf("local class %q at %s has no enclosing type declaration", d.name, d.Location())
		}
		d.className = enclosing.CreateLocalTypeName(d.name)
	}
	return d.className
}

func (d *LocalClassDeclaration) DefineSyntheticField(field SyntheticField) {
	d.defineSyntheticField(field)
}
func (d *LocalClassDeclaration) SyntheticFields() []SyntheticField { return d.syntheticFieldList() }

func (d *LocalClassDeclaration) String() string { return "class " + d.name }

func (d *LocalClassDeclaration) AcceptTypeDeclaration(v TypeDeclarationVisitor) error {
	return v.VisitLocalClassDeclaration(d)
}

// MemberClassDeclaration is a class declared inside another class or
// interface.
type MemberClassDeclaration struct {
	namedClassDeclarationBase
}

func NewMemberClassDeclaration(
	l Located,
	docComment string,
	modifiers Modifiers,
	name string,
	typeParameters []*TypeParameter,
	extendedType Type,
	implementedTypes []Type,
) *MemberClassDeclaration {
	d := &MemberClassDeclaration{
		namedClassDeclarationBase: namedClassDeclarationBase{
			classDeclarationBase: classDeclarationBase{
				typeDeclarationBase: typeDeclarationBase{Located: l, Modifiers: modifiers, TypeParameters: typeParameters},
			},
			DocComment:       docComment,
			name:             name,
			ExtendedType:     extendedType,
			ImplementedTypes: implementedTypes,
		},
	}
	d.initNamedClass(d)
	return d
}

func (d *MemberClassDeclaration) SetDeclaringType(declaringType TypeDeclaration) {
	d.SetEnclosingScope(declaringType)
}

func (d *MemberClassDeclaration) DeclaringType() TypeDeclaration {
	return d.EnclosingScope().(TypeDeclaration)
}

func (d *MemberClassDeclaration) IsStatic() bool { return d.Modifiers.Flags.IsStatic() }

func (d *MemberClassDeclaration) ClassName() string {
	return d.DeclaringType().ClassName() + "$" + d.name
}

// DefineSyntheticField records an outer instance field. Member classes
// never capture local variables, so "val$" names are rejected; a static
// member class has no enclosing instance and takes no synthetic fields at
// all.
func (d *MemberClassDeclaration) DefineSyntheticField(field SyntheticField) {
	if d.IsStatic() {
		compiler.Internalf("static member class %q has no enclosing instance (%s)", d.name, field.Name)
	}
	if strings.HasPrefix(field.Name, "val$") {
		compiler.Internalf("member class %q cannot capture local variables (%s)", d.name, field.Name)
	}
	d.defineSyntheticField(field)
}

func (d *MemberClassDeclaration) SyntheticFields() []SyntheticField { return d.syntheticFieldList() }

func (d *MemberClassDeclaration) String() string { return "class " + d.name }

func (d *MemberClassDeclaration) AcceptTypeDeclaration(v TypeDeclarationVisitor) error {
	return v.VisitMemberClassDeclaration(d)
}

func (d *MemberClassDeclaration) AcceptTypeBodyDeclaration(v TypeBodyDeclarationVisitor) error {
	return v.VisitMemberClassDeclaration(d)
}

// MemberEnumDeclaration is an enum declared inside another class or
// interface.
type MemberEnumDeclaration struct {
	MemberClassDeclaration

	constants []*EnumConstant
}

func NewMemberEnumDeclaration(
	l Located,
	docComment string,
	modifiers Modifiers,
	name string,
	implementedTypes []Type,
) *MemberEnumDeclaration {
	d := &MemberEnumDeclaration{
		MemberClassDeclaration: MemberClassDeclaration{
			namedClassDeclarationBase: namedClassDeclarationBase{
				classDeclarationBase: classDeclarationBase{
					typeDeclarationBase: typeDeclarationBase{Located: l, Modifiers: modifiers.Add(ModEnum)},
				},
				DocComment:       docComment,
				name:             name,
				ImplementedTypes: implementedTypes,
			},
		},
	}
	d.initNamedClass(d)
	return d
}

func (d *MemberEnumDeclaration) AddConstant(c *EnumConstant) {
	c.SetEnclosingScope(d)
	d.constants = append(d.constants, c)
}

func (d *MemberEnumDeclaration) Constants() []*EnumConstant { return d.constants }

func (d *MemberEnumDeclaration) String() string { return "enum " + d.name }

func (d *MemberEnumDeclaration) AcceptTypeDeclaration(v TypeDeclarationVisitor) error {
	return v.VisitMemberEnumDeclaration(d)
}

func (d *MemberEnumDeclaration) AcceptTypeBodyDeclaration(v TypeBodyDeclarationVisitor) error {
	return v.VisitMemberEnumDeclaration(d)
}

// PackageMemberClassDeclaration is a top-level class declaration.
type PackageMemberClassDeclaration struct {
	namedClassDeclarationBase
}

func NewPackageMemberClassDeclaration(
	l Located,
	docComment string,
	modifiers Modifiers,
	name string,
	typeParameters []*TypeParameter,
	extendedType Type,
	implementedTypes []Type,
) (*PackageMemberClassDeclaration, error) {
	if modifiers.Flags&(ModProtected|ModPrivate|ModStatic) != 0 {
		return nil, compiler.NewError(l.Location(),
			"modifiers \"protected\", \"private\" and \"static\" not allowed in package member class declaration")
	}
	d := &PackageMemberClassDeclaration{
		namedClassDeclarationBase: namedClassDeclarationBase{
			classDeclarationBase: classDeclarationBase{
				typeDeclarationBase: typeDeclarationBase{Located: l, Modifiers: modifiers, TypeParameters: typeParameters},
			},
			DocComment:       docComment,
			name:             name,
			ExtendedType:     extendedType,
			ImplementedTypes: implementedTypes,
		},
	}
	d.initNamedClass(d)
	return d, nil
}

func (d *PackageMemberClassDeclaration) SetDeclaringCompilationUnit(cu *CompilationUnit) {
	d.SetEnclosingScope(cu)
}

func (d *PackageMemberClassDeclaration) DeclaringCompilationUnit() *CompilationUnit {
	return d.EnclosingScope().(*CompilationUnit)
}

func (d *PackageMemberClassDeclaration) ClassName() string {
	cu := d.DeclaringCompilationUnit()
	if cu.PackageDeclaration != nil {
		return cu.PackageDeclaration.PackageName + "." + d.name
	}
	return d.name
}

func (d *PackageMemberClassDeclaration) String() string { return "class " + d.name }

func (d *PackageMemberClassDeclaration) AcceptTypeDeclaration(v TypeDeclarationVisitor) error {
	return v.VisitPackageMemberClassDeclaration(d)
}

// PackageMemberEnumDeclaration is a top-level enum declaration.
type PackageMemberEnumDeclaration struct {
	PackageMemberClassDeclaration

	constants []*EnumConstant
}

func NewPackageMemberEnumDeclaration(
	l Located,
	docComment string,
	modifiers Modifiers,
	name string,
	implementedTypes []Type,
) (*PackageMemberEnumDeclaration, error) {
	if modifiers.Flags&(ModProtected|ModPrivate|ModStatic) != 0 {
		return nil, compiler.NewError(l.Location(),
			"modifiers \"protected\", \"private\" and \"static\" not allowed in package member enum declaration")
	}
	d := &PackageMemberEnumDeclaration{
		PackageMemberClassDeclaration: PackageMemberClassDeclaration{
			namedClassDeclarationBase: namedClassDeclarationBase{
				classDeclarationBase: classDeclarationBase{
					typeDeclarationBase: typeDeclarationBase{Located: l, Modifiers: modifiers.Add(ModEnum)},
				},
				DocComment:       docComment,
				name:             name,
				ImplementedTypes: implementedTypes,
			},
		},
	}
	d.initNamedClass(d)
	return d, nil
}

func (d *PackageMemberEnumDeclaration) AddConstant(c *EnumConstant) {
	c.SetEnclosingScope(d)
	d.constants = append(d.constants, c)
}

func (d *PackageMemberEnumDeclaration) Constants() []*EnumConstant { return d.constants }

func (d *PackageMemberEnumDeclaration) String() string { return "enum " + d.name }

func (d *PackageMemberEnumDeclaration) AcceptTypeDeclaration(v TypeDeclarationVisitor) error {
	return v.VisitPackageMemberEnumDeclaration(d)
}

// EnumConstant is one constant of an enum declaration. A constant is a
// class declaration of its own: it may carry a body that overrides the
// enum's methods.
type EnumConstant struct {
	classDeclarationBase

	DocComment      string
	EnumAnnotations []Annotation
	name            string
	Arguments       []Rvalue
}

func NewEnumConstant(l Located, docComment string, annotations []Annotation, name string, arguments []Rvalue) *EnumConstant {
	d := &EnumConstant{
		classDeclarationBase: classDeclarationBase{
			typeDeclarationBase: typeDeclarationBase{Located: l},
		},
		DocComment:      docComment,
		EnumAnnotations: annotations,
		name:            name,
		Arguments:       arguments,
	}
	d.self = d
	return d
}

func (d *EnumConstant) Name() string              { return d.name }
func (d *EnumConstant) Annotations() []Annotation { return d.EnumAnnotations }
func (d *EnumConstant) ClassName() string         { return d.name }

func (d *EnumConstant) String() string { return "enum constant " + d.name }

func (d *EnumConstant) AcceptTypeDeclaration(v TypeDeclarationVisitor) error {
	return v.VisitEnumConstant(d)
}

// interfaceDeclarationBase carries what interface and annotation type
// declarations share.
type interfaceDeclarationBase struct {
	typeDeclarationBase

	DocComment    string
	name          string
	ExtendedTypes []Type

	constantDeclarations []*FieldDeclaration
}

func (d *interfaceDeclarationBase) Name() string { return d.name }

func (d *interfaceDeclarationBase) initInterface(self TypeDeclaration) {
	d.self = self
	outer := &EnclosingScopeOfTypeDeclaration{TypeDeclaration: self}
	for _, t := range d.ExtendedTypes {
		t.SetEnclosingScope(outer)
	}
}

func (d *interfaceDeclarationBase) AddConstantDeclaration(f *FieldDeclaration) {
	f.SetDeclaringType(d.self)
	d.constantDeclarations = append(d.constantDeclarations, f)
}

func (d *interfaceDeclarationBase) ConstantDeclarations() []*FieldDeclaration {
	return d.constantDeclarations
}

// MemberInterfaceDeclaration is an interface declared inside another class
// or interface.
type MemberInterfaceDeclaration struct {
	interfaceDeclarationBase
}

func NewMemberInterfaceDeclaration(
	l Located,
	docComment string,
	modifiers Modifiers,
	name string,
	typeParameters []*TypeParameter,
	extendedTypes []Type,
) *MemberInterfaceDeclaration {
	d := &MemberInterfaceDeclaration{
		interfaceDeclarationBase: interfaceDeclarationBase{
			typeDeclarationBase: typeDeclarationBase{Located: l, Modifiers: modifiers.Add(ModInterface), TypeParameters: typeParameters},
			DocComment:          docComment,
			name:                name,
			ExtendedTypes:       extendedTypes,
		},
	}
	d.initInterface(d)
	return d
}

func (d *MemberInterfaceDeclaration) SetDeclaringType(declaringType TypeDeclaration) {
	d.SetEnclosingScope(declaringType)
}

func (d *MemberInterfaceDeclaration) DeclaringType() TypeDeclaration {
	return d.EnclosingScope().(TypeDeclaration)
}

// IsStatic is true for all member interfaces: a nested interface is
// implicitly static.
func (d *MemberInterfaceDeclaration) IsStatic() bool { return true }

func (d *MemberInterfaceDeclaration) ClassName() string {
	return d.DeclaringType().ClassName() + "$" + d.name
}

func (d *MemberInterfaceDeclaration) String() string { return "interface " + d.name }

func (d *MemberInterfaceDeclaration) AcceptTypeDeclaration(v TypeDeclarationVisitor) error {
	return v.VisitMemberInterfaceDeclaration(d)
}

func (d *MemberInterfaceDeclaration) AcceptTypeBodyDeclaration(v TypeBodyDeclarationVisitor) error {
	return v.VisitMemberInterfaceDeclaration(d)
}

// MemberAnnotationTypeDeclaration is an annotation type declared inside
// another class or interface.
type MemberAnnotationTypeDeclaration struct {
	MemberInterfaceDeclaration
}

func NewMemberAnnotationTypeDeclaration(
	l Located,
	docComment string,
	modifiers Modifiers,
	name string,
) *MemberAnnotationTypeDeclaration {
	d := &MemberAnnotationTypeDeclaration{
		MemberInterfaceDeclaration: MemberInterfaceDeclaration{
			interfaceDeclarationBase: interfaceDeclarationBase{
				typeDeclarationBase: typeDeclarationBase{Located: l, Modifiers: modifiers.Add(ModInterface | ModAnnotation)},
				DocComment:          docComment,
				name:                name,
			},
		},
	}
	d.initInterface(d)
	return d
}

func (d *MemberAnnotationTypeDeclaration) String() string { return "@interface " + d.name }

func (d *MemberAnnotationTypeDeclaration) AcceptTypeDeclaration(v TypeDeclarationVisitor) error {
	return v.VisitMemberAnnotationTypeDeclaration(d)
}

func (d *MemberAnnotationTypeDeclaration) AcceptTypeBodyDeclaration(v TypeBodyDeclarationVisitor) error {
	return v.VisitMemberAnnotationTypeDeclaration(d)
}

// PackageMemberInterfaceDeclaration is a top-level interface declaration.
type PackageMemberInterfaceDeclaration struct {
	interfaceDeclarationBase
}

func NewPackageMemberInterfaceDeclaration(
	l Located,
	docComment string,
	modifiers Modifiers,
	name string,
	typeParameters []*TypeParameter,
	extendedTypes []Type,
) (*PackageMemberInterfaceDeclaration, error) {
	if modifiers.Flags&(ModProtected|ModPrivate|ModStatic) != 0 {
		return nil, compiler.NewError(l.Location(),
			"modifiers \"protected\", \"private\" and \"static\" not allowed in package member interface declaration")
	}
	d := &PackageMemberInterfaceDeclaration{
		interfaceDeclarationBase: interfaceDeclarationBase{
			typeDeclarationBase: typeDeclarationBase{Located: l, Modifiers: modifiers.Add(ModInterface), TypeParameters: typeParameters},
			DocComment:          docComment,
			name:                name,
			ExtendedTypes:       extendedTypes,
		},
	}
	d.initInterface(d)
	return d, nil
}

func (d *PackageMemberInterfaceDeclaration) SetDeclaringCompilationUnit(cu *CompilationUnit) {
	d.SetEnclosingScope(cu)
}

func (d *PackageMemberInterfaceDeclaration) DeclaringCompilationUnit() *CompilationUnit {
	return d.EnclosingScope().(*CompilationUnit)
}

func (d *PackageMemberInterfaceDeclaration) ClassName() string {
	cu := d.DeclaringCompilationUnit()
	if cu.PackageDeclaration != nil {
		return cu.PackageDeclaration.PackageName + "." + d.name
	}
	return d.name
}

func (d *PackageMemberInterfaceDeclaration) String() string { return "interface " + d.name }

func (d *PackageMemberInterfaceDeclaration) AcceptTypeDeclaration(v TypeDeclarationVisitor) error {
	return v.VisitPackageMemberInterfaceDeclaration(d)
}

// PackageMemberAnnotationTypeDeclaration is a top-level annotation type
// declaration.
type PackageMemberAnnotationTypeDeclaration struct {
	PackageMemberInterfaceDeclaration
}

func NewPackageMemberAnnotationTypeDeclaration(
	l Located,
	docComment string,
	modifiers Modifiers,
	name string,
) (*PackageMemberAnnotationTypeDeclaration, error) {
	if modifiers.Flags&(ModProtected|ModPrivate|ModStatic) != 0 {
		return nil, compiler.NewError(l.Location(),
			"modifiers \"protected\", \"private\" and \"static\" not allowed in package member annotation type declaration")
	}
	d := &PackageMemberAnnotationTypeDeclaration{
		PackageMemberInterfaceDeclaration: PackageMemberInterfaceDeclaration{
			interfaceDeclarationBase: interfaceDeclarationBase{
				typeDeclarationBase: typeDeclarationBase{Located: l, Modifiers: modifiers.Add(ModInterface | ModAnnotation)},
				DocComment:          docComment,
				name:                name,
			},
		},
	}
	d.initInterface(d)
	return d, nil
}

func (d *PackageMemberAnnotationTypeDeclaration) String() string { return "@interface " + d.name }

func (d *PackageMemberAnnotationTypeDeclaration) AcceptTypeDeclaration(v TypeDeclarationVisitor) error {
	return v.VisitPackageMemberAnnotationTypeDeclaration(d)
}
