package format

import (
	"github.com/dhamidi/ono/ast"
)

// unitData is the serializable summary of a compilation unit shared by the
// JSON and YAML encoders.
type unitData struct {
	File    string     `json:"file,omitempty" yaml:"file,omitempty"`
	Package string     `json:"package,omitempty" yaml:"package,omitempty"`
	Imports []string   `json:"imports,omitempty" yaml:"imports,omitempty"`
	Types   []typeData `json:"types,omitempty" yaml:"types,omitempty"`
}

type typeData struct {
	Kind       string   `json:"kind" yaml:"kind"`
	Name       string   `json:"name,omitempty" yaml:"name,omitempty"`
	ClassName  string   `json:"className" yaml:"className"`
	Modifiers  string   `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	Extends    []string `json:"extends,omitempty" yaml:"extends,omitempty"`
	Implements []string `json:"implements,omitempty" yaml:"implements,omitempty"`

	Constants       []string     `json:"constants,omitempty" yaml:"constants,omitempty"`
	Fields          []fieldData  `json:"fields,omitempty" yaml:"fields,omitempty"`
	Constructors    []methodData `json:"constructors,omitempty" yaml:"constructors,omitempty"`
	Methods         []methodData `json:"methods,omitempty" yaml:"methods,omitempty"`
	SyntheticFields []string     `json:"syntheticFields,omitempty" yaml:"syntheticFields,omitempty"`
	MemberTypes     []typeData   `json:"memberTypes,omitempty" yaml:"memberTypes,omitempty"`
}

type fieldData struct {
	Name      string `json:"name" yaml:"name"`
	Type      string `json:"type" yaml:"type"`
	Modifiers string `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
}

type methodData struct {
	Name       string   `json:"name" yaml:"name"`
	ReturnType string   `json:"returnType,omitempty" yaml:"returnType,omitempty"`
	Parameters []string `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Modifiers  string   `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	Throws     []string `json:"throws,omitempty" yaml:"throws,omitempty"`
}

func buildUnitData(cu *ast.CompilationUnit) unitData {
	d := unitData{
		File:    cu.FileName,
		Package: cu.PackageName(),
	}
	for _, id := range cu.ImportDeclarations {
		d.Imports = append(d.Imports, id.String())
	}
	for _, pmtd := range cu.PackageMemberTypeDeclarations() {
		d.Types = append(d.Types, buildTypeData(pmtd))
	}
	return d
}

func buildTypeData(td ast.TypeDeclaration) typeData {
	d := typeData{
		Kind:      typeKind(td),
		ClassName: td.ClassName(),
		Modifiers: td.ModifierFlags().String(),
	}
	if named, ok := td.(ast.NamedTypeDeclaration); ok {
		d.Name = named.Name()
	}

	switch t := td.(type) {
	case *ast.AnonymousClassDeclaration:
		d.Extends = []string{t.BaseType.String()}
	case *ast.LocalClassDeclaration:
		d.Extends, d.Implements = supertypeNames(t.ExtendedType, t.ImplementedTypes)
	case *ast.MemberEnumDeclaration:
		d.Implements = typeNames(t.ImplementedTypes)
		d.Constants = constantNames(t.Constants())
	case *ast.MemberClassDeclaration:
		d.Extends, d.Implements = supertypeNames(t.ExtendedType, t.ImplementedTypes)
	case *ast.PackageMemberEnumDeclaration:
		d.Implements = typeNames(t.ImplementedTypes)
		d.Constants = constantNames(t.Constants())
	case *ast.PackageMemberClassDeclaration:
		d.Extends, d.Implements = supertypeNames(t.ExtendedType, t.ImplementedTypes)
	case *ast.MemberInterfaceDeclaration:
		d.Extends = typeNames(t.ExtendedTypes)
	case *ast.PackageMemberInterfaceDeclaration:
		d.Extends = typeNames(t.ExtendedTypes)
	}

	if cd, ok := td.(interface {
		FieldDeclarationsAndInitializers() []ast.BlockStatement
		DeclaredConstructors() []*ast.ConstructorDeclarator
	}); ok {
		for _, bs := range cd.FieldDeclarationsAndInitializers() {
			if fd, ok := bs.(*ast.FieldDeclaration); ok {
				d.Fields = append(d.Fields, buildFieldData(fd)...)
			}
		}
		for _, c := range cd.DeclaredConstructors() {
			d.Constructors = append(d.Constructors, buildMethodData(&c.FunctionDeclarator))
		}
	}
	if id, ok := td.(interface {
		ConstantDeclarations() []*ast.FieldDeclaration
	}); ok {
		for _, fd := range id.ConstantDeclarations() {
			d.Fields = append(d.Fields, buildFieldData(fd)...)
		}
	}
	if inner, ok := td.(ast.InnerClassDeclaration); ok {
		for _, sf := range inner.SyntheticFields() {
			d.SyntheticFields = append(d.SyntheticFields, sf.Name)
		}
	}
	for _, m := range td.MethodDeclarations() {
		d.Methods = append(d.Methods, buildMethodData(&m.FunctionDeclarator))
	}
	for _, mt := range td.MemberTypeDeclarations() {
		d.MemberTypes = append(d.MemberTypes, buildTypeData(mt))
	}
	return d
}

func buildFieldData(fd *ast.FieldDeclaration) []fieldData {
	fields := make([]fieldData, len(fd.VariableDeclarators))
	for i, vd := range fd.VariableDeclarators {
		fields[i] = fieldData{
			Name:      vd.Name,
			Type:      fd.Type.String(),
			Modifiers: fd.Modifiers.Flags.String(),
		}
	}
	return fields
}

func buildMethodData(f *ast.FunctionDeclarator) methodData {
	m := methodData{
		Name:       f.Name,
		ReturnType: f.Type.String(),
		Modifiers:  (f.Modifiers.Flags &^ ast.ModVarargs).String(),
	}
	for _, fp := range f.Parameters.Parameters {
		m.Parameters = append(m.Parameters, fp.Type.String()+" "+fp.Name)
	}
	for _, te := range f.ThrownExceptions {
		m.Throws = append(m.Throws, te.String())
	}
	return m
}

func typeKind(td ast.TypeDeclaration) string {
	switch td.(type) {
	case *ast.AnonymousClassDeclaration:
		return "anonymous class"
	case *ast.LocalClassDeclaration:
		return "local class"
	case *ast.MemberEnumDeclaration, *ast.PackageMemberEnumDeclaration:
		return "enum"
	case *ast.MemberClassDeclaration, *ast.PackageMemberClassDeclaration:
		return "class"
	case *ast.EnumConstant:
		return "enum constant"
	case *ast.MemberAnnotationTypeDeclaration, *ast.PackageMemberAnnotationTypeDeclaration:
		return "annotation"
	case *ast.MemberInterfaceDeclaration, *ast.PackageMemberInterfaceDeclaration:
		return "interface"
	}
	return "type"
}

func typeNames(types []ast.Type) []string {
	if len(types) == 0 {
		return nil
	}
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return names
}

func supertypeNames(extended ast.Type, implemented []ast.Type) ([]string, []string) {
	var ext []string
	if extended != nil {
		ext = []string{extended.String()}
	}
	return ext, typeNames(implemented)
}

func constantNames(constants []*ast.EnumConstant) []string {
	if len(constants) == 0 {
		return nil
	}
	names := make([]string, len(constants))
	for i, c := range constants {
		names[i] = c.Name()
	}
	return names
}
