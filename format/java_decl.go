package format

import (
	"github.com/dhamidi/ono/ast"
)

// classDeclaration is the facet of class-like declarations the unparser
// needs: anonymous classes, local classes, member and package member
// classes, enums and enum constants all satisfy it.
type classDeclaration interface {
	ast.TypeDeclaration
	DeclaredConstructors() []*ast.ConstructorDeclarator
	FieldDeclarationsAndInitializers() []ast.BlockStatement
}

// interfaceDeclaration is the corresponding facet of interface-like
// declarations.
type interfaceDeclaration interface {
	ast.TypeDeclaration
	ConstantDeclarations() []*ast.FieldDeclaration
}

func (u *unparser) unparseFormalParameter(fp *ast.FormalParameter, ellipsis bool) error {
	if fp.Final {
		u.write("final ")
	}
	if err := fp.Type.AcceptType(u); err != nil {
		return err
	}
	if ellipsis {
		u.write("...")
	}
	u.write(" " + fp.Name)
	return nil
}

func (u *unparser) unparseFormalParameters(ps *ast.FormalParameters) error {
	u.write("(")
	for i, fp := range ps.Parameters {
		if i > 0 {
			u.write(", ")
		}
		last := i == len(ps.Parameters)-1
		if err := u.unparseFormalParameter(fp, last && ps.VariableArity); err != nil {
			return err
		}
	}
	u.write(")")
	return nil
}

func (u *unparser) unparseThrows(thrownExceptions []ast.Type) error {
	if len(thrownExceptions) == 0 {
		return nil
	}
	u.write(" throws ")
	for i, te := range thrownExceptions {
		if i > 0 {
			u.write(", ")
		}
		if err := te.AcceptType(u); err != nil {
			return err
		}
	}
	return nil
}

func (u *unparser) unparseFunctionBody(statements []ast.BlockStatement, ci ast.ConstructorInvocation) error {
	if statements == nil && ci == nil {
		u.write(";")
		u.newline()
		return nil
	}
	u.write(" {")
	u.newline()
	u.indent++
	if ci != nil {
		if err := u.unparseStatementLine(ci); err != nil {
			return err
		}
	}
	for _, bs := range statements {
		if err := u.unparseStatementLine(bs); err != nil {
			return err
		}
	}
	u.indent--
	u.write("}")
	u.newline()
	return nil
}

func (u *unparser) VisitMethodDeclarator(m *ast.MethodDeclarator) error {
	if err := u.unparseAnnotations(m.Modifiers.Annotations, "\n"); err != nil {
		return err
	}
	if kw := (m.Modifiers.Flags &^ ast.ModVarargs).String(); kw != "" {
		u.write(kw + " ")
	}
	u.unparseTypeParameters(m.TypeParameters)
	if err := m.Type.AcceptType(u); err != nil {
		return err
	}
	u.write(" " + m.Name)
	if err := u.unparseFormalParameters(m.Parameters); err != nil {
		return err
	}
	if err := u.unparseThrows(m.ThrownExceptions); err != nil {
		return err
	}
	return u.unparseFunctionBody(m.Statements, nil)
}

func (u *unparser) VisitConstructorDeclarator(c *ast.ConstructorDeclarator) error {
	if err := u.unparseModifiers(c.Modifiers, 0); err != nil {
		return err
	}
	u.write(u.constructorName(c))
	if err := u.unparseFormalParameters(c.Parameters); err != nil {
		return err
	}
	if err := u.unparseThrows(c.ThrownExceptions); err != nil {
		return err
	}
	return u.unparseFunctionBody(c.Statements, c.ConstructorInvocation)
}

// constructorName is the simple name of the declaring type, since
// constructors are stored under "<init>".
func (u *unparser) constructorName(c *ast.ConstructorDeclarator) string {
	if named, ok := c.DeclaringType().(ast.NamedTypeDeclaration); ok {
		return named.Name()
	}
	return c.DeclaringType().String()
}

func (u *unparser) VisitInitializer(i *ast.Initializer) error {
	if i.Static {
		u.write("static ")
	}
	if err := u.VisitBlock(i.Block); err != nil {
		return err
	}
	u.newline()
	return nil
}

func (u *unparser) VisitFieldDeclaration(f *ast.FieldDeclaration) error {
	if err := u.unparseModifiers(f.Modifiers, 0); err != nil {
		return err
	}
	if err := f.Type.AcceptType(u); err != nil {
		return err
	}
	u.write(" ")
	if err := u.unparseVariableDeclarators(f.VariableDeclarators); err != nil {
		return err
	}
	u.write(";")
	return nil
}

func (u *unparser) unparseClassBody(d classDeclaration) error {
	for _, bs := range d.FieldDeclarationsAndInitializers() {
		if err := u.unparseStatementLine(bs); err != nil {
			return err
		}
	}
	for _, c := range d.DeclaredConstructors() {
		if err := u.VisitConstructorDeclarator(c); err != nil {
			return err
		}
	}
	for _, m := range d.MethodDeclarations() {
		if err := u.VisitMethodDeclarator(m); err != nil {
			return err
		}
	}
	for _, mt := range d.MemberTypeDeclarations() {
		if err := mt.AcceptTypeDeclaration(u); err != nil {
			return err
		}
	}
	return nil
}

func (u *unparser) unparseInterfaceBody(d interfaceDeclaration) error {
	for _, cd := range d.ConstantDeclarations() {
		if err := u.VisitFieldDeclaration(cd); err != nil {
			return err
		}
		u.newline()
	}
	for _, m := range d.MethodDeclarations() {
		if err := u.VisitMethodDeclarator(m); err != nil {
			return err
		}
	}
	for _, mt := range d.MemberTypeDeclarations() {
		if err := mt.AcceptTypeDeclaration(u); err != nil {
			return err
		}
	}
	return nil
}

func (u *unparser) unparseNamedClass(
	keyword string,
	d classDeclaration,
	name string,
	modifiers ast.Modifiers,
	typeParameters []*ast.TypeParameter,
	extendedType ast.Type,
	implementedTypes []ast.Type,
) error {
	if err := u.unparseAnnotations(modifiers.Annotations, "\n"); err != nil {
		return err
	}
	if kw := (modifiers.Flags &^ (ast.ModInterface | ast.ModAnnotation | ast.ModEnum)).String(); kw != "" {
		u.write(kw + " ")
	}
	u.write(keyword + " " + name)
	if len(typeParameters) > 0 {
		u.write(" ")
	}
	u.unparseTypeParameters(typeParameters)
	if extendedType != nil {
		u.write(" extends ")
		if err := extendedType.AcceptType(u); err != nil {
			return err
		}
	}
	if len(implementedTypes) > 0 {
		u.write(" implements ")
		for i, it := range implementedTypes {
			if i > 0 {
				u.write(", ")
			}
			if err := it.AcceptType(u); err != nil {
				return err
			}
		}
	}
	u.write(" {")
	u.newline()
	u.indent++
	if err := u.unparseClassBody(d); err != nil {
		return err
	}
	u.indent--
	u.write("}")
	u.newline()
	return nil
}

func (u *unparser) unparseEnum(d ast.EnumDeclaration, body classDeclaration, modifiers ast.Modifiers, implementedTypes []ast.Type) error {
	if err := u.unparseAnnotations(modifiers.Annotations, "\n"); err != nil {
		return err
	}
	if kw := (modifiers.Flags &^ (ast.ModEnum | ast.ModFinal | ast.ModAbstract)).String(); kw != "" {
		u.write(kw + " ")
	}
	u.write("enum " + d.Name())
	if len(implementedTypes) > 0 {
		u.write(" implements ")
		for i, it := range implementedTypes {
			if i > 0 {
				u.write(", ")
			}
			if err := it.AcceptType(u); err != nil {
				return err
			}
		}
	}
	u.write(" {")
	u.newline()
	u.indent++
	for i, c := range d.Constants() {
		if i > 0 {
			u.write(",")
			u.newline()
		}
		if err := u.VisitEnumConstant(c); err != nil {
			return err
		}
	}
	if len(d.Constants()) > 0 {
		u.write(";")
		u.newline()
	}
	if err := u.unparseClassBody(body); err != nil {
		return err
	}
	u.indent--
	u.write("}")
	u.newline()
	return nil
}

func (u *unparser) unparseInterface(
	keyword string,
	d interfaceDeclaration,
	name string,
	modifiers ast.Modifiers,
	typeParameters []*ast.TypeParameter,
	extendedTypes []ast.Type,
) error {
	if err := u.unparseAnnotations(modifiers.Annotations, "\n"); err != nil {
		return err
	}
	if kw := (modifiers.Flags &^ (ast.ModInterface | ast.ModAnnotation)).String(); kw != "" {
		u.write(kw + " ")
	}
	u.write(keyword + " " + name)
	if len(typeParameters) > 0 {
		u.write(" ")
	}
	u.unparseTypeParameters(typeParameters)
	if len(extendedTypes) > 0 {
		u.write(" extends ")
		for i, et := range extendedTypes {
			if i > 0 {
				u.write(", ")
			}
			if err := et.AcceptType(u); err != nil {
				return err
			}
		}
	}
	u.write(" {")
	u.newline()
	u.indent++
	if err := u.unparseInterfaceBody(d); err != nil {
		return err
	}
	u.indent--
	u.write("}")
	u.newline()
	return nil
}

func (u *unparser) VisitAnonymousClassDeclaration(d *ast.AnonymousClassDeclaration) error {
	u.write("new ")
	if err := d.BaseType.AcceptType(u); err != nil {
		return err
	}
	u.write("() {")
	u.newline()
	u.indent++
	if err := u.unparseClassBody(d); err != nil {
		return err
	}
	u.indent--
	u.write("}")
	return nil
}

func (u *unparser) VisitLocalClassDeclaration(d *ast.LocalClassDeclaration) error {
	return u.unparseNamedClass("class", d, d.Name(), d.Modifiers, d.TypeParameters, d.ExtendedType, d.ImplementedTypes)
}

func (u *unparser) VisitMemberClassDeclaration(d *ast.MemberClassDeclaration) error {
	return u.unparseNamedClass("class", d, d.Name(), d.Modifiers, d.TypeParameters, d.ExtendedType, d.ImplementedTypes)
}

func (u *unparser) VisitMemberEnumDeclaration(d *ast.MemberEnumDeclaration) error {
	return u.unparseEnum(d, d, d.Modifiers, d.ImplementedTypes)
}

func (u *unparser) VisitPackageMemberClassDeclaration(d *ast.PackageMemberClassDeclaration) error {
	return u.unparseNamedClass("class", d, d.Name(), d.Modifiers, d.TypeParameters, d.ExtendedType, d.ImplementedTypes)
}

func (u *unparser) VisitPackageMemberEnumDeclaration(d *ast.PackageMemberEnumDeclaration) error {
	return u.unparseEnum(d, d, d.Modifiers, d.ImplementedTypes)
}

func (u *unparser) VisitEnumConstant(d *ast.EnumConstant) error {
	if err := u.unparseAnnotations(d.EnumAnnotations, "\n"); err != nil {
		return err
	}
	u.write(d.Name())
	if len(d.Arguments) > 0 {
		if err := u.unparseArguments(d.Arguments); err != nil {
			return err
		}
	}
	body := d.FieldDeclarationsAndInitializers()
	if len(body) == 0 && len(d.MethodDeclarations()) == 0 && len(d.MemberTypeDeclarations()) == 0 {
		return nil
	}
	u.write(" {")
	u.newline()
	u.indent++
	if err := u.unparseClassBody(d); err != nil {
		return err
	}
	u.indent--
	u.write("}")
	return nil
}

func (u *unparser) VisitMemberInterfaceDeclaration(d *ast.MemberInterfaceDeclaration) error {
	return u.unparseInterface("interface", d, d.Name(), d.Modifiers, d.TypeParameters, d.ExtendedTypes)
}

func (u *unparser) VisitMemberAnnotationTypeDeclaration(d *ast.MemberAnnotationTypeDeclaration) error {
	return u.unparseInterface("@interface", d, d.Name(), d.Modifiers, nil, nil)
}

func (u *unparser) VisitPackageMemberInterfaceDeclaration(d *ast.PackageMemberInterfaceDeclaration) error {
	return u.unparseInterface("interface", d, d.Name(), d.Modifiers, d.TypeParameters, d.ExtendedTypes)
}

func (u *unparser) VisitPackageMemberAnnotationTypeDeclaration(d *ast.PackageMemberAnnotationTypeDeclaration) error {
	return u.unparseInterface("@interface", d, d.Name(), d.Modifiers, nil, nil)
}
