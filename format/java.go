package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/ono/ast"
)

// JavaEncoder renders a compilation unit back into Java source. Output is
// normalized: four-space indentation, one declaration per line, fully
// parenthesized composite operands.
type JavaEncoder struct {
	w    io.Writer
	unit *ast.CompilationUnit
}

func NewJavaEncoder(w io.Writer) *JavaEncoder {
	return &JavaEncoder{w: w}
}

func (e *JavaEncoder) Encode(unit *ast.CompilationUnit) error {
	e.unit = unit
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JavaEncoder) MarshalText() ([]byte, error) {
	u := newUnparser()
	if err := u.unparseCompilationUnit(e.unit); err != nil {
		return nil, err
	}
	return []byte(u.sb.String()), nil
}

// unparser is the visitor that does the actual rendering. One instance
// serves a single MarshalText call.
type unparser struct {
	sb          strings.Builder
	indent      int
	indentStr   string
	atLineStart bool
}

func newUnparser() *unparser {
	return &unparser{indentStr: "    ", atLineStart: true}
}

func (u *unparser) write(s string) {
	if u.atLineStart {
		for i := 0; i < u.indent; i++ {
			u.sb.WriteString(u.indentStr)
		}
		u.atLineStart = false
	}
	u.sb.WriteString(s)
}

func (u *unparser) writef(format string, args ...any) {
	u.write(fmt.Sprintf(format, args...))
}

func (u *unparser) newline() {
	u.sb.WriteByte('\n')
	u.atLineStart = true
}

func (u *unparser) unparseCompilationUnit(cu *ast.CompilationUnit) error {
	if cu.PackageDeclaration != nil {
		u.write(cu.PackageDeclaration.String())
		u.newline()
		u.newline()
	}
	for _, id := range cu.ImportDeclarations {
		if err := id.AcceptImport(u); err != nil {
			return err
		}
	}
	if len(cu.ImportDeclarations) > 0 {
		u.newline()
	}
	for i, pmtd := range cu.PackageMemberTypeDeclarations() {
		if i > 0 {
			u.newline()
		}
		if err := pmtd.AcceptTypeDeclaration(u); err != nil {
			return err
		}
	}
	return nil
}

func (u *unparser) VisitSingleTypeImportDeclaration(id *ast.SingleTypeImportDeclaration) error {
	u.write(id.String())
	u.newline()
	return nil
}

func (u *unparser) VisitTypeImportOnDemandDeclaration(id *ast.TypeImportOnDemandDeclaration) error {
	u.write(id.String())
	u.newline()
	return nil
}

func (u *unparser) VisitSingleStaticImportDeclaration(id *ast.SingleStaticImportDeclaration) error {
	u.write(id.String())
	u.newline()
	return nil
}

func (u *unparser) VisitStaticImportOnDemandDeclaration(id *ast.StaticImportOnDemandDeclaration) error {
	u.write(id.String())
	u.newline()
	return nil
}

func (u *unparser) VisitBasicType(t *ast.BasicType) error {
	u.write(string(t.Primitive))
	return nil
}

func (u *unparser) VisitReferenceType(t *ast.ReferenceType) error {
	u.write(strings.Join(t.Identifiers, "."))
	if len(t.TypeArguments) == 0 {
		return nil
	}
	u.write("<")
	for i, ta := range t.TypeArguments {
		if i > 0 {
			u.write(", ")
		}
		if err := ta.AcceptTypeArgument(u); err != nil {
			return err
		}
	}
	u.write(">")
	return nil
}

func (u *unparser) VisitArrayType(t *ast.ArrayType) error {
	if err := t.ComponentType.AcceptType(u); err != nil {
		return err
	}
	u.write("[]")
	return nil
}

func (u *unparser) VisitSimpleType(t *ast.SimpleType) error {
	u.write(t.ResolvedType.String())
	return nil
}

func (u *unparser) VisitRvalueMemberType(t *ast.RvalueMemberType) error {
	if err := t.Rvalue.AcceptRvalue(u); err != nil {
		return err
	}
	u.write("." + t.Identifier)
	return nil
}

func (u *unparser) VisitReferenceTypeArgument(t *ast.ReferenceType) error {
	return u.VisitReferenceType(t)
}

func (u *unparser) VisitArrayTypeArgument(t *ast.ArrayType) error {
	return u.VisitArrayType(t)
}

func (u *unparser) VisitWildcard(w *ast.Wildcard) error {
	switch w.Bounds {
	case ast.WildcardExtends:
		u.write("? extends ")
		return u.VisitReferenceType(w.ReferenceType)
	case ast.WildcardSuper:
		u.write("? super ")
		return u.VisitReferenceType(w.ReferenceType)
	}
	u.write("?")
	return nil
}

func (u *unparser) VisitMarkerAnnotation(a *ast.MarkerAnnotation) error {
	u.write("@")
	return a.Type.AcceptType(u)
}

func (u *unparser) VisitSingleElementAnnotation(a *ast.SingleElementAnnotation) error {
	u.write("@")
	if err := a.Type.AcceptType(u); err != nil {
		return err
	}
	u.write("(")
	if err := a.ElementValue.AcceptElementValue(u); err != nil {
		return err
	}
	u.write(")")
	return nil
}

func (u *unparser) VisitNormalAnnotation(a *ast.NormalAnnotation) error {
	u.write("@")
	if err := a.Type.AcceptType(u); err != nil {
		return err
	}
	u.write("(")
	for i, p := range a.ElementValuePairs {
		if i > 0 {
			u.write(", ")
		}
		u.write(p.Name + " = ")
		if err := p.ElementValue.AcceptElementValue(u); err != nil {
			return err
		}
	}
	u.write(")")
	return nil
}

func (u *unparser) VisitRvalueElement(rv ast.Rvalue) error {
	return rv.AcceptRvalue(u)
}

func (u *unparser) VisitAnnotationElement(a ast.Annotation) error {
	return a.AcceptAnnotation(u)
}

func (u *unparser) VisitElementValueArrayInitializer(e *ast.ElementValueArrayInitializer) error {
	u.write("{")
	for i, v := range e.Values {
		if i > 0 {
			u.write(",")
		}
		u.write(" ")
		if err := v.AcceptElementValue(u); err != nil {
			return err
		}
	}
	u.write(" }")
	return nil
}

func (u *unparser) VisitPackage(p *ast.Package) error {
	u.write(p.Name)
	return nil
}

func (u *unparser) unparseAnnotations(annotations []ast.Annotation, separator string) error {
	for _, a := range annotations {
		if err := a.AcceptAnnotation(u); err != nil {
			return err
		}
		if separator == "\n" {
			u.newline()
		} else {
			u.write(separator)
		}
	}
	return nil
}

// unparseModifiers writes the annotations and keywords of a declaration,
// each followed by a space. mask removes bits that have no keyword in the
// declaration's position, e.g. the varargs bit of a method.
func (u *unparser) unparseModifiers(m ast.Modifiers, mask ast.Modifier) error {
	if err := u.unparseAnnotations(m.Annotations, " "); err != nil {
		return err
	}
	if kw := (m.Flags &^ mask).String(); kw != "" {
		u.write(kw + " ")
	}
	return nil
}

func (u *unparser) unparseTypeParameters(typeParameters []*ast.TypeParameter) {
	if len(typeParameters) == 0 {
		return
	}
	parts := make([]string, len(typeParameters))
	for i, tp := range typeParameters {
		parts[i] = tp.String()
	}
	u.write("<" + strings.Join(parts, ", ") + "> ")
}
