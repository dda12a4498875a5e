package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/ono/ast"
)

// LineEncoder writes one tab-separated line per declaration, for grepping
// and diffing.
type LineEncoder struct {
	w    io.Writer
	unit *ast.CompilationUnit
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(unit *ast.CompilationUnit) error {
	e.unit = unit
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, td := range buildUnitData(e.unit).Types {
		writeTypeLines(&sb, td)
	}
	return []byte(sb.String()), nil
}

func writeTypeLines(sb *strings.Builder, td typeData) {
	fmt.Fprintf(sb, "%s\t%s\t%s\n", strings.ReplaceAll(td.Kind, " ", "-"), td.ClassName, td.Modifiers)

	for _, f := range td.Fields {
		fmt.Fprintf(sb, "field\t%s\t%s\t%s\n", f.Name, f.Type, f.Modifiers)
	}
	for _, c := range td.Constructors {
		fmt.Fprintf(sb, "constructor\t%s\t(%s)\t%s\n", td.ClassName, strings.Join(c.Parameters, ", "), c.Modifiers)
	}
	for _, m := range td.Methods {
		fmt.Fprintf(sb, "method\t%s\t%s\t(%s)\t%s\n", m.Name, m.ReturnType, strings.Join(m.Parameters, ", "), m.Modifiers)
	}
	for _, mt := range td.MemberTypes {
		writeTypeLines(sb, mt)
	}
}
