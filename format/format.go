package format

import (
	"encoding"

	"github.com/dhamidi/ono/ast"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(unit *ast.CompilationUnit) error
}
