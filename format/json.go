package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/ono/ast"
)

type JSONEncoder struct {
	w    io.Writer
	unit *ast.CompilationUnit
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(unit *ast.CompilationUnit) error {
	e.unit = unit
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(buildUnitData(e.unit), "", "  ")
}
