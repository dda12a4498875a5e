package format

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dhamidi/ono/ast"
)

type YAMLEncoder struct {
	w    io.Writer
	unit *ast.CompilationUnit
}

func NewYAMLEncoder(w io.Writer) *YAMLEncoder {
	return &YAMLEncoder{w: w}
}

func (e *YAMLEncoder) Encode(unit *ast.CompilationUnit) error {
	e.unit = unit
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *YAMLEncoder) MarshalText() ([]byte, error) {
	return yaml.Marshal(buildUnitData(e.unit))
}
