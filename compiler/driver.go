package compiler

import (
	"errors"
	"fmt"

	"github.com/tliron/commonlog"
)

// Unit is the thing passes operate on. The ast package's CompilationUnit
// satisfies it; the driver itself never looks inside.
type Unit interface {
	UnitName() string
}

// Pass is one stage of the front-end, e.g. scope verification or encoding.
type Pass interface {
	Name() string
	Run(unit Unit) error
}

// PassFunc adapts a function to the Pass interface.
type PassFunc struct {
	PassName string
	Func     func(unit Unit) error
}

func (p PassFunc) Name() string        { return p.PassName }
func (p PassFunc) Run(unit Unit) error { return p.Func(unit) }

// Driver runs passes over units, collecting source errors and translating
// internal-error panics into ordinary errors at the pass boundary. Source
// errors do not stop the run; the first internal error does.
type Driver struct {
	log    commonlog.Logger
	errors []*Error
}

func NewDriver() *Driver {
	return &Driver{log: commonlog.GetLogger("ono.compiler")}
}

// Errors returns the source errors collected so far, in the order reported.
func (d *Driver) Errors() []*Error {
	return d.errors
}

func (d *Driver) Run(units []Unit, passes []Pass) error {
	for _, unit := range units {
		for _, pass := range passes {
			d.log.Debugf("running pass %q on %q", pass.Name(), unit.UnitName())
			if err := d.runOne(unit, pass); err != nil {
				var srcErr *Error
				if errors.As(err, &srcErr) {
					d.log.Errorf("%s", srcErr.Error())
					d.errors = append(d.errors, srcErr)
					continue
				}
				return fmt.Errorf("pass %q on %q: %w", pass.Name(), unit.UnitName(), err)
			}
		}
	}
	if n := len(d.errors); n > 0 {
		return fmt.Errorf("%d error(s)", n)
	}
	return nil
}

func (d *Driver) runOne(unit Unit, pass Pass) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(*InternalError); ok {
				err = ie
				return
			}
			panic(r)
		}
	}()
	return pass.Run(unit)
}
