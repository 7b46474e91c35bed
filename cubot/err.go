package cubot

import (
	"github.com/ezrec/cubot/translate"
	"github.com/ezrec/cubot/world"
)

var f = translate.From

// ErrRuntime locates a fault in a Cubot's program.
type ErrRuntime struct {
	Cubot  world.ObjectID
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("cubot %d: line %d %v", int64(err.Cubot), err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
