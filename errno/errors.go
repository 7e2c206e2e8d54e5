package errno

import (
	"errors"
	"fmt"

	"github.com/rotisserie/eris"
)

var ErrIllegalArgument = errors.New("illegal argument")
var ErrNullPointer = errors.New("null pointer")
var ErrHashing = errors.New("hashing error")

func NilCursor(what string) error {
	return eris.Wrap(ErrNullPointer, "nil "+what)
}

func NegativeCount(n int) error {
	return eris.Wrap(ErrIllegalArgument, fmt.Sprintf("count must not be negative, got %d", n))
}

func HashingError(err error) error {
	return eris.Wrap(ErrHashing, err.Error())
}
