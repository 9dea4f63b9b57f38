package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If given errors contain a multi error instance, it is flattened so that the
// final result is always a single level collection of errors.
// Returned value is nil if no non-nil error was provided. If only a single
// error remains after flattening, it is returned directly.
func Append(errs ...error) error {
	var flat multiError
	for _, err := range errs {
		switch e := err.(type) {
		case nil:
			continue
		case multiError:
			flat = append(flat, e...)
		default:
			flat = append(flat, e)
		}
	}
	switch len(flat) {
	case 0:
		return nil
	case 1:
		return flat[0]
	default:
		return flat
	}
}

// multiError is a collection of errors that acts as a single error. It is a
// result of combining one or more non-nil errors together.
type multiError []error

var _ error = (multiError)(nil)
var _ unpacker = (multiError)(nil)
var _ coder = (multiError)(nil)

func (e multiError) Error() string {
	switch len(e) {
	case 0:
		return "<nil>"
	case 1:
		return e[0].Error()
	}

	points := make([]string, len(e))
	for i, err := range e {
		points[i] = fmt.Sprintf("* %s", err)
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s", len(e), strings.Join(points, "\n\t"))
}

// Unpack returns all errors contained by this collection.
func (e multiError) Unpack() []error {
	return e
}

// ABCICode returns the code shared by all contained errors or the internal
// error code if the errors do not agree on one.
func (e multiError) ABCICode() uint32 {
	if len(e) == 0 {
		return SuccessABCICode
	}
	code := abciCode(e[0])
	for _, err := range e[1:] {
		if abciCode(err) != code {
			return internalABCICode
		}
	}
	return code
}
