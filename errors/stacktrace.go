package errors

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// stackTracer is the interface implemented by errors from the pkg/errors
// package that carry a call stack.
type stackTracer interface {
	error
	StackTrace() errors.StackTrace
}

// stackTrace returns the call stack attached to this error chain, or nil if
// none of the layers carries one.
func stackTrace(err error) errors.StackTrace {
	for {
		if st, ok := err.(stackTracer); ok {
			if t := st.StackTrace(); t != nil {
				return t
			}
		}
		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return nil
		}
	}
}

// trimInternal removes the stack frames that belong to this package or to the
// runtime, so that the trace starts where the error was created.
func trimInternal(st errors.StackTrace) errors.StackTrace {
	for len(st) > 0 && matchesFile(st[0],
		"remit/errors/errors.go",
		"remit/errors/field.go",
		"remit/errors/multi.go",
		"/runtime/",
		"/_test/") {
		st = st[1:]
	}
	for l := len(st) - 1; l > 0 && matchesFile(st[l], "/runtime/"); l-- {
		st = st[:l]
	}
	return st
}

func matchesFile(f errors.Frame, substrs ...string) bool {
	file, _ := fileLine(f)
	for _, sub := range substrs {
		if strings.Contains(file, sub) {
			return true
		}
	}
	return false
}

func fileLine(f errors.Frame) (string, int) {
	pc := uintptr(f) - 1
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown", 0
	}
	return fn.FileLine(pc)
}

func writeSimpleFrame(s io.Writer, f errors.Frame) {
	file, line := fileLine(f)
	// Cut the path at "github.com/" to keep the output short.
	chunks := strings.SplitN(file, "github.com/", 2)
	if len(chunks) == 2 {
		file = chunks[1]
	}
	fmt.Fprintf(s, " [%s:%d]", file, line)
}

// Format works like pkg/errors, with additions.
// %s is just the error message
// %+v is the full stack trace
// %v appends a compressed [filename:line] where the error
//    was created
func (e *wrappedError) Format(s fmt.State, verb rune) {
	st := stackTrace(e)
	if st != nil {
		st = trimInternal(st)
	}
	if verb == 'v' && s.Flag('+') && st != nil {
		fmt.Fprintf(s, "%+v\n", st)
	}
	fmt.Fprint(s, e.Error())
	if verb == 'v' && !s.Flag('+') && len(st) > 0 {
		writeSimpleFrame(s, st[0])
	}
}
