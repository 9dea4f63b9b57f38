/*
Package errors implements the error categorization used across this project.

The idea is to reuse as many errors from this package as possible and define
custom package errors only when necessary. It is best to declare a new error
here only if it is going to be package-agnostic.

Errors are categorized by a root error, created with Register(code,
description). The code is returned over the ABCI interface, which allows a
client to distinguish error classes and act accordingly. Extension packages
register their own roots with codes above 1000.

A runtime error instance is created by wrapping a root error with context:

	errors.Wrapf(errors.ErrNotFound, "no wallet for %s", addr)

and tested for its class with the root's Is method:

	if errors.ErrNotFound.Is(err) { ... }

which unwraps any number of Wrap, Field and Append layers.

There is also support for stack traces. Ensure an error is created with
errors.Wrap (or Field) at the point of origin so that a trace is attached.
If you wrap multiple times, only the first wrap records the trace. Use
fmt.Printf verbs to access it:

	%s is just the error message
	%+v is the full stack trace
	%v appends a compressed [filename:line] where the error was created

For validation code that inspects many attributes, combine the partial
results with Append and annotate them with Field/AppendField so that the
caller can extract per-attribute failures with FieldErrors.
*/
package errors
