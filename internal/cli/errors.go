package cli

import (
	"errors"
	"fmt"
	"io"
)

type notFoundError struct {
	kind string
	id   string
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.kind, e.id)
}

func errNotFound(kind, id string) error {
	return notFoundError{kind: kind, id: id}
}

type invalidIDError struct {
	raw string
}

func (e invalidIDError) Error() string {
	return fmt.Sprintf("invalid node id: %q (expected an integer)", e.raw)
}

func errInvalidID(raw string) error {
	return invalidIDError{raw: raw}
}

// reportedError marks an error that writeErr already printed.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }

func (e reportedError) Unwrap() error { return e.err }

// ReportError prints err to w unless a command already reported it.
func ReportError(w io.Writer, err error) {
	if err == nil {
		return
	}
	var r reportedError
	if errors.As(err, &r) {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
