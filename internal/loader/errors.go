package loader

import (
	"fmt"
	"path/filepath"
)

// MissingInputError reports an absent export file. The operator producing
// these exports is non-technical, so Error returns the full remedial
// instruction block rather than a terse message.
type MissingInputError struct {
	Path         string
	Instructions string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing input file %s\n%s", e.Path, e.Instructions)
}

// MalformedInputError reports a column that failed type coercion.
type MalformedInputError struct {
	File   string
	Row    int
	Column string
	Err    error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("%s: row %d: column %q: %v", filepath.Base(e.File), e.Row, e.Column, e.Err)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }
