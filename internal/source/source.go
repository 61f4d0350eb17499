// Package source reads the records of classification and master data files.
package source

//spellchecker:words errors
import (
	"errors"
	"fmt"
	"strings"
)

// ErrInputFormat indicates that an input file could not be parsed, or lacks a required element.
var ErrInputFormat = errors.New("invalid input format")

// FormatError describes an error in a specific input file.
type FormatError struct {
	File   string // name of the input file
	Record string // record within the file, e.g. "line 12" or "activityName 3"
	Field  string // offending field or attribute, if known
	Err    error
}

func (fe *FormatError) Error() string {
	var builder strings.Builder
	builder.WriteString(fe.File)
	if fe.Record != "" {
		builder.WriteString(": ")
		builder.WriteString(fe.Record)
	}
	if fe.Field != "" {
		fmt.Fprintf(&builder, ": field %q", fe.Field)
	}
	builder.WriteString(": ")
	builder.WriteString(fe.Err.Error())
	return builder.String()
}

func (fe *FormatError) Unwrap() error {
	return fe.Err
}

// Is makes every FormatError match [ErrInputFormat].
func (fe *FormatError) Is(target error) bool {
	return target == ErrInputFormat
}

var errMissing = errors.New("missing")
