// Package crid maps source records into centrally registered identifiers (CRIDs).
//
// Every CRID is made up of two parts: the database version it was published in,
// and a bare entity that is independent of any specific version.
package crid

//spellchecker:words errors
import (
	"errors"
	"fmt"
)

// Name is the name of a record in a specific language.
// An empty language means the name is untagged.
type Name struct {
	Language string
	Text     string
}

// ClassificationCode is a single entry of an industrial classification.
type ClassificationCode struct {
	Code  string // e.g. "0111"
	Label string // e.g. "Growing of cereals (except rice), leguminous crops and oil seeds"
}

// Activity is an entry of a list of activity names.
type Activity struct {
	ID    string // uuid of the activity name
	Names []Name
}

// Exchange holds the fields common to all exchanges.
type Exchange struct {
	ID    string // uuid of the exchange
	Names []Name

	HasProperty bool // at least one property is declared

	UnitName string
	HasUnit  bool // the unit name was declared
}

// IntermediateExchange is an entry of a list of intermediate exchanges.
type IntermediateExchange struct {
	Exchange
}

// ElementaryExchange is an entry of a list of elementary exchanges.
type ElementaryExchange struct {
	Exchange

	// compartment and subcompartment names, by language
	Compartments    map[string]string
	Subcompartments map[string]string
}

// ErrMissingField indicates that a record lacks a required field.
var ErrMissingField = errors.New("missing required field")

// RecordError is an error that occurred while mapping a specific record.
type RecordError struct {
	Shape  Shape
	Record string // identifier of the record
	Field  string // offending field, if any
	Err    error
}

func (re *RecordError) Error() string {
	if re.Field == "" {
		return fmt.Sprintf("%s %q: %s", re.Shape, re.Record, re.Err)
	}
	return fmt.Sprintf("%s %q: field %q: %s", re.Shape, re.Record, re.Field, re.Err)
}

func (re *RecordError) Unwrap() error {
	return re.Err
}
