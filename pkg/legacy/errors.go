package legacy

import (
	"fmt"
	"strings"
)

// UnknownFieldError is raised when a line contains a keyword that the
// casting table does not know.
type UnknownFieldError struct {
	Key  string
	Line string
}

func (e *UnknownFieldError) Error() string {
	if e.Line != "" {
		return fmt.Sprintf("unknown field %s in line %q", e.Key, e.Line)
	}
	return "unknown field " + e.Key
}

// TruncatedError is raised when a caster needs more tokens than the
// line still holds.
type TruncatedError struct {
	Key  string
	Want int
	Got  int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated line: field %s needs %d more tokens, got %d", e.Key, e.Want, e.Got)
}

// InvalidChoiceError is raised when a token is not among the declared
// choices of an enum field.
type InvalidChoiceError struct {
	Key     string
	Value   string
	Choices []string
}

func (e *InvalidChoiceError) Error() string {
	return fmt.Sprintf("invalid choice %q for field %s, must be one of %s", e.Value, e.Key, strings.Join(e.Choices, ", "))
}

// LeftoverError is raised when a fixed-layout line still holds tokens
// after all declared fields were consumed.
type LeftoverError struct {
	Line   string
	Tokens []string
}

func (e *LeftoverError) Error() string {
	return fmt.Sprintf("leftover tokens %v in line %q", e.Tokens, e.Line)
}

// FieldError wraps a token conversion failure with the field it
// belongs to.
type FieldError struct {
	Key string
	Err error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %v", e.Key, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// DuplicateFieldError is raised at table-building time when the same
// field name resolves to two conflicting casters.
type DuplicateFieldError struct {
	Name string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("duplicate field name %s in casting table", e.Name)
}

// UnsupportedKindError is raised at table-building time for node kinds
// that have no line representation.
type UnsupportedKindError struct {
	Kind string
	Name string
}

func (e *UnsupportedKindError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("spec kind %s of %s is not supported in casting tables", e.Kind, e.Name)
	}
	return fmt.Sprintf("spec kind %s is not supported in casting tables", e.Kind)
}

// DimensionMismatchError is raised when a NURBS patch closes with a
// knot vector count different from its declared dimension.
type DimensionMismatchError struct {
	Want int
	Got  int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("Expected %d knot vectors, got %d", e.Want, e.Got)
}

// BadLineError is raised by the block codec for lines it cannot place
// in any state.
type BadLineError struct {
	Line string
}

func (e *BadLineError) Error() string {
	return fmt.Sprintf("could not read line: %s", e.Line)
}
