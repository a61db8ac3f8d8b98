package spec

import (
	"fmt"
	"strings"
)

// AmbiguousOneOfError is raised when condensing an All-Of surfaces
// more than one One-Of among its direct children.
type AmbiguousOneOfError struct {
	OneOfs []*OneOf
}

func (e *AmbiguousOneOfError) Error() string {
	descs := make([]string, 0, len(e.OneOfs))
	for _, o := range e.OneOfs {
		descs = append(descs, o.String())
	}
	return "more than one one_of is not allowed:\n" + strings.Join(descs, "\n")
}

// NestedOneOfError is raised when a One-Of is constructed with another
// One-Of as a direct branch.
type NestedOneOfError struct {
	OneOf *OneOf
}

func (e *NestedOneOfError) Error() string {
	return "one_of inside one_of is not possible: " + e.OneOf.String()
}

// ElementTypeError is raised when a Vector or Map is constructed with
// an element type outside the scalar-like kinds, or a combinator is
// given a nil child.
type ElementTypeError struct {
	Elem Node
}

func (e *ElementTypeError) Error() string {
	if e.Elem == nil {
		return "invalid nil spec node"
	}
	return fmt.Sprintf("element type %s is not allowed, must be one of primitive, enum, vector or map", e.Elem.Kind())
}
