// Package spec implements the declarative description of 4C input
// sections: a tree of typed nodes combined with All-Of (conjunction)
// and One-Of (disjunction) combinators. Trees are normalized during
// construction and immutable afterwards, so they can be shared freely
// between codecs.
package spec

import (
	"fmt"
	"strings"
)

type Kind string

const (
	IntKind    = Kind("int")
	DoubleKind = Kind("double")
	BoolKind   = Kind("bool")
	StringKind = Kind("string")
	PathKind   = Kind("path")

	EnumKind      = Kind("enum")
	VectorKind    = Kind("vector")
	MapKind       = Kind("map")
	GroupKind     = Kind("group")
	ListKind      = Kind("list")
	SelectionKind = Kind("selection")
	AllOfKind     = Kind("all_of")
	OneOfKind     = Kind("one_of")
)

// PrimitiveKinds are the scalar kinds a Primitive node may carry.
var PrimitiveKinds = []Kind{IntKind, DoubleKind, BoolKind, StringKind, PathKind}

// Validator is an opaque constraint handle attached to a node. The
// codecs store validators but never invoke them; evaluation happens in
// the whole-document validation layer.
type Validator interface {
	Check(v any) error
	Description() string
}

// Node is one node of a spec tree.
type Node interface {
	Kind() Kind
	FieldName() string
	String() string
}

// Meta carries the attributes shared by all leaf nodes.
type Meta struct {
	Name        string
	Description string
	Required    bool
	Noneable    bool
	Default     any
	Validator   Validator
}

func (m Meta) FieldName() string {
	return m.Name
}

func (m Meta) shortString(kind Kind) string {
	typeDefinition := string(kind)
	if m.Noneable {
		typeDefinition += " or null"
	}
	if m.Name != "" {
		return m.Name + " (" + typeDefinition + ")"
	}
	return typeDefinition
}

// Primitive is a scalar field of one of the PrimitiveKinds.
type Primitive struct {
	Meta
	Type Kind
}

func NewPrimitive(typ Kind, meta Meta) (*Primitive, error) {
	for _, k := range PrimitiveKinds {
		if typ == k {
			return &Primitive{Meta: meta, Type: typ}, nil
		}
	}
	return nil, fmt.Errorf("invalid primitive type %s, must be one of %v", typ, PrimitiveKinds)
}

func (p *Primitive) Kind() Kind {
	return p.Type
}

func (p *Primitive) String() string {
	return p.shortString(p.Type)
}

// Choice is one allowed token of an Enum, with an optional description.
type Choice struct {
	Name        string
	Description string
}

// Enum is a field restricted to an ordered set of string tokens.
type Enum struct {
	Meta
	Choices []Choice
}

func (e *Enum) Kind() Kind {
	return EnumKind
}

func (e *Enum) String() string {
	return e.shortString(EnumKind)
}

// ChoiceNames returns the allowed tokens in declaration order.
func (e *Enum) ChoiceNames() []string {
	names := make([]string, 0, len(e.Choices))
	for _, c := range e.Choices {
		names = append(names, c.Name)
	}
	return names
}

// Vector is a sequence of same-typed elements. Size zero means the
// length is unbounded.
type Vector struct {
	Meta
	Elem Node
	Size int
}

func NewVector(elem Node, size int, meta Meta) (*Vector, error) {
	if err := checkElemType(elem); err != nil {
		return nil, err
	}
	return &Vector{Meta: meta, Elem: elem, Size: size}, nil
}

func (v *Vector) Kind() Kind {
	return VectorKind
}

func (v *Vector) String() string {
	return v.shortString(VectorKind)
}

// Map is a string-keyed mapping with same-typed values. Size zero
// means the entry count is unbounded.
type Map struct {
	Meta
	Elem Node
	Size int
}

func NewMap(elem Node, size int, meta Meta) (*Map, error) {
	if err := checkElemType(elem); err != nil {
		return nil, err
	}
	return &Map{Meta: meta, Elem: elem, Size: size}, nil
}

func (m *Map) Kind() Kind {
	return MapKind
}

func (m *Map) String() string {
	return m.shortString(MapKind)
}

// checkElemType restricts Vector/Map elements to scalar-like nesting.
func checkElemType(elem Node) error {
	switch elem.(type) {
	case *Primitive, *Enum, *Vector, *Map:
		return nil
	case nil:
		return &ElementTypeError{}
	default:
		return &ElementTypeError{Elem: elem}
	}
}

// Group is a named All-Of of child nodes.
type Group struct {
	Meta
	Spec *AllOf
}

func (g *Group) Kind() Kind {
	return GroupKind
}

func (g *Group) String() string {
	return g.shortString(GroupKind) + "\n - with spec:\n    " + indent(g.Spec.String(), 4)
}

// List is a repeatable child template, optionally with a fixed
// repetition count.
type List struct {
	Meta
	Spec *AllOf
	Size int
}

// NewList wraps the template in an All-Of so all repeatable entries
// share the same condensed form.
func NewList(template Node, size int, meta Meta) (*List, error) {
	wrapped, err := NewAllOf(template)
	if err != nil {
		return nil, err
	}
	return &List{Meta: meta, Spec: wrapped, Size: size}, nil
}

func (l *List) Kind() Kind {
	return ListKind
}

func (l *List) String() string {
	return l.shortString(ListKind) + "\n - with spec:\n    " + indent(l.Spec.String(), 4)
}

// SelectionChoice maps one discriminator token to its branch.
type SelectionChoice struct {
	Name string
	Spec *AllOf
}

// Selection is an ordered mapping from discriminator string to an
// All-Of branch.
type Selection struct {
	Meta
	Choices []SelectionChoice
}

func (s *Selection) Kind() Kind {
	return SelectionKind
}

func (s *Selection) String() string {
	return s.shortString(SelectionKind)
}

func indent(s string, n int) string {
	return strings.ReplaceAll(s, "\n", "\n"+strings.Repeat(" ", n))
}
