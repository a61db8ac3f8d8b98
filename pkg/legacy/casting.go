package legacy

import (
	"slices"
	"strconv"

	"github.com/gilrrei/fourcipp/pkg/spec"
)

// ArityRest marks a caster that consumes every remaining token.
const ArityRest = -1

// CastFunc consumes tokens for one field and returns the typed value.
type CastFunc func(key string, t *Tokens) (any, error)

// Caster decodes one named field from a token stream. Group entries
// carry a nested table instead of a cast function. Choices and Elem
// describe the caster's shape for conflict detection: two sibling
// one_of branches may declare the same field name only when the
// declarations resolve to the same shape.
type Caster struct {
	Kind  spec.Kind
	Arity int
	Cast  CastFunc
	Sub   Table

	// Choices are the allowed tokens of an enum caster.
	Choices []string
	// Elem is the element caster of a vector caster.
	Elem *Caster
}

func (c Caster) conflicts(other Caster) bool {
	if c.Kind != other.Kind || c.Arity != other.Arity {
		return true
	}
	if !slices.Equal(c.Choices, other.Choices) {
		return true
	}
	if (c.Elem == nil) != (other.Elem == nil) {
		return true
	}
	if c.Elem != nil && c.Elem.conflicts(*other.Elem) {
		return true
	}
	if (c.Sub == nil) != (other.Sub == nil) {
		return true
	}
	if c.Sub != nil && tableConflicts(c.Sub, other.Sub) {
		return true
	}
	return false
}

func tableConflicts(a, b Table) bool {
	if len(a) != len(b) {
		return true
	}
	for name, caster := range a {
		existing, ok := b[name]
		if !ok || existing.conflicts(caster) {
			return true
		}
	}
	return false
}

// Table maps field names to their casters. Group entries nest their
// own table under the group's name.
type Table map[string]Caster

// BuildTable compiles a condensed spec tree into a flat casting
// table. Leaves contribute one entry each, all_of/one_of/group
// composites merge their children's entries, and a group additionally
// nests its own table under its name. Field names must be unique
// along any single resolved branch; across sibling one_of branches a
// name may repeat only when both declarations resolve to the same
// caster shape.
func BuildTable(node spec.Node) (Table, error) {
	table := Table{}
	if err := buildInto(table, node, true); err != nil {
		return nil, err
	}
	return table, nil
}

func buildInto(table Table, node spec.Node, sameBranch bool) error {
	switch n := node.(type) {
	case *spec.AllOf:
		for _, s := range n.Specs {
			if err := buildInto(table, s, sameBranch); err != nil {
				return err
			}
		}
		return nil
	case *spec.OneOf:
		for _, b := range n.Branches {
			branchTable := Table{}
			if err := buildInto(branchTable, b, true); err != nil {
				return err
			}
			if err := merge(table, branchTable, false); err != nil {
				return err
			}
		}
		return nil
	case *spec.Group:
		sub, err := BuildTable(n.Spec)
		if err != nil {
			return err
		}
		return insert(table, n.Name, Caster{Kind: spec.GroupKind, Sub: sub}, sameBranch)
	default:
		caster, err := leafCaster(node)
		if err != nil {
			return err
		}
		return insert(table, node.FieldName(), caster, sameBranch)
	}
}

func insert(table Table, name string, caster Caster, sameBranch bool) error {
	existing, ok := table[name]
	if !ok {
		table[name] = caster
		return nil
	}
	if sameBranch || existing.conflicts(caster) {
		return &DuplicateFieldError{Name: name}
	}
	return nil
}

func merge(dst, src Table, sameBranch bool) error {
	for name, caster := range src {
		if err := insert(dst, name, caster, sameBranch); err != nil {
			return err
		}
	}
	return nil
}

func leafCaster(node spec.Node) (Caster, error) {
	switch n := node.(type) {
	case *spec.Primitive:
		cast, err := primitiveCast(n.Type)
		if err != nil {
			return Caster{}, err
		}
		return Caster{Kind: n.Type, Arity: 1, Cast: cast}, nil
	case *spec.Enum:
		choices := n.ChoiceNames()
		return Caster{Kind: spec.EnumKind, Arity: 1, Cast: EnumCast(choices...), Choices: choices}, nil
	case *spec.Vector:
		elem, err := leafCaster(n.Elem)
		if err != nil {
			return Caster{}, err
		}
		if n.Size == 0 {
			return Caster{Kind: spec.VectorKind, Arity: ArityRest, Cast: RestCast(elem), Elem: &elem}, nil
		}
		return Caster{Kind: spec.VectorKind, Arity: n.Size * elem.Arity, Cast: VectorCast(elem, n.Size), Elem: &elem}, nil
	default:
		return Caster{}, &UnsupportedKindError{Kind: string(node.Kind()), Name: node.FieldName()}
	}
}

func primitiveCast(typ spec.Kind) (CastFunc, error) {
	switch typ {
	case spec.IntKind:
		return IntCast, nil
	case spec.DoubleKind:
		return DoubleCast, nil
	case spec.BoolKind:
		return BoolCast, nil
	case spec.StringKind, spec.PathKind:
		return StringCast, nil
	default:
		return nil, &UnsupportedKindError{Kind: string(typ)}
	}
}

func popOne(key string, t *Tokens) (string, error) {
	tok, ok := t.Pop()
	if !ok {
		return "", &TruncatedError{Key: key, Want: 1, Got: 0}
	}
	return tok, nil
}

func IntCast(key string, t *Tokens) (any, error) {
	tok, err := popOne(key, t)
	if err != nil {
		return nil, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return nil, &FieldError{Key: key, Err: err}
	}
	return v, nil
}

func DoubleCast(key string, t *Tokens) (any, error) {
	tok, err := popOne(key, t)
	if err != nil {
		return nil, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return nil, &FieldError{Key: key, Err: err}
	}
	return v, nil
}

func BoolCast(key string, t *Tokens) (any, error) {
	tok, err := popOne(key, t)
	if err != nil {
		return nil, err
	}
	v, err := strconv.ParseBool(tok)
	if err != nil {
		return nil, &FieldError{Key: key, Err: err}
	}
	return v, nil
}

func StringCast(key string, t *Tokens) (any, error) {
	return popOne(key, t)
}

// EnumCast returns a caster accepting only the given tokens.
func EnumCast(choices ...string) CastFunc {
	return func(key string, t *Tokens) (any, error) {
		tok, err := popOne(key, t)
		if err != nil {
			return nil, err
		}
		for _, c := range choices {
			if tok == c {
				return tok, nil
			}
		}
		return nil, &InvalidChoiceError{Key: key, Value: tok, Choices: choices}
	}
}

// VectorCast returns a caster consuming size elements of the given
// element caster.
func VectorCast(elem Caster, size int) CastFunc {
	return func(key string, t *Tokens) (any, error) {
		want := size * elem.Arity
		if t.Len() < want {
			return nil, &TruncatedError{Key: key, Want: want, Got: t.Len()}
		}
		out := make([]any, 0, size)
		for i := 0; i < size; i++ {
			v, err := elem.Cast(key, t)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}
}

// RestCast returns a caster consuming every remaining token as
// elements of the given element caster.
func RestCast(elem Caster) CastFunc {
	return func(key string, t *Tokens) (any, error) {
		var out []any
		for t.Len() > 0 {
			v, err := elem.Cast(key, t)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}
}
