package spec

import "strings"

// AllOf is the conjunction combinator: every listed child's fields
// apply together. Its child sequence is always in condensed form.
type AllOf struct {
	Description string
	Specs       []Node
}

// NewAllOf builds a conjunction of the given nodes and condenses it.
// After condensation the result holds at most one One-Of, and if it
// holds exactly one, that One-Of is the only child and its branches
// already carry every other field passed here.
func NewAllOf(specs ...Node) (*AllOf, error) {
	condensed, err := condense(specs)
	if err != nil {
		return nil, err
	}
	return &AllOf{Specs: condensed}, nil
}

func (a *AllOf) Kind() Kind {
	return AllOfKind
}

func (a *AllOf) FieldName() string {
	return ""
}

func (a *AllOf) String() string {
	sb := strings.Builder{}
	sb.WriteString("all_of")
	for _, s := range a.Specs {
		sb.WriteString("\n    - " + indent(s.String(), 4))
	}
	return sb.String()
}

// disguisedOneOf reports whether this All-Of condensed down to exactly
// one One-Of child.
func (a *AllOf) disguisedOneOf() (*OneOf, bool) {
	if len(a.Specs) == 1 {
		o, ok := a.Specs[0].(*OneOf)
		return o, ok
	}
	return nil, false
}

// OneOf is the disjunction combinator: exactly one branch's field set
// applies. Every branch is an All-Of in condensed form.
type OneOf struct {
	Description string
	Branches    []*AllOf
}

// NewOneOf builds a disjunction of the given nodes. Bare leaves are
// wrapped as singleton All-Of branches, All-Of children that turn out
// to be One-Ofs in disguise are spliced in as additional alternatives,
// and a direct One-Of child is rejected: disjunction of disjunctions
// has no well-defined common denominator.
func NewOneOf(specs ...Node) (*OneOf, error) {
	branches, err := condenseBranches(specs)
	if err != nil {
		return nil, err
	}
	return &OneOf{Branches: branches}, nil
}

func (o *OneOf) Kind() Kind {
	return OneOfKind
}

func (o *OneOf) FieldName() string {
	return ""
}

func (o *OneOf) String() string {
	sb := strings.Builder{}
	sb.WriteString("one_of")
	if o.Description != "" {
		sb.WriteString("\n  - description: " + o.Description)
	}
	for _, b := range o.Branches {
		sb.WriteString("\n\n    - " + indent(b.String(), 4))
	}
	return sb.String()
}

// condense normalizes an All-Of child sequence. Plain nodes pass
// through, nested All-Ofs are flattened, and at most one One-Of may
// surface among the children. When exactly one surfaces, all other
// children are merged into every branch of that One-Of and the result
// is that single One-Of. condense(condense(x)) == condense(x).
func condense(specs []Node) ([]Node, error) {
	var (
		flat   []Node
		oneOfs []*OneOf
	)

	for _, s := range specs {
		switch n := s.(type) {
		case *AllOf:
			sub, err := condense(n.Specs)
			if err != nil {
				return nil, err
			}
			if len(sub) == 1 {
				if o, ok := sub[0].(*OneOf); ok {
					// A One-Of in disguise.
					oneOfs = append(oneOfs, o)
					continue
				}
			}
			flat = append(flat, sub...)
		case *OneOf:
			oneOfs = append(oneOfs, n)
		case nil:
			return nil, &ElementTypeError{}
		default:
			flat = append(flat, s)
		}
	}

	if len(oneOfs) > 1 {
		return nil, &AmbiguousOneOfError{OneOfs: oneOfs}
	}

	if len(oneOfs) == 1 {
		merged, err := oneOfs[0].withSharedSpecs(flat)
		if err != nil {
			return nil, err
		}
		return []Node{merged}, nil
	}

	return flat, nil
}

// withSharedSpecs returns a One-Of whose every branch additionally
// carries the given shared nodes. Branches are re-condensed, so a
// shared node can itself be a composite.
func (o *OneOf) withSharedSpecs(shared []Node) (*OneOf, error) {
	if len(shared) == 0 {
		return o, nil
	}
	branches := make([]*AllOf, 0, len(o.Branches))
	for _, b := range o.Branches {
		extended, err := NewAllOf(append(append([]Node{}, b.Specs...), shared...)...)
		if err != nil {
			return nil, err
		}
		extended.Description = b.Description
		branches = append(branches, extended)
	}
	return &OneOf{Description: o.Description, Branches: branches}, nil
}

// condenseBranches normalizes a One-Of branch sequence.
func condenseBranches(specs []Node) ([]*AllOf, error) {
	var branches []*AllOf

	for _, s := range specs {
		switch n := s.(type) {
		case *AllOf:
			sub, err := condense(n.Specs)
			if err != nil {
				return nil, err
			}
			if len(sub) == 1 {
				if o, ok := sub[0].(*OneOf); ok {
					// Splice the alternatives of a disguised One-Of.
					branches = append(branches, o.Branches...)
					continue
				}
			}
			branches = append(branches, &AllOf{Description: n.Description, Specs: sub})
		case *OneOf:
			return nil, &NestedOneOfError{OneOf: n}
		case nil:
			return nil, &ElementTypeError{}
		default:
			wrapped, err := NewAllOf(s)
			if err != nil {
				return nil, err
			}
			branches = append(branches, wrapped)
		}
	}

	return branches, nil
}
