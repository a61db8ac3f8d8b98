package spec

import (
	"fmt"

	"github.com/gilrrei/fourcipp/pkg/schema"
)

// DescribeFields flattens a condensed tree into description records
// for the documentation and validation collaborators.
func DescribeFields(node Node) ([]schema.Field, error) {
	switch n := node.(type) {
	case *AllOf:
		var fields []schema.Field
		for _, s := range n.Specs {
			sub, err := DescribeFields(s)
			if err != nil {
				return nil, err
			}
			fields = append(fields, sub...)
		}
		return fields, nil
	case *OneOf:
		alternatives := make([][]schema.Field, 0, len(n.Branches))
		for _, b := range n.Branches {
			sub, err := DescribeFields(b)
			if err != nil {
				return nil, err
			}
			alternatives = append(alternatives, sub)
		}
		return []schema.Field{{
			Description: n.Description,
			Type:        schema.FieldType{Kind: string(OneOfKind), Alternatives: alternatives},
		}}, nil
	default:
		field, err := describeLeaf(node)
		if err != nil {
			return nil, err
		}
		return []schema.Field{field}, nil
	}
}

func describeLeaf(node Node) (result schema.Field, _ error) {
	typ, err := describeFieldType(node)
	if err != nil {
		return result, err
	}

	meta, err := metaOf(node)
	if err != nil {
		return result, err
	}

	return schema.Field{
		Name:        meta.Name,
		Description: meta.Description,
		Type:        typ,
		Optional:    !meta.Required,
		Noneable:    meta.Noneable,
	}, nil
}

func describeFieldType(node Node) (result schema.FieldType, _ error) {
	switch n := node.(type) {
	case *Primitive:
		return schema.FieldType{Kind: string(n.Type), Default: n.Default}, nil
	case *Enum:
		return schema.FieldType{Kind: string(EnumKind), Choices: n.ChoiceNames(), Default: n.Default}, nil
	case *Vector:
		elem, err := describeFieldType(n.Elem)
		if err != nil {
			return result, err
		}
		return schema.FieldType{Kind: string(VectorKind), Size: n.Size, Elem: &elem, Default: n.Default}, nil
	case *Map:
		elem, err := describeFieldType(n.Elem)
		if err != nil {
			return result, err
		}
		return schema.FieldType{Kind: string(MapKind), Size: n.Size, Elem: &elem, Default: n.Default}, nil
	case *Group:
		fields, err := DescribeFields(n.Spec)
		if err != nil {
			return result, err
		}
		return schema.FieldType{Kind: string(GroupKind), Fields: fields}, nil
	case *List:
		fields, err := DescribeFields(n.Spec)
		if err != nil {
			return result, err
		}
		return schema.FieldType{Kind: string(ListKind), Size: n.Size, Fields: fields}, nil
	case *Selection:
		alternatives := make([][]schema.Field, 0, len(n.Choices))
		choices := make([]string, 0, len(n.Choices))
		for _, c := range n.Choices {
			sub, err := DescribeFields(c.Spec)
			if err != nil {
				return result, err
			}
			choices = append(choices, c.Name)
			alternatives = append(alternatives, sub)
		}
		return schema.FieldType{Kind: string(SelectionKind), Choices: choices, Alternatives: alternatives}, nil
	default:
		return result, fmt.Errorf("cannot describe field type for kind %s", node.Kind())
	}
}

func metaOf(node Node) (Meta, error) {
	switch n := node.(type) {
	case *Primitive:
		return n.Meta, nil
	case *Enum:
		return n.Meta, nil
	case *Vector:
		return n.Meta, nil
	case *Map:
		return n.Meta, nil
	case *Group:
		return n.Meta, nil
	case *List:
		return n.Meta, nil
	case *Selection:
		return n.Meta, nil
	default:
		return Meta{}, fmt.Errorf("node kind %s carries no field attributes", node.Kind())
	}
}
