package spec

import (
	"fmt"
)

// FromMetadata constructs a spec tree from a decoded metadata
// document. The document is the generic form produced by a YAML
// decoder: nested maps keyed by strings, with every node carrying a
// "type" tag. A bare sequence is read as an untagged All-Of.
func FromMetadata(data any) (Node, error) {
	switch d := data.(type) {
	case []any:
		return allOfFromMetadata(map[string]any{"specs": d})
	case map[string]any:
		return nodeFromMetadata(d)
	default:
		return nil, fmt.Errorf("cannot build spec from metadata of type %T", data)
	}
}

func nodeFromMetadata(data map[string]any) (Node, error) {
	typ, _ := data["type"].(string)
	switch Kind(typ) {
	case IntKind, DoubleKind, BoolKind, StringKind, PathKind:
		return primitiveFromMetadata(Kind(typ), data)
	case EnumKind:
		return enumFromMetadata(data)
	case VectorKind:
		return vectorFromMetadata(data)
	case MapKind:
		return mapFromMetadata(data)
	case SelectionKind:
		return selectionFromMetadata(data)
	case GroupKind:
		return groupFromMetadata(data)
	case ListKind:
		return listFromMetadata(data)
	case AllOfKind:
		return allOfFromMetadata(data)
	case OneOfKind:
		return oneOfFromMetadata(data)
	default:
		return nil, fmt.Errorf("unknown metadata type %q in %v", typ, data)
	}
}

func metaFromMetadata(data map[string]any) Meta {
	m := Meta{}
	m.Name, _ = data["name"].(string)
	m.Description, _ = data["description"].(string)
	m.Required, _ = data["required"].(bool)
	m.Noneable, _ = data["noneable"].(bool)
	m.Default = data["default"]
	return m
}

func primitiveFromMetadata(typ Kind, data map[string]any) (Node, error) {
	return NewPrimitive(typ, metaFromMetadata(data))
}

func enumFromMetadata(data map[string]any) (Node, error) {
	rawChoices, ok := data["choices"].([]any)
	if !ok {
		return nil, fmt.Errorf("enum %v is missing its choices", data["name"])
	}
	choices := make([]Choice, 0, len(rawChoices))
	for _, raw := range rawChoices {
		switch c := raw.(type) {
		case string:
			choices = append(choices, Choice{Name: c})
		case map[string]any:
			name, _ := c["name"].(string)
			description, _ := c["description"].(string)
			choices = append(choices, Choice{Name: name, Description: description})
		default:
			return nil, fmt.Errorf("invalid enum choice %v", raw)
		}
	}
	return &Enum{Meta: metaFromMetadata(data), Choices: choices}, nil
}

func vectorFromMetadata(data map[string]any) (Node, error) {
	elem, err := elemFromMetadata(data)
	if err != nil {
		return nil, err
	}
	return NewVector(elem, sizeFromMetadata(data), metaFromMetadata(data))
}

func mapFromMetadata(data map[string]any) (Node, error) {
	elem, err := elemFromMetadata(data)
	if err != nil {
		return nil, err
	}
	return NewMap(elem, sizeFromMetadata(data), metaFromMetadata(data))
}

func elemFromMetadata(data map[string]any) (Node, error) {
	raw, ok := data["value_type"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%v %v is missing its value_type", data["type"], data["name"])
	}
	return nodeFromMetadata(raw)
}

func sizeFromMetadata(data map[string]any) int {
	size, _ := data["size"].(int)
	return size
}

func selectionFromMetadata(data map[string]any) (Node, error) {
	rawChoices, ok := data["choices"].([]any)
	if !ok {
		return nil, fmt.Errorf("selection %v is missing its choices", data["name"])
	}
	choices := make([]SelectionChoice, 0, len(rawChoices))
	for _, raw := range rawChoices {
		c, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("invalid selection choice %v", raw)
		}
		name, _ := c["name"].(string)
		branch, err := branchFromMetadata(c["spec"])
		if err != nil {
			return nil, err
		}
		choices = append(choices, SelectionChoice{Name: name, Spec: branch})
	}
	return &Selection{Meta: metaFromMetadata(data), Choices: choices}, nil
}

func groupFromMetadata(data map[string]any) (Node, error) {
	branch, err := branchFromMetadata(data["specs"])
	if err != nil {
		return nil, err
	}
	return &Group{Meta: metaFromMetadata(data), Spec: branch}, nil
}

func listFromMetadata(data map[string]any) (Node, error) {
	template, err := FromMetadata(data["spec"])
	if err != nil {
		return nil, err
	}
	return NewList(template, sizeFromMetadata(data), metaFromMetadata(data))
}

func allOfFromMetadata(data map[string]any) (Node, error) {
	specs, err := specsFromMetadata(data["specs"])
	if err != nil {
		return nil, err
	}
	allOf, err := NewAllOf(specs...)
	if err != nil {
		return nil, err
	}
	allOf.Description, _ = data["description"].(string)
	return allOf, nil
}

func oneOfFromMetadata(data map[string]any) (Node, error) {
	specs, err := specsFromMetadata(data["specs"])
	if err != nil {
		return nil, err
	}
	oneOf, err := NewOneOf(specs...)
	if err != nil {
		return nil, err
	}
	oneOf.Description, _ = data["description"].(string)
	return oneOf, nil
}

// branchFromMetadata wraps arbitrary metadata in an All-Of branch.
func branchFromMetadata(raw any) (*AllOf, error) {
	if raw == nil {
		return NewAllOf()
	}
	node, err := FromMetadata(raw)
	if err != nil {
		return nil, err
	}
	if allOf, ok := node.(*AllOf); ok {
		return allOf, nil
	}
	return NewAllOf(node)
}

func specsFromMetadata(raw any) ([]Node, error) {
	if raw == nil {
		return nil, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("invalid spec sequence %v", raw)
	}
	specs := make([]Node, 0, len(items))
	for _, item := range items {
		node, err := FromMetadata(item)
		if err != nil {
			return nil, err
		}
		specs = append(specs, node)
	}
	return specs, nil
}
