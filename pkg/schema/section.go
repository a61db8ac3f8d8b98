// Package schema holds the serializable description records derived
// from spec trees. Documentation generation and whole-document
// validation consume these; nothing in here is evaluated by the
// codecs themselves.
package schema

type Section struct {
	Name        string  `json:"name,omitempty"`
	Description string  `json:"description,omitempty"`
	Fields      []Field `json:"fields,omitempty"`
}

func (s *Section) GetFields() []Field {
	return s.Fields
}

type Field struct {
	Name        string    `json:"name,omitempty"`
	Description string    `json:"description,omitempty"`
	Type        FieldType `json:"type,omitempty"`
	Optional    bool      `json:"optional,omitempty"`
	Noneable    bool      `json:"noneable,omitempty"`
}

func (f *Field) GetFields() []Field {
	return []Field{*f}
}

type FieldType struct {
	Kind string `json:"kind,omitempty"`
	// Choices lists the allowed tokens of an enum field.
	Choices []string `json:"choices,omitempty"`
	// Size is the fixed length of a vector or map field, zero when
	// unbounded.
	Size int        `json:"size,omitempty"`
	Elem *FieldType `json:"elem,omitempty"`
	// Fields describes the nested fields of a group.
	Fields  []Field `json:"fields,omitempty"`
	Default any     `json:"default,omitempty"`
	// Alternatives carries the field sets of the mutually exclusive
	// one_of branches.
	Alternatives [][]Field `json:"alternatives,omitempty"`
}
