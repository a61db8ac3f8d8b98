package legacy

import (
	"github.com/gilrrei/fourcipp/pkg/spec"
)

// DomainTable is the fixed casting table of a DOMAIN section. The
// section predates the metadata description, so its schema lives
// here.
func DomainTable() Table {
	double := Caster{Kind: spec.DoubleKind, Arity: 1, Cast: DoubleCast}
	integer := Caster{Kind: spec.IntKind, Arity: 1, Cast: IntCast}
	str := Caster{Kind: spec.StringKind, Arity: 1, Cast: StringCast}

	return Table{
		"LOWER_BOUND": {Kind: spec.VectorKind, Arity: 3, Cast: VectorCast(double, 3)},
		"UPPER_BOUND": {Kind: spec.VectorKind, Arity: 3, Cast: VectorCast(double, 3)},
		"INTERVALS":   {Kind: spec.VectorKind, Arity: 3, Cast: VectorCast(integer, 3)},
		"ROTATION":    {Kind: spec.VectorKind, Arity: 3, Cast: VectorCast(double, 3)},
		"ELEMENTS":    {Kind: spec.VectorKind, Arity: ArityRest, Cast: RestCast(str)},
		"PARTITION":   {Kind: spec.EnumKind, Arity: 1, Cast: EnumCast("auto", "structured")},
	}
}

// ReadDomain decodes a DOMAIN section: keyword records accumulated
// over all lines into one record.
func ReadDomain(lines []string) (*Record, error) {
	record := NewRecord()
	table := DomainTable()
	for _, line := range lines {
		fields, err := ReadLine(line, table)
		if err != nil {
			return nil, err
		}
		for _, f := range fields.Fields {
			record.Set(f.Key, f.Value)
		}
	}
	return record, nil
}

// WriteDomain renders a domain record, one field per line.
func WriteDomain(domain *Record) ([]string, error) {
	lines := make([]string, 0, len(domain.Fields))
	for _, f := range domain.Fields {
		value, err := DatString(f.Value)
		if err != nil {
			return nil, &FieldError{Key: f.Key, Err: err}
		}
		lines = append(lines, f.Key+" "+value)
	}
	return lines, nil
}
