package legacy

import "strings"

// axisDirections are the oriented axis tokens describing domain
// boundaries.
var axisDirections = []string{"x-", "x+", "y-", "y+", "z-", "z+"}

// ReadNodeTopology decodes one topology line. The first token selects
// the variant: NODE assigns a single node to a design entity, while
// CORNER, EDGE, SIDE and VOLUME describe domain boundaries by three,
// two, one or zero oriented axis tokens.
func ReadNodeTopology(line string) (*Record, error) {
	t := Tokenize(line)

	entryType, err := popOne("topology type", t)
	if err != nil {
		return nil, err
	}

	var record *Record
	switch entryType {
	case "NODE":
		record, err = readDNodeTopology(t)
	case "CORNER":
		record, err = readDomainTopology(t, entryType, 3)
	case "EDGE":
		record, err = readDomainTopology(t, entryType, 2)
	case "SIDE":
		record, err = readDomainTopology(t, entryType, 1)
	case "VOLUME":
		record, err = readDomainTopology(t, entryType, 0)
	default:
		return nil, &UnknownFieldError{Key: entryType, Line: line}
	}
	if err != nil {
		return nil, lineError(err, line)
	}

	if t.Len() > 0 {
		return nil, &LeftoverError{Line: line, Tokens: t.Rest()}
	}
	return record, nil
}

func readDNodeTopology(t *Tokens) (*Record, error) {
	record := NewRecord(Field{Key: "type", Value: "NODE"})

	nodeID, err := IntCast("node_id", t)
	if err != nil {
		return nil, err
	}
	record.Set("node_id", nodeID)

	return readDesignEntity(t, record)
}

func readDomainTopology(t *Tokens, entryType string, directions int) (*Record, error) {
	record := NewRecord(Field{Key: "type", Value: entryType})

	discretizationType, err := popOne("discretization_type", t)
	if err != nil {
		return nil, err
	}
	record.Set("discretization_type", discretizationType)

	if directions > 0 {
		key := strings.ToLower(entryType) + "_description"
		description := make([]any, 0, directions)
		for i := 0; i < directions; i++ {
			direction, err := EnumCast(axisDirections...)(key, t)
			if err != nil {
				return nil, err
			}
			description = append(description, direction)
		}
		record.Set(key, description)
	}

	return readDesignEntity(t, record)
}

func readDesignEntity(t *Tokens, record *Record) (*Record, error) {
	dType, err := popOne("d_type", t)
	if err != nil {
		return nil, err
	}
	record.Set("d_type", dType)

	dID, err := IntCast("d_id", t)
	if err != nil {
		return nil, err
	}
	record.Set("d_id", dID)
	return record, nil
}

// WriteNodeTopology renders a topology record back into its line
// form by joining the field values in order.
func WriteNodeTopology(topology *Record) (string, error) {
	toks := make([]string, 0, len(topology.Fields))
	for _, f := range topology.Fields {
		tok, err := DatString(f.Value)
		if err != nil {
			return "", &FieldError{Key: f.Key, Err: err}
		}
		toks = append(toks, tok)
	}
	return strings.Join(toks, " "), nil
}
