package legacy

import (
	"fmt"
	"strconv"
	"strings"
)

// Cell is the geometric cell of an element: its type token and node
// connectivity.
type Cell struct {
	Type         string
	Connectivity []int
}

// Element is one decoded element line.
type Element struct {
	ID   int
	Type string
	Cell Cell
	Data *Record
}

// ReadElement decodes one element line. The first three tokens are
// positional: element id, element type and cell type. The cell type
// selects the nested parameter table (elements group their specs per
// type and per cell), whose equally named vector entry yields the
// connectivity. Everything after the connectivity is (keyword, value)
// groups.
func ReadElement(line string, elements Table) (*Element, error) {
	t := Tokenize(line)

	id, err := IntCast("element id", t)
	if err != nil {
		return nil, err
	}

	elementType, err := popOne("element type", t)
	if err != nil {
		return nil, err
	}
	group, ok := elements[elementType]
	if !ok || group.Sub == nil {
		return nil, &UnknownFieldError{Key: elementType, Line: line}
	}

	cellType, err := popOne("cell type", t)
	if err != nil {
		return nil, err
	}
	cell, ok := group.Sub[cellType]
	if !ok || cell.Sub == nil {
		return nil, &UnknownFieldError{Key: cellType, Line: line}
	}

	connectivityCaster, ok := cell.Sub[cellType]
	if !ok || connectivityCaster.Cast == nil {
		return nil, &UnknownFieldError{Key: cellType, Line: line}
	}
	rawConnectivity, err := connectivityCaster.Cast(cellType, t)
	if err != nil {
		return nil, err
	}
	connectivity, err := intSlice(rawConnectivity)
	if err != nil {
		return nil, &FieldError{Key: cellType, Err: err}
	}

	data, err := ReadTokens(t, cell.Sub)
	if err != nil {
		return nil, lineError(err, line)
	}

	return &Element{
		ID:   id.(int),
		Type: elementType,
		Cell: Cell{Type: cellType, Connectivity: connectivity},
		Data: data,
	}, nil
}

// WriteElement renders an element back into its line form.
func WriteElement(e *Element) (string, error) {
	connectivity, err := DatString(e.Cell.Connectivity)
	if err != nil {
		return "", err
	}
	toks := []string{strconv.Itoa(e.ID), e.Type, e.Cell.Type, connectivity}

	dataToks, err := WriteTokens(e.Data)
	if err != nil {
		return "", err
	}
	return strings.Join(append(toks, dataToks...), " "), nil
}

func intSlice(v any) ([]int, error) {
	switch values := v.(type) {
	case []int:
		return values, nil
	case []any:
		out := make([]int, 0, len(values))
		for _, raw := range values {
			i, ok := raw.(int)
			if !ok {
				return nil, fmt.Errorf("connectivity entry %v is not an int", raw)
			}
			out = append(out, i)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("connectivity %v is not a vector of ints", v)
	}
}
