package legacy

import (
	"strconv"
	"strings"
)

// NodeCoord is one decoded node coordinate line.
type NodeCoord struct {
	ID     int
	Coords []float64
}

// ReadNode decodes a node line of the fixed form
// "NODE <id> COORD <x> <y> <z>". The layout is positional; leftover
// tokens are fatal.
func ReadNode(line string) (*NodeCoord, error) {
	t := Tokenize(line)

	keyword, err := popOne("NODE", t)
	if err != nil {
		return nil, err
	}
	if keyword != "NODE" {
		return nil, &BadLineError{Line: line}
	}

	id, err := IntCast("NODE", t)
	if err != nil {
		return nil, err
	}

	coordKeyword, err := popOne("COORD", t)
	if err != nil {
		return nil, err
	}
	if coordKeyword != "COORD" {
		return nil, &BadLineError{Line: line}
	}

	coords := make([]float64, 0, 3)
	for i := 0; i < 3; i++ {
		v, err := DoubleCast("COORD", t)
		if err != nil {
			return nil, err
		}
		coords = append(coords, v.(float64))
	}

	if t.Len() > 0 {
		return nil, &LeftoverError{Line: line, Tokens: t.Rest()}
	}

	return &NodeCoord{ID: id.(int), Coords: coords}, nil
}

// WriteNode renders a node back into its line form.
func WriteNode(node *NodeCoord) string {
	toks := []string{"NODE", strconv.Itoa(node.ID), "COORD"}
	for _, c := range node.Coords {
		toks = append(toks, FormatFloat(c))
	}
	return strings.Join(toks, " ")
}
