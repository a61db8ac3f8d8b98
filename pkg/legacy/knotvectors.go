package legacy

import (
	"strconv"
	"strings"
)

// KnotVectorTypes are the interpolation types a knot vector may carry.
var KnotVectorTypes = []string{"Interpolated", "Periodic"}

// KnotVector is one per-dimension knot vector of a NURBS patch.
type KnotVector struct {
	Degree int
	Type   string
	Knots  []float64
}

// Patch is one NURBS patch: an id plus one knot vector per dimension.
type Patch struct {
	ID          int
	KnotVectors []KnotVector
}

// knotReader is the state carried between lines of a KNOTVECTORS
// section.
type knotReader struct {
	lines   []string
	patches []Patch

	patch       Patch
	expectedDim int
	inPatch     bool

	numKnots int
	knot     KnotVector
	haveKnot bool
}

// ReadKnotVectors decodes a KNOTVECTORS section. Each patch starts
// with its dimension line, is bracketed by BEGIN/END NURBSPATCH, and
// must close with exactly as many knot vectors as the declared
// dimension.
func ReadKnotVectors(lines []string) ([]Patch, error) {
	r := &knotReader{lines: lines, expectedDim: -1}
	for len(r.lines) > 0 {
		line := r.lines[0]
		r.lines = r.lines[1:]

		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := r.readLine(line); err != nil {
			return nil, err
		}
	}
	return r.patches, nil
}

func (r *knotReader) readLine(line string) error {
	toks := strings.Fields(line)

	switch len(toks) {
	case 2:
		return r.readKeyValue(line, toks[0], toks[1])
	case 1:
		return r.readKnotValue(line, toks[0])
	default:
		return &BadLineError{Line: line}
	}
}

func (r *knotReader) readKeyValue(line, key, value string) error {
	switch key {
	case "NURBS_DIMENSION":
		dim, err := strconv.Atoi(value)
		if err != nil {
			return &BadLineError{Line: line}
		}
		r.expectedDim = dim
	case "BEGIN":
		r.patch = Patch{}
		r.inPatch = true
	case "ID":
		id, err := strconv.Atoi(value)
		if err != nil {
			return &BadLineError{Line: line}
		}
		r.patch.ID = id
	case "NUMKNOTS":
		count, err := strconv.Atoi(value)
		if err != nil {
			return &BadLineError{Line: line}
		}
		r.numKnots = count
		r.haveKnot = true
	case "DEGREE":
		degree, err := strconv.Atoi(value)
		if err != nil {
			return &BadLineError{Line: line}
		}
		r.knot.Degree = degree
	case "TYPE":
		valid := false
		for _, t := range KnotVectorTypes {
			if value == t {
				valid = true
				break
			}
		}
		if !valid {
			return &InvalidChoiceError{Key: key, Value: value, Choices: KnotVectorTypes}
		}
		r.knot.Type = value
	case "END":
		if !r.inPatch {
			return &BadLineError{Line: line}
		}
		if got := len(r.patch.KnotVectors); got != r.expectedDim {
			return &DimensionMismatchError{Want: r.expectedDim, Got: got}
		}
		r.patches = append(r.patches, r.patch)
		r.patch = Patch{}
		r.inPatch = false
		r.expectedDim = -1
	default:
		return &BadLineError{Line: line}
	}
	return nil
}

// readKnotValue consumes the first knot value inline and the
// remaining NUMKNOTS-1 values from the following lines.
func (r *knotReader) readKnotValue(line, tok string) error {
	if !r.haveKnot {
		return &BadLineError{Line: line}
	}

	first, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return &BadLineError{Line: line}
	}

	knots := make([]float64, 0, r.numKnots)
	knots = append(knots, first)
	for len(knots) < r.numKnots {
		if len(r.lines) == 0 {
			return &TruncatedError{Key: "NUMKNOTS", Want: r.numKnots, Got: len(knots)}
		}
		next := strings.TrimSpace(r.lines[0])
		r.lines = r.lines[1:]
		value, err := strconv.ParseFloat(next, 64)
		if err != nil {
			return &BadLineError{Line: next}
		}
		knots = append(knots, value)
	}

	r.knot.Knots = knots
	r.patch.KnotVectors = append(r.patch.KnotVectors, r.knot)
	r.knot = KnotVector{}
	r.haveKnot = false
	return nil
}

// WriteKnotVectors renders patches back into section lines, each knot
// value on its own line at full precision.
func WriteKnotVectors(patches []Patch) []string {
	var lines []string
	for _, patch := range patches {
		lines = append(lines,
			"NURBS_DIMENSION "+strconv.Itoa(len(patch.KnotVectors)),
			"BEGIN NURBSPATCH",
			"ID "+strconv.Itoa(patch.ID),
		)
		for _, kv := range patch.KnotVectors {
			lines = append(lines,
				"NUMKNOTS "+strconv.Itoa(len(kv.Knots)),
				"DEGREE "+strconv.Itoa(kv.Degree),
				"TYPE "+kv.Type,
			)
			for _, knot := range kv.Knots {
				lines = append(lines, FormatFloat(knot))
			}
		}
		lines = append(lines, "END NURBSPATCH")
	}
	return lines
}
