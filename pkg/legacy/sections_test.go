package legacy

import (
	"testing"

	"github.com/gilrrei/fourcipp/pkg/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func particleSpec(t *testing.T) spec.Node {
	t.Helper()

	double, err := spec.NewPrimitive(spec.DoubleKind, spec.Meta{})
	require.NoError(t, err)
	pos, err := spec.NewVector(double, 3, spec.Meta{Name: "POS"})
	require.NoError(t, err)
	radius, err := spec.NewPrimitive(spec.DoubleKind, spec.Meta{Name: "RADIUS"})
	require.NoError(t, err)
	kind, err := spec.NewPrimitive(spec.StringKind, spec.Meta{Name: "TYPE"})
	require.NoError(t, err)

	root, err := spec.NewAllOf(kind, pos, radius)
	require.NoError(t, err)
	return root
}

func sectionCodec(t *testing.T) *SectionCodec {
	t.Helper()

	intType, err := spec.NewPrimitive(spec.IntKind, spec.Meta{})
	require.NoError(t, err)
	line2, err := spec.NewVector(intType, 2, spec.Meta{Name: "LINE2"})
	require.NoError(t, err)
	line2Spec, err := spec.NewAllOf(line2, intField(t, "MAT"))
	require.NoError(t, err)
	bele3, err := spec.NewAllOf(&spec.Group{Meta: spec.Meta{Name: "LINE2"}, Spec: line2Spec})
	require.NoError(t, err)
	elements, err := spec.NewAllOf(&spec.Group{Meta: spec.Meta{Name: "BELE3"}, Spec: bele3})
	require.NoError(t, err)

	codec, err := NewSectionCodec(elements, particleSpec(t), WithSections([]string{
		"PARTICLES",
		"NODE COORDS",
		"STRUCTURE ELEMENTS",
		"DNODE-NODE TOPOLOGY",
		"FLUID DOMAIN",
		"STRUCTURE KNOTVECTORS",
	}))
	require.NoError(t, err)
	return codec
}

func TestSectionCodecKnows(t *testing.T) {
	codec := sectionCodec(t)
	assert.True(t, codec.Knows("PARTICLES"))
	assert.False(t, codec.Knows("TITLE"))
}

func TestSectionCodecRejectsUnknownSection(t *testing.T) {
	codec := sectionCodec(t)
	_, err := codec.Interpret("TITLE", []string{"a line"})
	var unknown *UnknownSectionError
	require.ErrorAs(t, err, &unknown)
	assert.Contains(t, unknown.Error(), "TITLE is not a known legacy section")
}

func TestSectionCodecParticlesRoundTrip(t *testing.T) {
	codec := sectionCodec(t)
	lines := []string{
		"TYPE phase1 POS 0.5 0.5 0.5 RADIUS 0.1",
		"TYPE phase2 POS 1.5 0.5 0.5 RADIUS 0.2",
	}

	decoded, err := codec.Interpret("PARTICLES", lines)
	require.NoError(t, err)
	records, ok := decoded.([]*Record)
	require.True(t, ok)
	require.Len(t, records, 2)

	radius, _ := records[0].Get("RADIUS")
	assert.Equal(t, 0.1, radius)

	inlined, err := codec.Inline("PARTICLES", decoded)
	require.NoError(t, err)
	assert.Equal(t, lines, inlined)
}

func TestSectionCodecElementsRoundTrip(t *testing.T) {
	codec := sectionCodec(t)
	lines := []string{"1 BELE3 LINE2 1 2 MAT 5", "2 BELE3 LINE2 2 3 MAT 5"}

	decoded, err := codec.Interpret("STRUCTURE ELEMENTS", lines)
	require.NoError(t, err)
	elems, ok := decoded.([]*Element)
	require.True(t, ok)
	require.Len(t, elems, 2)
	assert.Equal(t, []int{2, 3}, elems[1].Cell.Connectivity)

	inlined, err := codec.Inline("STRUCTURE ELEMENTS", decoded)
	require.NoError(t, err)
	assert.Equal(t, lines, inlined)
}

func TestSectionCodecNodeCoords(t *testing.T) {
	codec := sectionCodec(t)
	lines := []string{"NODE 1 COORD 0 0 0", "", "NODE 2 COORD 1 0 0"}

	decoded, err := codec.Interpret("NODE COORDS", lines)
	require.NoError(t, err)
	nodes, ok := decoded.([]*NodeCoord)
	require.True(t, ok)
	require.Len(t, nodes, 2)
	assert.Equal(t, 2, nodes[1].ID)

	inlined, err := codec.Inline("NODE COORDS", decoded)
	require.NoError(t, err)
	assert.Equal(t, []string{"NODE 1 COORD 0 0 0", "NODE 2 COORD 1 0 0"}, inlined)
}

func TestSectionCodecDomain(t *testing.T) {
	codec := sectionCodec(t)

	decoded, err := codec.Interpret("FLUID DOMAIN", domainLines)
	require.NoError(t, err)
	record, ok := decoded.(*Record)
	require.True(t, ok)

	inlined, err := codec.Inline("FLUID DOMAIN", record)
	require.NoError(t, err)
	assert.Equal(t, domainLines, inlined)
}

func TestSectionCodecKnotVectors(t *testing.T) {
	codec := sectionCodec(t)

	decoded, err := codec.Interpret("STRUCTURE KNOTVECTORS", knotLines)
	require.NoError(t, err)
	patches, ok := decoded.([]Patch)
	require.True(t, ok)
	assert.Len(t, patches, 2)

	_, err = codec.Inline("STRUCTURE KNOTVECTORS", decoded)
	require.NoError(t, err)
}

func TestSectionCodecTopology(t *testing.T) {
	codec := sectionCodec(t)
	lines := []string{"NODE 1 DNODE 1", "NODE 2 DNODE 2"}

	decoded, err := codec.Interpret("DNODE-NODE TOPOLOGY", lines)
	require.NoError(t, err)

	inlined, err := codec.Inline("DNODE-NODE TOPOLOGY", decoded)
	require.NoError(t, err)
	assert.Equal(t, lines, inlined)
}
