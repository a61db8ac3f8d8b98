package fourcipp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gilrrei/fourcipp/pkg/legacy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const testMetadata = `
sections:
  - type: group
    name: TITLE
    specs:
      - type: string
        name: TEXT
  - type: group
    name: IO
    specs:
      - type: bool
        name: OUTPUT_BIN
legacy_element_specs:
  - type: group
    name: BELE3
    specs:
      - type: group
        name: LINE2
        specs:
          - type: vector
            name: LINE2
            size: 2
            value_type:
              type: int
          - type: int
            name: MAT
legacy_string_sections:
  - STRUCTURE ELEMENTS
  - NODE COORDS
`

func testHandler(t *testing.T) *Handler {
	t.Helper()
	metadata := map[string]any{}
	require.NoError(t, yaml.Unmarshal([]byte(testMetadata), &metadata))

	h, err := New(Option{Metadata: metadata})
	require.NoError(t, err)
	return h
}

func TestNewBuildsSectionSpecs(t *testing.T) {
	h := testHandler(t)

	require.NotNil(t, h.Sections)
	names := make([]string, 0, len(h.Sections.Specs))
	for _, s := range h.Sections.Specs {
		names = append(names, s.FieldName())
	}
	assert.Equal(t, []string{"TITLE", "IO"}, names)
}

func TestNewBuildsLegacyCodec(t *testing.T) {
	h := testHandler(t)

	codec := h.Codec()
	require.NotNil(t, codec)
	assert.True(t, codec.Knows("STRUCTURE ELEMENTS"))
	assert.True(t, codec.Knows("NODE COORDS"))
	assert.False(t, codec.Knows("TITLE"))
}

func TestHandlerInputAcceptsKnownSectionsOnly(t *testing.T) {
	h := testHandler(t)
	in := h.NewInput()

	require.NoError(t, in.Set("TITLE", map[string]any{"TEXT": "t"}))
	require.Error(t, in.Set("NOT A SECTION", 1))
}

func TestLoadInputInterpretsLegacySections(t *testing.T) {
	h := testHandler(t)

	file := `
TITLE:
  TEXT: beam test
STRUCTURE ELEMENTS:
  - 1 BELE3 LINE2 1 2 MAT 5
NODE COORDS:
  - NODE 1 COORD 0 0 0
  - NODE 2 COORD 1 0 0
`
	path := filepath.Join(t.TempDir(), "beam.4C.yaml")
	require.NoError(t, os.WriteFile(path, []byte(file), 0644))

	in, err := h.LoadInput(path)
	require.NoError(t, err)

	v, err := in.Get("STRUCTURE ELEMENTS")
	require.NoError(t, err)
	elems, ok := v.([]*legacy.Element)
	require.True(t, ok)
	require.Len(t, elems, 1)
	assert.Equal(t, []int{1, 2}, elems[0].Cell.Connectivity)

	v, err = in.Get("NODE COORDS")
	require.NoError(t, err)
	nodes, ok := v.([]*legacy.NodeCoord)
	require.True(t, ok)
	assert.Len(t, nodes, 2)

	// Dumping inlines the legacy sections back into their line form.
	data, err := in.MarshalYAML()
	require.NoError(t, err)
	out := map[string]any{}
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, []any{"1 BELE3 LINE2 1 2 MAT 5"}, out["STRUCTURE ELEMENTS"])
}

func TestNewWithoutMetadataIsOpen(t *testing.T) {
	h, err := New()
	require.NoError(t, err)

	in := h.NewInput()
	require.NoError(t, in.Set("ANY SECTION", map[string]any{"a": 1}))
}
