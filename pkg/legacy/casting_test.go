package legacy

import (
	"testing"

	"github.com/gilrrei/fourcipp/pkg/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intField(t *testing.T, name string) *spec.Primitive {
	t.Helper()
	p, err := spec.NewPrimitive(spec.IntKind, spec.Meta{Name: name})
	require.NoError(t, err)
	return p
}

func doubleField(t *testing.T, name string) *spec.Primitive {
	t.Helper()
	p, err := spec.NewPrimitive(spec.DoubleKind, spec.Meta{Name: name})
	require.NoError(t, err)
	return p
}

func TestBuildTableGroupNestsOwnTable(t *testing.T) {
	inner, err := spec.NewAllOf(intField(t, "MAT"), doubleField(t, "THICK"))
	require.NoError(t, err)
	group := &spec.Group{Meta: spec.Meta{Name: "SHELL"}, Spec: inner}

	root, err := spec.NewAllOf(intField(t, "KINEM"), group)
	require.NoError(t, err)

	table, err := BuildTable(root)
	require.NoError(t, err)

	require.Contains(t, table, "KINEM")
	require.Contains(t, table, "SHELL")
	sub := table["SHELL"].Sub
	require.NotNil(t, sub)
	assert.Contains(t, sub, "MAT")
	assert.Contains(t, sub, "THICK")
}

func TestBuildTableMergesOneOfBranches(t *testing.T) {
	branch1, err := spec.NewAllOf(intField(t, "DIRECT"), intField(t, "SHARED"))
	require.NoError(t, err)
	branch2, err := spec.NewAllOf(intField(t, "ITERATIVE"), intField(t, "SHARED"))
	require.NoError(t, err)
	oneOf, err := spec.NewOneOf(branch1, branch2)
	require.NoError(t, err)

	table, err := BuildTable(oneOf)
	require.NoError(t, err)

	assert.Contains(t, table, "DIRECT")
	assert.Contains(t, table, "ITERATIVE")
	// Identical declarations across branches dedupe.
	assert.Contains(t, table, "SHARED")
}

func TestBuildTableRejectsConflictingBranchFields(t *testing.T) {
	branch1, err := spec.NewAllOf(intField(t, "VALUE"))
	require.NoError(t, err)
	branch2, err := spec.NewAllOf(doubleField(t, "VALUE"))
	require.NoError(t, err)
	oneOf, err := spec.NewOneOf(branch1, branch2)
	require.NoError(t, err)

	_, err = BuildTable(oneOf)
	var duplicate *DuplicateFieldError
	require.ErrorAs(t, err, &duplicate)
	assert.Equal(t, "VALUE", duplicate.Name)
}

func TestBuildTableRejectsConflictingEnumChoices(t *testing.T) {
	auto := &spec.Enum{
		Meta:    spec.Meta{Name: "PARTITION"},
		Choices: []spec.Choice{{Name: "auto"}, {Name: "structured"}},
	}
	manual := &spec.Enum{
		Meta:    spec.Meta{Name: "PARTITION"},
		Choices: []spec.Choice{{Name: "auto"}, {Name: "manual"}},
	}

	branch1, err := spec.NewAllOf(auto, intField(t, "DIRECT"))
	require.NoError(t, err)
	branch2, err := spec.NewAllOf(manual, intField(t, "ITERATIVE"))
	require.NoError(t, err)
	oneOf, err := spec.NewOneOf(branch1, branch2)
	require.NoError(t, err)

	_, err = BuildTable(oneOf)
	var duplicate *DuplicateFieldError
	require.ErrorAs(t, err, &duplicate)
	assert.Equal(t, "PARTITION", duplicate.Name)
}

func TestBuildTableDedupesIdenticalEnums(t *testing.T) {
	enumField := func() *spec.Enum {
		return &spec.Enum{
			Meta:    spec.Meta{Name: "PARTITION"},
			Choices: []spec.Choice{{Name: "auto"}, {Name: "structured"}},
		}
	}

	branch1, err := spec.NewAllOf(enumField(), intField(t, "DIRECT"))
	require.NoError(t, err)
	branch2, err := spec.NewAllOf(enumField(), intField(t, "ITERATIVE"))
	require.NoError(t, err)
	oneOf, err := spec.NewOneOf(branch1, branch2)
	require.NoError(t, err)

	table, err := BuildTable(oneOf)
	require.NoError(t, err)

	// Tokens of both declarations decode through the shared entry.
	for _, line := range []string{"PARTITION auto", "PARTITION structured"} {
		record, err := ReadLine(line, table)
		require.NoError(t, err)
		assert.Equal(t, 1, record.Len())
	}
}

func TestBuildTableRejectsConflictingVectorElements(t *testing.T) {
	intVec, err := spec.NewVector(intField(t, ""), 3, spec.Meta{Name: "BOUNDS"})
	require.NoError(t, err)
	doubleVec, err := spec.NewVector(doubleField(t, ""), 3, spec.Meta{Name: "BOUNDS"})
	require.NoError(t, err)

	branch1, err := spec.NewAllOf(intVec)
	require.NoError(t, err)
	branch2, err := spec.NewAllOf(doubleVec)
	require.NoError(t, err)
	oneOf, err := spec.NewOneOf(branch1, branch2)
	require.NoError(t, err)

	_, err = BuildTable(oneOf)
	var duplicate *DuplicateFieldError
	require.ErrorAs(t, err, &duplicate)
	assert.Equal(t, "BOUNDS", duplicate.Name)
}

func TestBuildTableRejectsDuplicatesWithinBranch(t *testing.T) {
	root, err := spec.NewAllOf(intField(t, "MAT"), intField(t, "MAT"))
	require.NoError(t, err)

	_, err = BuildTable(root)
	var duplicate *DuplicateFieldError
	require.ErrorAs(t, err, &duplicate)
}

func TestBuildTableRejectsUnsupportedKinds(t *testing.T) {
	template, err := spec.NewAllOf(intField(t, "MAT"))
	require.NoError(t, err)
	list, err := spec.NewList(template, 0, spec.Meta{Name: "ENTRIES"})
	require.NoError(t, err)

	root, err := spec.NewAllOf(list)
	require.NoError(t, err)

	_, err = BuildTable(root)
	var unsupported *UnsupportedKindError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "list", unsupported.Kind)
}

func TestUnboundedVectorConsumesRest(t *testing.T) {
	str, err := spec.NewPrimitive(spec.StringKind, spec.Meta{})
	require.NoError(t, err)
	elements, err := spec.NewVector(str, 0, spec.Meta{Name: "ELEMENTS"})
	require.NoError(t, err)

	root, err := spec.NewAllOf(elements)
	require.NoError(t, err)
	table, err := BuildTable(root)
	require.NoError(t, err)

	record, err := ReadLine("ELEMENTS some string tokens", table)
	require.NoError(t, err)
	v, _ := record.Get("ELEMENTS")
	assert.Equal(t, []any{"some", "string", "tokens"}, v)
}
