package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intField(t *testing.T, name string) *Primitive {
	t.Helper()
	p, err := NewPrimitive(IntKind, Meta{Name: name})
	require.NoError(t, err)
	return p
}

func fieldNames(t *testing.T, a *AllOf) []string {
	t.Helper()
	names := make([]string, 0, len(a.Specs))
	for _, s := range a.Specs {
		names = append(names, s.FieldName())
	}
	return names
}

func TestCondenseFlattensNestedAllOf(t *testing.T) {
	inner, err := NewAllOf(intField(t, "a"), intField(t, "b"))
	require.NoError(t, err)

	outer, err := NewAllOf(intField(t, "c"), inner)
	require.NoError(t, err)

	assert.Equal(t, []string{"c", "a", "b"}, fieldNames(t, outer))
}

func TestCondenseIsIdempotent(t *testing.T) {
	oneOf, err := NewOneOf(intField(t, "v1"), intField(t, "v2"))
	require.NoError(t, err)

	specs := []Node{intField(t, "f1"), intField(t, "f2"), oneOf}

	once, err := condense(specs)
	require.NoError(t, err)
	twice, err := condense(once)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestCondenseMergesSharedFieldsIntoBranches(t *testing.T) {
	branch1, err := NewAllOf(intField(t, "v1"))
	require.NoError(t, err)
	branch2, err := NewAllOf(intField(t, "v2"))
	require.NoError(t, err)

	oneOf, err := NewOneOf(branch1, branch2)
	require.NoError(t, err)

	merged, err := NewAllOf(intField(t, "f1"), intField(t, "f2"), oneOf)
	require.NoError(t, err)

	require.Len(t, merged.Specs, 1)
	result, ok := merged.Specs[0].(*OneOf)
	require.True(t, ok)
	require.Len(t, result.Branches, 2)

	assert.Equal(t, []string{"v1", "f1", "f2"}, fieldNames(t, result.Branches[0]))
	assert.Equal(t, []string{"v2", "f1", "f2"}, fieldNames(t, result.Branches[1]))

	// The input one_of is untouched.
	assert.Equal(t, []string{"v1"}, fieldNames(t, oneOf.Branches[0]))
}

func TestCondenseRejectsTwoOneOfs(t *testing.T) {
	oneOf1, err := NewOneOf(intField(t, "a"), intField(t, "b"))
	require.NoError(t, err)
	oneOf2, err := NewOneOf(intField(t, "c"), intField(t, "d"))
	require.NoError(t, err)

	_, err = NewAllOf(oneOf1, oneOf2)
	var ambiguous *AmbiguousOneOfError
	require.ErrorAs(t, err, &ambiguous)
	assert.Len(t, ambiguous.OneOfs, 2)
}

func TestOneOfRejectsDirectOneOfBranch(t *testing.T) {
	oneOf1, err := NewOneOf(intField(t, "a"), intField(t, "b"))
	require.NoError(t, err)
	oneOf2, err := NewOneOf(intField(t, "c"), intField(t, "d"))
	require.NoError(t, err)

	_, err = NewOneOf(oneOf1, oneOf2)
	var nested *NestedOneOfError
	require.ErrorAs(t, err, &nested)
}

func TestOneOfWrapsBareLeaves(t *testing.T) {
	oneOf, err := NewOneOf(intField(t, "a"), intField(t, "b"))
	require.NoError(t, err)

	require.Len(t, oneOf.Branches, 2)
	assert.Equal(t, []string{"a"}, fieldNames(t, oneOf.Branches[0]))
	assert.Equal(t, []string{"b"}, fieldNames(t, oneOf.Branches[1]))
}

func TestOneOfSplicesDisguisedOneOf(t *testing.T) {
	inner, err := NewOneOf(intField(t, "a"), intField(t, "b"))
	require.NoError(t, err)
	disguised, err := NewAllOf(inner)
	require.NoError(t, err)

	oneOf, err := NewOneOf(disguised, intField(t, "c"))
	require.NoError(t, err)

	require.Len(t, oneOf.Branches, 3)
	assert.Equal(t, []string{"a"}, fieldNames(t, oneOf.Branches[0]))
	assert.Equal(t, []string{"b"}, fieldNames(t, oneOf.Branches[1]))
	assert.Equal(t, []string{"c"}, fieldNames(t, oneOf.Branches[2]))
}

func TestAllOfWithOnlyOneOfStaysDisguised(t *testing.T) {
	inner, err := NewOneOf(intField(t, "a"), intField(t, "b"))
	require.NoError(t, err)

	allOf, err := NewAllOf(inner)
	require.NoError(t, err)

	disguised, ok := allOf.disguisedOneOf()
	require.True(t, ok)
	assert.Len(t, disguised.Branches, 2)
}

func TestVectorRejectsCompositeElements(t *testing.T) {
	group := &Group{Meta: Meta{Name: "g"}, Spec: &AllOf{}}

	_, err := NewVector(group, 3, Meta{Name: "v"})
	var typeErr *ElementTypeError
	require.ErrorAs(t, err, &typeErr)

	_, err = NewMap(group, 0, Meta{Name: "m"})
	require.ErrorAs(t, err, &typeErr)
}
