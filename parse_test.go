package binopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLeaf(t *testing.T) {
	root, err := Build([]string{"5"})
	require.NoError(t, err)
	assert.Equal(t, &Node{Kind: Number, Value: "5"}, root)
}

func TestBuildOperator(t *testing.T) {
	root, err := Build([]string{"+", "1", "2"})
	require.NoError(t, err)
	expected := &Node{
		Kind:  Operator,
		Value: "+",
		Left:  &Node{Kind: Number, Value: "1"},
		Right: &Node{Kind: Number, Value: "2"},
	}
	assert.Equal(t, expected, root)
}

func TestBuildConsumesLeftBeforeRight(t *testing.T) {
	root, err := Parse("* + 1 2 3")
	require.NoError(t, err)
	require.Equal(t, Operator, root.Kind)
	assert.Equal(t, "+ 1 2", root.Left.String())
	assert.Equal(t, "3", root.Right.String())
}

func TestBuildNested(t *testing.T) {
	root, err := Parse("+ 0 * 1 4")
	require.NoError(t, err)
	expected := &Node{
		Kind:  Operator,
		Value: "+",
		Left:  &Node{Kind: Number, Value: "0"},
		Right: &Node{
			Kind:  Operator,
			Value: "*",
			Left:  &Node{Kind: Number, Value: "1"},
			Right: &Node{Kind: Number, Value: "4"},
		},
	}
	assert.Equal(t, expected, root)
}

func TestBuildDoesNotMutateTokens(t *testing.T) {
	tokens := []string{"+", "1", "2"}
	_, err := Build(tokens)
	require.NoError(t, err)
	assert.Equal(t, []string{"+", "1", "2"}, tokens)
}

func TestRoundTripLeaves(t *testing.T) {
	for _, lit := range []string{"0", "1", "7", "42", "007", "123456789"} {
		root, err := Build([]string{lit})
		require.NoError(t, err)
		assert.Equal(t, lit, root.String())
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		offset int
	}{
		{"empty", nil, 0},
		{"operator without operands", []string{"+"}, 1},
		{"missing second operand", []string{"+", "3"}, 2},
		{"trailing token", []string{"+", "3", "4", "5"}, 3},
		{"trailing after leaf", []string{"1", "2"}, 1},
		{"unknown token", []string{"x"}, 0},
		{"unknown operand", []string{"+", "x", "2"}, 1},
		{"negative literal", []string{"-1"}, 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Build(test.tokens)
			require.Error(t, err)
			merr, ok := err.(*MalformedExpressionError)
			require.True(t, ok, "expected *MalformedExpressionError, got %T", err)
			assert.Equal(t, test.offset, merr.Offset())
		})
	}
}

func TestBuildInvariants(t *testing.T) {
	root, err := Parse("+ * 1 2 + 3 0")
	require.NoError(t, err)
	assert.NoError(t, root.check())
}

func TestCheckRejectsInvalidTrees(t *testing.T) {
	leafWithChild := &Node{Kind: Number, Value: "1", Left: &Node{Kind: Number, Value: "2"}}
	err := leafWithChild.check()
	require.Error(t, err)
	assert.IsType(t, &InvariantError{}, err)

	halfOperator := &Node{Kind: Operator, Value: "+", Left: &Node{Kind: Number, Value: "1"}}
	assert.Error(t, halfOperator.check())

	for _, value := range []string{"-1", "x", "1.5", ""} {
		leaf := &Node{Kind: Number, Value: value}
		err := leaf.check()
		require.Error(t, err, "%q", value)
		assert.IsType(t, &InvariantError{}, err)
	}
}
