package calcexample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval_Addition(t *testing.T) {
	v, err := Eval("1+2+3")
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)
}

func TestEval_SubtractionIsLeftAssociative(t *testing.T) {
	v, err := Eval("10-2-3")
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

func TestEval_PrecedenceOverAddition(t *testing.T) {
	v, err := Eval("2+3*4")
	require.NoError(t, err)
	assert.Equal(t, 14.0, v)
}

func TestEval_Parens(t *testing.T) {
	v, err := Eval("(2+3)*4")
	require.NoError(t, err)
	assert.Equal(t, 20.0, v)
}

func TestEval_UnaryMinus(t *testing.T) {
	v, err := Eval("-5+10")
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

func TestEval_DoubleNegation(t *testing.T) {
	v, err := Eval("--5")
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

func TestEval_DecimalNumbers(t *testing.T) {
	v, err := Eval("1.5*2")
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
}

func TestEval_WhitespaceTolerant(t *testing.T) {
	v, err := Eval("  1 +  2 * ( 3 - 1 )  ")
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

func TestEval_RejectsGarbage(t *testing.T) {
	_, err := Eval("1 + ")
	require.Error(t, err)
}

func TestEval_RejectsTrailingInput(t *testing.T) {
	_, err := Eval("1 + 2 3")
	require.Error(t, err)
}
