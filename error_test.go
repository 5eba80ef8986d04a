package parsec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewError(t *testing.T) {
	s := NewStream("xyz", "")
	err := NewError(s, "a digit")
	assert.Equal(t, "expected a digit", err.Error())
	assert.False(t, err.IsFatal())
	assert.Nil(t, err.Unwrap())
}

func TestNewError_MultipleExpected(t *testing.T) {
	s := NewStream("xyz", "")
	err := NewError(s, "a", "b")
	assert.Equal(t, "expected one of: a, b", err.Error())
}

func TestNewFatalError(t *testing.T) {
	s := NewStream("xyz", "")
	cause := errors.New("invalid escape sequence")
	err := NewFatalError(s, cause, "a valid escape")
	assert.True(t, err.IsFatal())
	assert.Equal(t, cause, err.Unwrap())
}

func TestError_AddAccumulatesSiblingCauses(t *testing.T) {
	s := NewStream("xyz", "")
	cause1 := errors.New("first")
	cause2 := errors.New("second")
	e1 := NewFatalError(s, cause1, "a")
	e2 := NewFatalError(s, cause2, "b")

	e1.Add(e2)
	assert.Equal(t, []string{"a", "b"}, e1.Expected)
	require.Len(t, e1.Causes(), 1)
	assert.Equal(t, cause2, e1.Causes()[0])
}

func TestError_Clone(t *testing.T) {
	s := NewStream("xyz", "")
	original := NewError(s, "a")
	clone := original.Clone()
	clone.Expected = append(clone.Expected, "b")
	assert.Equal(t, []string{"a"}, original.Expected, "Clone must not share the Expected backing array")
	assert.Equal(t, []string{"a", "b"}, clone.Expected)
}

func TestFormatFailure(t *testing.T) {
	s := NewStream("1 + x", "calc.txt")
	s.TakeN(4)
	err := NewError(s, "a digit")
	rendered := FormatFailure(err)
	assert.Contains(t, rendered, "calc.txt:1:5")
	assert.Contains(t, rendered, "expected a digit")
	assert.Contains(t, rendered, "1 + x")
}

func TestFormatFailure_Nil(t *testing.T) {
	assert.Equal(t, "", FormatFailure(nil))
}

func TestParserFailure_Unwrap(t *testing.T) {
	s := NewStream("x", "")
	err := NewError(s, "a")
	pf := &ParserFailure{Err: err}
	assert.Equal(t, err, pf.Unwrap())
	assert.Contains(t, pf.Error(), "expected a")
}
