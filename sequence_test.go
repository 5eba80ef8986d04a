package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowedBy(t *testing.T) {
	res := FollowedBy(Char('('), String("foo")).Run(NewStream("(foo)", ""))
	require.True(t, res.IsSuccess())
	assert.Equal(t, "foo", res.Value())
	assert.Equal(t, ")", remainingText(res.Remaining()))
}

func TestKeepFirst(t *testing.T) {
	res := KeepFirst(String("foo"), Char(';')).Run(NewStream("foo;rest", ""))
	require.True(t, res.IsSuccess())
	assert.Equal(t, "foo", res.Value())
	assert.Equal(t, "rest", remainingText(res.Remaining()))
}

func TestSequence_Atomic(t *testing.T) {
	s := NewStream("foo bar", "")
	res := Sequence(String("foo"), String("baz"))
	result := res.Run(s)
	require.True(t, result.IsFailure())
	assert.Equal(t, 0, s.offset, "a failed Sequence must roll back everything it consumed")
}

func TestSequence_Success(t *testing.T) {
	res := Sequence(DigitChar(), DigitChar(), DigitChar()).Run(NewStream("123rest", ""))
	require.True(t, res.IsSuccess())
	assert.Equal(t, []string{"1", "2", "3"}, res.Value())
}

func TestPair(t *testing.T) {
	res := Pair(Char('a'), Char('b')).Run(NewStream("abc", ""))
	require.True(t, res.IsSuccess())
	assert.Equal(t, "a", res.Value().Left)
	assert.Equal(t, "b", res.Value().Right)
}

func TestSeparatedPair(t *testing.T) {
	res := SeparatedPair(String("key"), Char(':'), String("value")).Run(NewStream("key:value", ""))
	require.True(t, res.IsSuccess())
	assert.Equal(t, "key", res.Value().Left)
	assert.Equal(t, "value", res.Value().Right)
}

func TestPreceded(t *testing.T) {
	res := Preceded(Char('('), String("foo")).Run(NewStream("(foo", ""))
	require.True(t, res.IsSuccess())
	assert.Equal(t, "foo", res.Value())
}

func TestPreceded_RollsBackOnFailure(t *testing.T) {
	s := NewStream("(bar", "")
	res := Preceded(Char('('), String("foo")).Run(s)
	require.True(t, res.IsFailure())
	assert.Equal(t, 0, s.offset)
}

func TestTerminated(t *testing.T) {
	res := Terminated(String("foo"), Char(')')).Run(NewStream("foo)", ""))
	require.True(t, res.IsSuccess())
	assert.Equal(t, "foo", res.Value())
}

func TestBetween(t *testing.T) {
	res := Between(Char('('), Char(')'), String("foo")).Run(NewStream("(foo)", ""))
	require.True(t, res.IsSuccess())
	assert.Equal(t, "foo", res.Value())
}

func TestBetween_RollsBackOnMissingClose(t *testing.T) {
	s := NewStream("(foo", "")
	res := Between(Char('('), Char(')'), String("foo")).Run(s)
	require.True(t, res.IsFailure())
	assert.Equal(t, 0, s.offset)
}

func TestAppend(t *testing.T) {
	res := Append(String("foo"), String("bar")).Run(NewStream("foobarbaz", ""))
	require.True(t, res.IsSuccess())
	assert.Equal(t, "foobar", res.Value())
	assert.Equal(t, "baz", remainingText(res.Remaining()))
}

func TestAssemble(t *testing.T) {
	res := Assemble(String("a"), String("b"), String("c")).Run(NewStream("abcd", ""))
	require.True(t, res.IsSuccess())
	assert.Equal(t, "abc", res.Value())
}

func TestVoidLeft(t *testing.T) {
	res := VoidLeft(String("true"), true).Run(NewStream("true", ""))
	require.True(t, res.IsSuccess())
	assert.Equal(t, true, res.Value())
}
