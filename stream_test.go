package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStream_Take1(t *testing.T) {
	s := NewStream("ab", "")
	v, ok := s.Take1()
	require.True(t, ok)
	assert.Equal(t, "a", v)
	assert.Equal(t, 1, s.offset)

	s2 := NewStream("", "")
	_, ok2 := s2.Take1()
	assert.False(t, ok2)
}

func TestStream_TakeN(t *testing.T) {
	s := NewStream("hello", "")
	v, ok := s.TakeN(3)
	require.True(t, ok)
	assert.Equal(t, "hel", v)

	v2, ok2 := s.TakeN(100)
	require.True(t, ok2)
	assert.Equal(t, "lo", v2, "TakeN past the end returns whatever remains")

	_, ok3 := s.TakeN(1)
	assert.False(t, ok3, "TakeN at EOF with n > 0 fails")
}

func TestStream_TakeWhile(t *testing.T) {
	s := NewStream("123abc", "")
	v := s.TakeWhile(isDigit)
	assert.Equal(t, "123", v)
	assert.Equal(t, 3, s.offset)

	v2 := s.TakeWhile(isDigit)
	assert.Equal(t, "", v2, "TakeWhile never fails, even matching nothing")
}

func TestStream_PeekDoesNotAdvance(t *testing.T) {
	s := NewStream("abc", "")
	v, ok := s.Peek1()
	require.True(t, ok)
	assert.Equal(t, "a", v)
	assert.Equal(t, 0, s.offset)

	vn, ok := s.PeekN(2)
	require.True(t, ok)
	assert.Equal(t, "ab", vn)
	assert.Equal(t, 0, s.offset)

	vw := s.PeekWhile(isAlpha)
	assert.Equal(t, "abc", vw)
	assert.Equal(t, 0, s.offset)
}

func TestStream_PeekBack(t *testing.T) {
	s := NewStream("abc", "")
	assert.Equal(t, "", s.PeekBack())
	s.Take1()
	assert.Equal(t, "a", s.PeekBack())
}

func TestStream_IsEOF(t *testing.T) {
	s := NewStream("a", "")
	assert.False(t, s.IsEOF())
	s.Take1()
	assert.True(t, s.IsEOF())
}

// TestStream_TransactionLIFO checks that nested transactions commit
// and roll back in strict last-in-first-out order.
func TestStream_TransactionLIFO(t *testing.T) {
	s := NewStream("abcdef", "")
	s.BeginTransaction()
	s.Take1() // consume 'a'
	s.BeginTransaction()
	s.Take1() // consume 'b'
	s.Rollback()
	assert.Equal(t, 1, s.offset, "inner rollback undoes only its own transaction")
	s.Take1() // consume 'b' again
	s.Commit()
	assert.Equal(t, 2, s.offset, "outer commit keeps progress made since BeginTransaction")
}

func TestStream_RollbackRestoresPosition(t *testing.T) {
	s := NewStream("ab\ncd", "")
	s.BeginTransaction()
	s.TakeN(3)
	assert.Equal(t, uint32(2), s.Position().Line)
	s.Rollback()
	assert.Equal(t, uint32(1), s.Position().Line)
	assert.Equal(t, 0, s.offset)
}

func TestStream_CommitWithoutBeginPanics(t *testing.T) {
	s := NewStream("a", "")
	assert.Panics(t, func() { s.Commit() })
}

func TestStream_RollbackWithoutBeginPanics(t *testing.T) {
	s := NewStream("a", "")
	assert.Panics(t, func() { s.Rollback() })
}

func TestStream_LineExcerpt(t *testing.T) {
	s := NewStream("first\nsecond\nthird", "")
	s.TakeN(7) // consumes "first\ns", landing on line 2
	assert.Equal(t, "second", s.LineExcerpt())
}

func TestStream_UnicodeCodepointBoundaries(t *testing.T) {
	s := NewStream("héllo", "")
	v, ok := s.Take1()
	require.True(t, ok)
	assert.Equal(t, "h", v)
	v2, ok := s.Take1()
	require.True(t, ok)
	assert.Equal(t, "é", v2, "Take1 advances by rune, not by byte")
}

func TestStream_Filename(t *testing.T) {
	s := NewStream("x", "input.txt")
	assert.Equal(t, "input.txt", s.Filename())
}
