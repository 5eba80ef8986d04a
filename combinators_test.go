package parsec

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMap_FunctorIdentity checks that Map(p, identity) behaves like p.
func TestMap_FunctorIdentity(t *testing.T) {
	identity := func(s string) string { return s }
	p := Char('a')
	mapped := Map(p, identity)

	a := p.Run(NewStream("abc", ""))
	b := mapped.Run(NewStream("abc", ""))
	assert.Equal(t, a.Value(), b.Value())
	assert.Equal(t, a.IsSuccess(), b.IsSuccess())
}

// TestMap_FunctorComposition checks that Map(Map(p, f), g) behaves like
// Map(p, g∘f).
func TestMap_FunctorComposition(t *testing.T) {
	f := func(s string) int { return len(s) }
	g := func(n int) string { return strconv.Itoa(n * 2) }

	left := Map(Map(String("hello"), f), g)
	right := Map(String("hello"), func(s string) string { return g(f(s)) })

	a := left.Run(NewStream("hello world", ""))
	b := right.Run(NewStream("hello world", ""))
	assert.Equal(t, a.Value(), b.Value())
}

func TestConstruct(t *testing.T) {
	type node struct{ text string }
	p := Construct(String("go"), func(s string) node { return node{text: s} })
	res := p.Run(NewStream("go!", ""))
	require.True(t, res.IsSuccess())
	assert.Equal(t, node{text: "go"}, res.Value())
}

func TestAssign(t *testing.T) {
	p := Assign(true, String("true"))
	res := p.Run(NewStream("true", ""))
	require.True(t, res.IsSuccess())
	assert.Equal(t, true, res.Value())
}

// TestBind_LeftIdentity checks that Bind(Pure(a), f) behaves like f(a).
func TestBind_LeftIdentity(t *testing.T) {
	f := func(n int) Parser[string] { return Pure(strconv.Itoa(n * 2)) }

	left := Bind(Pure(21), f)
	right := f(21)

	a := left.Run(NewStream("anything", ""))
	b := right.Run(NewStream("anything", ""))
	assert.Equal(t, a.Value(), b.Value())
}

// TestBind_RightIdentity checks that Bind(p, Pure) behaves like p.
func TestBind_RightIdentity(t *testing.T) {
	p := String("hello")
	bound := Bind(p, func(s string) Parser[string] { return Pure(s) })

	a := p.Run(NewStream("hello world", ""))
	b := bound.Run(NewStream("hello world", ""))
	assert.Equal(t, a.Value(), b.Value())
	assert.Equal(t, a.Remaining().offset, b.Remaining().offset)
}

func TestBind_PropagatesFailureWithoutRunningContinuation(t *testing.T) {
	called := false
	p := Bind(Char('a'), func(string) Parser[string] {
		called = true
		return Pure("unreachable")
	})
	res := p.Run(NewStream("xyz", ""))
	require.True(t, res.IsFailure())
	assert.False(t, called)
}

func TestApply(t *testing.T) {
	add := func(a int) func(int) int { return func(b int) int { return a + b } }
	pf := Map(Map(DigitChar(), digitValue), add)
	px := Map(DigitChar(), digitValue)

	res := Apply(pf, px).Run(NewStream("34", ""))
	require.True(t, res.IsSuccess())
	assert.Equal(t, 7, res.Value())
}

func digitValue(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func TestLabel(t *testing.T) {
	p := Label(Char('a'), "an opening marker")
	res := p.Run(NewStream("z", ""))
	require.True(t, res.IsFailure())
	assert.Contains(t, res.FailureInfo().Error(), "an opening marker")
}

func TestEmit(t *testing.T) {
	var observed []string
	p := Emit(Many(Char('a')), func(vs []string) { observed = vs })
	res := p.Run(NewStream("aaab", ""))
	require.True(t, res.IsSuccess())
	assert.Equal(t, []string{"a", "a", "a"}, observed)
}

func TestEmit_SkippedOnFailure(t *testing.T) {
	called := false
	p := Emit(Char('a'), func(string) { called = true })
	p.Run(NewStream("z", ""))
	assert.False(t, called)
}
