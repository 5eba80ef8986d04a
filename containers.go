package parsec

// PairContainer allows a parser to return two results of possibly
// different types together, as used by Pair and SeparatedPair.
type PairContainer[L, R any] struct {
	Left  L
	Right R
}

// NewPairContainer instantiates a new PairContainer.
func NewPairContainer[L, R any](left L, right R) *PairContainer[L, R] {
	return &PairContainer[L, R]{
		Left:  left,
		Right: right,
	}
}
