// © 2026 Parsekit Authors
//
// SPDX-License-Identifier: Apache-2.0

package combinator

// State is an immutable cursor over a token sequence: the sequence itself,
// an integer offset into it, and the position immediately before the token
// at that offset. Parsers never mutate a State; every transition returns a
// new one. The input slice is shared read-only by every State derived from
// the same parse run.
type State[T any] struct {
	Input  []T
	Offset int
	Pos    Position
	Map    SourceMap[T]
}

// NewState builds the initial state for a parse run: offset zero at the
// origin position, with the given source map bound for the run.
func NewState[T any](input []T, smap SourceMap[T]) State[T] {
	return State[T]{
		Input: input,
		Map:   smap,
	}
}

// AtEnd reports whether the cursor is past the last token.
func (s State[T]) AtEnd() bool {
	return s.Offset >= len(s.Input)
}

// Consume advances past a single token.
func (s State[T]) Consume(token T) State[T] {
	s.Offset = s.Offset + 1
	s.Pos = s.Map.EndsAt(token, s.Pos)
	return s
}

// ConsumeRun advances past a run of tokens. The position after the run is
// obtained by folding EndsAt over each token in order; it cannot be derived
// from the run's length because token widths vary.
func (s State[T]) ConsumeRun(tokens []T) State[T] {
	s.Offset = s.Offset + len(tokens)
	for _, token := range tokens {
		s.Pos = s.Map.EndsAt(token, s.Pos)
	}
	return s
}
