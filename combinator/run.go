// © 2026 Parsekit Authors
//
// SPDX-License-Identifier: Apache-2.0

package combinator

// AsTokens converts a source value into an indexable, finite sequence of
// tokens. It is the only place an external representation is adapted to
// the engine's array-based model, and it runs exactly once per top-level
// parse. The source package provides implementations for readers and
// iterators; the built-ins here cover text and already-indexed sequences.
type AsTokens[S, T any] interface {
	Tokens(src S) []T
}

// AsTokensFunc is an adaptor for simple conversion functions that makes
// them compatible with the AsTokens interface.
type AsTokensFunc[S, T any] func(src S) []T

func (f AsTokensFunc[S, T]) Tokens(src S) []T {
	return f(src)
}

// Text converts a string into its individual characters.
func Text() AsTokens[string, rune] {
	return AsTokensFunc[string, rune](func(src string) []rune {
		return []rune(src)
	})
}

// Slice passes an already-indexable token sequence through unchanged.
func Slice[T any]() AsTokens[[]T, T] {
	return AsTokensFunc[[]T, T](func(src []T) []T {
		return src
	})
}

// Parse converts the source once, builds the initial state with the given
// source map bound, and evaluates the parser against it.
func Parse[S, T, A any](p Parser[T, A], src S, tokens AsTokens[S, T], smap SourceMap[T]) Result[T, A] {
	return p(NewState(tokens.Tokens(src), smap))
}

// ParseText evaluates a character parser against a string using the
// built-in text conversion and character source map.
func ParseText[A any](p Parser[rune, A], text string) Result[rune, A] {
	return Parse(p, text, Text(), RuneSourceMap{})
}
