// © 2026 Parsekit Authors
//
// SPDX-License-Identifier: Apache-2.0

package combinator

import "fmt"

// Position is a zero-based line/column coordinate in a source. The zero
// value is the origin.
type Position struct {
	Line   int
	Column int
}

// NextLine moves to the start of the following line.
func (p Position) NextLine() Position {
	return Position{Line: p.Line + 1}
}

// NextColumn moves one column to the right on the same line.
func (p Position) NextColumn() Position {
	return Position{Line: p.Line, Column: p.Column + 1}
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// SourceMap describes, for a token type, how the position advances across a
// token. StartsAt gives the position of the token itself given the position
// before it; EndsAt gives the position immediately after it. Both must be
// pure. A SourceMap is bound to a State when the parse starts and every
// position-aware operation goes through it, so richer token types (for
// example pre-lexed tokens that carry their own spans) only need to supply
// an implementation here.
type SourceMap[T any] interface {
	StartsAt(token T, before Position) Position
	EndsAt(token T, before Position) Position
}

// SourceMapFuncs adapts a pair of plain functions to the SourceMap
// interface. Either field may be nil, in which case the position is
// returned unchanged for StartsAt and advanced one column for EndsAt.
type SourceMapFuncs[T any] struct {
	Starts func(token T, before Position) Position
	Ends   func(token T, before Position) Position
}

func (m SourceMapFuncs[T]) StartsAt(token T, before Position) Position {
	if m.Starts == nil {
		return before
	}
	return m.Starts(token, before)
}

func (m SourceMapFuncs[T]) EndsAt(token T, before Position) Position {
	if m.Ends == nil {
		return before.NextColumn()
	}
	return m.Ends(token, before)
}

// RuneSourceMap is the built-in character mapping: a character occupies the
// position before it, and a line feed starts a new line.
type RuneSourceMap struct{}

func (RuneSourceMap) StartsAt(r rune, before Position) Position {
	return before
}

func (RuneSourceMap) EndsAt(r rune, before Position) Position {
	if r == '\n' {
		return before.NextLine()
	}
	return before.NextColumn()
}
