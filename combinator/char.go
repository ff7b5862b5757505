// © 2026 Parsekit Authors
//
// SPDX-License-Identifier: Apache-2.0

package combinator

import (
	"unicode"
)

// Character-level conveniences over rune tokens.

// Char matches exactly the given character.
func Char(r rune) Parser[rune, rune] {
	return Satisfy(func(c rune) bool {
		return c == r
	}).Label(string(r))
}

// String matches the given literal. It compares the literal against the
// input directly rather than composing per-character parsers, and reports
// the whole literal as what was expected: failing three characters into
// "foo" is a consuming failure at the mismatch, still expecting "foo".
func String(literal string) Parser[rune, string] {
	runes := []rune(literal)
	return func(s State[rune]) Result[rune, string] {
		cursor := s
		for i, r := range runes {
			if cursor.AtEnd() || cursor.Input[cursor.Offset] != r {
				return Fail[rune, string](i > 0, NewMessage(cursor, literal))
			}
			cursor = cursor.Consume(r)
		}
		return Ok(len(runes) > 0, Parsed[string]{
			Value: literal,
			Start: s.Pos,
			End:   cursor.Pos,
		}, cursor, NewMessage(cursor))
	}
}

// Letter matches a unicode letter.
func Letter() Parser[rune, rune] {
	return Satisfy(unicode.IsLetter).Label("letter")
}

// Digit matches a decimal digit.
func Digit() Parser[rune, rune] {
	return Satisfy(unicode.IsDigit).Label("digit")
}

// Whitespace matches a single whitespace character.
func Whitespace() Parser[rune, rune] {
	return Satisfy(unicode.IsSpace).Label("whitespace")
}
