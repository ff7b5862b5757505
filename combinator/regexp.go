// © 2026 Parsekit Authors
//
// SPDX-License-Identifier: Apache-2.0

package combinator

import (
	"github.com/dlclark/regexp2"
)

// Regexp matches the given pattern anchored at the current offset and
// yields the matched text. The pattern must compile or Regexp panics, so
// patterns are expected to be literals fixed at grammar-construction time.
// A match elsewhere in the remaining input does not count; the failure is
// non-consuming and expects the pattern.
func Regexp(pattern string) Parser[rune, string] {
	re := regexp2.MustCompile(pattern, regexp2.None)
	return func(s State[rune]) Result[rune, string] {
		m, err := re.FindRunesMatchStartingAt(s.Input, s.Offset)
		if err != nil || m == nil || m.Index != s.Offset {
			return Fail[rune, string](false, NewMessage(s, pattern))
		}
		run := m.Runes()
		if len(run) == 0 {
			return Ok(false, Parsed[string]{Start: s.Pos, End: s.Pos}, s, NewMessage(s))
		}
		next := s.ConsumeRun(run)
		return Ok(true, Parsed[string]{
			Value: m.String(),
			Start: s.Map.StartsAt(run[0], s.Pos),
			End:   next.Pos,
		}, next, NewMessage(next))
	}
}
