// © 2026 Parsekit Authors
//
// SPDX-License-Identifier: Apache-2.0

package combinator

import (
	"fmt"
	"strconv"
	"strings"
)

// EndOfInput is the rendering used for the observed input when a failure
// happened past the last token.
const EndOfInput = "end of input"

// Message describes what a parser observed at a point in the input and what
// it would have accepted instead. Successful results carry one too, because
// a downstream Filter or Collect may turn the success into a failure and
// needs something to report; in every other case the success message is
// discarded. The zero value is the empty message.
type Message struct {
	Offset   int
	Pos      Position
	Input    string
	Expected []string
}

// NewMessage builds a message describing the token under the given state's
// cursor, or the end of input.
func NewMessage[T any](s State[T], expected ...string) Message {
	input := EndOfInput
	if !s.AtEnd() {
		input = renderToken(s.Input[s.Offset])
	}
	return Message{
		Offset:   s.Offset,
		Pos:      s.Pos,
		Input:    input,
		Expected: expected,
	}
}

// Expecting replaces the expected labels with the single given label.
func (m Message) Expecting(label string) Message {
	m.Expected = []string{label}
	return m
}

// MergeExpected combines the expected labels of two messages, receiver
// labels first, keeping the receiver's location and observed input. Used
// when two sibling alternatives both failed to make progress.
func (m Message) MergeExpected(other Message) Message {
	if len(other.Expected) == 0 {
		return m
	}
	merged := make([]string, 0, len(m.Expected)+len(other.Expected))
	merged = append(merged, m.Expected...)
	merged = append(merged, other.Expected...)
	m.Expected = merged
	return m
}

// AtEnd reports whether the message observed the end of the input rather
// than a token.
func (m Message) AtEnd() bool {
	return m.Input == EndOfInput
}

func (m Message) String() string {
	switch len(m.Expected) {
	case 0:
		return fmt.Sprintf("unexpected %s", m.Input)
	case 1:
		return fmt.Sprintf("unexpected %s (expecting %q)", m.Input, m.Expected[0])
	default:
		quoted := make([]string, len(m.Expected))
		for i, label := range m.Expected {
			quoted[i] = strconv.Quote(label)
		}
		return fmt.Sprintf("unexpected %s (expecting one of %s)", m.Input, strings.Join(quoted, ", "))
	}
}

// renderToken produces the textual rendering of an offending token for
// error messages. Characters and strings are quoted; anything else falls
// back to its Stringer or default formatting.
func renderToken[T any](token T) string {
	switch v := any(token).(type) {
	case rune:
		return strconv.Quote(string(v))
	case string:
		return strconv.Quote(v)
	case fmt.Stringer:
		return strconv.Quote(v.String())
	default:
		return fmt.Sprintf("%v", token)
	}
}
