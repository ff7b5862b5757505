// © 2026 Parsekit Authors
//
// SPDX-License-Identifier: Apache-2.0

// Package combinator is a library of composable parsing primitives over an
// abstract token stream. A parser is a function from an immutable State to
// a Result; combinators build larger parsers out of smaller ones without
// any shared mutable state. Disjunction is non-backtracking by default: an
// alternative that has consumed input is committed, and only results that
// made no progress keep their sibling alternatives (and their merged
// expected labels) alive. Backtrack opts out of that.
//
// Parsing is plain call-stack recursion over a fully materialized token
// slice. Grammars with unbounded left recursion overflow the stack, and a
// Rep0 over a parser that can succeed without consuming loops forever;
// neither is detected.
package combinator

import (
	"gopkg.parsekit.org/combine.go/optional"
)

// Parser consumes tokens from a state and produces a result. All
// combinators compose values of this type; none of them mutate the state
// they are given.
type Parser[T, A any] func(State[T]) Result[T, A]

// Pure always succeeds with the given value, consuming nothing, at the
// current position, with an empty message. It is the unit of FlatMap and
// the base case of every zero-occurrence combinator.
func Pure[T, A any](value A) Parser[T, A] {
	return func(s State[T]) Result[T, A] {
		return Ok(false, Parsed[A]{Value: value, Start: s.Pos, End: s.Pos}, s, Message{})
	}
}

// Map transforms the success value; failures and the consumed flag pass
// through untouched.
func Map[T, A, B any](p Parser[T, A], f func(A) B) Parser[T, B] {
	return func(s State[T]) Result[T, B] {
		return MapResult(p(s), f)
	}
}

// FlatMap sequences two parsers, the second chosen from the first's value.
// A failure of the first propagates untouched. When the first succeeds
// having consumed input, the combined result is forced consuming no matter
// what the continuation does; when it succeeds without consuming, the
// continuation's consumed flag and message are adopted as-is, so that
// empty-prefix successes (Pure and friends) do not spuriously commit the
// whole construct. Either way the combined span starts where the first
// component started.
func FlatMap[T, A, B any](p Parser[T, A], f func(A) Parser[T, B]) Parser[T, B] {
	return func(s State[T]) Result[T, B] {
		first := p(s)
		if first.Failed {
			return Fail[T, B](first.Consumed, first.Message)
		}
		second := f(first.Parsed.Value)(first.State)
		if first.Consumed {
			second.Consumed = true
		}
		if !second.Failed {
			second.Parsed = second.Parsed.WithStart(first.Parsed.Start)
		}
		return second
	}
}

// Or is ordered choice. A consuming result from the receiver, success or
// failure, is final: having read input means the receiver was definitively
// the branch taken, not an alternative among equals, so the other branch is
// never attempted and the message is left alone. Only when the receiver
// made no progress does the alternative run; if it also makes no progress
// the two expected-label lists merge, receiver first, onto the
// alternative's outcome. An alternative that consumed input wins unmerged.
func (p Parser[T, A]) Or(q Parser[T, A]) Parser[T, A] {
	return func(s State[T]) Result[T, A] {
		left := p(s)
		if left.Consumed {
			return left
		}
		right := q(s)
		if right.Consumed {
			return right
		}
		right.Message = left.Message.MergeExpected(right.Message)
		return right
	}
}

// OneOf is Or folded over any number of alternatives.
func OneOf[T, A any](parsers ...Parser[T, A]) Parser[T, A] {
	combined := parsers[0]
	for _, p := range parsers[1:] {
		combined = combined.Or(p)
	}
	return combined
}

// Backtrack reports the receiver's result as non-consuming regardless of
// how much input it actually read, letting it participate in further
// disjunction attempts after reading tokens. This trades away the
// committed-branch fast path and the error-message precision that comes
// with it, so use it deliberately.
func (p Parser[T, A]) Backtrack() Parser[T, A] {
	return func(s State[T]) Result[T, A] {
		return p(s).Unconsumed()
	}
}

// Label names what the receiver expects, for error messages. The rewrite
// only applies to results that did not consume input; see Result.Label.
func (p Parser[T, A]) Label(label string) Parser[T, A] {
	return func(s State[T]) Result[T, A] {
		return p(s).Label(label)
	}
}

// Collect filters and maps in one step. When the partial mapping reports
// false the success converts to a failure reporting the rejected value as
// the observed input. The conversion is deliberately non-consuming even
// though the underlying parser read input, so a collected parser can still
// take part as an alternative in a disjunction.
func Collect[T, A, B any](p Parser[T, A], f func(A) (B, bool)) Parser[T, B] {
	return func(s State[T]) Result[T, B] {
		r := p(s)
		if r.Failed {
			return Fail[T, B](r.Consumed, r.Message)
		}
		value, ok := f(r.Parsed.Value)
		if !ok {
			return Fail[T, B](false, Message{
				Offset: s.Offset,
				Pos:    r.Parsed.Start,
				Input:  renderToken(r.Parsed.Value),
			})
		}
		return Ok(r.Consumed, Parsed[B]{
			Value: value,
			Start: r.Parsed.Start,
			End:   r.Parsed.End,
		}, r.State, r.Message)
	}
}

// Filter rejects successes whose value fails the predicate, with the same
// non-consuming conversion as Collect.
func (p Parser[T, A]) Filter(pred func(A) bool) Parser[T, A] {
	return Collect(p, func(v A) (A, bool) {
		return v, pred(v)
	})
}

// WithPosition wraps the success value in a Parsed carrying its own span,
// so downstream values remember where in the source they were found.
func (p Parser[T, A]) WithPosition() Parser[T, Parsed[A]] {
	return func(s State[T]) Result[T, Parsed[A]] {
		r := p(s)
		if r.Failed {
			return Fail[T, Parsed[A]](r.Consumed, r.Message)
		}
		return Ok(r.Consumed, Parsed[Parsed[A]]{
			Value: r.Parsed,
			Start: r.Parsed.Start,
			End:   r.Parsed.End,
		}, r.State, r.Message)
	}
}

// Rep matches the receiver one or more times.
func (p Parser[T, A]) Rep() Parser[T, []A] {
	return FlatMap(p, func(first A) Parser[T, []A] {
		return Map(p.Rep0(), func(rest []A) []A {
			return append([]A{first}, rest...)
		})
	})
}

// Rep0 matches the receiver zero or more times, succeeding trivially with
// an empty sequence and no consumption when no match exists.
func (p Parser[T, A]) Rep0() Parser[T, []A] {
	return p.Rep().Or(Pure[T, []A](nil))
}

// RepSep matches one or more occurrences of p separated by sep. Empty
// input is not a valid match.
func RepSep[T, A, S any](p Parser[T, A], sep Parser[T, S]) Parser[T, []A] {
	return FlatMap(p, func(first A) Parser[T, []A] {
		return Map(KeepRight(sep, p).Rep0(), func(rest []A) []A {
			return append([]A{first}, rest...)
		})
	})
}

// RepSep0 is RepSep, except zero occurrences also succeed with an empty
// sequence and no consumption.
func RepSep0[T, A, S any](p Parser[T, A], sep Parser[T, S]) Parser[T, []A] {
	return RepSep(p, sep).Or(Pure[T, []A](nil))
}

// Optional matches the receiver or nothing. It yields None without
// consuming whenever the receiver does not consume, and propagates a
// consuming failure rather than swallowing it: an optional does not undo a
// branch that already committed.
func (p Parser[T, A]) Optional() Parser[T, optional.Optional[A]] {
	return Map(p, optional.Some[A]).Or(Pure[T, optional.Optional[A]](optional.None[A]()))
}

// Pair is the value of AndThen.
type Pair[A, B any] struct {
	First  A
	Second B
}

// AndThen sequences two parsers and keeps both values.
func AndThen[T, A, B any](p Parser[T, A], q Parser[T, B]) Parser[T, Pair[A, B]] {
	return FlatMap(p, func(a A) Parser[T, Pair[A, B]] {
		return Map(q, func(b B) Pair[A, B] {
			return Pair[A, B]{First: a, Second: b}
		})
	})
}

// KeepRight sequences two parsers and keeps the right value.
func KeepRight[T, A, B any](p Parser[T, A], q Parser[T, B]) Parser[T, B] {
	return FlatMap(p, func(A) Parser[T, B] {
		return q
	})
}

// KeepLeft sequences two parsers and keeps the left value.
func KeepLeft[T, A, B any](p Parser[T, A], q Parser[T, B]) Parser[T, A] {
	return FlatMap(p, func(a A) Parser[T, A] {
		return Map(q, func(B) A {
			return a
		})
	})
}

// Between brackets p with left and right, keeping p's value.
func Between[T, A, L, R any](p Parser[T, A], left Parser[T, L], right Parser[T, R]) Parser[T, A] {
	return KeepLeft(KeepRight(left, p), right)
}

// SurroundedBy brackets p with the same parser on both sides.
func SurroundedBy[T, A, B any](p Parser[T, A], bracket Parser[T, B]) Parser[T, A] {
	return Between(p, bracket, bracket)
}

// Sequence runs the given parsers in order and collects their values. It
// fails on the first sub-parser failure, propagating it unchanged; the
// consumption of earlier successes has already been folded in.
func Sequence[T, A any](parsers ...Parser[T, A]) Parser[T, []A] {
	if len(parsers) == 0 {
		return Pure[T, []A](nil)
	}
	rest := Sequence(parsers[1:]...)
	return FlatMap(parsers[0], func(first A) Parser[T, []A] {
		return Map(rest, func(values []A) []A {
			return append([]A{first}, values...)
		})
	})
}

// End succeeds only at the end of the input, consuming nothing.
func End[T any]() Parser[T, struct{}] {
	return func(s State[T]) Result[T, struct{}] {
		if s.AtEnd() {
			return Ok(false, Parsed[struct{}]{Start: s.Pos, End: s.Pos}, s, Message{})
		}
		return Fail[T, struct{}](false, NewMessage(s, EndOfInput))
	}
}
