// © 2026 Parsekit Authors
//
// SPDX-License-Identifier: Apache-2.0

package combinator

import (
	"gopkg.parsekit.org/combine.go/exc"
)

// Parsed is a value together with the span of input it was derived from.
type Parsed[A any] struct {
	Value A
	Start Position
	End   Position
}

// WithStart rebinds the start of the span only. Sequencing uses this so
// that a multi-step construct reports the position of its first component
// rather than its last.
func (p Parsed[A]) WithStart(start Position) Parsed[A] {
	p.Start = start
	return p
}

// MapParsed transforms the value and preserves the span.
func MapParsed[A, B any](p Parsed[A], f func(A) B) Parsed[B] {
	return Parsed[B]{
		Value: f(p.Value),
		Start: p.Start,
		End:   p.End,
	}
}

// Result is the outcome of running a parser at a state: either a success
// carrying a positioned value, the resulting state, and a retained message,
// or a failure carrying a message. Consumed is true once any token has been
// irrevocably read on the path that produced the result; it is the sole
// signal disjunction uses to decide whether an alternative may still be
// tried.
type Result[T, A any] struct {
	Consumed bool
	Failed   bool
	Parsed   Parsed[A]
	State    State[T]
	Message  Message
}

func Ok[T, A any](consumed bool, parsed Parsed[A], state State[T], message Message) Result[T, A] {
	return Result[T, A]{
		Consumed: consumed,
		Parsed:   parsed,
		State:    state,
		Message:  message,
	}
}

func Fail[T, A any](consumed bool, message Message) Result[T, A] {
	return Result[T, A]{
		Consumed: consumed,
		Failed:   true,
		Message:  message,
	}
}

// MapResult transforms the success value only; failures pass through with
// the value type retyped.
func MapResult[T, A, B any](r Result[T, A], f func(A) B) Result[T, B] {
	if r.Failed {
		return Fail[T, B](r.Consumed, r.Message)
	}
	return Result[T, B]{
		Consumed: r.Consumed,
		Parsed:   MapParsed(r.Parsed, f),
		State:    r.State,
		Message:  r.Message,
	}
}

// MapMessage transforms the message on both success and failure.
func (r Result[T, A]) MapMessage(f func(Message) Message) Result[T, A] {
	r.Message = f(r.Message)
	return r
}

// Label rewrites the expected labels to the single given label, but only on
// a result that did not consume input. A consuming result is not one of
// several candidate productions any more; relabeling it would claim the
// whole production was expected at a point where the parser was already
// partway through it.
func (r Result[T, A]) Label(label string) Result[T, A] {
	if r.Consumed {
		return r
	}
	r.Message = r.Message.Expecting(label)
	return r
}

// Consume forces the consumed flag on.
func (r Result[T, A]) Consume() Result[T, A] {
	r.Consumed = true
	return r
}

// Unconsumed forces the consumed flag off.
func (r Result[T, A]) Unconsumed() Result[T, A] {
	r.Consumed = false
	return r
}

// Either projects the result to a conventional value/error pair. The error
// is an exc.Exception carrying the message's rendering and location;
// failures at the end of the input get exc.CodeUnexpectedEOF and all others
// exc.CodeUnexpectedToken.
func (r Result[T, A]) Either() (Parsed[A], error) {
	if !r.Failed {
		return r.Parsed, nil
	}
	code := exc.CodeUnexpectedToken
	if r.Message.AtEnd() {
		code = exc.CodeUnexpectedEOF
	}
	return Parsed[A]{}, exc.New(exc.Location{
		Line:   r.Message.Pos.Line,
		Column: r.Message.Pos.Column,
		Offset: r.Message.Offset,
	}, code, r.Message.String())
}
