// © 2026 Parsekit Authors
//
// SPDX-License-Identifier: Apache-2.0

package combinator

// Satisfy matches a single token accepted by the predicate. It fails
// without consuming and with no expected labels; callers name what they
// expect with Label.
func Satisfy[T any](pred func(T) bool) Parser[T, T] {
	return func(s State[T]) Result[T, T] {
		if s.AtEnd() {
			return Fail[T, T](false, NewMessage(s))
		}
		token := s.Input[s.Offset]
		if !pred(token) {
			return Fail[T, T](false, NewMessage(s))
		}
		next := s.Consume(token)
		return Ok(true, Parsed[T]{
			Value: token,
			Start: s.Map.StartsAt(token, s.Pos),
			End:   next.Pos,
		}, next, NewMessage(next))
	}
}

// AnyToken matches any single token.
func AnyToken[T any]() Parser[T, T] {
	return Satisfy(func(T) bool {
		return true
	})
}

// TakeWhile1 matches one or more contiguous tokens accepted by the
// predicate. It is observably indistinguishable from Satisfy(pred).Rep()
// but scans the input slice directly instead of re-entering FlatMap once
// per element: the run is located with a forward scan, sliced in one
// operation, and the new position obtained by folding EndsAt over the
// slice.
func TakeWhile1[T any](pred func(T) bool) Parser[T, []T] {
	return func(s State[T]) Result[T, []T] {
		stop := s.Offset
		for stop < len(s.Input) && pred(s.Input[stop]) {
			stop = stop + 1
		}
		if stop == s.Offset {
			return Fail[T, []T](false, NewMessage(s))
		}
		run := s.Input[s.Offset:stop]
		next := s.ConsumeRun(run)
		return Ok(true, Parsed[[]T]{
			Value: run,
			Start: s.Map.StartsAt(run[0], s.Pos),
			End:   next.Pos,
		}, next, NewMessage(next))
	}
}

// TakeWhile is TakeWhile1, except an empty run succeeds with an empty
// sequence and no consumption. It mirrors Satisfy(pred).Rep0().
func TakeWhile[T any](pred func(T) bool) Parser[T, []T] {
	return func(s State[T]) Result[T, []T] {
		r := TakeWhile1(pred)(s)
		if !r.Failed {
			return r
		}
		return Ok(false, Parsed[[]T]{Start: s.Pos, End: s.Pos}, s, r.Message)
	}
}
