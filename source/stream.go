package source

import (
	"context"

	"gopkg.parsekit.org/combine.go/combinator"
	"gopkg.parsekit.org/combine.go/optional"
)

// Iterator produces a stream of values, typically the token output of a
// tokenizer pass feeding a parser. The parse engine itself works over
// materialized slices; Collect bridges the two.
type Iterator[T any] interface {
	Next(ctx context.Context) optional.Optional[T]
	Close(ctx context.Context) error
}

// Lookahead is an iterator that can also peek at the next n values.
type Lookahead[T any] interface {
	Iterator[T]
	Lookahead(ctx context.Context, n uint8) optional.Optional[T]
}

// Filter decides which values of a stream to keep.
type Filter[T any] interface {
	Keep(ctx context.Context, v T) bool
}

// FilterFunc is an adaptor for simple filter functions that makes them
// compatible with the Filter interface. Use like:
//
//	FilterFunc[T](func(ctx context.Context, val T) bool { return true })
//
// Note that this type should never be referenced directly in any signature.
// Always use Filter as an input or output type.
type FilterFunc[T any] func(ctx context.Context, val T) bool

func (f FilterFunc[T]) Keep(ctx context.Context, val T) bool {
	return f(ctx, val)
}

// FromSlice converts a slice of values into an Iterator implementation.
func FromSlice[T any](vs []T) Iterator[T] {
	return &iteratorSlice[T]{slice: vs, offset: -1}
}

type iteratorSlice[T any] struct {
	slice  []T
	offset int
}

func (it *iteratorSlice[T]) Next(ctx context.Context) optional.Optional[T] {
	it.offset = it.offset + 1
	if it.offset >= len(it.slice) {
		return optional.None[T]()
	}
	return optional.Some(it.slice[it.offset])
}

func (it *iteratorSlice[T]) Close(ctx context.Context) error {
	return nil
}

// NewFilter wraps an iterator with a filter so that only values that pass
// the filter are returned. Tokenizer pipelines use this to drop trivia
// such as whitespace or comment tokens before parsing.
func NewFilter[T any](it Iterator[T], f Filter[T]) Iterator[T] {
	return &iteratorFilter[T]{
		iter:   it,
		filter: f,
	}
}

type iteratorFilter[T any] struct {
	iter   Iterator[T]
	filter Filter[T]
}

func (it *iteratorFilter[T]) Next(ctx context.Context) optional.Optional[T] {
	for {
		v := it.iter.Next(ctx)
		if !v.IsPresent() {
			return v
		}
		if it.filter.Keep(ctx, v.Value()) {
			return v
		}
	}
}

func (it *iteratorFilter[T]) Close(ctx context.Context) error {
	return it.iter.Close(ctx)
}

// NewLookahead wraps an iterator in a Lookahead implementation to enable
// peeking at the next n values.
func NewLookahead[T any](it Iterator[T], n uint8) Lookahead[T] {
	return &lookahead[T]{
		iter: it,
		n:    n,
	}
}

type lookahead[T any] struct {
	iter  Iterator[T]
	n     uint8
	peeks []optional.Optional[T]
}

func (look *lookahead[T]) init(ctx context.Context) {
	if look.peeks == nil {
		look.peeks = make([]optional.Optional[T], look.n+1)
		for x := 0; x <= int(look.n); x = x + 1 {
			look.peeks[x] = look.iter.Next(ctx)
		}
	}
}

func (look *lookahead[T]) Next(ctx context.Context) optional.Optional[T] {
	if look.peeks == nil {
		look.init(ctx)
		return look.peeks[0]
	}
	copy(look.peeks, look.peeks[1:])
	look.peeks[len(look.peeks)-1] = look.iter.Next(ctx)
	return look.peeks[0]
}

func (look *lookahead[T]) Close(ctx context.Context) error {
	return look.iter.Close(ctx)
}

func (look *lookahead[T]) Lookahead(ctx context.Context, n uint8) optional.Optional[T] {
	if look.peeks == nil {
		look.init(ctx)
	}
	if n > look.n {
		return optional.None[T]()
	}
	return look.peeks[n]
}

// Collect drains an iterator into a slice. This is the materialization
// step a parse run performs once, up front; the engine never pulls from a
// live stream during parsing.
func Collect[T any](ctx context.Context, it Iterator[T]) []T {
	var out []T
	for v := it.Next(ctx); v.IsPresent(); v = it.Next(ctx) {
		out = append(out, v.Value())
	}
	return out
}

// FromIterator adapts iterator-shaped sources to combinator.Parse.
func FromIterator[T any]() combinator.AsTokens[Iterator[T], T] {
	return combinator.AsTokensFunc[Iterator[T], T](func(src Iterator[T]) []T {
		return Collect(context.Background(), src)
	})
}
