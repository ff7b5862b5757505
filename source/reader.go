// © 2026 Parsekit Authors
//
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"bufio"
	"context"
	"io"
	"unicode/utf8"

	"gopkg.parsekit.org/combine.go/combinator"
	"gopkg.parsekit.org/combine.go/optional"
)

// Runes converts a reader into an iterator of code points.
func Runes(r io.Reader) Iterator[rune] {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanRunes)
	return &runeIterator{scanner: scanner, closer: asCloser(r)}
}

type runeIterator struct {
	scanner *bufio.Scanner
	closer  io.Closer
}

func (it *runeIterator) Next(ctx context.Context) optional.Optional[rune] {
	if !it.scanner.Scan() {
		return optional.None[rune]()
	}
	r, _ := utf8.DecodeRune(it.scanner.Bytes())
	return optional.Some(r)
}

func (it *runeIterator) Close(ctx context.Context) error {
	if it.closer != nil {
		_ = it.closer.Close()
	}
	return it.scanner.Err()
}

func asCloser(r io.Reader) io.Closer {
	if c, ok := r.(io.Closer); ok {
		return c
	}
	return nil
}

// FromReader adapts reader-shaped character sources to combinator.Parse.
func FromReader() combinator.AsTokens[io.Reader, rune] {
	return combinator.AsTokensFunc[io.Reader, rune](func(src io.Reader) []rune {
		return Collect(context.Background(), Runes(src))
	})
}
