package combinator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPositionSuccessors(t *testing.T) {
	t.Parallel()

	origin := Position{}
	require.Equal(t, Position{Line: 0, Column: 1}, origin.NextColumn())
	require.Equal(t, Position{Line: 1, Column: 0}, origin.NextLine())

	p := Position{Line: 2, Column: 7}
	require.Equal(t, Position{Line: 2, Column: 8}, p.NextColumn())
	require.Equal(t, Position{Line: 3, Column: 0}, p.NextLine())
	require.Equal(t, "2:7", p.String())
}

func TestRuneSourceMap(t *testing.T) {
	t.Parallel()

	smap := RuneSourceMap{}
	at := Position{Line: 1, Column: 3}
	require.Equal(t, at, smap.StartsAt('x', at))
	require.Equal(t, Position{Line: 1, Column: 4}, smap.EndsAt('x', at))
	require.Equal(t, Position{Line: 2, Column: 0}, smap.EndsAt('\n', at))
}

func TestStateCursor(t *testing.T) {
	t.Parallel()

	s := NewState([]rune("a\nb"), RuneSourceMap{})
	require.False(t, s.AtEnd())
	require.Equal(t, 0, s.Offset)
	require.Equal(t, Position{}, s.Pos)

	s1 := s.Consume('a')
	require.Equal(t, 1, s1.Offset)
	require.Equal(t, Position{Line: 0, Column: 1}, s1.Pos)
	// transitions copy; the original cursor is untouched
	require.Equal(t, 0, s.Offset)

	s2 := s1.ConsumeRun([]rune("\nb"))
	require.Equal(t, 3, s2.Offset)
	require.Equal(t, Position{Line: 1, Column: 1}, s2.Pos)
	require.True(t, s2.AtEnd())
}

func TestSourceMapFuncs(t *testing.T) {
	t.Parallel()

	defaults := SourceMapFuncs[int]{}
	at := Position{Line: 0, Column: 5}
	require.Equal(t, at, defaults.StartsAt(9, at))
	require.Equal(t, at.NextColumn(), defaults.EndsAt(9, at))

	wide := SourceMapFuncs[int]{
		Ends: func(token int, before Position) Position {
			for i := 0; i < token; i = i + 1 {
				before = before.NextColumn()
			}
			return before
		},
	}
	require.Equal(t, Position{Line: 0, Column: 8}, wide.EndsAt(3, at))
}
