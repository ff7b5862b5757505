package combinator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringRoundtrip(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input string
		end   Position
	}{
		{input: "a", end: Position{Line: 0, Column: 1}},
		{input: "foo", end: Position{Line: 0, Column: 3}},
		{input: "foo bar", end: Position{Line: 0, Column: 7}},
		{input: "a\nb", end: Position{Line: 1, Column: 1}},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.input, func(t *testing.T) {
			t.Parallel()

			res := ParseText(String(testCase.input), testCase.input)
			require.False(t, res.Failed)
			require.True(t, res.Consumed)
			require.Equal(t, testCase.input, res.Parsed.Value)
			require.Equal(t, Position{}, res.Parsed.Start)
			require.Equal(t, testCase.end, res.Parsed.End)
			require.Equal(t, len([]rune(testCase.input)), res.State.Offset)
		})
	}
}

func TestOrShortCircuitsOnConsumingResult(t *testing.T) {
	t.Parallel()

	calls := 0
	succeedAlways := Parser[rune, string](func(s State[rune]) Result[rune, string] {
		calls = calls + 1
		return Pure[rune, string]("unreachable")(s)
	})

	res := ParseText(String("ab").Or(succeedAlways), "ax")
	require.True(t, res.Failed)
	require.True(t, res.Consumed)
	require.Equal(t, 0, calls)
	require.Equal(t, []string{"ab"}, res.Message.Expected)
}

func TestOrMergesLabelsWhenNeitherConsumed(t *testing.T) {
	t.Parallel()

	res := ParseText(String("foo").Or(String("bar")), "car")
	require.True(t, res.Failed)
	require.False(t, res.Consumed)
	require.Equal(t, []string{"foo", "bar"}, res.Message.Expected)
	require.Equal(t, `"c"`, res.Message.Input)
	require.Equal(t, Position{}, res.Message.Pos)
	require.Equal(t, 0, res.Message.Offset)
}

func TestOrKeepsConsumingAlternativeUnmerged(t *testing.T) {
	t.Parallel()

	// lhs never consumed, rhs consumed two characters before failing: the
	// consuming branch wins as-is, without lhs labels mixed in.
	res := ParseText(String("foo").Or(String("bar")), "baz")
	require.True(t, res.Failed)
	require.True(t, res.Consumed)
	require.Equal(t, []string{"bar"}, res.Message.Expected)
	require.Equal(t, `"z"`, res.Message.Input)
	require.Equal(t, Position{Line: 0, Column: 2}, res.Message.Pos)
	require.Equal(t, 2, res.Message.Offset)
}

func TestBacktrackLaw(t *testing.T) {
	t.Parallel()

	p := String("foo")
	q := String("fob")

	committed := ParseText(p.Or(q), "fob")
	require.True(t, committed.Failed)
	require.True(t, committed.Consumed)

	retried := ParseText(p.Backtrack().Or(q), "fob")
	require.False(t, retried.Failed)
	require.Equal(t, "fob", retried.Parsed.Value)
}

func TestRep(t *testing.T) {
	t.Parallel()

	res := ParseText(Digit().Rep(), "567")
	require.False(t, res.Failed)
	require.True(t, res.Consumed)
	require.Equal(t, []rune("567"), res.Parsed.Value)
	require.Equal(t, Position{Line: 0, Column: 3}, res.Parsed.End)

	require.True(t, ParseText(Digit().Rep(), "abc").Failed)
}

func TestRep0(t *testing.T) {
	t.Parallel()

	some := ParseText(Digit().Rep0(), "567")
	require.Equal(t, ParseText(Digit().Rep(), "567"), some)

	none := ParseText(Digit().Rep0(), "abc")
	require.False(t, none.Failed)
	require.False(t, none.Consumed)
	require.Empty(t, none.Parsed.Value)
}

func TestRepSep(t *testing.T) {
	t.Parallel()

	res := ParseText(RepSep(Digit(), Char(',')), "1,2,3")
	require.False(t, res.Failed)
	require.Equal(t, []rune("123"), res.Parsed.Value)

	empty := ParseText(RepSep(Digit(), Char(',')), "")
	require.True(t, empty.Failed)
	require.False(t, empty.Consumed)

	trailing := ParseText(RepSep(Digit(), Char(',')), "1,")
	require.True(t, trailing.Failed)
	require.True(t, trailing.Consumed)
	require.Equal(t, []string{"digit"}, trailing.Message.Expected)
	require.True(t, trailing.Message.AtEnd())

	res0 := ParseText(RepSep0(Digit(), Char(',')), "")
	require.False(t, res0.Failed)
	require.False(t, res0.Consumed)
	require.Empty(t, res0.Parsed.Value)
}

func TestWithPositionSpansInnerComponent(t *testing.T) {
	t.Parallel()

	p := KeepLeft(KeepRight(String("foo"), String("bar").WithPosition()), String("baz"))
	res := ParseText(p, "foobarbaz")
	require.False(t, res.Failed)
	require.Equal(t, "bar", res.Parsed.Value.Value)
	require.Equal(t, Position{Line: 0, Column: 3}, res.Parsed.Value.Start)
	require.Equal(t, Position{Line: 0, Column: 6}, res.Parsed.Value.End)
	// the composite still spans from its first component
	require.Equal(t, Position{}, res.Parsed.Start)
	require.Equal(t, Position{Line: 0, Column: 9}, res.Parsed.End)
}

func TestSurroundedBy(t *testing.T) {
	t.Parallel()

	res := ParseText(SurroundedBy(String("foo"), Char('|')), "foo")
	require.True(t, res.Failed)
	require.False(t, res.Consumed)
	require.Equal(t, []string{"|"}, res.Message.Expected)
	require.Equal(t, Position{}, res.Message.Pos)

	ok := ParseText(SurroundedBy(String("foo"), Char('|')), "|foo|")
	require.False(t, ok.Failed)
	require.Equal(t, "foo", ok.Parsed.Value)
}

func TestOptional(t *testing.T) {
	t.Parallel()

	some := ParseText(Digit().Optional(), "5")
	require.False(t, some.Failed)
	require.True(t, some.Consumed)
	require.True(t, some.Parsed.Value.IsPresent())
	require.Equal(t, '5', some.Parsed.Value.Value())

	none := ParseText(Digit().Optional(), "x")
	require.False(t, none.Failed)
	require.False(t, none.Consumed)
	require.False(t, none.Parsed.Value.IsPresent())

	// a failure after committing to the consuming branch is not swallowed
	committed := ParseText(String("ab").Optional(), "ax")
	require.True(t, committed.Failed)
	require.True(t, committed.Consumed)

	// an underlying success that consumed nothing also yields None
	empty := ParseText(Pure[rune, rune]('x').Optional(), "")
	require.False(t, empty.Failed)
	require.False(t, empty.Parsed.Value.IsPresent())
}

func TestSequence(t *testing.T) {
	t.Parallel()

	res := ParseText(Sequence(Char('a'), Char('b')), "ab")
	require.False(t, res.Failed)
	require.Equal(t, []rune("ab"), res.Parsed.Value)

	mid := ParseText(Sequence(Char('a'), Char('b')), "ax")
	require.True(t, mid.Failed)
	require.True(t, mid.Consumed)
	require.Equal(t, []string{"b"}, mid.Message.Expected)
}

func TestFilterConvertsToNonConsumingFailure(t *testing.T) {
	t.Parallel()

	notFive := Digit().Filter(func(r rune) bool {
		return r != '5'
	})

	res := ParseText(notFive, "5")
	require.True(t, res.Failed)
	require.False(t, res.Consumed)
	require.Equal(t, `"5"`, res.Message.Input)
	require.Equal(t, Position{}, res.Message.Pos)

	// the conversion keeps the parser viable as an alternative even though
	// the underlying primitive read the token
	alt := ParseText(notFive.Or(Char('5')), "5")
	require.False(t, alt.Failed)
	require.Equal(t, '5', alt.Parsed.Value)
}

func TestCollect(t *testing.T) {
	t.Parallel()

	letterValue := Collect(Letter(), func(r rune) (int, bool) {
		if r < 'a' || r > 'z' {
			return 0, false
		}
		return int(r - 'a'), true
	})

	res := ParseText(letterValue, "c")
	require.False(t, res.Failed)
	require.Equal(t, 2, res.Parsed.Value)

	rejected := ParseText(letterValue, "C")
	require.True(t, rejected.Failed)
	require.False(t, rejected.Consumed)
	require.Equal(t, `"C"`, rejected.Message.Input)
}

func TestEnd(t *testing.T) {
	t.Parallel()

	require.False(t, ParseText(End[rune](), "").Failed)

	res := ParseText(End[rune](), "x")
	require.True(t, res.Failed)
	require.False(t, res.Consumed)
	require.Equal(t, []string{EndOfInput}, res.Message.Expected)
}

func TestOneOf(t *testing.T) {
	t.Parallel()

	p := OneOf(String("foo"), String("bar"), String("qux"))
	res := ParseText(p, "qux")
	require.False(t, res.Failed)
	require.Equal(t, "qux", res.Parsed.Value)

	miss := ParseText(p, "nope")
	require.True(t, miss.Failed)
	require.Equal(t, []string{"foo", "bar", "qux"}, miss.Message.Expected)
}

func TestFlatMapStartRebinding(t *testing.T) {
	t.Parallel()

	// a pure prefix must not mark the composition as consuming
	pureFirst := FlatMap(Pure[rune, string]("x"), func(string) Parser[rune, string] {
		return String("foo")
	})
	res := ParseText(pureFirst, "bar")
	require.True(t, res.Failed)
	require.False(t, res.Consumed)

	// a consuming prefix forces the combined result consuming even when the
	// continuation consumes nothing
	consumingFirst := FlatMap(String("foo"), func(string) Parser[rune, string] {
		return Pure[rune, string]("x")
	})
	ok := ParseText(consumingFirst, "foo")
	require.False(t, ok.Failed)
	require.True(t, ok.Consumed)
	require.Equal(t, Position{}, ok.Parsed.Start)
}
