package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode"

	"github.com/spf13/pflag"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"gopkg.parsekit.org/combine.go/combinator"
	"gopkg.parsekit.org/combine.go/exc"
	"gopkg.parsekit.org/combine.go/source"
)

// Example driver for the combinator library: an integer arithmetic
// evaluator. It only builds a grammar from the public combinator surface
// and renders results; none of the engine lives here.

var log = commonlog.GetLogger("combine")

type opts struct {
	Eval      []string
	Verbosity int
}

func main() {
	op := &opts{}
	flags := pflag.NewFlagSet("combine", pflag.PanicOnError)
	flags.StringArrayVarP(&op.Eval, "eval", "e", nil, "Expressions to evaluate before any file arguments.")
	flags.IntVarP(&op.Verbosity, "verbosity", "v", 0, "Log verbosity.")
	_ = flags.Parse(os.Args[1:])
	targets := flags.Args()

	commonlog.Configure(op.Verbosity, nil)

	reporter := exc.NewReporter(nil)
	p := calculator()

	for i, text := range op.Eval {
		uri := fmt.Sprintf("eval[%d]", i)
		evaluate(reporter, uri, combinator.ParseText(p, text))
	}
	for _, target := range targets {
		f, err := os.Open(target)
		if err != nil {
			_ = reporter.Report(exc.WrapUnknown(exc.Location{URI: target}, err))
			continue
		}
		var body io.Reader = f
		evaluate(reporter, target, combinator.Parse(p, body, readerTokens, combinator.RuneSourceMap{}))
		_ = f.Close()
	}

	reported := reporter.Reported()
	for _, e := range reported {
		fmt.Fprintln(os.Stderr, e.Error())
	}
	if len(reported) > 0 {
		os.Exit(1)
	}
}

var readerTokens = source.FromReader()

func evaluate(reporter exc.Reporter, uri string, result combinator.Result[rune, int64]) {
	value, err := result.Either()
	if err != nil {
		_ = reporter.Report(exc.At(err.(exc.Exception), uri))
		return
	}
	log.Debugf("%s: span %s..%s", uri, value.Start, value.End)
	fmt.Println(value.Value)
}

// calculator = ws Expression eof
func calculator() combinator.Parser[rune, int64] {
	ws := combinator.TakeWhile(unicode.IsSpace)
	return combinator.KeepLeft(combinator.KeepRight(ws, expr()), combinator.End[rune]())
}

type binOp = func(int64, int64) int64

// Expression = Term { ("+" | "-") Term }
func expression(s combinator.State[rune]) combinator.Result[rune, int64] {
	return chain(term(), operators(map[rune]binOp{
		'+': func(a, b int64) int64 { return a + b },
		'-': func(a, b int64) int64 { return a - b },
	}))(s)
}

func expr() combinator.Parser[rune, int64] {
	return expression
}

// Term = Factor { ("*" | "/") Factor }
func term() combinator.Parser[rune, int64] {
	return chain(factor, operators(map[rune]binOp{
		'*': func(a, b int64) int64 { return a * b },
		'/': func(a, b int64) int64 {
			if b == 0 {
				return 0
			}
			return a / b
		},
	}))
}

// Factor = number | "(" Expression ")"
func factor(s combinator.State[rune]) combinator.Result[rune, int64] {
	parens := combinator.Between(expr(), lexeme(combinator.Char('(')), lexeme(combinator.Char(')')))
	return number().Or(parens)(s)
}

func number() combinator.Parser[rune, int64] {
	digits := combinator.TakeWhile1(unicode.IsDigit)
	return lexeme(combinator.Collect(digits, func(ds []rune) (int64, bool) {
		n, err := strconv.ParseInt(string(ds), 10, 64)
		return n, err == nil
	})).Label("number")
}

func operators(table map[rune]binOp) combinator.Parser[rune, binOp] {
	op := combinator.Satisfy(func(r rune) bool {
		_, ok := table[r]
		return ok
	}).Label("operator")
	return combinator.Map(lexeme(op), func(r rune) binOp {
		return table[r]
	})
}

// chain folds a left-associative operator chain as it is parsed.
func chain(operand combinator.Parser[rune, int64], op combinator.Parser[rune, binOp]) combinator.Parser[rune, int64] {
	rest := combinator.AndThen(op, operand).Rep0()
	return combinator.Map(combinator.AndThen(operand, rest), func(p combinator.Pair[int64, []combinator.Pair[binOp, int64]]) int64 {
		acc := p.First
		for _, step := range p.Second {
			acc = step.First(acc, step.Second)
		}
		return acc
	})
}

func lexeme[A any](p combinator.Parser[rune, A]) combinator.Parser[rune, A] {
	return combinator.KeepLeft(p, combinator.TakeWhile(unicode.IsSpace))
}
