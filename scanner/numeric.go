package scanner

import (
	"math/big"

	"github.com/reusee/hslex/lexemes"
	"github.com/reusee/hslex/lexerrs"
	"github.com/reusee/hslex/results"
	"github.com/reusee/hslex/source"
)

// digits scans one or more digits of the given class
func digits(pred func(rune) bool) results.Rule[string] {
	return func(c *source.Cursor) results.Result[string] {
		start := c.Location()
		for {
			r, ok := c.Peek()
			if !ok || !pred(r) {
				break
			}
			c.Advance()
		}
		end := c.Location()
		if end == start {
			return results.NoMatch[string]()
		}
		return results.Matched(c.Slice(start, end))
	}
}

// prefixed scans 0x1F style integers
func prefixed(marks string, base int, pred func(rune) bool) results.Rule[lexemes.Lexeme] {
	return results.AndThen(
		results.Literal("0"),
		func(string) results.Rule[lexemes.Lexeme] {
			return results.AndThen(
				results.Char(func(r rune) bool {
					for _, m := range marks {
						if r == m {
							return true
						}
					}
					return false
				}),
				func(rune) results.Rule[lexemes.Lexeme] {
					return results.Map(digits(pred), func(s string) lexemes.Lexeme {
						return lexemes.Integer(parseInteger(s, base))
					})
				},
			)
		},
	)
}

type exponentPart struct {
	negative bool
	digits   string
}

var (
	hexadecimal = prefixed("xX", 16, isHexit)
	octal       = prefixed("oO", 8, isOctit)
	binary      = prefixed("bB", 2, isBinit)

	fraction = results.Optional(
		results.AndThen(
			results.Literal("."),
			func(string) results.Rule[string] {
				return digits(isDigit)
			},
		),
		"",
	)

	exponent = results.AndThen(
		results.Char(func(r rune) bool {
			return r == 'e' || r == 'E'
		}),
		func(rune) results.Rule[*exponentPart] {
			return results.AndThen(
				results.Optional(
					results.Char(func(r rune) bool {
						return r == '+' || r == '-'
					}),
					'+',
				),
				func(sign rune) results.Rule[*exponentPart] {
					return results.Map(digits(isDigit), func(s string) *exponentPart {
						return &exponentPart{
							negative: sign == '-',
							digits:   s,
						}
					})
				},
			)
		},
	)
)

func (t *Tokenizer) numeral(c *source.Cursor) results.Result[lexemes.Lexeme] {
	return results.Alt[lexemes.Lexeme](
		hexadecimal,
		octal,
		binary,
		t.decimalOrFloat,
	)(c)
}

func (t *Tokenizer) decimalOrFloat(c *source.Cursor) results.Result[lexemes.Lexeme] {
	start := c.Location()
	res := digits(isDigit)(c)
	if !res.IsMatched() {
		return results.Propagate[lexemes.Lexeme](res)
	}
	integral := res.Value()

	frac := fraction(c).Value()
	exp := results.Optional[*exponentPart](exponent, nil)(c).Value()
	if frac == "" && exp == nil {
		return results.Matched(lexemes.Integer(parseInteger(integral, 10)))
	}

	adjusted := big.NewInt(0)
	if exp != nil {
		adjusted.SetString(exp.digits, 10)
		if exp.negative {
			adjusted.Neg(adjusted)
		}
	}
	adjusted.Sub(adjusted, big.NewInt(int64(len(frac))))
	limit := big.NewInt(int64(t.options.MaxExponent))
	if new(big.Int).Abs(adjusted).Cmp(limit) > 0 {
		return results.Malformed[lexemes.Lexeme](
			lexerrs.New(lexerrs.ErrMalformedNumeric, source.Range{
				Start: start,
				End:   c.Location(),
			}).WithDetail("exponent %s out of range", adjusted),
		)
	}

	return results.Matched(lexemes.FloatLexeme(&lexemes.Float{
		Mantissa: parseInteger(integral+frac, 10),
		Exponent: adjusted.Int64(),
	}))
}

func parseInteger(s string, base int) *big.Int {
	i, ok := new(big.Int).SetString(s, base)
	if !ok {
		// digits are validated while scanning
		panic("bad integer literal: " + s)
	}
	return i
}
