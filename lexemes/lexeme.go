package lexemes

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/reusee/hslex/source"
)

// Lexeme is a scanned unit without location.
// Which value field is set depends on Kind.
type Lexeme struct {
	Kind Kind
	// original source text, empty for virtual lexemes and EOF
	Text string

	Name    QName // Identifier, Operator
	RId     RId
	ROp     ROp
	Special Special
	Integer *big.Int
	Float   *Float
	Char    rune
	Runes   []rune // StringLiteral
}

func Identifier(name QName) Lexeme {
	return Lexeme{
		Kind: KindIdentifier,
		Name: name,
	}
}

func Operator(name QName) Lexeme {
	return Lexeme{
		Kind: KindOperator,
		Name: name,
	}
}

func ReservedId(id RId) Lexeme {
	return Lexeme{
		Kind: KindReservedId,
		RId:  id,
	}
}

func ReservedOp(op ROp) Lexeme {
	return Lexeme{
		Kind: KindReservedOp,
		ROp:  op,
	}
}

func SpecialLexeme(s Special) Lexeme {
	return Lexeme{
		Kind:    KindSpecial,
		Special: s,
	}
}

func Integer(i *big.Int) Lexeme {
	return Lexeme{
		Kind:    KindInteger,
		Integer: i,
	}
}

func FloatLexeme(f *Float) Lexeme {
	return Lexeme{
		Kind:  KindFloat,
		Float: f,
	}
}

func Char(r rune) Lexeme {
	return Lexeme{
		Kind: KindChar,
		Char: r,
	}
}

func String(s []rune) Lexeme {
	return Lexeme{
		Kind:  KindString,
		Runes: s,
	}
}

func Virtual(kind Kind) Lexeme {
	return Lexeme{
		Kind: kind,
	}
}

func (l Lexeme) Is(kind Kind) bool {
	return l.Kind == kind
}

func (l Lexeme) IsRId(id RId) bool {
	return l.Kind == KindReservedId && l.RId == id
}

func (l Lexeme) IsROp(op ROp) bool {
	return l.Kind == KindReservedOp && l.ROp == op
}

func (l Lexeme) IsSpecial(s Special) bool {
	return l.Kind == KindSpecial && l.Special == s
}

// Value renders the classified value of the lexeme.
func (l Lexeme) Value() string {
	switch l.Kind {
	case KindIdentifier, KindOperator:
		return l.Name.String()
	case KindReservedId:
		return l.RId.String()
	case KindReservedOp:
		return l.ROp.String()
	case KindSpecial:
		return l.Special.String()
	case KindInteger:
		return l.Integer.String()
	case KindFloat:
		return l.Float.String()
	case KindChar:
		return strconv.QuoteRune(l.Char)
	case KindString:
		return strconv.Quote(string(l.Runes))
	}
	return ""
}

func (l Lexeme) String() string {
	v := l.Value()
	if v == "" {
		return l.Kind.String()
	}
	return fmt.Sprintf("%s(%s)", l.Kind, v)
}

// EnrichedLexeme is a lexeme with its source range.
type EnrichedLexeme struct {
	Lexeme
	Range source.Range
}

func (e EnrichedLexeme) String() string {
	return fmt.Sprintf("%s %s", e.Range, e.Lexeme)
}
