package lexemes

import (
	"fmt"

	"github.com/samber/lo"
)

// RId is a reserved identifier.
type RId uint8

const (
	RIdCase RId = iota + 1
	RIdClass
	RIdData
	RIdDefault
	RIdDeriving
	RIdDo
	RIdElse
	RIdForeign
	RIdIf
	RIdImport
	RIdIn
	RIdInfix
	RIdInfixl
	RIdInfixr
	RIdInstance
	RIdLet
	RIdModule
	RIdNewtype
	RIdOf
	RIdThen
	RIdType
	RIdWhere
	RIdWildcard
)

var rIdTexts = map[RId]string{
	RIdCase:     "case",
	RIdClass:    "class",
	RIdData:     "data",
	RIdDefault:  "default",
	RIdDeriving: "deriving",
	RIdDo:       "do",
	RIdElse:     "else",
	RIdForeign:  "foreign",
	RIdIf:       "if",
	RIdImport:   "import",
	RIdIn:       "in",
	RIdInfix:    "infix",
	RIdInfixl:   "infixl",
	RIdInfixr:   "infixr",
	RIdInstance: "instance",
	RIdLet:      "let",
	RIdModule:   "module",
	RIdNewtype:  "newtype",
	RIdOf:       "of",
	RIdThen:     "then",
	RIdType:     "type",
	RIdWhere:    "where",
	RIdWildcard: "_",
}

var rIds = lo.Invert(rIdTexts)

// LookupRId classifies an identifier text as a reserved identifier.
func LookupRId(text string) (RId, bool) {
	id, ok := rIds[text]
	return id, ok
}

func (r RId) String() string {
	if s, ok := rIdTexts[r]; ok {
		return s
	}
	return fmt.Sprintf("RId(%d)", r)
}

// ROp is a reserved operator.
type ROp uint8

const (
	ROpDotDot ROp = iota + 1
	ROpColon
	ROpColonColon
	ROpEqual
	ROpBackslash
	ROpPipe
	ROpLeftArrow
	ROpRightArrow
	ROpAt
	ROpTilde
	ROpDoubleArrow
)

var rOpTexts = map[ROp]string{
	ROpDotDot:      "..",
	ROpColon:       ":",
	ROpColonColon:  "::",
	ROpEqual:       "=",
	ROpBackslash:   `\`,
	ROpPipe:        "|",
	ROpLeftArrow:   "<-",
	ROpRightArrow:  "->",
	ROpAt:          "@",
	ROpTilde:       "~",
	ROpDoubleArrow: "=>",
}

var rOps = lo.Invert(rOpTexts)

// LookupROp classifies a symbol run as a reserved operator.
func LookupROp(text string) (ROp, bool) {
	op, ok := rOps[text]
	return op, ok
}

func (r ROp) String() string {
	if s, ok := rOpTexts[r]; ok {
		return s
	}
	return fmt.Sprintf("ROp(%d)", r)
}

// Special is one of the special characters ( ) , ; [ ] ` { }
type Special byte

const (
	SpecialOpenParen    Special = '('
	SpecialCloseParen   Special = ')'
	SpecialComma        Special = ','
	SpecialSemicolon    Special = ';'
	SpecialOpenBracket  Special = '['
	SpecialCloseBracket Special = ']'
	SpecialBacktick     Special = '`'
	SpecialOpenBrace    Special = '{'
	SpecialCloseBrace   Special = '}'
)

func IsSpecial(r rune) bool {
	if r >= 0x80 {
		return false
	}
	switch Special(r) {
	case SpecialOpenParen, SpecialCloseParen, SpecialComma, SpecialSemicolon,
		SpecialOpenBracket, SpecialCloseBracket, SpecialBacktick,
		SpecialOpenBrace, SpecialCloseBrace:
		return true
	}
	return false
}

func (s Special) String() string {
	return string(rune(s))
}

