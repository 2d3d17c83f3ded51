package lexemes

import "fmt"

type Kind uint8

const (
	KindEOF Kind = iota
	KindIdentifier
	KindOperator
	KindReservedId
	KindReservedOp
	KindInteger
	KindFloat
	KindChar
	KindString
	KindSpecial
	KindVirtualOpen
	KindVirtualClose
	KindVirtualSep
)

var kindNames = [...]string{
	KindEOF:          "EOF",
	KindIdentifier:   "Identifier",
	KindOperator:     "Operator",
	KindReservedId:   "ReservedId",
	KindReservedOp:   "ReservedOp",
	KindInteger:      "IntegerLiteral",
	KindFloat:        "FloatLiteral",
	KindChar:         "CharLiteral",
	KindString:       "StringLiteral",
	KindSpecial:      "Special",
	KindVirtualOpen:  "VirtualOpen",
	KindVirtualClose: "VirtualClose",
	KindVirtualSep:   "VirtualSep",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

func (k Kind) IsVirtual() bool {
	return k == KindVirtualOpen || k == KindVirtualClose || k == KindVirtualSep
}

func (k Kind) IsLiteral() bool {
	switch k {
	case KindInteger, KindFloat, KindChar, KindString:
		return true
	}
	return false
}
