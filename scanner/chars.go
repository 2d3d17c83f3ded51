package scanner

import (
	"strings"
	"unicode"

	"github.com/reusee/hslex/lexemes"
)

const asciiSymbols = `!#$%&*+./<=>?@\^|-~:`

// isSmall: lowercase letters, underscore, and caseless letters
func isSmall(r rune) bool {
	if r == '_' {
		return true
	}
	return unicode.IsLetter(r) && !isLarge(r)
}

func isLarge(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsTitle(r)
}

func isIdentRest(r rune) bool {
	return r == '\'' ||
		unicode.IsLetter(r) ||
		unicode.IsDigit(r) ||
		unicode.Is(unicode.Mn, r)
}

func isSymbol(r rune) bool {
	if r < 0x80 {
		return strings.ContainsRune(asciiSymbols, r)
	}
	return (unicode.IsSymbol(r) || unicode.IsPunct(r)) &&
		!lexemes.IsSpecial(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isOctit(r rune) bool {
	return r >= '0' && r <= '7'
}

func isHexit(r rune) bool {
	return isDigit(r) ||
		r >= 'a' && r <= 'f' ||
		r >= 'A' && r <= 'F'
}

func isBinit(r rune) bool {
	return r == '0' || r == '1'
}

func isWhite(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return unicode.IsSpace(r)
}

func isNewline(r rune) bool {
	return r == '\n' || r == '\r' || r == '\f'
}

func digitValue(r rune) int64 {
	switch {
	case isDigit(r):
		return int64(r - '0')
	case r >= 'a' && r <= 'f':
		return int64(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int64(r-'A') + 10
	}
	return -1
}
