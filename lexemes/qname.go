package lexemes

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// QName is a possibly qualified name, like Data.Map.lookup or Prelude.+
type QName struct {
	Qualifier []string
	Base      string
	// resolved module of Qualifier, zero if unresolved
	Module ModuleId
}

func Unqualified(base string) QName {
	return QName{
		Base: base,
	}
}

func (q QName) IsQualified() bool {
	return len(q.Qualifier) > 0
}

// IsConstructor reports whether the base is a constructor-class name:
// an uppercase-initial identifier or a colon-initial operator.
func (q QName) IsConstructor() bool {
	r, _ := utf8.DecodeRuneInString(q.Base)
	return r == ':' || unicode.IsUpper(r) || unicode.IsTitle(r)
}

func (q QName) Equal(other QName) bool {
	return q.Base == other.Base &&
		slices.Equal(q.Qualifier, other.Qualifier)
}

func (q QName) Compare(other QName) int {
	if c := slices.Compare(q.Qualifier, other.Qualifier); c != 0 {
		return c
	}
	return strings.Compare(q.Base, other.Base)
}

func (q QName) String() string {
	if len(q.Qualifier) == 0 {
		return q.Base
	}
	return strings.Join(q.Qualifier, ".") + "." + q.Base
}
