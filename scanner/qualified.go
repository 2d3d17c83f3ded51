package scanner

import (
	"strings"

	"github.com/reusee/hslex/lexemes"
	"github.com/reusee/hslex/results"
	"github.com/reusee/hslex/source"
)

// qualified scans conid { . conid } [ . terminal ].
// The longest chain of constructor names that still leaves a valid terminal is taken,
// so A.B.let is A.B followed by . and let, and F. is F followed by .
func (t *Tokenizer) qualified(c *source.Cursor) results.Result[lexemes.Lexeme] {
	first, ok := identRun(c, isLarge)
	if !ok {
		return results.NoMatch[lexemes.Lexeme]()
	}
	names := []string{first}

	for {
		mark := c.Location()
		if r, ok := c.Peek(); !ok || r != '.' {
			break
		}
		next, ok := c.PeekAt(1)
		if !ok {
			break
		}
		c.Advance()

		switch {

		case isLarge(next):
			name, _ := identRun(c, isLarge)
			names = append(names, name)
			continue

		case isSmall(next):
			name, _ := identRun(c, isSmall)
			if _, reserved := lexemes.LookupRId(name); !reserved {
				return results.Matched(lexemes.Identifier(t.qname(names, name)))
			}

		case isSymbol(next):
			sym, _ := symbolRun(c)
			if validQualifiedSymbol(sym) {
				return results.Matched(lexemes.Operator(t.qname(names, sym)))
			}

		}

		c.Reset(mark)
		break
	}

	last := len(names) - 1
	return results.Matched(lexemes.Identifier(t.qname(names[:last], names[last])))
}

func validQualifiedSymbol(sym string) bool {
	if _, reserved := lexemes.LookupROp(sym); reserved {
		return false
	}
	// dashes start a comment
	if len(sym) >= 2 && strings.Trim(sym, "-") == "" {
		return false
	}
	return true
}

func (t *Tokenizer) qname(qualifier []string, base string) lexemes.QName {
	name := lexemes.QName{
		Base: base,
	}
	if len(qualifier) == 0 {
		return name
	}
	name.Qualifier = append([]string(nil), qualifier...)
	if t.options.Modules != nil {
		if id, ok := t.options.Modules.LookupModule(name.Qualifier); ok {
			name.Module = id
		}
	}
	return name
}
