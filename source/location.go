package source

import "fmt"

// Location is an absolute position in a source text.
type Location struct {
	Line   uint // starting at 1
	Column uint // starting at 1, tabs expanded to tab stops
	Offset uint // byte offset, starting at 0
}

var Start = Location{
	Line:   1,
	Column: 1,
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

func (l Location) Before(other Location) bool {
	return l.Offset < other.Offset
}

// Range is a half-open span [Start, End) of source text.
type Range struct {
	Start Location
	End   Location
}

func At(loc Location) Range {
	return Range{
		Start: loc,
		End:   loc,
	}
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}

func (r Range) Len() uint {
	return r.End.Offset - r.Start.Offset
}

func (r Range) IsEmpty() bool {
	return r.Start.Offset == r.End.Offset
}

func (r Range) Contains(loc Location) bool {
	return r.Start.Offset <= loc.Offset && loc.Offset < r.End.Offset
}
