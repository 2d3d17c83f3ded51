package source

type Source struct {
	Name    string
	Content string
	// line texts without terminators
	Lines []string
	// byte offset of each line's first character
	LineStarts []uint
}

func New(name string, content string) *Source {
	src := &Source{
		Name:    name,
		Content: content,
	}
	src.splitLines()
	return src
}

// splitLines breaks lines where Cursor counts a newline: \n, \f, \r\n and a lone \r.
func (s *Source) splitLines() {
	start := 0
	for i := 0; i < len(s.Content); i++ {
		switch s.Content[i] {
		case '\n', '\f':
		case '\r':
			if i+1 < len(s.Content) && s.Content[i+1] == '\n' {
				s.addLine(start, i)
				i++
				start = i + 1
				continue
			}
		default:
			continue
		}
		s.addLine(start, i)
		start = i + 1
	}
	s.addLine(start, len(s.Content))
}

func (s *Source) addLine(from, to int) {
	s.Lines = append(s.Lines, s.Content[from:to])
	s.LineStarts = append(s.LineStarts, uint(from))
}

// Line returns the text of a 1-based line, without the line terminator.
func (s *Source) Line(n uint) (string, bool) {
	if n == 0 || int(n) > len(s.Lines) {
		return "", false
	}
	return s.Lines[n-1], true
}

// LineOffset is the byte offset of loc within its line.
func (s *Source) LineOffset(loc Location) int {
	if loc.Line == 0 || int(loc.Line) > len(s.LineStarts) {
		return 0
	}
	return max(int(loc.Offset)-int(s.LineStarts[loc.Line-1]), 0)
}
