package logs

import "github.com/reusee/dscope"

type Module struct {
	dscope.Module
}

// Span identifies one unit of work, such as the scan of one file
type Span string

type spanKey struct{}

var SpanKey spanKey
