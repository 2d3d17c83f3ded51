package results

import "fmt"

type Kind uint8

const (
	// consumed nothing, an alternative may be tried
	KindNoMatch Kind = iota
	// consumed input and succeeded
	KindMatched
	// consumed input and committed, must be propagated
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindNoMatch:
		return "NoMatch"
	case KindMatched:
		return "Matched"
	case KindMalformed:
		return "Malformed"
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Result is the outcome of a scanning rule.
type Result[T any] struct {
	kind  Kind
	value T
	err   error
}

func Matched[T any](value T) Result[T] {
	return Result[T]{
		kind:  KindMatched,
		value: value,
	}
}

func NoMatch[T any]() Result[T] {
	return Result[T]{
		kind: KindNoMatch,
	}
}

func Malformed[T any](err error) Result[T] {
	if err == nil {
		panic("malformed result without error")
	}
	return Result[T]{
		kind: KindMalformed,
		err:  err,
	}
}

func (r Result[T]) Kind() Kind {
	return r.kind
}

func (r Result[T]) IsMatched() bool {
	return r.kind == KindMatched
}

func (r Result[T]) IsNoMatch() bool {
	return r.kind == KindNoMatch
}

func (r Result[T]) IsMalformed() bool {
	return r.kind == KindMalformed
}

// Value is the matched value, or the zero value for other kinds.
func (r Result[T]) Value() T {
	return r.value
}

// Err is the malformed error, or nil for other kinds.
func (r Result[T]) Err() error {
	return r.err
}

// Propagate converts a NoMatch or Malformed result to another value type.
// Matched results carry a value that cannot be converted, so they panic.
func Propagate[U, T any](r Result[T]) Result[U] {
	switch r.kind {
	case KindNoMatch:
		return NoMatch[U]()
	case KindMalformed:
		return Malformed[U](r.err)
	}
	panic(fmt.Errorf("cannot propagate %v result", r.kind))
}

func (r Result[T]) String() string {
	switch r.kind {
	case KindMatched:
		return fmt.Sprintf("Matched(%v)", r.value)
	case KindMalformed:
		return fmt.Sprintf("Malformed(%v)", r.err)
	}
	return r.kind.String()
}
