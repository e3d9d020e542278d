package chain

// RefState describes what is known about an associated record.
type RefState uint8

const (
	// RefUnresolved means the association was never fetched.
	RefUnresolved RefState = iota
	// RefAbsent means the association was fetched and does not exist.
	RefAbsent
	// RefResolved means the association was fetched and holds a value.
	RefResolved
)

func (s RefState) String() string {
	switch s {
	case RefAbsent:
		return "absent"
	case RefResolved:
		return "resolved"
	default:
		return "unresolved"
	}
}

// Ref is a reference to an associated record that may or may not have been loaded.
// The zero value is unresolved.
type Ref[T any] struct {
	state RefState
	value T
}

func Resolved[T any](value T) Ref[T] {
	return Ref[T]{state: RefResolved, value: value}
}

func Unresolved[T any]() Ref[T] {
	return Ref[T]{state: RefUnresolved}
}

func Absent[T any]() Ref[T] {
	return Ref[T]{state: RefAbsent}
}

func (r Ref[T]) State() RefState {
	return r.state
}

// Get returns the referenced value and true only when the reference is resolved.
func (r Ref[T]) Get() (T, bool) {
	return r.value, r.state == RefResolved
}
