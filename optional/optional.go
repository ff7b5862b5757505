package optional

// Optional is a value that may be absent. The zero value is None.
type Optional[T any] struct {
	present bool
	value   T
}

func (self Optional[T]) IsPresent() bool {
	return self.present
}

func (self Optional[T]) Value() T {
	return self.value
}

func (self Optional[T]) Get() (T, bool) {
	return self.value, self.present
}

func (self Optional[T]) OrElse(alt T) T {
	if self.present {
		return self.value
	}
	return alt
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{
		present: true,
		value:   v,
	}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}
