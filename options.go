package boundeddeque

type dequeOptions[T any] struct {
	initial []T
	release func(T)
}

// DequeOption configures a Deque at construction time.
type DequeOption[T any] func(*dequeOptions[T])

// WithInitial seeds the deque with values, pushed to the back in the given
// order. Seeding more values than the capacity admits panics during
// construction.
func WithInitial[T any](values ...T) DequeOption[T] {
	return func(opts *dequeOptions[T]) {
		opts.initial = append(opts.initial[:0], values...)
	}
}

// WithRelease installs a hook that Clear and Close invoke for every value
// still stored in the deque, in increasing physical-address order across the
// backing array. Values handed out by pops are owned by the caller and are
// never passed to the hook.
func WithRelease[T any](fn func(T)) DequeOption[T] {
	return func(opts *dequeOptions[T]) {
		opts.release = fn
	}
}
