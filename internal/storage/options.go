package storage

// DefaultCourseCapacity is the maximum number of students per course.
const DefaultCourseCapacity = 3

// Option configures a Store.
type Option func(*Store)

// WithCourseCapacity overrides the per-course enrollment limit.
// Non-positive values are ignored.
func WithCourseCapacity(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.capacity = n
		}
	}
}

// WithSeed loads the fixed initial dataset when the store is created.
func WithSeed() Option {
	return func(s *Store) {
		s.seedOnInit = true
	}
}
