package storage

import "fmt"

var seedStudents = []Student{
	{Name: "Alice", Email: "alice@example.com"},
	{Name: "Bob", Email: "bob@example.com"},
	{Name: "Charlie", Email: "charlie@example.com"},
}

var seedCourses = []Course{
	{Title: "Math", Teacher: "Mr. Smith"},
	{Title: "Physics", Teacher: "Mrs. Johnson"},
	{Title: "History", Teacher: "Mr. Brown"},
}

// Seed resets the store and loads 3 students and 3 courses with ids 1..3.
// Concurrent readers see either the old data or the complete seed.
func (s *Store) Seed() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()
	for _, st := range seedStudents {
		if _, err := s.createStudent(st.Name, st.Email); err != nil {
			return fmt.Errorf("seed student %q: %w", st.Email, err)
		}
	}
	for _, c := range seedCourses {
		s.createCourse(c.Title, c.Teacher)
	}
	return nil
}
