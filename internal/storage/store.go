// Package storage holds the in-memory student and course collections and the
// enrollment relation between them.
package storage

import (
	"strings"
	"sync"
)

// Store is safe for concurrent use. Every method runs under the store lock,
// so each operation is atomic, but there are no multi-operation transactions.
type Store struct {
	mu sync.RWMutex

	students    []*Student
	courses     []*Course
	enrollments []Enrollment

	nextStudentID int
	nextCourseID  int

	capacity   int
	seedOnInit bool
}

func New(opts ...Option) *Store {
	s := &Store{
		capacity: DefaultCourseCapacity,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	if s.seedOnInit {
		if err := s.Seed(); err != nil {
			panic(err)
		}
	}
	return s
}

// Capacity returns the per-course enrollment limit.
func (s *Store) Capacity() int {
	return s.capacity
}

// Reset drops all data and restarts id sequences at 1.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()
}

func (s *Store) reset() {
	s.students = nil
	s.courses = nil
	s.enrollments = nil
	s.nextStudentID = 1
	s.nextCourseID = 1
}

func (s *Store) ListStudents(filter StudentFilter) []Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Student, 0, len(s.students))
	for _, st := range s.students {
		if !strings.Contains(st.Name, filter.Name) || !strings.Contains(st.Email, filter.Email) {
			continue
		}
		out = append(out, *st)
	}
	return out
}

func (s *Store) ListCourses(filter CourseFilter) []Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Course, 0, len(s.courses))
	for _, c := range s.courses {
		if !strings.Contains(c.Title, filter.Title) || !strings.Contains(c.Teacher, filter.Teacher) {
			continue
		}
		out = append(out, *c)
	}
	return out
}

func (s *Store) Student(id int) (Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := s.findStudent(id)
	if st == nil {
		return Student{}, ErrStudentNotFound
	}
	return *st, nil
}

func (s *Store) Course(id int) (Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := s.findCourse(id)
	if c == nil {
		return Course{}, ErrCourseNotFound
	}
	return *c, nil
}

func (s *Store) CreateStudent(name, email string) (Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.createStudent(name, email)
}

func (s *Store) createStudent(name, email string) (Student, error) {
	if s.emailTaken(email, 0) {
		return Student{}, ErrDuplicateEmail
	}
	st := &Student{ID: s.nextStudentID, Name: name, Email: email}
	s.nextStudentID++
	s.students = append(s.students, st)
	return *st, nil
}

// CreateCourse does not check title uniqueness; only UpdateCourse does.
func (s *Store) CreateCourse(title, teacher string) Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.createCourse(title, teacher)
}

func (s *Store) createCourse(title, teacher string) Course {
	c := &Course{ID: s.nextCourseID, Title: title, Teacher: teacher}
	s.nextCourseID++
	s.courses = append(s.courses, c)
	return *c
}

func (s *Store) UpdateStudent(id int, upd StudentUpdate) (Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.findStudent(id)
	if st == nil {
		return Student{}, ErrStudentNotFound
	}
	if upd.Email != "" && s.emailTaken(upd.Email, id) {
		return Student{}, ErrDuplicateEmail
	}
	if upd.Name != "" {
		st.Name = upd.Name
	}
	if upd.Email != "" {
		st.Email = upd.Email
	}
	return *st, nil
}

func (s *Store) UpdateCourse(id int, upd CourseUpdate) (Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.findCourse(id)
	if c == nil {
		return Course{}, ErrCourseNotFound
	}
	if upd.Title != "" {
		for _, other := range s.courses {
			if other.ID != id && other.Title == upd.Title {
				return Course{}, ErrDuplicateTitle
			}
		}
		c.Title = upd.Title
	}
	if upd.Teacher != "" {
		c.Teacher = upd.Teacher
	}
	return *c, nil
}

func (s *Store) RemoveStudent(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.studentIndex(id)
	if idx < 0 {
		return ErrStudentNotFound
	}
	for _, e := range s.enrollments {
		if e.StudentID == id {
			return ErrStudentEnrolled
		}
	}
	s.students = append(s.students[:idx], s.students[idx+1:]...)
	return nil
}

// RemoveCourse deletes a course whether or not students are enrolled in it.
// Its enrollment rows go with it; the ids of the unenrolled students are
// returned in enrollment order.
func (s *Store) RemoveCourse(id int) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.courseIndex(id)
	if idx < 0 {
		return nil, ErrCourseNotFound
	}
	s.courses = append(s.courses[:idx], s.courses[idx+1:]...)

	unenrolled := make([]int, 0)
	kept := s.enrollments[:0]
	for _, e := range s.enrollments {
		if e.CourseID == id {
			unenrolled = append(unenrolled, e.StudentID)
			continue
		}
		kept = append(kept, e)
	}
	s.enrollments = kept
	return unenrolled, nil
}

// Enroll adds studentID to courseID. Enrolling an already enrolled pair is a no-op.
func (s *Store) Enroll(studentID, courseID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findStudent(studentID) == nil {
		return ErrStudentNotFound
	}
	if s.findCourse(courseID) == nil {
		return ErrCourseNotFound
	}

	enrolled := 0
	for _, e := range s.enrollments {
		if e.CourseID != courseID {
			continue
		}
		if e.StudentID == studentID {
			return nil
		}
		enrolled++
	}
	if enrolled >= s.capacity {
		return ErrCourseFull
	}
	s.enrollments = append(s.enrollments, Enrollment{StudentID: studentID, CourseID: courseID})
	return nil
}

// Unenroll removes the relation and reports whether it existed.
func (s *Store) Unenroll(studentID, courseID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.enrollments {
		if e.StudentID == studentID && e.CourseID == courseID {
			s.enrollments = append(s.enrollments[:i], s.enrollments[i+1:]...)
			return true
		}
	}
	return false
}

// StudentCourses returns the courses a student is enrolled in, in enrollment order.
func (s *Store) StudentCourses(studentID int) []Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Course, 0)
	for _, e := range s.enrollments {
		if e.StudentID != studentID {
			continue
		}
		if c := s.findCourse(e.CourseID); c != nil {
			out = append(out, *c)
		}
	}
	return out
}

// CourseStudents returns the students enrolled in a course, in enrollment order.
func (s *Store) CourseStudents(courseID int) []Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Student, 0)
	for _, e := range s.enrollments {
		if e.CourseID != courseID {
			continue
		}
		if st := s.findStudent(e.StudentID); st != nil {
			out = append(out, *st)
		}
	}
	return out
}

func (s *Store) findStudent(id int) *Student {
	if i := s.studentIndex(id); i >= 0 {
		return s.students[i]
	}
	return nil
}

func (s *Store) findCourse(id int) *Course {
	if i := s.courseIndex(id); i >= 0 {
		return s.courses[i]
	}
	return nil
}

func (s *Store) studentIndex(id int) int {
	for i, st := range s.students {
		if st.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) courseIndex(id int) int {
	for i, c := range s.courses {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// emailTaken reports whether a student other than exceptID uses email.
func (s *Store) emailTaken(email string, exceptID int) bool {
	for _, st := range s.students {
		if st.ID != exceptID && st.Email == email {
			return true
		}
	}
	return false
}
