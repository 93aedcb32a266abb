package course

import "academic-service/internal/storage"

// Repository is the slice of the in-memory store the course service needs.
// *storage.Store satisfies it.
type Repository interface {
	ListCourses(filter storage.CourseFilter) []storage.Course
	Course(id int) (storage.Course, error)
	Student(id int) (storage.Student, error)
	CreateCourse(title, teacher string) storage.Course
	UpdateCourse(id int, upd storage.CourseUpdate) (storage.Course, error)
	RemoveCourse(id int) ([]int, error)
	CourseStudents(id int) []storage.Student
	Enroll(studentID, courseID int) error
	Unenroll(studentID, courseID int) bool
}

var _ Repository = (*storage.Store)(nil)
