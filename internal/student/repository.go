package student

import "academic-service/internal/storage"

// Repository is the slice of the in-memory store the student service needs.
// *storage.Store satisfies it.
type Repository interface {
	ListStudents(filter storage.StudentFilter) []storage.Student
	Student(id int) (storage.Student, error)
	CreateStudent(name, email string) (storage.Student, error)
	UpdateStudent(id int, upd storage.StudentUpdate) (storage.Student, error)
	RemoveStudent(id int) error
	StudentCourses(id int) []storage.Course
}

var _ Repository = (*storage.Store)(nil)
