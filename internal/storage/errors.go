package storage

import "errors"

// Error messages are returned to API clients verbatim.
var (
	ErrStudentNotFound    = errors.New("Student not found")
	ErrCourseNotFound     = errors.New("Course not found")
	ErrEnrollmentNotFound = errors.New("Enrollment not found")
	ErrDuplicateEmail     = errors.New("Email must be unique")
	ErrDuplicateTitle     = errors.New("Course title must be unique")
	ErrStudentEnrolled    = errors.New("Cannot delete student: enrolled in a course")
	ErrCourseFull         = errors.New("Course is full")
)

// IsNotFound reports whether err is one of the not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrStudentNotFound) ||
		errors.Is(err, ErrCourseNotFound) ||
		errors.Is(err, ErrEnrollmentNotFound)
}
