package course

import "academic-service/internal/storage"

type Course = storage.Course

type CreateCourseRequest struct {
	Title   string `json:"title" validate:"required"`
	Teacher string `json:"teacher" validate:"required"`
}

// UpdateCourseRequest is a partial update; empty fields are ignored.
type UpdateCourseRequest struct {
	Title   string `json:"title"`
	Teacher string `json:"teacher"`
}

type ListResponse struct {
	Courses []Course `json:"courses"`
	Total   int      `json:"total"`
}

type DetailResponse struct {
	Course   Course            `json:"course"`
	Students []storage.Student `json:"students"`
}
