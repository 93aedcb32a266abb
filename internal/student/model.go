package student

import "academic-service/internal/storage"

type Student = storage.Student

type CreateStudentRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

// UpdateStudentRequest is a partial update; empty fields are ignored.
type UpdateStudentRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ListResponse struct {
	Students []Student `json:"students"`
	Total    int       `json:"total"`
}

type DetailResponse struct {
	Student Student          `json:"student"`
	Courses []storage.Course `json:"courses"`
}
