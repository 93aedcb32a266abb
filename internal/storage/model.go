package storage

type Student struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Course struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Teacher string `json:"teacher"`
}

type Enrollment struct {
	StudentID int `json:"studentId"`
	CourseID  int `json:"courseId"`
}

// StudentFilter matches students whose fields contain the given substrings.
// Empty fields match everything.
type StudentFilter struct {
	Name  string
	Email string
}

type CourseFilter struct {
	Title   string
	Teacher string
}

// StudentUpdate carries a partial update; empty fields are left unchanged.
type StudentUpdate struct {
	Name  string
	Email string
}

type CourseUpdate struct {
	Title   string
	Teacher string
}
