package course

import (
	"context"
	"errors"
	"log/slog"

	"academic-service/internal/events"
	"academic-service/internal/metrics"
	"academic-service/internal/pagination"
	"academic-service/internal/storage"
)

type Service interface {
	ListCourses(ctx context.Context, filter storage.CourseFilter, page pagination.Params) ListResponse
	GetCourse(ctx context.Context, id int) (*DetailResponse, error)
	CreateCourse(ctx context.Context, req CreateCourseRequest) (*Course, error)
	UpdateCourse(ctx context.Context, id int, req UpdateCourseRequest) (*Course, error)
	DeleteCourse(ctx context.Context, id int) error
	EnrollStudent(ctx context.Context, courseID, studentID int) (*storage.Enrollment, error)
	UnenrollStudent(ctx context.Context, courseID, studentID int) error
}

type service struct {
	repo      Repository
	publisher events.Publisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

func NewService(repo Repository, publisher events.Publisher, m *metrics.Metrics, logger *slog.Logger) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
	}
}

func (s *service) ListCourses(_ context.Context, filter storage.CourseFilter, page pagination.Params) ListResponse {
	all := s.repo.ListCourses(filter)
	return ListResponse{
		Courses: pagination.Paginate(all, page),
		Total:   len(all),
	}
}

func (s *service) GetCourse(_ context.Context, id int) (*DetailResponse, error) {
	c, err := s.repo.Course(id)
	if err != nil {
		return nil, err
	}
	return &DetailResponse{
		Course:   c,
		Students: s.repo.CourseStudents(id),
	}, nil
}

// CreateCourse accepts duplicate titles; uniqueness is only checked on update.
func (s *service) CreateCourse(ctx context.Context, req CreateCourseRequest) (*Course, error) {
	c := s.repo.CreateCourse(req.Title, req.Teacher)
	s.metrics.RecordCourseCreated()
	events.Emit(ctx, s.publisher, s.logger, events.New(events.CourseCreated, 0, c.ID))
	return &c, nil
}

func (s *service) UpdateCourse(ctx context.Context, id int, req UpdateCourseRequest) (*Course, error) {
	c, err := s.repo.UpdateCourse(id, storage.CourseUpdate{Title: req.Title, Teacher: req.Teacher})
	if err != nil {
		return nil, err
	}
	events.Emit(ctx, s.publisher, s.logger, events.New(events.CourseUpdated, 0, c.ID))
	return &c, nil
}

func (s *service) DeleteCourse(ctx context.Context, id int) error {
	unenrolled, err := s.repo.RemoveCourse(id)
	if err != nil {
		return err
	}
	for _, studentID := range unenrolled {
		s.metrics.RecordEnrollment(metrics.EnrollmentRemoved)
		events.Emit(ctx, s.publisher, s.logger, events.New(events.EnrollmentDeleted, studentID, id))
	}
	events.Emit(ctx, s.publisher, s.logger, events.New(events.CourseDeleted, 0, id))
	return nil
}

func (s *service) EnrollStudent(ctx context.Context, courseID, studentID int) (*storage.Enrollment, error) {
	if err := s.repo.Enroll(studentID, courseID); err != nil {
		if errors.Is(err, storage.ErrCourseFull) {
			s.metrics.RecordEnrollment(metrics.EnrollmentRejected)
		}
		return nil, err
	}
	s.metrics.RecordEnrollment(metrics.EnrollmentCreated)
	events.Emit(ctx, s.publisher, s.logger, events.New(events.EnrollmentCreated, studentID, courseID))
	return &storage.Enrollment{StudentID: studentID, CourseID: courseID}, nil
}

func (s *service) UnenrollStudent(ctx context.Context, courseID, studentID int) error {
	if _, err := s.repo.Course(courseID); err != nil {
		return err
	}
	if _, err := s.repo.Student(studentID); err != nil {
		return err
	}
	if !s.repo.Unenroll(studentID, courseID) {
		return storage.ErrEnrollmentNotFound
	}
	s.metrics.RecordEnrollment(metrics.EnrollmentRemoved)
	events.Emit(ctx, s.publisher, s.logger, events.New(events.EnrollmentDeleted, studentID, courseID))
	return nil
}
