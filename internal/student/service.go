package student

import (
	"context"
	"log/slog"

	"academic-service/internal/events"
	"academic-service/internal/metrics"
	"academic-service/internal/pagination"
	"academic-service/internal/storage"
)

type Service interface {
	ListStudents(ctx context.Context, filter storage.StudentFilter, page pagination.Params) ListResponse
	GetStudent(ctx context.Context, id int) (*DetailResponse, error)
	CreateStudent(ctx context.Context, req CreateStudentRequest) (*Student, error)
	UpdateStudent(ctx context.Context, id int, req UpdateStudentRequest) (*Student, error)
	DeleteStudent(ctx context.Context, id int) error
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

// ListStudents filters, then paginates; Total is the filtered count.
func (s *service) ListStudents(_ context.Context, filter storage.StudentFilter, page pagination.Params) ListResponse {
	all := s.repo.ListStudents(filter)
	return ListResponse{
		Students: pagination.Paginate(all, page),
		Total:    len(all),
	}
}

func (s *service) GetStudent(_ context.Context, id int) (*DetailResponse, error) {
	st, err := s.repo.Student(id)
	if err != nil {
		return nil, err
	}
	return &DetailResponse{
		Student: st,
		Courses: s.repo.StudentCourses(id),
	}, nil
}

func (s *service) CreateStudent(ctx context.Context, req CreateStudentRequest) (*Student, error) {
	st, err := s.repo.CreateStudent(req.Name, req.Email)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordStudentCreated()
	events.Emit(ctx, s.publisher, s.logger, events.New(events.StudentCreated, st.ID, 0))
	return &st, nil
}

func (s *service) UpdateStudent(ctx context.Context, id int, req UpdateStudentRequest) (*Student, error) {
	st, err := s.repo.UpdateStudent(id, storage.StudentUpdate{Name: req.Name, Email: req.Email})
	if err != nil {
		return nil, err
	}
	events.Emit(ctx, s.publisher, s.logger, events.New(events.StudentUpdated, st.ID, 0))
	return &st, nil
}

func (s *service) DeleteStudent(ctx context.Context, id int) error {
	if err := s.repo.RemoveStudent(id); err != nil {
		return err
	}
	events.Emit(ctx, s.publisher, s.logger, events.New(events.StudentDeleted, id, 0))
	return nil
}
