package course

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"academic-service/internal/httputil"
	"academic-service/internal/pagination"
	"academic-service/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const msgRequiredFields = "title and teacher required"

type Handler struct {
	service  Service
	validate *validator.Validate
	logger   *slog.Logger
}

func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Route("/courses", func(r chi.Router) {
		r.Get("/", h.ListCourses)
		r.Post("/", h.CreateCourse)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetCourse)
			r.Put("/", h.UpdateCourse)
			r.Delete("/", h.DeleteCourse)
			r.Post("/students/{studentId}", h.EnrollStudent)
			r.Delete("/students/{studentId}", h.UnenrollStudent)
		})
	})
}

func (h *Handler) ListCourses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := pagination.FromQuery(q)
	if err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	filter := storage.CourseFilter{Title: q.Get("title"), Teacher: q.Get("teacher")}
	h.logger.DebugContext(r.Context(), "listing courses", "title", filter.Title, "teacher", filter.Teacher, "page", page.Page, "limit", page.Limit)

	httputil.RespondWithJSON(w, http.StatusOK, h.service.ListCourses(r.Context(), filter, page))
}

func (h *Handler) GetCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		httputil.RespondWithError(w, http.StatusNotFound, storage.ErrCourseNotFound.Error())
		return
	}

	detail, err := h.service.GetCourse(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, detail)
}

func (h *Handler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req CreateCourseRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, msgRequiredFields)
		return
	}

	h.logger.InfoContext(r.Context(), "creating course", "title", req.Title)
	created, err := h.service.CreateCourse(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		httputil.RespondWithError(w, http.StatusNotFound, storage.ErrCourseNotFound.Error())
		return
	}

	var req UpdateCourseRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		// an unknown course is reported before a bad body
		if _, lookupErr := h.service.GetCourse(r.Context(), id); lookupErr != nil {
			h.handleServiceError(w, r, lookupErr)
			return
		}
		httputil.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.InfoContext(r.Context(), "updating course", "id", id)
	updated, err := h.service.UpdateCourse(r.Context(), id, req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		httputil.RespondWithError(w, http.StatusNotFound, storage.ErrCourseNotFound.Error())
		return
	}

	h.logger.InfoContext(r.Context(), "deleting course", "id", id)
	if err := h.service.DeleteCourse(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) EnrollStudent(w http.ResponseWriter, r *http.Request) {
	courseID, studentID, ok := h.enrollmentIDs(w, r)
	if !ok {
		return
	}

	h.logger.InfoContext(r.Context(), "enrolling student", "course_id", courseID, "student_id", studentID)
	enrollment, err := h.service.EnrollStudent(r.Context(), courseID, studentID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusCreated, enrollment)
}

func (h *Handler) UnenrollStudent(w http.ResponseWriter, r *http.Request) {
	courseID, studentID, ok := h.enrollmentIDs(w, r)
	if !ok {
		return
	}

	h.logger.InfoContext(r.Context(), "unenrolling student", "course_id", courseID, "student_id", studentID)
	if err := h.service.UnenrollStudent(r.Context(), courseID, studentID); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) enrollmentIDs(w http.ResponseWriter, r *http.Request) (courseID, studentID int, ok bool) {
	courseID, ok = pathID(r, "id")
	if !ok {
		httputil.RespondWithError(w, http.StatusNotFound, storage.ErrCourseNotFound.Error())
		return 0, 0, false
	}
	studentID, ok = pathID(r, "studentId")
	if !ok {
		httputil.RespondWithError(w, http.StatusNotFound, storage.ErrStudentNotFound.Error())
		return 0, 0, false
	}
	return courseID, studentID, true
}

// pathID parses an integer path segment. A malformed id can never match an
// entity, so callers answer 404.
func pathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	return id, err == nil
}

func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case storage.IsNotFound(err):
		h.logger.InfoContext(r.Context(), "not found", "reason", err)
		httputil.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, storage.ErrDuplicateTitle), errors.Is(err, storage.ErrCourseFull):
		h.logger.InfoContext(r.Context(), "course request rejected", "reason", err)
		httputil.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "internal error", "error", err)
		httputil.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
