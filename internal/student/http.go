package student

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

const msgRequiredFields = "name and email required"

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
	router.Route("/students", func(r chi.Router) {
		r.Get("/", h.ListStudents)
		r.Post("/", h.CreateStudent)
		r.Get("/{id}", h.GetStudent)
		r.Put("/{id}", h.UpdateStudent)
		r.Delete("/{id}", h.DeleteStudent)
	})
}

func (h *Handler) ListStudents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := pagination.FromQuery(q)
	if err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	filter := storage.StudentFilter{Name: q.Get("name"), Email: q.Get("email")}
	h.logger.DebugContext(r.Context(), "listing students", "name", filter.Name, "email", filter.Email, "page", page.Page, "limit", page.Limit)

	httputil.RespondWithJSON(w, http.StatusOK, h.service.ListStudents(r.Context(), filter, page))
}

func (h *Handler) GetStudent(w http.ResponseWriter, r *http.Request) {
	id, ok := studentID(r)
	if !ok {
		httputil.RespondWithError(w, http.StatusNotFound, storage.ErrStudentNotFound.Error())
		return
	}

	detail, err := h.service.GetStudent(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, detail)
}

func (h *Handler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var req CreateStudentRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, msgRequiredFields)
		return
	}

	h.logger.InfoContext(r.Context(), "creating student", "email", req.Email)
	created, err := h.service.CreateStudent(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	id, ok := studentID(r)
	if !ok {
		httputil.RespondWithError(w, http.StatusNotFound, storage.ErrStudentNotFound.Error())
		return
	}

	var req UpdateStudentRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		// an unknown student is reported before a bad body
		if _, lookupErr := h.service.GetStudent(r.Context(), id); lookupErr != nil {
			h.handleServiceError(w, r, lookupErr)
			return
		}
		httputil.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.InfoContext(r.Context(), "updating student", "id", id)
	updated, err := h.service.UpdateStudent(r.Context(), id, req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	id, ok := studentID(r)
	if !ok {
		httputil.RespondWithError(w, http.StatusNotFound, storage.ErrStudentNotFound.Error())
		return
	}

	h.logger.InfoContext(r.Context(), "deleting student", "id", id)
	if err := h.service.DeleteStudent(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// studentID parses the {id} path segment. A malformed id can never match a
// student, so callers answer 404.
func studentID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil
}

func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case storage.IsNotFound(err):
		h.logger.InfoContext(r.Context(), "student not found")
		httputil.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, storage.ErrDuplicateEmail), errors.Is(err, storage.ErrStudentEnrolled):
		h.logger.InfoContext(r.Context(), "student request rejected", "reason", err)
		httputil.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "internal error", "error", err)
		httputil.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
