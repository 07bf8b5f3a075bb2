package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/coursehub/coursehub-go/internal/model"
	"github.com/coursehub/coursehub-go/internal/pagination"
	"github.com/coursehub/coursehub-go/internal/service"
)

// CourseHandler handles HTTP requests for courses.
type CourseHandler struct {
	service *service.CourseService
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(svc *service.CourseService) *CourseHandler {
	return &CourseHandler{service: svc}
}

// HandleListCourses handles GET /courses requests.
func (h *CourseHandler) HandleListCourses(w http.ResponseWriter, r *http.Request) {
	params := pagination.FromQuery(r.URL.Query())

	resp, err := h.service.ListCourses(r.Context(), params)
	if err != nil {
		writeInternalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleGetCourse handles GET /courses/{id} requests.
func (h *CourseHandler) HandleGetCourse(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		writeJSON(w, http.StatusNotFound, errorResponse("Course not found"))
		return
	}

	resp, err := h.service.GetCourse(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse("Course not found"))
			return
		}
		writeInternalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleCreateCourse handles POST /courses requests.
func (h *CourseHandler) HandleCreateCourse(w http.ResponseWriter, r *http.Request) {
	var req model.CreateCourseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.CreateCourse(r.Context(), req)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			writeJSON(w, http.StatusUnprocessableEntity, validationResponse(verr))
		case errors.Is(err, service.ErrCourseParamsRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeInternalError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}
