package task

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"

	"taskboard/internal/auth"
	"taskboard/internal/httpx"
	"taskboard/pkg/logger"
	"taskboard/pkg/validator"
)

// Handler exposes the task endpoints. All routes expect the authentication
// middleware to have resolved the caller's user id into the context.
type Handler struct {
	svc *Service
	log *slog.Logger
}

// NewHandler creates the task HTTP handler.
func NewHandler(svc *Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Routes returns the router for mounting under /tasks.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.handleCreate)
	r.Get("/", h.handleList)
	r.Route("/{taskID}", func(r chi.Router) {
		r.Get("/", h.handleGet)
		r.Put("/", h.handleUpdate)
		r.Delete("/", h.handleDelete)
		r.Post("/reminder", h.handleSetReminder)
	})
	return r
}

// dateTime accepts RFC 3339 timestamps as well as bare YYYY-MM-DD dates in
// request bodies.
type dateTime struct {
	time.Time
}

func (d *dateTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("invalid date %q: expected RFC 3339 or YYYY-MM-DD", s)
	}
	d.Time = t
	return nil
}

type createRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      Status   `json:"status"`
	Priority    Priority `json:"priority"`
	DueDate     dateTime `json:"dueDate"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.UserID(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, auth.ErrNoToken.Error())
		return
	}

	var req createRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, httpx.ErrInvalidBody.Error())
		return
	}

	t, err := h.svc.Create(r.Context(), ownerID, CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate.Time,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, t)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.UserID(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, auth.ErrNoToken.Error())
		return
	}

	var f Filter
	if v := r.URL.Query().Get("status"); v != "" {
		status := Status(v)
		f.Status = &status
	}
	if v := r.URL.Query().Get("priority"); v != "" {
		priority := Priority(v)
		f.Priority = &priority
	}
	switch r.URL.Query().Get("sort") {
	case "", "asc":
	case "desc":
		f.SortDesc = true
	default:
		httpx.Error(w, http.StatusBadRequest, "sort must be asc or desc")
		return
	}

	tasks, err := h.svc.List(r.Context(), ownerID, f)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, tasks)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.UserID(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, auth.ErrNoToken.Error())
		return
	}

	id, err := taskID(r)
	if err != nil {
		httpx.Error(w, http.StatusNotFound, ErrTaskNotFound.Error())
		return
	}

	t, err := h.svc.Get(r.Context(), ownerID, id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, t)
}

type updateRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Status       *Status   `json:"status"`
	Priority     *Priority `json:"priority"`
	DueDate      *dateTime `json:"dueDate"`
	ReminderDate *dateTime `json:"reminderDate"`
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.UserID(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, auth.ErrNoToken.Error())
		return
	}

	id, err := taskID(r)
	if err != nil {
		httpx.Error(w, http.StatusNotFound, ErrTaskNotFound.Error())
		return
	}

	// Decode through a raw map first: an explicit null expresses ambiguous
	// intent (clear a required field?) and is rejected rather than silently
	// treated as "unchanged".
	var raw map[string]json.RawMessage
	if err := httpx.Decode(r, &raw); err != nil {
		httpx.Error(w, http.StatusBadRequest, httpx.ErrInvalidBody.Error())
		return
	}
	for field, value := range raw {
		if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			httpx.Error(w, http.StatusBadRequest, fmt.Sprintf("field %q must not be null", field))
			return
		}
	}

	buf, err := json.Marshal(raw)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, httpx.ErrInvalidBody.Error())
		return
	}
	var req updateRequest
	if err := json.Unmarshal(buf, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, httpx.ErrInvalidBody.Error())
		return
	}

	in := UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
	}
	if req.DueDate != nil {
		in.DueDate = &req.DueDate.Time
	}
	if req.ReminderDate != nil {
		in.ReminderDate = &req.ReminderDate.Time
	}

	t, err := h.svc.Update(r.Context(), ownerID, id, in)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, t)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.UserID(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, auth.ErrNoToken.Error())
		return
	}

	id, err := taskID(r)
	if err != nil {
		httpx.Error(w, http.StatusNotFound, ErrTaskNotFound.Error())
		return
	}

	if err := h.svc.Delete(r.Context(), ownerID, id); err != nil {
		h.respondError(w, r, err)
		return
	}

	httpx.Message(w, "task deleted")
}

type reminderRequest struct {
	ReminderDate dateTime `json:"reminderDate"`
}

func (h *Handler) handleSetReminder(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.UserID(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, auth.ErrNoToken.Error())
		return
	}

	id, err := taskID(r)
	if err != nil {
		httpx.Error(w, http.StatusNotFound, ErrTaskNotFound.Error())
		return
	}

	var req reminderRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, httpx.ErrInvalidBody.Error())
		return
	}

	t, err := h.svc.SetReminder(r.Context(), ownerID, id, req.ReminderDate.Time)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, t)
}

// taskID parses the path id. Ids that are not valid ObjectID hex cannot
// reference any task and map to not-found, same as an absent id.
func taskID(r *http.Request) (bson.ObjectID, error) {
	return bson.ObjectIDFromHex(chi.URLParam(r, "taskID"))
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case validator.IsValidationError(err):
		httpx.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrTaskNotFound):
		httpx.Error(w, http.StatusNotFound, ErrTaskNotFound.Error())
	default:
		h.log.ErrorContext(r.Context(), "task operation failed",
			logger.Error(err), logger.Component("task"))
		httpx.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
