package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"taskboard/internal/httpx"
	"taskboard/pkg/logger"
	"taskboard/pkg/validator"
)

// Handler exposes the authentication endpoints.
type Handler struct {
	svc *Service
	log *slog.Logger
}

// NewHandler creates the authentication HTTP handler.
func NewHandler(svc *Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Routes returns the router for mounting under /auth.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/register", h.handleRegister)
	r.Post("/login", h.handleLogin)
	return r
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, httpx.ErrInvalidBody.Error())
		return
	}

	user, token, err := h.svc.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case validator.IsValidationError(err), errors.Is(err, ErrEmailTaken):
			httpx.Error(w, http.StatusBadRequest, err.Error())
		default:
			h.log.ErrorContext(r.Context(), "registration failed",
				logger.Error(err), logger.Component("auth"))
			httpx.Error(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	httpx.JSON(w, http.StatusCreated, registerResponse{User: user, Token: token})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, httpx.ErrInvalidBody.Error())
		return
	}

	token, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case validator.IsValidationError(err):
			httpx.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrInvalidCredentials):
			httpx.Error(w, http.StatusUnauthorized, ErrInvalidCredentials.Error())
		default:
			h.log.ErrorContext(r.Context(), "login failed",
				logger.Error(err), logger.Component("auth"))
			httpx.Error(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	httpx.JSON(w, http.StatusOK, loginResponse{Token: token})
}
