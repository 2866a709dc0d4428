package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"payguard/internal/validation"
	dErrors "payguard/pkg/domain-errors"
	"payguard/pkg/platform/httputil"
)

// Handler wires the login endpoint to the auth service.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the auth endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/auth/login", h.HandleLogin)
}

type loginRequest struct {
	IDNumber string `json:"idNumber"`
	Password string `json:"password"`
}

type loginUser struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
}

type loginResponse struct {
	Message string    `json:"message"`
	User    loginUser `json:"user"`
}

// HandleLogin handles POST /api/auth/login. Pipeline: field validation, then
// the credential check. 400 carries the full field error map; 404 and 401 stay
// distinct but equally uninformative about what is stored.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}

	res := validation.Validate(map[string]string{
		"idNumber": req.IDNumber,
		"password": req.Password,
	}, validation.LoginRules())
	if !res.Accepted {
		httputil.WriteJSON(w, http.StatusBadRequest, map[string]any{
			"error":  string(dErrors.CodeValidationFailed),
			"errors": res.Errors,
		})
		return
	}

	result, err := h.service.Login(r.Context(), res.Normalized["idNumber"], res.Normalized["password"])
	if err != nil {
		if dErrors.CodeOf(err) == dErrors.CodeInternal {
			h.logger.Error("login failed", "error", err)
		}
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, loginResponse{
		Message: "Login successful!",
		User:    loginUser{ID: result.SubjectID, FullName: result.FullName},
	})
}
