package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/perlow/catalog-api/internal/api/shared"
)

// UserHandler handles the user-facing stub endpoints.
type UserHandler struct {
	validator *validator.Validate
	logger    *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(logger *slog.Logger) *UserHandler {
	if logger == nil {
		panic("logger must not be nil")
	}
	return &UserHandler{
		validator: shared.Validate,
		logger:    logger,
	}
}

// Login handles POST /login. It is a stub: the form fields are required
// but no credential is checked and no session is created; the response
// just echoes the username.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid form data")
		return
	}

	req := LoginRequest{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
	if err := h.validator.Struct(req); err != nil {
		RespondWithValidationError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{Username: req.Username})
}

// CreateUser handles POST /user. The input is echoed back through the
// UserOut projection, which has no password field, so the password can
// never appear in the response. Nothing is stored.
//
// Don't do this in production: the endpoint accepts a plaintext
// password and throws it away.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user UserIn
	if err := shared.DecodeJSON(r, &user); err != nil {
		RespondWithDecodeError(w, r, err)
		return
	}

	if err := h.validator.Struct(user); err != nil {
		RespondWithValidationError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, UserOut{
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
	})
}
