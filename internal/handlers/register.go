package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-library/internal/models"
)

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password, role string) (*models.User, error)
}

// UserLister defines the user listing used by the admin users endpoint.
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Admin-only. Creates a user with role Admin or User. Usernames are unique case-insensitively.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterRequest true "User registration request"
// @Success 200 {object} models.MessageResponse "User created successfully."
// @Failure 400 {object} models.MessageResponse "Username already exists."
// @Failure 403 {object} models.MessageResponse
// @Router /register [post]
// @Security BearerAuth
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if _, err := svc.Register(r.Context(), req.Username, req.Password, req.Role); err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeMessage(w, http.StatusOK, msgUserCreated)
	}
}

// NewListUsersHandler returns an HTTP handler listing every user.
// @Summary List users
// @Tags auth
// @Produce json
// @Success 200 {array} models.User
// @Failure 403 {object} models.MessageResponse
// @Router /users [get]
// @Security BearerAuth
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if users == nil {
			users = []models.User{}
		}

		writeJSON(w, http.StatusOK, users)
	}
}
