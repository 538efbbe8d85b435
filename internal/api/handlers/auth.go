package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/santoso/visitor-gate/internal/apperror"
	"github.com/santoso/visitor-gate/internal/domain"
	"github.com/santoso/visitor-gate/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	responder   *Responder
}

func NewAuthHandler(authService *service.AuthService, responder *Responder) *AuthHandler {
	return &AuthHandler{authService: authService, responder: responder}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	Role  domain.Role  `json:"role"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	if req.Email == "" || req.Password == "" {
		h.responder.Error(w, r, apperror.New(apperror.KindValidation, http.StatusBadRequest, "Email and password are required"))
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.responder.Error(w, r, apperror.Unauthorized("Invalid credentials"))
			return
		}
		h.responder.Error(w, r, err)
		return
	}

	h.responder.OK(w, LoginResponse{
		Token: result.Token,
		Role:  result.User.Role,
		User:  toUserResponse(result.User),
	})
}
