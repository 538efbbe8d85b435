package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/santoso/visitor-gate/internal/api/validate"
	"github.com/santoso/visitor-gate/internal/apperror"
	"github.com/santoso/visitor-gate/internal/domain"
	"github.com/santoso/visitor-gate/internal/service"
)

type UserHandler struct {
	userService *service.UserService
	responder   *Responder
}

func NewUserHandler(userService *service.UserService, responder *Responder) *UserHandler {
	return &UserHandler{userService: userService, responder: responder}
}

type UserRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	search, page, limit := parseListQuery(r)

	users, total, err := h.userService.List(r.Context(), search, page, limit)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	data := make([]UserResponse, len(users))
	for i, u := range users {
		data[i] = toUserResponse(u)
	}

	h.responder.JSON(w, http.StatusOK, ListEnvelope{Success: true, Data: data, Page: page, Limit: limit, Total: total})
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.responder.Error(w, r, apperror.NotFound("Resource not found"))
		return
	}

	user, err := h.userService.Get(r.Context(), id)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.OK(w, toUserResponse(user))
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	var req UserRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	if err := validate.UserCreate(body); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	user, err := h.userService.Create(r.Context(), service.UserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Created(w, toUserResponse(user))
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.responder.Error(w, r, apperror.NotFound("Resource not found"))
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	var req UserRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	if err := validate.UserUpdate(body); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	user, err := h.userService.Update(r.Context(), id, service.UserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.OK(w, toUserResponse(user))
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.responder.Error(w, r, apperror.NotFound("Resource not found"))
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.OK(w, map[string]string{"message": "User deleted"})
}
