package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/santoso/visitor-gate/internal/api/validate"
	"github.com/santoso/visitor-gate/internal/apperror"
	"github.com/santoso/visitor-gate/internal/service"
)

type DeviceHandler struct {
	deviceService *service.DeviceService
	responder     *Responder
}

func NewDeviceHandler(deviceService *service.DeviceService, responder *Responder) *DeviceHandler {
	return &DeviceHandler{deviceService: deviceService, responder: responder}
}

type DeviceRequest struct {
	Name      string `json:"name"`
	DeviceKey string `json:"deviceKey"`
	GroupID   string `json:"groupId"`
	Location  string `json:"location"`
}

func (h *DeviceHandler) List(w http.ResponseWriter, r *http.Request) {
	search, page, limit := parseListQuery(r)

	devices, total, err := h.deviceService.List(r.Context(), search, page, limit)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.JSON(w, http.StatusOK, ListEnvelope{Success: true, Data: devices, Page: page, Limit: limit, Total: total})
}

func (h *DeviceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.responder.Error(w, r, apperror.NotFound("Resource not found"))
		return
	}

	device, err := h.deviceService.Get(r.Context(), id)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.OK(w, device)
}

func (h *DeviceHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	var req DeviceRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	if err := validate.Device(body); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	device, err := h.deviceService.Create(r.Context(), service.DeviceInput{
		Name:      req.Name,
		DeviceKey: req.DeviceKey,
		GroupID:   req.GroupID,
		Location:  req.Location,
	})
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Created(w, device)
}

func (h *DeviceHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var req DeviceRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	if err := validate.Device(body); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	device, err := h.deviceService.Update(r.Context(), id, service.DeviceInput{
		Name:      req.Name,
		DeviceKey: req.DeviceKey,
		GroupID:   req.GroupID,
		Location:  req.Location,
	})
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.OK(w, device)
}

func (h *DeviceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.responder.Error(w, r, apperror.NotFound("Resource not found"))
		return
	}

	if err := h.deviceService.Delete(r.Context(), id); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.OK(w, map[string]string{"message": "Device deleted"})
}
