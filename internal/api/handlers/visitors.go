package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/santoso/visitor-gate/internal/api/validate"
	"github.com/santoso/visitor-gate/internal/apperror"
	"github.com/santoso/visitor-gate/internal/service"
)

type VisitorHandler struct {
	visitorService *service.VisitorService
	rosterService  *service.RosterService
	responder      *Responder
}

func NewVisitorHandler(visitorService *service.VisitorService, rosterService *service.RosterService, responder *Responder) *VisitorHandler {
	return &VisitorHandler{
		visitorService: visitorService,
		rosterService:  rosterService,
		responder:      responder,
	}
}

type VisitorRequest struct {
	Name      string `json:"name"`
	IdcardNum string `json:"idcardNum"`
	ImgBase64 string `json:"imgBase64"`
	Type      *int   `json:"type"`
	Passtime  string `json:"passtime"`
}

func (h *VisitorHandler) List(w http.ResponseWriter, r *http.Request) {
	search, page, limit := parseListQuery(r)

	visitors, total, err := h.visitorService.List(r.Context(), search, page, limit)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.JSON(w, http.StatusOK, ListEnvelope{Success: true, Data: visitors, Page: page, Limit: limit, Total: total})
}

func (h *VisitorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseVisitorID(r)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	visitor, err := h.visitorService.Get(r.Context(), id)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.OK(w, visitor)
}

func (h *VisitorHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	var req VisitorRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	if err := validate.Visitor(body); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	visitor, err := h.visitorService.Create(r.Context(), service.VisitorInput{
		Name:      req.Name,
		IdcardNum: req.IdcardNum,
		ImgBase64: req.ImgBase64,
		Type:      req.Type,
		Passtime:  req.Passtime,
	})
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Created(w, visitor)
}

func (h *VisitorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseVisitorID(r)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	var req VisitorRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	if err := validate.Visitor(body); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	visitor, err := h.visitorService.Update(r.Context(), id, service.VisitorInput{
		Name:      req.Name,
		IdcardNum: req.IdcardNum,
		ImgBase64: req.ImgBase64,
		Type:      req.Type,
		Passtime:  req.Passtime,
	})
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.OK(w, visitor)
}

func (h *VisitorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseVisitorID(r)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	if err := h.visitorService.Delete(r.Context(), id); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.OK(w, map[string]string{"message": "Visitor deleted"})
}

func parseVisitorID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, apperror.NotFound("Resource not found")
	}
	return uint(id), nil
}

// Device protocol endpoints below. These authenticate by device key and
// answer with the fixed device envelope only; admin responses never leak
// through here.

type PersonListRequest struct {
	GroupID   string `json:"groupId"`
	DeviceKey string `json:"deviceKey"`
	Page      int    `json:"page"`
	PageSize  int    `json:"pageSize"`
}

func (h *VisitorHandler) GetPersonList(w http.ResponseWriter, r *http.Request) {
	var req PersonListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDeviceFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	total, records, err := h.rosterService.GetPersonList(r.Context(), req.GroupID, req.DeviceKey, req.Page, req.PageSize)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingParameters):
			writeDeviceFailure(w, http.StatusBadRequest, "Missing required parameters")
		case errors.Is(err, service.ErrUnknownDevice):
			writeDeviceFailure(w, http.StatusBadRequest, "Invalid deviceKey")
		default:
			log.Printf("ERROR [visitors.GetPersonList]: %v", err)
			writeDeviceFailure(w, http.StatusInternalServerError, "Failed to fetch person list")
		}
		return
	}

	if records == nil {
		records = []service.PersonRecord{}
	}

	writeDeviceJSON(w, http.StatusOK, devicePage{
		Result:  1,
		Success: true,
		Msg:     "OK",
		Total:   total,
		Data:    records,
	})
}

type PersonInfoRequest struct {
	GroupID   string `json:"groupId"`
	DeviceKey string `json:"deviceKey"`
	IdcardNum string `json:"idcardNum"`
}

func (h *VisitorHandler) GetPersonInfo(w http.ResponseWriter, r *http.Request) {
	var req PersonInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDeviceFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	record, err := h.rosterService.GetPersonInfo(r.Context(), req.GroupID, req.DeviceKey, req.IdcardNum)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingParameters):
			writeDeviceFailure(w, http.StatusBadRequest, "Missing required parameters")
		case errors.Is(err, service.ErrUnknownDevice):
			writeDeviceFailure(w, http.StatusBadRequest, "Invalid deviceKey")
		case errors.Is(err, service.ErrVisitorNotFound):
			writeDeviceFailure(w, http.StatusNotFound, "Person not found")
		default:
			log.Printf("ERROR [visitors.GetPersonInfo]: %v", err)
			writeDeviceFailure(w, http.StatusInternalServerError, "Failed to fetch person info")
		}
		return
	}

	writeDeviceJSON(w, http.StatusOK, deviceRecord{
		Result:  1,
		Success: true,
		Msg:     "OK",
		Data:    record,
	})
}
