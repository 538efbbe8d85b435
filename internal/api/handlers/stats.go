package handlers

import (
	"net/http"

	"github.com/santoso/visitor-gate/internal/service"
)

type StatsHandler struct {
	statsService *service.StatsService
	responder    *Responder
}

func NewStatsHandler(statsService *service.StatsService, responder *Responder) *StatsHandler {
	return &StatsHandler{statsService: statsService, responder: responder}
}

func (h *StatsHandler) Visitors(w http.ResponseWriter, r *http.Request) {
	data, err := h.statsService.VisitorsByMonth(r.Context())
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}
	h.responder.OK(w, data)
}

func (h *StatsHandler) Devices(w http.ResponseWriter, r *http.Request) {
	data, err := h.statsService.DeviceUsage(r.Context())
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}
	h.responder.OK(w, data)
}

func (h *StatsHandler) Users(w http.ResponseWriter, r *http.Request) {
	data, err := h.statsService.UserRoles(r.Context())
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}
	h.responder.OK(w, data)
}
