package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/santoso/visitor-gate/internal/domain"
	"github.com/santoso/visitor-gate/internal/service"
)

type AttendanceHandler struct {
	attendanceService *service.AttendanceService
	responder         *Responder
}

func NewAttendanceHandler(attendanceService *service.AttendanceService, responder *Responder) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService, responder: responder}
}

// DataUploadRequest is the push payload of the device protocol. Time arrives
// as epoch milliseconds, either quoted or bare depending on firmware, and
// Extra is an opaque JSON blob forwarded untouched.
type DataUploadRequest struct {
	GroupID      string          `json:"groupId"`
	DeviceKey    string          `json:"deviceKey"`
	IdcardNumber string          `json:"idcardNumber"`
	RecordID     string          `json:"recordId"`
	ImgBase64    string          `json:"imgBase64"`
	Time         json.Number     `json:"time"`
	Type         string          `json:"type"`
	Extra        json.RawMessage `json:"extra"`
}

func (h *AttendanceHandler) DataUpload(w http.ResponseWriter, r *http.Request) {
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()

	var req DataUploadRequest
	if err := decoder.Decode(&req); err != nil {
		writeDeviceFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.attendanceService.Upload(r.Context(), service.UploadInput{
		GroupID:      req.GroupID,
		DeviceKey:    req.DeviceKey,
		IdcardNumber: req.IdcardNumber,
		RecordID:     req.RecordID,
		ImgBase64:    req.ImgBase64,
		Time:         req.Time.String(),
		Type:         req.Type,
		Extra:        extraPayload(req.Extra),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownDevice):
			writeDeviceFailure(w, http.StatusBadRequest, "Invalid deviceKey")
		case errors.Is(err, service.ErrInvalidEventTime):
			writeDeviceFailure(w, http.StatusBadRequest, "Invalid event time")
		default:
			log.Printf("ERROR [attendances.DataUpload]: %v", err)
			writeDeviceFailure(w, http.StatusInternalServerError, "Failed to save attendance")
		}
		return
	}

	writeDeviceJSON(w, http.StatusOK, deviceAck{
		Result:  1,
		Success: true,
		Msg:     "Diterima dengan sukses",
	})
}

// extraPayload unwraps a JSON-string extra ("{\"a\":1}") to its inner JSON
// while passing object payloads through as-is.
func extraPayload(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return asString
	}
	return string(raw)
}

type AttendanceResponse struct {
	ID        uint      `json:"id"`
	Visitor   string    `json:"visitor"`
	Device    string    `json:"device"`
	GroupID   string    `json:"groupId"`
	RecordID  string    `json:"recordId"`
	Time      time.Time `json:"time"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

func toAttendanceResponse(a *domain.Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:        a.ID,
		Visitor:   "Unknown",
		GroupID:   a.GroupID,
		RecordID:  a.RecordID,
		Time:      a.Time,
		Type:      a.Type,
		CreatedAt: a.CreatedAt,
	}
	if a.Visitor != nil {
		resp.Visitor = a.Visitor.Name
	}
	if a.Device != nil {
		resp.Device = a.Device.Name
	}
	return resp
}

// Report serves the admin attendance log, newest first.
func (h *AttendanceHandler) Report(w http.ResponseWriter, r *http.Request) {
	_, page, limit := parseListQuery(r)

	attendances, total, err := h.attendanceService.Report(r.Context(), page, limit)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	data := make([]AttendanceResponse, len(attendances))
	for i, a := range attendances {
		data[i] = toAttendanceResponse(a)
	}

	h.responder.JSON(w, http.StatusOK, ListEnvelope{Success: true, Data: data, Page: page, Limit: limit, Total: total})
}
