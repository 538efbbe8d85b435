package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/santoso/visitor-gate/internal/apperror"
	"github.com/santoso/visitor-gate/internal/logging"
)

// Envelope is the response shape of every authenticated endpoint. Device
// protocol endpoints use deviceEnvelope instead; the two are never mixed.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ListEnvelope is the paginated variant used by admin list endpoints.
type ListEnvelope struct {
	Success bool  `json:"success"`
	Data    any   `json:"data"`
	Page    int   `json:"page"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
}

// Responder centralizes response writing and the error-classification path.
// Handlers never format error bodies themselves; they hand failures here.
type Responder struct {
	log         *logging.Logger
	development bool
}

func NewResponder(log *logging.Logger, development bool) *Responder {
	return &Responder{log: log, development: development}
}

func (rs *Responder) JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// OK writes {success:true, data} with status 200.
func (rs *Responder) OK(w http.ResponseWriter, data any) {
	rs.JSON(w, http.StatusOK, Envelope{Success: true, Data: data})
}

// Created writes {success:true, data} with status 201.
func (rs *Responder) Created(w http.ResponseWriter, data any) {
	rs.JSON(w, http.StatusCreated, Envelope{Success: true, Data: data})
}

// Error classifies err and writes the resulting envelope. Non-operational
// failures are logged with full redacted request context; their client
// message is generic in production and the real error in development.
func (rs *Responder) Error(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperror.Classify(err)
	if appErr == nil {
		return
	}

	if !appErr.Operational {
		rs.log.ErrorRedacted("unclassified error", map[string]any{
			"path":   r.URL.Path,
			"method": r.Method,
			"query":  logging.RedactValues(r.URL.Query()),
			"error":  err.Error(),
		})

		message := appErr.Message
		if rs.development {
			message = err.Error()
		}
		rs.JSON(w, appErr.Status, Envelope{Success: false, Error: message})
		return
	}

	rs.JSON(w, appErr.Status, Envelope{Success: false, Error: appErr.Message})
}
