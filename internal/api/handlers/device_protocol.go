package handlers

import (
	"encoding/json"
	"net/http"
)

// deviceAck is the fixed envelope device firmware parses. It is independent
// of the admin Envelope and its shape must never change.
type deviceAck struct {
	Result  int    `json:"result"`
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
}

// devicePage is the roster-list envelope. Total and Data always serialize,
// even when the roster is empty.
type devicePage struct {
	Result  int    `json:"result"`
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
	Total   int64  `json:"total"`
	Data    any    `json:"data"`
}

// deviceRecord is the single-record envelope of getPersonInfo.
type deviceRecord struct {
	Result  int    `json:"result"`
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
	Data    any    `json:"data,omitempty"`
}

func writeDeviceJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeDeviceFailure(w http.ResponseWriter, status int, msg string) {
	writeDeviceJSON(w, status, deviceAck{Result: 0, Success: false, Msg: msg})
}
