package server

import (
	"encoding/json"
	"net/http"

	"github.com/lostfound-tw/lostfound/internal/logger"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("JSON encode failed", nil, err)
	}
}

type errResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func errorBody(msg string, err error) errResponse {
	resp := errResponse{Error: msg}
	if err != nil {
		resp.Detail = err.Error()
	}
	return resp
}
