package config

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope of every API reply.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		Logger().WithError(err).Error("Failed to encode response")
	}
}

func Success(w http.ResponseWriter, status int, data interface{}) {
	JSON(w, status, Response{Success: true, Data: data})
}

func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Response{Success: true, Message: message})
}

func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Response{Success: false, Error: message})
}
