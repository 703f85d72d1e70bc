package service

import (
	"bytes"
	"hltvapi-backend/internal/scrapers/hltv"
	"net/http"
)

type errorBody struct {
	Error string `json:"error"`
}

// writeJSON encodes the whole body before writing the status so a failed
// encode never leaves a partial body behind.
func writeJSON(w http.ResponseWriter, status int, body any) error {
	var buff bytes.Buffer
	err := hltv.EncodeJSON(&buff, body)
	if err != nil {
		writeRaw(w, http.StatusInternalServerError, []byte(`{"error": "Failed to encode response"}`))
		return err
	}
	writeRaw(w, status, buff.Bytes())
	return nil
}

func writeError(w http.ResponseWriter, status int, message string) {
	// errorBody always encodes
	_ = writeJSON(w, status, errorBody{Error: message})
}

func writeRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}
