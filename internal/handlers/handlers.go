package handlers

import (
	"encoding/json"
	"io"
	"net/http"
)

// decodePayload reads the request body once and decodes it into a
// generic map for schema validation. The raw bytes are returned so the
// caller can decode the typed request from the same body.
func decodePayload(r *http.Request) (map[string]any, []byte, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, nil, err
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, nil, err
	}
	return payload, body, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
