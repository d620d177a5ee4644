// Package handlers implements the HTTP handlers for the parsing API.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	usaddr "github.com/usaddr-parse"
)

// APIHandler handles the parsing API endpoints
type APIHandler struct {
	Parser *usaddr.Parser
}

// ParseResponse represents the response for /api/parse
type ParseResponse struct {
	Address string               `json:"address"`
	Tokens  []usaddr.TaggedToken `json:"tokens"`
}

// TagRequest represents the POST body for /api/tag
type TagRequest struct {
	Address    string            `json:"address"`
	TagMapping map[string]string `json:"tag_mapping,omitempty"`
}

// TagResponse represents the response for /api/tag
type TagResponse struct {
	Address     string                   `json:"address"`
	Components  []usaddr.TaggedComponent `json:"components"`
	AddressType string                   `json:"address_type"`
}

// HealthResponse represents the response for /api/health
type HealthResponse struct {
	Status      string            `json:"status"`
	ModelLoaded bool              `json:"model_loaded"`
	Caches      usaddr.CacheStats `json:"caches"`
}

// ErrorResponse represents an error payload
type ErrorResponse struct {
	Error string `json:"error"`
	Label string `json:"label,omitempty"`
}

// Parse tokenizes and labels an address from the "address" query parameter.
func (h *APIHandler) Parse(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("address")

	tokens, err := h.Parser.Parse(address)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ParseResponse{Address: address, Tokens: tokens})
}

// Tag reassembles an address into labeled components. GET takes the address
// from the query string; POST takes a JSON body that may also carry a label
// remapping.
func (h *APIHandler) Tag(w http.ResponseWriter, r *http.Request) {
	var req TagRequest

	switch r.Method {
	case http.MethodPost:
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
			return
		}
	default:
		req.Address = r.URL.Query().Get("address")
	}

	components, addressType, err := h.Parser.Tag(req.Address, req.TagMapping)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, TagResponse{
		Address:     req.Address,
		Components:  components,
		AddressType: addressType,
	})
}

// Health reports whether the model is loaded and how full the caches are.
func (h *APIHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:      "ok",
		ModelLoaded: h.Parser.Ready(),
		Caches:      usaddr.Caches(),
	})
}

func writeError(w http.ResponseWriter, err error) {
	var repeated *usaddr.RepeatedLabelError
	switch {
	case errors.Is(err, usaddr.ErrModelNotAvailable):
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	case errors.As(err, &repeated):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Label: repeated.Label})
	default:
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
