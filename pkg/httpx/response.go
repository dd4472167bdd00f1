package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// WriteJSON writes a JSON response with the given status code. It sets the
// Content-Type and no-store cache headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// NoCache prevents intermediaries from caching a response. Required for
// anything carrying tokens or per-account data.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// maxBodyBytes caps request bodies. Task and credential payloads are tiny.
const maxBodyBytes = 1 << 20

// ErrBadBody reports a request body that is not the expected JSON document.
var ErrBadBody = errors.New("httpx: malformed request body")

// ReadJSON decodes a JSON request body into v, rejecting oversized and
// malformed bodies.
func ReadJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return ErrBadBody
	}

	// A second document after the first one is malformed too.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return ErrBadBody
	}

	return nil
}
