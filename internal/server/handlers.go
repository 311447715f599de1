package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/jordanh/pulsecheck/internal/types"
)

// maxBodyBytes caps the request body size for /assess.
const maxBodyBytes = 64 * 1024

// handleAssess runs one assessment
func (s *Server) handleAssess(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req types.AssessmentRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		werr := &ErrMalformedBody{Cause: err}
		s.errorResponse(w, HTTPStatus(werr), werr.Error())
		return
	}
	// Reject trailing garbage after the JSON object.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		werr := &ErrMalformedBody{Cause: err}
		s.errorResponse(w, HTTPStatus(werr), "malformed request body: unexpected trailing content")
		return
	}

	resp, err := s.runner.Assess(r.Context(), &req)
	if err != nil {
		// The runner's only error path is request validation.
		werr := &ErrValidation{Cause: err}
		s.errorResponse(w, HTTPStatus(werr), werr.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}
