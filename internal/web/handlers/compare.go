package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kozaktomas/face-verify/internal/imageloader"
	"github.com/kozaktomas/face-verify/internal/match"
)

// CompareRequest carries the two image references of one comparison:
// a selfie and an ID photo, both URLs or both embedded payloads.
type CompareRequest struct {
	Selfie  string `json:"selfie"`
	IDPhoto string `json:"id_photo"`
}

// CompareHandler serves the two face comparison endpoints.
type CompareHandler struct {
	matcher *match.Service
	fetcher *imageloader.Fetcher
}

// NewCompareHandler creates a comparison handler.
func NewCompareHandler(matcher *match.Service, fetcher *imageloader.Fetcher) *CompareHandler {
	return &CompareHandler{matcher: matcher, fetcher: fetcher}
}

// parseCompareRequest decodes the request body. Malformed bodies and
// missing references surface as errors; the handler boundary turns
// every failure into the uniform generic response.
func parseCompareRequest(r *http.Request) (CompareRequest, error) {
	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, errors.New("invalid request body")
	}
	if req.Selfie == "" || req.IDPhoto == "" {
		return req, errors.New("both selfie and id_photo are required")
	}
	return req, nil
}

// CompareURLs compares two face images referenced by remote URLs.
func (h *CompareHandler) CompareURLs(w http.ResponseWriter, r *http.Request) {
	req, err := parseCompareRequest(r)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	h.compare(w, r, h.fetcher.Source(req.Selfie), h.fetcher.Source(req.IDPhoto))
}

// CompareBase64 compares two face images submitted as inline payloads.
func (h *CompareHandler) CompareBase64(w http.ResponseWriter, r *http.Request) {
	req, err := parseCompareRequest(r)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	h.compare(w, r, imageloader.PayloadSource(req.Selfie), imageloader.PayloadSource(req.IDPhoto))
}

func (h *CompareHandler) compare(w http.ResponseWriter, r *http.Request, selfie, idPhoto imageloader.Source) {
	result, err := h.matcher.CompareSources(r.Context(), selfie, idPhoto)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
