package handlers

import "net/http"

// ReadyChecker reports whether the service can serve meaningful
// comparisons, i.e. the recognizer models finished loading.
type ReadyChecker interface {
	Ready() bool
}

// ReadyHandler serves the readiness endpoint.
type ReadyHandler struct {
	checker ReadyChecker
}

// NewReadyHandler creates a readiness handler.
func NewReadyHandler(checker ReadyChecker) *ReadyHandler {
	return &ReadyHandler{checker: checker}
}

// Check returns 200 once the models are loaded and 503 before that.
func (h *ReadyHandler) Check(w http.ResponseWriter, r *http.Request) {
	if h.checker != nil && h.checker.Ready() {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
		return
	}
	respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "loading"})
}
