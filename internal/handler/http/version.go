package http

import (
	"net/http"
)

// getServerVersion reports the running build version as plain text. The
// endpoint is public so the client can show a version mismatch hint
// before the user signs in.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(version))
}
