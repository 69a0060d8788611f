package adaptor

import (
	"net/http"

	"moviehub/pkg/utils"
)

// AppInfo feeds the root and health payloads.
type AppInfo struct {
	Name    string
	Version string
}

type HomeHandler struct {
	info AppInfo
}

func NewHomeHandler(info AppInfo) *HomeHandler {
	return &HomeHandler{info: info}
}

// Root handles GET /
func (h *HomeHandler) Root(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, map[string]string{
		"message": "Welcome to " + h.info.Name,
		"docs":    "/docs",
		"version": h.info.Version,
	})
}

// Health handles GET /health
func (h *HomeHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, map[string]string{
		"status":  "healthy",
		"message": h.info.Name + " is running",
	})
}
