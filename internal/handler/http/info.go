package http

import (
	"net/http"

	"github.com/MKhiriev/go-climate-intel/internal/app"
	"github.com/MKhiriev/go-climate-intel/models"
)

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, models.RootResponse{
		Message: app.TextAPIName,
		Version: h.services.AppInfoService.GetAppVersion(r.Context()),
	})
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.services.AppInfoService.Health(r.Context()))
}
