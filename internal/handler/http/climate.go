package http

import (
	"net/http"

	"github.com/MKhiriev/go-climate-intel/models"
)

func (h *Handler) climateData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.ClimateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.climateValidator.Validate(ctx, req); err != nil {
		writeValidationError(w, r, err)
		return
	}

	data, err := h.services.ClimateService.ClimateData(ctx, req.Coordinate())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, data)
}

func (h *Handler) scenario(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.ScenarioRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.climateValidator.Validate(ctx, req); err != nil {
		writeValidationError(w, r, err)
		return
	}

	result, err := h.services.ClimateService.Scenario(ctx, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, result)
}

func (h *Handler) layers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.services.ClimateService.Layers(r.Context()))
}
