package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-climate-intel/internal/app"
	"github.com/MKhiriev/go-climate-intel/internal/utils"
	"github.com/MKhiriev/go-climate-intel/models"
)

// maxHistoryLimit caps the limit query parameter of GET /chat/history.
const maxHistoryLimit = 200

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.ChatRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Language = req.Language.OrDefault()
	if err := h.climateValidator.Validate(ctx, req); err != nil {
		writeValidationError(w, r, err)
		return
	}

	resp, err := h.services.ChatService.Chat(ctx, userID, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, resp)
}

func (h *Handler) chatHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || parsed > maxHistoryLimit {
			utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	records, err := h.services.ChatService.History(r.Context(), userID, limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if records == nil {
		records = []models.ChatRecord{}
	}

	writeJSON(w, r, records)
}

func (h *Handler) recommendations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.RecommendationsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Language = req.Language.OrDefault()
	if err := h.climateValidator.Validate(ctx, req); err != nil {
		writeValidationError(w, r, err)
		return
	}

	writeJSON(w, r, h.services.ChatService.Recommendations(ctx, userID, req))
}
