package http

import (
	"net/http"

	"github.com/MKhiriev/go-climate-intel/internal/app"
	"github.com/MKhiriev/go-climate-intel/internal/logger"
	"github.com/MKhiriev/go-climate-intel/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.PreferredLanguage == "" {
		req.PreferredLanguage = models.LanguageEnglish
	}
	if err := h.authValidator.Validate(ctx, req); err != nil {
		writeValidationError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", resp.UserID).Msg("registration accepted")
	writeJSON(w, r, resp)
}

func (h *Handler) verifyOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.VerifyOTPRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.authValidator.Validate(ctx, req); err != nil {
		writeValidationError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.VerifyOTP(ctx, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, resp)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.authValidator.Validate(ctx, req); err != nil {
		writeValidationError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", resp.User.ID).Msg("user successfully logged in")
	writeJSON(w, r, resp)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	user, err := h.services.AuthService.Me(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, user)
}

func (h *Handler) updateLanguage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	language := models.Language(r.URL.Query().Get("language"))
	if err := h.authValidator.Validate(ctx, language); err != nil {
		writeValidationError(w, r, err)
		return
	}

	if err := h.services.AuthService.UpdateLanguage(ctx, userID, language); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, models.LanguageResponse{Message: app.TextLanguageUpdated, Language: language})
}
