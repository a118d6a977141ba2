package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-climate-intel/internal/app"
	"github.com/MKhiriev/go-climate-intel/internal/logger"
	"github.com/MKhiriev/go-climate-intel/internal/risk"
	"github.com/MKhiriev/go-climate-intel/internal/service"
	"github.com/MKhiriev/go-climate-intel/internal/utils"
	"github.com/MKhiriev/go-climate-intel/internal/validators"
	"github.com/MKhiriev/go-climate-intel/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:  http.StatusBadRequest,
	service.ErrUserAlreadyExists:    http.StatusConflict,
	service.ErrUserNotFound:         http.StatusNotFound,
	service.ErrInvalidOTP:           http.StatusBadRequest,
	service.ErrOTPExpired:           http.StatusBadRequest,
	service.ErrInvalidCredentials:   http.StatusUnauthorized,
	service.ErrUnsupportedLanguage:  http.StatusBadRequest,
	service.ErrInvalidLocation:      http.StatusBadRequest,
	service.ErrScenarioOutOfRange:   http.StatusBadRequest,
	service.ErrAIServiceUnavailable: http.StatusBadGateway,
	service.ErrTokenIsExpired:       http.StatusUnauthorized,
	service.ErrTokenIsInvalid:       http.StatusUnauthorized,
}

// errorDetailMap holds the body detail of every mapped error. The client
// matches these strings, so they come from internal/app.
var errorDetailMap = map[error]string{
	service.ErrInvalidDataProvided:  app.MsgInvalidDataProvided,
	service.ErrUserAlreadyExists:    app.MsgUserAlreadyExists,
	service.ErrUserNotFound:         app.MsgUserNotFound,
	service.ErrInvalidOTP:           app.MsgInvalidOTP,
	service.ErrOTPExpired:           app.MsgOTPExpired,
	service.ErrInvalidCredentials:   app.MsgInvalidCredentials,
	service.ErrUnsupportedLanguage:  app.MsgUnsupportedLanguage,
	service.ErrInvalidLocation:      app.MsgInvalidDataProvided,
	service.ErrScenarioOutOfRange:   app.MsgScenarioOutOfRange,
	service.ErrAIServiceUnavailable: app.MsgAIServiceError,
	service.ErrTokenIsExpired:       app.MsgTokenIsExpired,
	service.ErrTokenIsInvalid:       app.MsgInvalidToken,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func detailFromError(err error) string {
	if errors.Is(err, models.ErrIdentityMissing) {
		return app.MsgIdentityRequired
	}
	for target, detail := range errorDetailMap {
		if errors.Is(err, target) {
			return detail
		}
	}
	return app.MsgInternalServerError
}

// writeServiceError logs err and answers with its mapped status and detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, detailFromError(err), status)
}

// writeValidationError answers 400 for a payload the validators rejected.
func writeValidationError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Debug().Err(err).Msg("validation failed")

	var detail string
	switch {
	case errors.Is(err, models.ErrIdentityMissing):
		detail = app.MsgIdentityRequired
	case errors.Is(err, validators.ErrUnsupportedLanguage):
		detail = app.MsgUnsupportedLanguage
	case errors.Is(err, risk.ErrScenarioOutOfRange):
		detail = app.MsgScenarioOutOfRange
	case errors.Is(err, validators.ErrInvalidCoordinate):
		detail = validators.ErrInvalidCoordinate.Error()
	default:
		detail = err.Error()
	}

	utils.WriteError(w, detail, http.StatusBadRequest)
}
