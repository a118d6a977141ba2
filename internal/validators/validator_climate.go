package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-climate-intel/internal/risk"
	"github.com/MKhiriev/go-climate-intel/models"
)

const (
	FieldLocation = "location"
	FieldScenario = "scenario"
	FieldMessage  = "message"

	MaxChatMessageLength = 4000
)

// ClimateValidator validates climate, scenario, chat and recommendation
// payloads.
type ClimateValidator struct{}

func NewClimateValidator() Validator {
	return &ClimateValidator{}
}

func (v *ClimateValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Coordinate:
		return ValidateCoordinate(value)
	case models.ClimateRequest:
		return ValidateCoordinate(value.Coordinate())
	case *models.ClimateRequest:
		return ValidateCoordinate(value.Coordinate())

	case models.ScenarioRequest:
		return v.validateScenario(value, fields...)
	case *models.ScenarioRequest:
		return v.validateScenario(*value, fields...)

	case models.ChatRequest:
		return v.validateChat(value, fields...)
	case *models.ChatRequest:
		return v.validateChat(*value, fields...)

	case models.RecommendationsRequest:
		return v.validateRecommendations(value, fields...)
	case *models.RecommendationsRequest:
		return v.validateRecommendations(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ClimateValidator) validateScenario(r models.ScenarioRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLocation, FieldScenario}
	}

	for _, f := range fields {
		switch f {
		case FieldLocation:
			if err := ValidateCoordinate(r.Coordinate()); err != nil {
				return err
			}
		case FieldScenario:
			if err := risk.ValidateScenario(r.RainfallChange, r.TemperatureChange); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ClimateValidator) validateChat(r models.ChatRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMessage, FieldLanguage}
	}

	for _, f := range fields {
		switch f {
		case FieldMessage:
			if err := ValidateChatMessage(r.Message); err != nil {
				return err
			}
		case FieldLanguage:
			if err := ValidateLanguage(r.Language); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ClimateValidator) validateRecommendations(r models.RecommendationsRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLocation, FieldLanguage}
	}

	for _, f := range fields {
		switch f {
		case FieldLocation:
			if err := ValidateCoordinate(models.Coordinate{Lat: r.Lat, Lon: r.Lon}); err != nil {
				return err
			}
		case FieldLanguage:
			if err := ValidateLanguage(r.Language); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// ValidateCoordinate accepts finite latitudes in [-90, 90] and longitudes in
// [-180, 180].
func ValidateCoordinate(c models.Coordinate) error {
	if !c.Valid() {
		return fmt.Errorf("%w: (%v, %v)", ErrInvalidCoordinate, c.Lat, c.Lon)
	}
	return nil
}

// ValidateChatMessage rejects blank and oversized messages.
func ValidateChatMessage(message string) error {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return ErrEmptyMessage
	}
	if len([]rune(trimmed)) > MaxChatMessageLength {
		return ErrMessageTooLong
	}
	return nil
}
