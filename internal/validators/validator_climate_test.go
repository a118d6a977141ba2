package validators

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-climate-intel/internal/risk"
	"github.com/MKhiriev/go-climate-intel/models"
)

func TestValidateCoordinate(t *testing.T) {
	valid := []models.Coordinate{{}, {Lat: 90, Lon: 180}, {Lat: -90, Lon: -180}, {Lat: 13.08, Lon: 80.27}}
	for _, c := range valid {
		assert.NoError(t, ValidateCoordinate(c), "%+v", c)
	}

	invalid := []models.Coordinate{
		{Lat: 90.01},
		{Lon: -180.5},
		{Lat: math.NaN()},
		{Lon: math.Inf(1)},
	}
	for _, c := range invalid {
		assert.ErrorIs(t, ValidateCoordinate(c), ErrInvalidCoordinate, "%+v", c)
	}
}

func TestClimateValidator(t *testing.T) {
	v := NewClimateValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "x"), ErrUnsupportedType)
	})

	t.Run("climate request", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, models.ClimateRequest{Lat: 10, Lon: 20}))
		assert.ErrorIs(t, v.Validate(ctx, &models.ClimateRequest{Lat: 100}), ErrInvalidCoordinate)
	})

	t.Run("scenario", func(t *testing.T) {
		ok := models.ScenarioRequest{Lat: 10, Lon: 20, RainfallChange: -100, TemperatureChange: 10}
		assert.NoError(t, v.Validate(ctx, ok))

		bad := ok
		bad.RainfallChange = 150
		assert.ErrorIs(t, v.Validate(ctx, bad), risk.ErrScenarioOutOfRange)
		assert.NoError(t, v.Validate(ctx, bad, FieldLocation))
	})

	t.Run("chat", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, models.ChatRequest{Message: "Will it rain?", Language: models.LanguageEnglish}))
		assert.ErrorIs(t, v.Validate(ctx, models.ChatRequest{Message: "  \n", Language: models.LanguageEnglish}), ErrEmptyMessage)
		assert.ErrorIs(t, v.Validate(ctx, models.ChatRequest{Message: strings.Repeat("a", MaxChatMessageLength+1), Language: models.LanguageEnglish}), ErrMessageTooLong)
		assert.ErrorIs(t, v.Validate(ctx, models.ChatRequest{Message: "hi", Language: "xx"}), ErrUnsupportedLanguage)
	})

	t.Run("recommendations", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, models.RecommendationsRequest{Lat: 1, Lon: 2, Language: models.LanguageTamil}))
		assert.ErrorIs(t, v.Validate(ctx, models.RecommendationsRequest{Lat: -91, Language: models.LanguageTamil}), ErrInvalidCoordinate)
	})
}
