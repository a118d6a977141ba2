package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-climate-intel/internal/adapter"
	"github.com/MKhiriev/go-climate-intel/internal/logger"
	"github.com/MKhiriev/go-climate-intel/internal/mock"
	"github.com/MKhiriev/go-climate-intel/internal/risk"
	"github.com/MKhiriev/go-climate-intel/internal/weather"
	"github.com/MKhiriev/go-climate-intel/models"
)

var mumbai = models.Coordinate{Lat: 19.076, Lon: 72.8777}

// climateDataFor builds a realistic payload for c.
func climateDataFor(c models.Coordinate) models.ClimateData {
	g := weather.NewGenerator(nil)
	b := g.Bundle(c)
	return models.ClimateData{
		Location:       c,
		Current:        b.Current,
		Historical:     b.Historical,
		Forecast:       b.Forecast,
		RiskAssessment: risk.AssessWithHistory(b.Current, b.Historical),
	}
}

func newTestFetcher(t *testing.T) (ClimateFetcher, *mock.MockServerAdapter) {
	t.Helper()
	server := mock.NewMockServerAdapter(gomock.NewController(t))
	return NewClimateFetcher(server, logger.Nop()), server
}

func TestClimateFetcher_Fetch(t *testing.T) {
	fetcher, server := newTestFetcher(t)
	ctx := context.Background()

	_, ok := fetcher.Current()
	assert.False(t, ok)

	server.EXPECT().ClimateData(ctx, chennai).Return(climateDataFor(chennai), nil)

	got, err := fetcher.Fetch(ctx, chennai)
	require.NoError(t, err)
	assert.Equal(t, chennai, got.Location)

	current, ok := fetcher.Current()
	require.True(t, ok)
	assert.Equal(t, got, current)

	got.Historical[0].Temperature = 999
	current, _ = fetcher.Current()
	assert.NotEqual(t, 999.0, current.Historical[0].Temperature)
}

func TestClimateFetcher_Fetch_InvalidCoordinate(t *testing.T) {
	fetcher, _ := newTestFetcher(t)

	_, err := fetcher.Fetch(context.Background(), models.Coordinate{Lat: -91, Lon: 0})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestClimateFetcher_Fetch_FailureKeepsPrevious(t *testing.T) {
	fetcher, server := newTestFetcher(t)
	ctx := context.Background()

	server.EXPECT().ClimateData(ctx, chennai).Return(climateDataFor(chennai), nil)
	_, err := fetcher.Fetch(ctx, chennai)
	require.NoError(t, err)

	server.EXPECT().ClimateData(ctx, mumbai).Return(models.ClimateData{}, fmt.Errorf("%w: boom", adapter.ErrInternalServerError))
	_, err = fetcher.Fetch(ctx, mumbai)
	assert.ErrorIs(t, err, ErrTransport)

	current, ok := fetcher.Current()
	require.True(t, ok)
	assert.Equal(t, chennai, current.Location)
}

func TestClimateFetcher_LatestWins(t *testing.T) {
	fetcher, server := newTestFetcher(t)
	ctx := context.Background()

	release := make(chan struct{})
	started := make(chan struct{})
	server.EXPECT().ClimateData(gomock.Any(), chennai).DoAndReturn(
		func(context.Context, models.Coordinate) (models.ClimateData, error) {
			close(started)
			<-release
			return climateDataFor(chennai), nil
		},
	)
	server.EXPECT().ClimateData(gomock.Any(), mumbai).Return(climateDataFor(mumbai), nil)

	slow := make(chan error, 1)
	go func() {
		_, err := fetcher.Fetch(ctx, chennai)
		slow <- err
	}()
	<-started

	got, err := fetcher.Fetch(ctx, mumbai)
	require.NoError(t, err)
	assert.Equal(t, mumbai, got.Location)

	close(release)
	select {
	case err = <-slow:
		assert.ErrorIs(t, err, ErrSuperseded)
	case <-time.After(time.Second):
		t.Fatal("slow fetch did not return")
	}

	current, ok := fetcher.Current()
	require.True(t, ok)
	assert.Equal(t, mumbai, current.Location)
}

func TestClimateFetcher_ResetSupersedesInFlight(t *testing.T) {
	fetcher, server := newTestFetcher(t)

	release := make(chan struct{})
	started := make(chan struct{})
	server.EXPECT().ClimateData(gomock.Any(), chennai).DoAndReturn(
		func(context.Context, models.Coordinate) (models.ClimateData, error) {
			close(started)
			<-release
			return climateDataFor(chennai), nil
		},
	)

	done := make(chan error, 1)
	go func() {
		_, err := fetcher.Fetch(context.Background(), chennai)
		done <- err
	}()
	<-started

	fetcher.Reset()
	close(release)

	assert.ErrorIs(t, <-done, ErrSuperseded)
	_, ok := fetcher.Current()
	assert.False(t, ok)
}

func TestClimateFetcher_Simulate(t *testing.T) {
	fetcher, server := newTestFetcher(t)

	_, err := fetcher.Simulate(10, 1)
	assert.ErrorIs(t, err, ErrNoClimateData)

	server.EXPECT().ClimateData(gomock.Any(), chennai).Return(climateDataFor(chennai), nil)
	_, err = fetcher.Fetch(context.Background(), chennai)
	require.NoError(t, err)

	res, err := fetcher.Simulate(0, 0)
	require.NoError(t, err)
	assert.Zero(t, res.Impact.DroughtRiskChange)
	assert.Zero(t, res.Impact.FloodRiskChange)
	assert.Zero(t, res.Impact.HeatStressChange)

	res, err = fetcher.Simulate(-50, 3)
	require.NoError(t, err)
	assert.Equal(t, "-50.0%", res.Impact.RainfallChangeApplied)

	_, err = fetcher.Simulate(0, 20)
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, risk.ErrScenarioOutOfRange)
}

func TestClimateFetcher_Recommendations(t *testing.T) {
	fetcher, server := newTestFetcher(t)
	ctx := context.Background()

	_, err := fetcher.Recommendations(ctx, models.LanguageEnglish)
	assert.ErrorIs(t, err, ErrNoClimateData)

	data := climateDataFor(chennai)
	server.EXPECT().ClimateData(ctx, chennai).Return(data, nil)
	_, err = fetcher.Fetch(ctx, chennai)
	require.NoError(t, err)

	want := models.RecommendationsResponse{Recommendations: FallbackRecommendations(), IsFallback: true}
	server.EXPECT().Recommendations(ctx, models.RecommendationsRequest{
		Lat:      chennai.Lat,
		Lon:      chennai.Lon,
		RiskData: data.RiskAssessment,
		Language: models.LanguageTamil,
	}).Return(want, nil)

	got, err := fetcher.Recommendations(ctx, models.LanguageTamil)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClimateFetcher_Layers(t *testing.T) {
	fetcher, server := newTestFetcher(t)
	ctx := context.Background()

	server.EXPECT().Layers(ctx).Return(weather.Layers(), nil)
	got, err := fetcher.Layers(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 5)

	server.EXPECT().Layers(ctx).Return(nil, fmt.Errorf("layers request: %w: %w", adapter.ErrTransport, errors.New("refused")))
	_, err = fetcher.Layers(ctx)
	assert.ErrorIs(t, err, ErrTransport)
}
