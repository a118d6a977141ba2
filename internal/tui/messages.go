package tui

import (
	"github.com/MKhiriev/go-climate-intel/internal/service"
	"github.com/MKhiriev/go-climate-intel/models"
)

// restoredMsg carries the auth state reached by hydrating the saved session.
type restoredMsg struct {
	state service.AuthState
}

// authDoneMsg reports the outcome of any auth flow transition.
type authDoneMsg struct {
	err error
}

type climateLoadedMsg struct {
	data models.ClimateData
	err  error
}

// refreshedMsg is a result delivered by the background refresh job.
type refreshedMsg struct {
	data models.ClimateData
}

type recommendationsMsg struct {
	resp models.RecommendationsResponse
	err  error
}

type layersMsg struct {
	layers []models.MapLayer
	err    error
}

type chatReplyMsg struct {
	reply models.ChatMessage
	sent  bool
}

type copiedMsg struct {
	err error
}

type heardMsg struct {
	text string
	err  error
}
