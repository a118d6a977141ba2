package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-climate-intel/models"
)

// SessionStore holds at most one authenticated session. Only the
// AuthFlowController writes to it; every other component reads.
type SessionStore interface {
	// Get returns the current session, if any.
	Get() (models.Session, bool)

	// Set replaces the session wholesale, persists its token and hands the
	// token to the transport.
	Set(ctx context.Context, session models.Session) error

	// Clear forgets the session in memory, on disk and in the transport.
	Clear(ctx context.Context) error

	// UpdateUser replaces the cached user of the active session. It reports
	// false when there is no session.
	UpdateUser(user models.User) bool

	// Hydrate restores the session from the persisted token by asking the
	// server who the token belongs to. A rejected token is cleared; when the
	// server cannot be reached the token stays persisted and no session is
	// reported.
	Hydrate(ctx context.Context) (models.Session, bool)
}

// AuthFlowController is the client authentication state machine. Every
// transition goes through Dispatch; the typed methods are shorthands.
type AuthFlowController interface {
	Dispatch(ctx context.Context, event AuthEvent) error

	Register(ctx context.Context, identity models.Identity, password, name string, language models.Language) error
	VerifyOTP(ctx context.Context, code string) error
	Back(ctx context.Context) error
	Login(ctx context.Context, identity models.Identity, password string) error
	Logout(ctx context.Context) error
	UpdateLanguage(ctx context.Context, language models.Language) error

	// Restore hydrates the session at process start. It never fails; the
	// resulting state is returned.
	Restore(ctx context.Context) AuthState

	State() AuthState
	Pending() (models.PendingRegistration, bool)
	Session() (models.Session, bool)
}

// ClimateFetcher loads climate data for the selected location. Only the
// result of the latest Fetch is committed.
type ClimateFetcher interface {
	// Fetch issues one request for location. A result overtaken by a newer
	// Fetch returns ErrSuperseded and is discarded.
	Fetch(ctx context.Context, location models.Coordinate) (models.ClimateData, error)

	// Current returns the last committed result.
	Current() (models.ClimateData, bool)

	// Simulate runs a what-if scenario locally on the current result.
	Simulate(rainfallChangePct, temperatureChangeC float64) (models.ScenarioResult, error)

	// Recommendations asks the server for advice on the current result.
	Recommendations(ctx context.Context, language models.Language) (models.RecommendationsResponse, error)

	// Layers lists the map overlays offered by the server.
	Layers(ctx context.Context) ([]models.MapLayer, error)

	// Reset forgets the current result.
	Reset()
}

// ChatRelay keeps the session-scoped conversation and forwards user messages.
type ChatRelay interface {
	// Send appends text and the reply to the log and returns the reply. A
	// failed request yields an apology marked as an error. Blank text is not
	// sent and reports false.
	Send(ctx context.Context, text string, language models.Language) (models.ChatMessage, bool)

	// History returns a copy of the conversation.
	History() []models.ChatMessage

	// Reset empties the conversation.
	Reset()
}

// ClientRefreshJob periodically re-fetches the selected location.
type ClientRefreshJob interface {
	// Start launches the background refresh. Any previously running job is
	// stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()

	// Updates delivers refreshed results.
	Updates() <-chan models.ClimateData
}
