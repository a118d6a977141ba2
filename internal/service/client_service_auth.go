package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-climate-intel/internal/adapter"
	"github.com/MKhiriev/go-climate-intel/internal/logger"
	"github.com/MKhiriev/go-climate-intel/internal/validators"
	"github.com/MKhiriev/go-climate-intel/models"
)

// AuthState is a state of the client authentication flow.
type AuthState string

const (
	StateAnonymous     AuthState = "anonymous"
	StateRegistering   AuthState = "registering"
	StateOTPPending    AuthState = "otp_pending"
	StateLoggingIn     AuthState = "logging_in"
	StateAuthenticated AuthState = "authenticated"
)

// AuthEvent is an input of the authentication state machine.
type AuthEvent interface {
	authEvent()
}

type (
	// RegisterEvent submits a registration. Valid in StateAnonymous.
	RegisterEvent struct {
		Identity models.Identity
		Password string
		Name     string
		Language models.Language
	}

	// VerifyOTPEvent confirms a registration. Valid in StateOTPPending.
	VerifyOTPEvent struct {
		Code string
	}

	// BackEvent abandons a pending registration.
	BackEvent struct{}

	// LoginEvent submits credentials. Valid in StateAnonymous.
	LoginEvent struct {
		Identity models.Identity
		Password string
	}

	// LogoutEvent ends the session. Valid in StateAuthenticated; a no-op in
	// StateAnonymous.
	LogoutEvent struct{}

	// UpdateLanguageEvent changes the preferred language of the signed-in
	// user. Valid in StateAuthenticated.
	UpdateLanguageEvent struct {
		Language models.Language
	}

	// RestoreEvent hydrates the session at process start.
	RestoreEvent struct{}
)

func (RegisterEvent) authEvent()       {}
func (VerifyOTPEvent) authEvent()      {}
func (BackEvent) authEvent()           {}
func (LoginEvent) authEvent()          {}
func (LogoutEvent) authEvent()         {}
func (UpdateLanguageEvent) authEvent() {}
func (RestoreEvent) authEvent()        {}

type authFlowController struct {
	serverAdapter adapter.ServerAdapter
	sessions      SessionStore

	// dispatchMu serializes transitions; mu guards the fields below so the
	// presentation layer can read the state while a request is in flight.
	dispatchMu sync.Mutex
	mu         sync.RWMutex
	state      AuthState
	pending    *models.PendingRegistration

	logger *logger.Logger
}

// NewAuthFlowController returns a controller in StateAnonymous.
func NewAuthFlowController(serverAdapter adapter.ServerAdapter, sessions SessionStore, logger *logger.Logger) AuthFlowController {
	return &authFlowController{
		serverAdapter: serverAdapter,
		sessions:      sessions,
		state:         StateAnonymous,
		logger:        logger,
	}
}

// Dispatch applies event to the state machine. A failed transition leaves
// the controller in its pre-call state.
func (c *authFlowController) Dispatch(ctx context.Context, event AuthEvent) error {
	c.dispatchMu.Lock()
	defer c.dispatchMu.Unlock()

	switch e := event.(type) {
	case RegisterEvent:
		return c.register(ctx, e)
	case VerifyOTPEvent:
		return c.verifyOTP(ctx, e)
	case BackEvent:
		return c.back()
	case LoginEvent:
		return c.login(ctx, e)
	case LogoutEvent:
		return c.logout(ctx)
	case UpdateLanguageEvent:
		return c.updateLanguage(ctx, e)
	case RestoreEvent:
		c.restore(ctx)
		return nil
	default:
		return fmt.Errorf("%w: unknown event %T", ErrExpiredState, event)
	}
}

func (c *authFlowController) Register(ctx context.Context, identity models.Identity, password, name string, language models.Language) error {
	return c.Dispatch(ctx, RegisterEvent{Identity: identity, Password: password, Name: name, Language: language})
}

func (c *authFlowController) VerifyOTP(ctx context.Context, code string) error {
	return c.Dispatch(ctx, VerifyOTPEvent{Code: code})
}

func (c *authFlowController) Back(ctx context.Context) error {
	return c.Dispatch(ctx, BackEvent{})
}

func (c *authFlowController) Login(ctx context.Context, identity models.Identity, password string) error {
	return c.Dispatch(ctx, LoginEvent{Identity: identity, Password: password})
}

func (c *authFlowController) Logout(ctx context.Context) error {
	return c.Dispatch(ctx, LogoutEvent{})
}

func (c *authFlowController) UpdateLanguage(ctx context.Context, language models.Language) error {
	return c.Dispatch(ctx, UpdateLanguageEvent{Language: language})
}

func (c *authFlowController) Restore(ctx context.Context) AuthState {
	_ = c.Dispatch(ctx, RestoreEvent{})
	return c.State()
}

func (c *authFlowController) State() AuthState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *authFlowController) Pending() (models.PendingRegistration, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.pending == nil {
		return models.PendingRegistration{}, false
	}
	return *c.pending, true
}

func (c *authFlowController) Session() (models.Session, bool) {
	return c.sessions.Get()
}

func (c *authFlowController) setState(state AuthState) {
	c.mu.Lock()
	c.state = state
	c.mu.Unlock()
}

func (c *authFlowController) register(ctx context.Context, e RegisterEvent) error {
	if c.State() != StateAnonymous {
		return ErrExpiredState
	}

	identity := e.Identity.Normalized()
	if err := validators.ValidateIdentity(identity); err != nil {
		return validationError(err)
	}
	if err := validators.ValidatePassword(e.Password); err != nil {
		return validationError(err)
	}
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return validationError(validators.ErrEmptyName)
	}
	language := e.Language
	if language == "" {
		language = models.LanguageEnglish
	}
	if err := validators.ValidateLanguage(language); err != nil {
		return validationError(err)
	}

	c.setState(StateRegistering)

	resp, err := c.serverAdapter.Register(ctx, models.RegisterRequest{
		Email:             identity.Email,
		Phone:             identity.Phone,
		Password:          e.Password,
		Name:              name,
		PreferredLanguage: language,
	})
	if err != nil {
		c.setState(StateAnonymous)
		c.logger.Err(err).Str("func", "*authFlowController.register").Msg("registration failed")
		return mapAdapterError(err)
	}

	c.mu.Lock()
	c.pending = &models.PendingRegistration{
		Identity: identity,
		Name:     name,
		Language: language,
		UserID:   resp.UserID,
		DemoOTP:  resp.DemoOTP,
	}
	c.state = StateOTPPending
	c.mu.Unlock()

	return nil
}

func (c *authFlowController) verifyOTP(ctx context.Context, e VerifyOTPEvent) error {
	pending, ok := c.Pending()
	if c.State() != StateOTPPending || !ok {
		return ErrExpiredState
	}

	code := strings.TrimSpace(e.Code)
	if err := validators.ValidateOTP(code); err != nil {
		return validationError(err)
	}

	resp, err := c.serverAdapter.VerifyOTP(ctx, models.VerifyOTPRequest{
		Email: pending.Identity.Email,
		Phone: pending.Identity.Phone,
		OTP:   code,
	})
	if err != nil {
		c.logger.Err(err).Str("func", "*authFlowController.verifyOTP").Msg("OTP verification failed")
		return mapAdapterError(err)
	}

	if err = c.sessions.Set(ctx, models.Session{Token: resp.AccessToken, User: resp.User}); err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}

	c.mu.Lock()
	c.pending = nil
	c.state = StateAuthenticated
	c.mu.Unlock()

	return nil
}

func (c *authFlowController) back() error {
	if c.State() != StateOTPPending {
		return nil
	}

	c.mu.Lock()
	c.pending = nil
	c.state = StateAnonymous
	c.mu.Unlock()

	return nil
}

func (c *authFlowController) login(ctx context.Context, e LoginEvent) error {
	if c.State() != StateAnonymous {
		return ErrExpiredState
	}

	identity := e.Identity.Normalized()
	req := models.LoginRequest{
		Email:    identity.Email,
		Phone:    identity.Phone,
		Password: e.Password,
	}
	if err := validators.NewAuthValidator().Validate(ctx, req); err != nil {
		return validationError(err)
	}

	c.setState(StateLoggingIn)

	resp, err := c.serverAdapter.Login(ctx, req)
	if err != nil {
		c.setState(StateAnonymous)
		c.logger.Err(err).Str("func", "*authFlowController.login").Msg("login failed")
		return mapAdapterError(err)
	}

	if err = c.sessions.Set(ctx, models.Session{Token: resp.AccessToken, User: resp.User}); err != nil {
		c.setState(StateAnonymous)
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}

	c.setState(StateAuthenticated)
	return nil
}

func (c *authFlowController) logout(ctx context.Context) error {
	switch c.State() {
	case StateAnonymous:
		return nil
	case StateAuthenticated:
		c.signOut(ctx)
		return nil
	default:
		return ErrExpiredState
	}
}

// signOut clears the session. A failure to remove the persisted token is
// logged; the in-memory session is gone either way.
func (c *authFlowController) signOut(ctx context.Context) {
	if err := c.sessions.Clear(ctx); err != nil {
		c.logger.Err(err).Str("func", "*authFlowController.signOut").Msg("error clearing session")
	}
	c.setState(StateAnonymous)
}

func (c *authFlowController) updateLanguage(ctx context.Context, e UpdateLanguageEvent) error {
	if c.State() != StateAuthenticated {
		return ErrExpiredState
	}
	if err := validators.ValidateLanguage(e.Language); err != nil {
		return validationError(err)
	}

	session, ok := c.sessions.Get()
	if !ok {
		return ErrExpiredState
	}

	if err := c.serverAdapter.UpdateLanguage(ctx, e.Language); err != nil {
		mapped := mapAdapterError(err)
		if errors.Is(mapped, ErrSessionExpired) {
			c.signOut(ctx)
		}
		return mapped
	}

	session.User.PreferredLanguage = e.Language
	c.sessions.UpdateUser(session.User)

	return nil
}

func (c *authFlowController) restore(ctx context.Context) {
	if c.State() != StateAnonymous {
		return
	}
	if _, ok := c.sessions.Hydrate(ctx); ok {
		c.setState(StateAuthenticated)
	}
}
