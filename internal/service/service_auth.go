package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-climate-intel/internal/app"
	"github.com/MKhiriev/go-climate-intel/internal/config"
	"github.com/MKhiriev/go-climate-intel/internal/crypto"
	"github.com/MKhiriev/go-climate-intel/internal/logger"
	"github.com/MKhiriev/go-climate-intel/internal/store"
	"github.com/MKhiriev/go-climate-intel/internal/utils"
	"github.com/MKhiriev/go-climate-intel/models"
)

// authService is the concrete implementation of AuthService.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	clock          clockwork.Clock
	ids            IDGenerator
	generateOTP    func() (string, error)

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	tokenDuration time.Duration
	otpTTL        time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService from cfg. A nil clock selects the
// real clock.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, clock clockwork.Clock, cfg config.App, logger *logger.Logger) AuthService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		clock:          clock,
		ids:            utils.NewUUIDGenerator(),
		generateOTP:    utils.GenerateOTP,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		otpTTL:         cfg.OTPTTL,
		logger:         logger,
	}
}

// Register creates an unverified account and returns its demo OTP.
//
// Returns:
//   - ErrInvalidDataProvided when the identity is missing or ambiguous.
//   - ErrUnsupportedLanguage for an unknown preferred language.
//   - ErrUserAlreadyExists when the email or phone is taken.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	log := logger.FromContext(ctx)

	identity := req.Identity().Normalized()
	if err := identity.Validate(); err != nil {
		return models.RegisterResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if req.PreferredLanguage == "" {
		req.PreferredLanguage = models.LanguageEnglish
	}
	if !req.PreferredLanguage.Valid() {
		return models.RegisterResponse{}, ErrUnsupportedLanguage
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error hashing password")
		return models.RegisterResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	otp, err := a.generateOTP()
	if err != nil {
		return models.RegisterResponse{}, err
	}
	expires := a.clock.Now().UTC().Add(a.otpTTL)

	user := models.StoredUser{
		User: models.User{
			ID:                a.ids.Generate(),
			Email:             optional(identity.Email),
			Phone:             optional(identity.Phone),
			Name:              req.Name,
			PreferredLanguage: req.PreferredLanguage,
		},
		PasswordHash: hash,
		OTPCode:      &otp,
		OTPExpiresAt: &expires,
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	if errors.Is(err, store.ErrUserAlreadyExists) {
		return models.RegisterResponse{}, ErrUserAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("user creation ended with error")
		return models.RegisterResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("func", "*authService.Register").Str("user_id", created.ID).Msg("user registered, awaiting OTP")

	return models.RegisterResponse{
		Message: app.TextRegistrationSuccessful,
		DemoOTP: otp,
		UserID:  created.ID,
	}, nil
}

// VerifyOTP marks the account verified and issues a token.
//
// Returns ErrUserNotFound for an unknown identity, ErrInvalidOTP when the code
// does not match or was already used, and ErrOTPExpired after the TTL.
func (a *authService) VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) (models.TokenResponse, error) {
	log := logger.FromContext(ctx)

	identity := req.Identity().Normalized()
	if err := identity.Validate(); err != nil {
		return models.TokenResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindByIdentity(ctx, identity)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.TokenResponse{}, ErrUserNotFound
	}
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("user search failed: %w", err)
	}

	if user.OTPCode == nil || subtle.ConstantTimeCompare([]byte(*user.OTPCode), []byte(req.OTP)) != 1 {
		log.Warn().Str("func", "*authService.VerifyOTP").Str("user_id", user.ID).Msg("invalid OTP submitted")
		return models.TokenResponse{}, ErrInvalidOTP
	}
	if user.OTPExpiresAt == nil || a.clock.Now().After(*user.OTPExpiresAt) {
		return models.TokenResponse{}, ErrOTPExpired
	}

	if err = a.userRepository.MarkVerified(ctx, user.ID); err != nil {
		log.Err(err).Str("func", "*authService.VerifyOTP").Msg("error marking user verified")
		return models.TokenResponse{}, fmt.Errorf("verification failed: %w", err)
	}
	user.IsVerified = true

	return a.tokenResponse(user.User)
}

// Login checks the password and issues a token. An unknown identity and a
// wrong password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error) {
	log := logger.FromContext(ctx)

	identity := req.Identity().Normalized()
	if err := identity.Validate(); err != nil {
		return models.TokenResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindByIdentity(ctx, identity)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.TokenResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("user search failed: %w", err)
	}

	if err = a.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		log.Warn().Str("func", "*authService.Login").Str("user_id", user.ID).Msg("wrong password")
		return models.TokenResponse{}, ErrInvalidCredentials
	}

	return a.tokenResponse(user.User)
}

// ParseToken validates a raw JWT against the configured key and issuer.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.clock.Now())
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, ErrTokenIsExpired
	}
	if err != nil {
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}

// Me returns the public view of the account.
func (a *authService) Me(ctx context.Context, userID string) (models.User, error) {
	user, err := a.userRepository.FindByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search failed: %w", err)
	}

	return user.User, nil
}

// UpdateLanguage stores the preferred language of the account.
func (a *authService) UpdateLanguage(ctx context.Context, userID string, language models.Language) error {
	if !language.Valid() {
		return ErrUnsupportedLanguage
	}

	err := a.userRepository.UpdateLanguage(ctx, userID, language)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("language update failed: %w", err)
	}

	return nil
}

// PurgeExpiredRegistrations deletes unverified accounts whose OTP expired.
func (a *authService) PurgeExpiredRegistrations(ctx context.Context) (int64, error) {
	return a.userRepository.DeleteExpiredUnverified(ctx, a.clock.Now().UTC())
}

func (a *authService) tokenResponse(user models.User) (models.TokenResponse, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.clock.Now(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenResponse{
		AccessToken: token.String(),
		TokenType:   app.TokenTypeBearer,
		User:        user,
	}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
