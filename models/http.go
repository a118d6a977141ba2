package models

import "time"

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Email             string   `json:"email,omitempty"`
	Phone             string   `json:"phone,omitempty"`
	Password          string   `json:"password"`
	Name              string   `json:"name"`
	PreferredLanguage Language `json:"preferred_language"`
}

// Identity extracts the account identifier of the request.
func (r RegisterRequest) Identity() Identity {
	return Identity{Email: r.Email, Phone: r.Phone}
}

// RegisterResponse carries the demo OTP; a real deployment would deliver it
// out of band.
type RegisterResponse struct {
	Message string `json:"message"`
	DemoOTP string `json:"demo_otp"`
	UserID  string `json:"user_id"`
}

// VerifyOTPRequest is the body of POST /api/auth/verify-otp.
type VerifyOTPRequest struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	OTP   string `json:"otp"`
}

// Identity extracts the account identifier of the request.
func (r VerifyOTPRequest) Identity() Identity {
	return Identity{Email: r.Email, Phone: r.Phone}
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

// Identity extracts the account identifier of the request.
func (r LoginRequest) Identity() Identity {
	return Identity{Email: r.Email, Phone: r.Phone}
}

// TokenResponse is returned by verify-otp and login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// ClimateRequest is the body of POST /api/climate/data.
type ClimateRequest struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Coordinate converts the request into a Coordinate.
func (r ClimateRequest) Coordinate() Coordinate {
	return Coordinate{Lat: r.Lat, Lon: r.Lon}
}

// ScenarioRequest is the body of POST /api/climate/scenario.
type ScenarioRequest struct {
	Lat               float64 `json:"lat"`
	Lon               float64 `json:"lon"`
	RainfallChange    float64 `json:"rainfall_change"`
	TemperatureChange float64 `json:"temperature_change"`
}

// Coordinate converts the request into a Coordinate.
func (r ScenarioRequest) Coordinate() Coordinate {
	return Coordinate{Lat: r.Lat, Lon: r.Lon}
}

// LanguageResponse is returned by PUT /api/user/language.
type LanguageResponse struct {
	Message  string   `json:"message"`
	Language Language `json:"language"`
}

// RootResponse is returned by GET /api/.
type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
