package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-climate-intel/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts and their OTP state.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.StoredUser) (models.StoredUser, error)
	FindByIdentity(ctx context.Context, identity models.Identity) (models.StoredUser, error)
	FindByID(ctx context.Context, id string) (models.StoredUser, error)
	MarkVerified(ctx context.Context, id string) error
	UpdateLanguage(ctx context.Context, id string, language models.Language) error
	DeleteExpiredUnverified(ctx context.Context, now time.Time) (int64, error)
}

// ChatRepository persists chat exchanges.
type ChatRepository interface {
	SaveChat(ctx context.Context, record models.ChatRecord) (models.ChatRecord, error)
	ListChats(ctx context.Context, userID string, limit uint64) ([]models.ChatRecord, error)
}

// ClimateCache keeps generated climate data per coordinate and UTC day.
type ClimateCache interface {
	Get(ctx context.Context, location models.Coordinate, day time.Time) (models.ClimateData, bool, error)
	Set(ctx context.Context, data models.ClimateData, day time.Time) error
}
