package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-climate-intel/internal/logger"
	"github.com/MKhiriev/go-climate-intel/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts a new account and returns it with the server-assigned
// CreatedAt.
//
// Error handling:
//   - unique_violation (23505) → [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.StoredUser) (models.StoredUser, error) {
	log := logger.FromContext(ctx)

	err := r.db.withRetry(ctx, "CreateUser", func() error {
		return r.db.QueryRowContext(ctx, createUser,
			user.ID,
			user.Email,
			user.Phone,
			user.Name,
			user.PasswordHash,
			string(user.PreferredLanguage),
			user.IsVerified,
			user.OTPCode,
			user.OTPExpiresAt,
		).Scan(&user.CreatedAt)
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.StoredUser{}, ErrUserAlreadyExists
		default:
			return models.StoredUser{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return user, nil
}

// FindByIdentity returns the account registered with the identity's email or
// phone. A miss yields [ErrNoUserWasFound].
func (r *userRepository) FindByIdentity(ctx context.Context, identity models.Identity) (models.StoredUser, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(identity)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindByIdentity").Msg("error building query")
		return models.StoredUser{}, err
	}

	return r.findOne(ctx, "*userRepository.FindByIdentity", query, args)
}

// FindByID returns the account with the given id. A miss yields
// [ErrNoUserWasFound].
func (r *userRepository) FindByID(ctx context.Context, id string) (models.StoredUser, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByIDQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindByID").Msg("error building query")
		return models.StoredUser{}, err
	}

	return r.findOne(ctx, "*userRepository.FindByID", query, args)
}

func (r *userRepository) findOne(ctx context.Context, fn, query string, args []any) (models.StoredUser, error) {
	log := logger.FromContext(ctx)

	var user models.StoredUser
	err := r.db.withRetry(ctx, fn, func() error {
		var scanErr error
		user, scanErr = scanUser(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.StoredUser{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("func", fn).Msg("error querying user")
		return models.StoredUser{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// MarkVerified flags the account as verified and clears its OTP.
func (r *userRepository) MarkVerified(ctx context.Context, id string) error {
	return r.execOne(ctx, "*userRepository.MarkVerified", markUserVerified, id)
}

// UpdateLanguage stores the preferred language of the account.
func (r *userRepository) UpdateLanguage(ctx context.Context, id string, language models.Language) error {
	return r.execOne(ctx, "*userRepository.UpdateLanguage", updateUserLanguage, id, string(language))
}

// execOne runs a statement expected to touch exactly one account.
func (r *userRepository) execOne(ctx context.Context, fn, query string, args ...any) error {
	log := logger.FromContext(ctx)

	var res sql.Result
	err := r.db.withRetry(ctx, fn, func() error {
		var execErr error
		res, execErr = r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// DeleteExpiredUnverified removes accounts that were never verified and whose
// OTP expired before now. It returns the number of removed accounts.
func (r *userRepository) DeleteExpiredUnverified(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	var res sql.Result
	err := r.db.withRetry(ctx, "DeleteExpiredUnverified", func() error {
		var execErr error
		res, execErr = r.db.ExecContext(ctx, deleteExpiredUnverified, now)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteExpiredUnverified").Msg("error deleting expired registrations")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return res.RowsAffected()
}
