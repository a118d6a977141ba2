package store

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-climate-intel/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{
	"id", "email", "phone", "name", "password_hash", "preferred_language",
	"is_verified", "otp_code", "otp_expires_at", "created_at",
}

const (
	createUser = `INSERT INTO users (id, email, phone, name, password_hash, preferred_language, is_verified, otp_code, otp_expires_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING created_at;`

	markUserVerified = `UPDATE users
    SET is_verified = TRUE, otp_code = NULL, otp_expires_at = NULL
    WHERE id = $1;`

	updateUserLanguage = `UPDATE users
    SET preferred_language = $2
    WHERE id = $1;`

	deleteExpiredUnverified = `DELETE FROM users
    WHERE is_verified = FALSE AND otp_expires_at < $1;`

	saveChat = `INSERT INTO chat_history (user_id, message, response, language)
    VALUES ($1, $2, $3, $4)
    RETURNING id, created_at;`

	// sqlite
	saveSessionToken = `INSERT INTO session (id, token, saved_at)
    VALUES (1, ?, ?)
    ON CONFLICT (id) DO UPDATE SET token = excluded.token, saved_at = excluded.saved_at;`

	loadSessionToken = `SELECT token FROM session WHERE id = 1;`

	clearSessionToken = `DELETE FROM session;`
)

// buildFindUserQuery selects the account matching the identity. Whichever of
// email or phone is set is used.
func buildFindUserQuery(identity models.Identity) (string, []any, error) {
	query := psql.Select(userColumns...).From(models.StoredUser{}.TableName())
	if identity.Email != "" {
		query = query.Where(sq.Eq{"email": identity.Email})
	} else {
		query = query.Where(sq.Eq{"phone": identity.Phone})
	}

	q, args, err := query.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return q, args, nil
}

func buildFindUserByIDQuery(id string) (string, []any, error) {
	q, args, err := psql.Select(userColumns...).
		From(models.StoredUser{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return q, args, nil
}

// buildListChatsQuery selects the latest limit records of a user, newest
// first.
func buildListChatsQuery(userID string, limit uint64) (string, []any, error) {
	q, args, err := psql.Select("id", "user_id", "message", "response", "language", "created_at").
		From("chat_history").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return q, args, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.StoredUser, error) {
	var (
		u        models.StoredUser
		email    sql.NullString
		phone    sql.NullString
		lang     string
		otpCode  sql.NullString
		otpUntil sql.NullTime
	)

	err := row.Scan(&u.ID, &email, &phone, &u.Name, &u.PasswordHash, &lang, &u.IsVerified, &otpCode, &otpUntil, &u.CreatedAt)
	if err != nil {
		return models.StoredUser{}, err
	}

	if email.Valid {
		u.Email = &email.String
	}
	if phone.Valid {
		u.Phone = &phone.String
	}
	if otpCode.Valid {
		u.OTPCode = &otpCode.String
	}
	if otpUntil.Valid {
		u.OTPExpiresAt = &otpUntil.Time
	}
	u.PreferredLanguage = models.Language(lang)

	return u, nil
}
