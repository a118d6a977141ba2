package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MKhiriev/go-climate-intel/internal/logger"
	"github.com/MKhiriev/go-climate-intel/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func strPtr(s string) *string { return &s }

var userRowColumns = []string{
	"id", "email", "phone", "name", "password_hash", "preferred_language",
	"is_verified", "otp_code", "otp_expires_at", "created_at",
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	expires := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	user := models.StoredUser{
		User: models.User{
			ID:                "0195a7e0-0000-7000-8000-000000000001",
			Email:             strPtr("asha@example.com"),
			Name:              "Asha",
			PreferredLanguage: models.LanguageTamil,
		},
		PasswordHash: "hash",
		OTPCode:      strPtr("123456"),
		OTPExpiresAt: &expires,
	}

	now := time.Now()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.ID, "asha@example.com", nil, "Asha", "hash", "ta", false, "123456", expires).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created.CreatedAt.Equal(now) {
		t.Errorf("expected CreatedAt=%v, got %v", now, created.CreatedAt)
	}
	if created.ID != user.ID {
		t.Errorf("expected ID %s, got %s", user.ID, created.ID)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.StoredUser{User: models.User{Phone: strPtr("+919876543210")}})
	if !errors.Is(err, ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.StoredUser{})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestCreateUser_RetriesSerializationFailure(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	if _, err := repo.CreateUser(context.Background(), models.StoredUser{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestFindByIdentity_Email(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(userRowColumns).
		AddRow("u-1", "asha@example.com", nil, "Asha", "hash", "en", true, nil, nil, now)

	mock.ExpectQuery("SELECT id, email, phone .+ FROM users WHERE email = \\$1").
		WithArgs("asha@example.com").
		WillReturnRows(rows)

	found, err := repo.FindByIdentity(context.Background(), models.Identity{Email: "asha@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Email == nil || *found.Email != "asha@example.com" {
		t.Errorf("expected email asha@example.com, got %v", found.Email)
	}
	if found.Phone != nil {
		t.Errorf("expected nil phone, got %v", *found.Phone)
	}
	if !found.IsVerified || found.PreferredLanguage != models.LanguageEnglish {
		t.Errorf("unexpected user %+v", found.User)
	}
	if found.OTPCode != nil || found.OTPExpiresAt != nil {
		t.Error("expected OTP state to be empty")
	}
}

func TestFindByIdentity_Phone(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	expires := time.Now().Add(10 * time.Minute)
	rows := sqlmock.NewRows(userRowColumns).
		AddRow("u-2", nil, "+919876543210", "Ravi", "hash", "ta", false, "654321", expires, time.Now())

	mock.ExpectQuery("FROM users WHERE phone = \\$1").
		WithArgs("+919876543210").
		WillReturnRows(rows)

	found, err := repo.FindByIdentity(context.Background(), models.Identity{Phone: "+919876543210"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.OTPCode == nil || *found.OTPCode != "654321" {
		t.Errorf("expected OTP 654321, got %v", found.OTPCode)
	}
	if found.OTPExpiresAt == nil || !found.OTPExpiresAt.Equal(expires) {
		t.Errorf("expected OTP expiry %v, got %v", expires, found.OTPExpiresAt)
	}
}

func TestFindByIdentity_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM users").
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.FindByIdentity(context.Background(), models.Identity{Email: "nobody@example.com"})
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindByID_UnexpectedError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM users WHERE id = \\$1").
		WithArgs("u-1").
		WillReturnError(errors.New("db failure"))

	_, err := repo.FindByID(context.Background(), "u-1")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindByID_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM users WHERE id").
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("u-1"))

	if _, err := repo.FindByID(context.Background(), "u-1"); err == nil {
		t.Fatal("expected scan error, got nil")
	}
}

func TestMarkVerified(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		execErr  error
		wantErr  error
	}{
		{name: "verified", affected: 1},
		{name: "unknown user", affected: 0, wantErr: ErrNoUserWasFound},
		{name: "db error", execErr: errors.New("boom"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestUserRepo(t)
			defer db.Close()

			exp := mock.ExpectExec("UPDATE users\\s+SET is_verified = TRUE").WithArgs("u-1")
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			err := repo.MarkVerified(context.Background(), "u-1")
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestUpdateLanguage(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE users\\s+SET preferred_language").
		WithArgs("u-1", "ta").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateLanguage(context.Background(), "u-1", models.LanguageTamil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteExpiredUnverified(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec("DELETE FROM users").
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.DeleteExpiredUnverified(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 deleted rows, got %d", n)
	}
}
