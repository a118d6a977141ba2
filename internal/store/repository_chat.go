package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-climate-intel/internal/logger"
	"github.com/MKhiriev/go-climate-intel/models"
)

type chatRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewChatRepository constructs a [ChatRepository] backed by db.
func NewChatRepository(db *DB, logger *logger.Logger) ChatRepository {
	logger.Debug().Msg("creating chat repository")
	return &chatRepository{
		db:     db,
		logger: logger,
	}
}

// SaveChat stores one exchange and returns it with its id and timestamp.
func (r *chatRepository) SaveChat(ctx context.Context, record models.ChatRecord) (models.ChatRecord, error) {
	log := logger.FromContext(ctx)

	err := r.db.withRetry(ctx, "SaveChat", func() error {
		return r.db.QueryRowContext(ctx, saveChat,
			record.UserID,
			record.Message,
			record.Response,
			string(record.Language),
		).Scan(&record.ID, &record.CreatedAt)
	})
	if err != nil {
		log.Err(err).Str("func", "*chatRepository.SaveChat").Msg("error saving chat")
		return models.ChatRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return record, nil
}

// ListChats returns up to limit latest exchanges of the user, oldest first.
func (r *chatRepository) ListChats(ctx context.Context, userID string, limit uint64) ([]models.ChatRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListChatsQuery(userID, limit)
	if err != nil {
		log.Err(err).Str("func", "*chatRepository.ListChats").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*chatRepository.ListChats").Msg("error querying chat history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.ChatRecord, 0, min(limit, 100))
	for rows.Next() {
		var (
			rec  models.ChatRecord
			lang string
		)
		if err = rows.Scan(&rec.ID, &rec.UserID, &rec.Message, &rec.Response, &lang, &rec.CreatedAt); err != nil {
			log.Err(err).Str("func", "*chatRepository.ListChats").Msg("error scanning chat row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		rec.Language = models.Language(lang)
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	slices.Reverse(records)
	return records, nil
}
