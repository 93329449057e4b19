package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/instaboost/apiserver/types"
)

// SupportMessageRepository handles persistence for the support chat log.
type SupportMessageRepository struct {
	db *sql.DB
}

func NewSupportMessageRepository(db *sql.DB) *SupportMessageRepository {
	return &SupportMessageRepository{db: db}
}

func (r *SupportMessageRepository) Create(ctx context.Context, msg types.SupportMessage) (types.SupportMessage, error) {
	msg.CreatedAt = time.Now()

	const query = `
		INSERT INTO support_messages (name, message, is_admin, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		msg.Name,
		msg.Message,
		msg.IsAdmin,
		msg.CreatedAt,
	).Scan(&msg.ID); err != nil {
		return types.SupportMessage{}, err
	}
	return msg, nil
}

// List returns the whole chat log in insertion order. created_at alone can
// tie under load, so id breaks ties.
func (r *SupportMessageRepository) List(ctx context.Context) ([]types.SupportMessage, error) {
	const query = `
		SELECT id, name, message, is_admin, created_at
		FROM support_messages
		ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]types.SupportMessage, 0)
	for rows.Next() {
		var msg types.SupportMessage
		if err := rows.Scan(
			&msg.ID,
			&msg.Name,
			&msg.Message,
			&msg.IsAdmin,
			&msg.CreatedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}
