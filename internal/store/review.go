package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/instaboost/apiserver/types"
)

// ReviewRepository handles persistence for reviews.
type ReviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review types.Review) (types.Review, error) {
	review.CreatedAt = time.Now()

	const query = `
		INSERT INTO reviews (user_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		review.UserID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
	).Scan(&review.ID); err != nil {
		return types.Review{}, err
	}
	return review, nil
}

func (r *ReviewRepository) List(ctx context.Context) ([]types.Review, error) {
	const query = `
		SELECT id, user_id, rating, comment, created_at
		FROM reviews
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]types.Review, 0)
	for rows.Next() {
		var review types.Review
		if err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}
