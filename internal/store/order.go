package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/instaboost/apiserver/types"
)

// OrderRepository handles persistence for orders.
type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, order types.Order) (types.Order, error) {
	order.CreatedAt = time.Now()
	if order.Status == "" {
		order.Status = types.OrderStatusPending
	}

	const query = `
		INSERT INTO orders (user_id, service_type, quantity, amount_usd, status, instagram_target, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		order.UserID,
		order.ServiceType,
		order.Quantity,
		order.AmountUSD,
		order.Status,
		order.InstagramTarget,
		order.CreatedAt,
	).Scan(&order.ID); err != nil {
		return types.Order{}, err
	}
	return order, nil
}
