package services

import (
	"context"

	"github.com/instaboost/apiserver/internal/pricing"
	"github.com/instaboost/apiserver/types"
)

// Free-trial orders are fixed: 20 combined followers+likes at no charge.
const (
	freeTrialQuantity = 20
	freeTrialAmount   = "0.00"
)

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, order types.Order) (types.Order, error)
}

// OrderService encapsulates order use-cases.
type OrderService struct {
	repo OrderRepository
}

func NewOrderService(repo OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// PlaceFreeTrial records a free-trial order for the given user. Quantity
// and amount are fixed regardless of what the client sent.
func (s *OrderService) PlaceFreeTrial(ctx context.Context, userID int, instagramTarget string) (types.Order, error) {
	return s.repo.Create(ctx, types.Order{
		UserID:          userID,
		ServiceType:     types.ServiceFollowersLikes,
		Quantity:        freeTrialQuantity,
		AmountUSD:       freeTrialAmount,
		Status:          types.OrderStatusPending,
		InstagramTarget: instagramTarget,
	})
}

// PlacePaid records a paid order from an already-validated quote.
func (s *OrderService) PlacePaid(ctx context.Context, userID int, quote pricing.Quote, instagramTarget string) (types.Order, error) {
	return s.repo.Create(ctx, types.Order{
		UserID:          userID,
		ServiceType:     quote.ServiceType,
		Quantity:        quote.Quantity,
		AmountUSD:       quote.AmountUSD,
		Status:          types.OrderStatusPending,
		InstagramTarget: instagramTarget,
	})
}
