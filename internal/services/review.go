package services

import (
	"context"

	"github.com/instaboost/apiserver/types"
)

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review types.Review) (types.Review, error)
	List(ctx context.Context) ([]types.Review, error)
}

// ReviewService encapsulates review use-cases.
type ReviewService struct {
	repo ReviewRepository
}

func NewReviewService(repo ReviewRepository) *ReviewService {
	return &ReviewService{repo: repo}
}

func (s *ReviewService) Create(ctx context.Context, review types.Review) (types.Review, error) {
	return s.repo.Create(ctx, review)
}

func (s *ReviewService) List(ctx context.Context) ([]types.Review, error) {
	return s.repo.List(ctx)
}
