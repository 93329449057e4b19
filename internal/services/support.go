package services

import (
	"context"

	"github.com/instaboost/apiserver/types"
)

// SupportMessageRepository defines persistence operations for the chat log.
type SupportMessageRepository interface {
	Create(ctx context.Context, msg types.SupportMessage) (types.SupportMessage, error)
	List(ctx context.Context) ([]types.SupportMessage, error)
}

// SupportService encapsulates support-chat use-cases.
type SupportService struct {
	repo SupportMessageRepository
}

func NewSupportService(repo SupportMessageRepository) *SupportService {
	return &SupportService{repo: repo}
}

// Send appends a visitor message to the chat log. Messages sent through
// the public endpoint are never admin messages.
func (s *SupportService) Send(ctx context.Context, name, message string) (types.SupportMessage, error) {
	return s.repo.Create(ctx, types.SupportMessage{
		Name:    name,
		Message: message,
	})
}

func (s *SupportService) List(ctx context.Context) ([]types.SupportMessage, error) {
	return s.repo.List(ctx)
}
