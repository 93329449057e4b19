package services

import (
	"context"

	"github.com/instaboost/apiserver/types"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (types.User, error)
	GetFirst(ctx context.Context) (types.User, error)
	Create(ctx context.Context, user types.User) (types.User, error)
}

// UserService encapsulates user use-cases.
type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (types.User, error) {
	return s.repo.GetByUsername(ctx, username)
}

func (s *UserService) Create(ctx context.Context, user types.User) (types.User, error) {
	return s.repo.Create(ctx, user)
}

// ResolveActingUser decides which user a write operation is attributed to.
//
// There is no session layer: tokens are issued at login but never checked,
// so the stand-in policy is "the first user ever registered". Swap this
// method for token-subject resolution if sessions are ever enforced;
// callers only depend on getting a user back.
func (s *UserService) ResolveActingUser(ctx context.Context) (types.User, error) {
	return s.repo.GetFirst(ctx)
}
