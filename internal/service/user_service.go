package service

import (
	"context"
	"errors"

	"github.com/collections-admin-api/internal/repository"
	"github.com/collections-admin-api/internal/userstatus"
	"github.com/rs/zerolog"
)

// userService is the concrete implementation of UserService
type userService struct {
	repo    repository.UserRepository
	deriver *userstatus.Deriver
	log     zerolog.Logger
}

func newUserService(repo repository.UserRepository, deriver *userstatus.Deriver, log zerolog.Logger) *userService {
	return &userService{
		repo:    repo,
		deriver: deriver,
		log:     log.With().Str("service", "user").Logger(),
	}
}

// NewUserService creates a UserService deriving cards with deriver
func NewUserService(repo repository.UserRepository, deriver *userstatus.Deriver, log zerolog.Logger) UserService {
	return newUserService(repo, deriver, log)
}

func (s *userService) List(ctx context.Context, limit, offset int) ([]userstatus.Card, error) {
	users, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	cards := make([]userstatus.Card, 0, len(users))
	for _, u := range users {
		cards = append(cards, s.deriver.Card(u))
	}
	return cards, nil
}

func (s *userService) Get(ctx context.Context, id string) (*userstatus.Card, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	card := s.deriver.Card(u)
	return &card, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("User deleted")
	return nil
}

func (s *userService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
