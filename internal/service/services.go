package service

import (
	"context"
	"errors"

	"github.com/collections-admin-api/internal/config"
	"github.com/collections-admin-api/internal/form"
	"github.com/collections-admin-api/internal/metrics"
	"github.com/collections-admin-api/internal/models"
	"github.com/collections-admin-api/internal/notify"
	"github.com/collections-admin-api/internal/repository"
	"github.com/collections-admin-api/internal/userstatus"
	"github.com/rs/zerolog"
)

// ErrCollectionNotFound is returned when an edit or delete targets a missing collection
var ErrCollectionNotFound = errors.New("collection not found")

// ErrUserNotFound is returned when a user lookup or delete finds nothing
var ErrUserNotFound = errors.New("user not found")

// CollectionOptions is the vocabulary offered by the collection form
type CollectionOptions struct {
	Genres       []string                   `json:"genres"`
	ContentTypes []models.ContentTypeOption `json:"content_types"`
}

// CollectionService defines the interface for collection operations
type CollectionService interface {
	Options() CollectionOptions
	List(ctx context.Context, limit, offset int) ([]*models.Collection, error)
	Get(ctx context.Context, id string) (*models.Collection, error)
	Create(ctx context.Context, in models.CollectionInput) (*form.Outcome, error)
	Update(ctx context.Context, id string, in models.CollectionInput) (*form.Outcome, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// UserService defines the interface for user display operations
type UserService interface {
	List(ctx context.Context, limit, offset int) ([]userstatus.Card, error)
	Get(ctx context.Context, id string) (*userstatus.Card, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// Services holds all service interfaces
type Services struct {
	Collection CollectionService
	User       UserService
}

// NewServices creates all services. sink receives every form notification.
func NewServices(repos *repository.Repositories, sink notify.Sink, m *metrics.Metrics, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Collection: newCollectionService(repos.Collection, sink, m, log),
		User:       newUserService(repos.User, userstatus.New(userstatus.WithActiveDays(cfg.Dashboard.ActiveDays)), log),
	}
}
