package repository

import (
	"context"
	"errors"

	"github.com/collections-admin-api/internal/database"
	"github.com/collections-admin-api/internal/models"
)

// ErrNotFound is returned by Update and Delete when the row does not exist
var ErrNotFound = errors.New("record not found")

// CollectionRepository defines the interface for collection data operations
type CollectionRepository interface {
	Create(ctx context.Context, c *models.Collection) error
	Update(ctx context.Context, c *models.Collection) error
	CreateOrUpdate(ctx context.Context, c *models.Collection, isEditing bool) error
	GetByID(ctx context.Context, id string) (*models.Collection, error)
	List(ctx context.Context, limit, offset int) ([]*models.Collection, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context, limit, offset int) ([]*models.User, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Collection CollectionRepository
	User       UserRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Collection: NewCollectionRepo(db),
		User:       NewUserRepo(db),
	}
}
