package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/collections-admin-api/internal/database"
	"github.com/collections-admin-api/internal/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// collectionRepo is the concrete implementation of CollectionRepository
type collectionRepo struct {
	db *database.DB
}

// NewCollectionRepo creates a new collection repository
func NewCollectionRepo(db *database.DB) CollectionRepository {
	return &collectionRepo{db: db}
}

// Create inserts a new collection, assigning an ID when none is set
func (r *collectionRepo) Create(ctx context.Context, c *models.Collection) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	query := `
		INSERT INTO collections (id, name, author, type, genre)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		c.ID, c.Name, c.Author, c.Type, pq.Array(c.Genre),
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert collection: %w", err)
	}
	return nil
}

// Update overwrites the editable fields of an existing collection
func (r *collectionRepo) Update(ctx context.Context, c *models.Collection) error {
	query := `
		UPDATE collections SET
			name = $2, author = $3, type = $4, genre = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		c.ID, c.Name, c.Author, c.Type, pq.Array(c.Genre),
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update collection %s: %w", c.ID, err)
	}
	return nil
}

// CreateOrUpdate updates c when isEditing is set and creates it otherwise
func (r *collectionRepo) CreateOrUpdate(ctx context.Context, c *models.Collection, isEditing bool) error {
	if isEditing {
		return r.Update(ctx, c)
	}
	return r.Create(ctx, c)
}

// GetByID retrieves a collection by ID
func (r *collectionRepo) GetByID(ctx context.Context, id string) (*models.Collection, error) {
	query := `SELECT id, name, author, type, genre, created_at, updated_at FROM collections WHERE id = $1`

	var c models.Collection
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Author, &c.Type, pq.Array(&c.Genre),
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// List returns collections, newest first
func (r *collectionRepo) List(ctx context.Context, limit, offset int) ([]*models.Collection, error) {
	query := `
		SELECT id, name, author, type, genre, created_at, updated_at
		FROM collections
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Collection
	for rows.Next() {
		var c models.Collection
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Author, &c.Type, pq.Array(&c.Genre),
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// Delete removes a collection by ID
func (r *collectionRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM collections WHERE id = $1", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of collections
func (r *collectionRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM collections").Scan(&count)
	return count, err
}
