package repository

import (
	"context"
	"database/sql"

	"github.com/collections-admin-api/internal/database"
	"github.com/collections-admin-api/internal/models"
)

// userRepo is the concrete implementation of UserRepository
type userRepo struct {
	db *database.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *database.DB) UserRepository {
	return &userRepo{db: db}
}

const userColumns = `id, name, display_name, email, photo_url, last_login, package_sub,
	coins, role, country, sub_expiry, created_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser reads one user row. Timestamps imported from the document store
// are kept as raw text and normalized by the caller.
func scanUser(row rowScanner) (*models.User, error) {
	var (
		u                                    models.User
		name, displayName, photoURL          sql.NullString
		lastLogin, packageSub, role, country sql.NullString
		subExpiry                            sql.NullString
		coins                                sql.NullInt64
	)
	err := row.Scan(
		&u.ID, &name, &displayName, &u.Email, &photoURL, &lastLogin, &packageSub,
		&coins, &role, &country, &subExpiry, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	u.Name = name.String
	u.DisplayName = displayName.String
	u.PhotoURL = photoURL.String
	u.PackageSub = packageSub.String
	u.Role = role.String
	u.Country = country.String
	if lastLogin.Valid {
		u.LastLogin = lastLogin.String
	}
	if subExpiry.Valid {
		u.SubExpiry = subExpiry.String
	}
	if coins.Valid {
		c := coins.Int64
		u.Coins = &c
	}
	return &u, nil
}

// GetByID retrieves a user by ID
func (r *userRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// List returns users, newest first
func (r *userRepo) List(ctx context.Context, limit, offset int) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// Delete removes a user by ID
func (r *userRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
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

// Count returns the total number of users
func (r *userRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count)
	return count, err
}
