// internal/selections/repository.go
// Durable favorites store. Rows form a set: add and remove are
// idempotent and commutative, so concurrent toggles from two devices
// converge without coordination.

package selections

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	ListFavorites(ctx context.Context, userID int64) ([]int64, error)
	AddFavorite(ctx context.Context, userID, destinationID int64) error
	RemoveFavorite(ctx context.Context, userID, destinationID int64) error
	IsFavorite(ctx context.Context, userID, destinationID int64) (bool, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) ListFavorites(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	query := `
        SELECT destination_id FROM user_favorites
        WHERE user_id = $1
        ORDER BY created_at, destination_id
    `
	if err := r.db.SelectContext(ctx, &ids, query, userID); err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return ids, nil
}

func (r *postgresRepository) AddFavorite(ctx context.Context, userID, destinationID int64) error {
	// ON CONFLICT DO NOTHING gives array-union semantics: adding an
	// already-present member is a no-op, not an error.
	query := `
        INSERT INTO user_favorites (user_id, destination_id)
        VALUES ($1, $2)
        ON CONFLICT (user_id, destination_id) DO NOTHING
    `
	_, err := r.db.ExecContext(ctx, query, userID, destinationID)
	return err
}

func (r *postgresRepository) RemoveFavorite(ctx context.Context, userID, destinationID int64) error {
	query := `DELETE FROM user_favorites WHERE user_id = $1 AND destination_id = $2`
	_, err := r.db.ExecContext(ctx, query, userID, destinationID)
	return err
}

func (r *postgresRepository) IsFavorite(ctx context.Context, userID, destinationID int64) (bool, error) {
	var exists bool
	query := `
        SELECT EXISTS (
            SELECT 1 FROM user_favorites WHERE user_id = $1 AND destination_id = $2
        )
    `
	err := r.db.QueryRowxContext(ctx, query, userID, destinationID).Scan(&exists)
	return exists, err
}
