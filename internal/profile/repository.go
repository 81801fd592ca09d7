// internal/profile/repository.go

package profile

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var ErrProfileNotFound = errors.New("preference profile not found")

type Repository interface {
	Get(ctx context.Context, userID int64) (Preferences, error)
	// Save merges the given snapshot into the stored profile. Fields the
	// snapshot does not set survive the write.
	Save(ctx context.Context, userID int64, prefs Preferences) (Preferences, error)
	Delete(ctx context.Context, userID int64) error
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Get(ctx context.Context, userID int64) (Preferences, error) {
	var raw []byte
	query := `SELECT preferences FROM user_preferences WHERE user_id = $1`

	err := r.db.QueryRowxContext(ctx, query, userID).Scan(&raw)
	if err == sql.ErrNoRows {
		return Preferences{}, ErrProfileNotFound
	}
	if err != nil {
		return Preferences{}, fmt.Errorf("load preferences: %w", err)
	}

	var prefs Preferences
	if err := json.Unmarshal(raw, &prefs); err != nil {
		return Preferences{}, fmt.Errorf("decode preferences: %w", err)
	}
	return prefs, nil
}

func (r *postgresRepository) Save(ctx context.Context, userID int64, prefs Preferences) (Preferences, error) {
	// The merge happens in Go, not in SQL: Preferences.Merge knows the
	// presence rules (nil slice = not asked, empty slice = cleared) that
	// a JSON-level key merge cannot see once omitempty drops the key.
	// The stored document is then replaced wholesale.
	stored, err := r.Get(ctx, userID)
	if err != nil && !errors.Is(err, ErrProfileNotFound) {
		return Preferences{}, err
	}
	merged := stored.Merge(prefs)

	raw, err := json.Marshal(merged)
	if err != nil {
		return Preferences{}, fmt.Errorf("encode preferences: %w", err)
	}

	query := `
        INSERT INTO user_preferences (user_id, preferences, updated_at)
        VALUES ($1, $2, CURRENT_TIMESTAMP)
        ON CONFLICT (user_id) DO UPDATE
        SET preferences = EXCLUDED.preferences,
            updated_at = CURRENT_TIMESTAMP
    `
	if _, err := r.db.ExecContext(ctx, query, userID, raw); err != nil {
		return Preferences{}, fmt.Errorf("save preferences: %w", err)
	}
	return merged, nil
}

func (r *postgresRepository) Delete(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM user_preferences WHERE user_id = $1`, userID)
	return err
}
