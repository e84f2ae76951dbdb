package library

import (
	"context"
	"fmt"
	"math"

	"github.com/dmitrijs2005/playhub-library/internal/dbx"
	"github.com/dmitrijs2005/playhub-library/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*models.LibraryEntry, error) {
	var (
		entry  models.LibraryEntry
		status string
	)
	if err := row.Scan(&entry.UserID, &entry.GameID, &status, &entry.CreatedAt, &entry.UpdatedAt); err != nil {
		return nil, err
	}
	entry.Status, _ = models.ParseGameStatus(status)
	return &entry, nil
}

// Upsert inserts a new entry or, on a (user_id, game_id) conflict, overwrites
// its status and resets both timestamps. The stored row is returned.
func (r *PostgresRepository) Upsert(ctx context.Context, userID, gameID string, status models.GameStatus) (*models.LibraryEntry, error) {
	row := r.db.QueryRowContext(ctx, upsertQuery, userID, gameID, string(status))

	entry, err := scanEntry(row)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return entry, nil
}

// List returns a window of userID's entries ordered by updated_at descending.
func (r *PostgresRepository) List(ctx context.Context, userID string, status models.GameStatus, limit, offset int32) ([]*models.LibraryEntry, error) {
	query, args := listQuery, []any{userID, limit, offset}
	if status != models.GameStatusUnspecified {
		query, args = listByStatusQuery, []any{userID, string(status), limit, offset}
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select library entries: %w", err)
	}
	defer rows.Close()

	result := make([]*models.LibraryEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan library entry: %w", err)
		}
		result = append(result, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate library entries: %w", err)
	}
	return result, nil
}

// Count returns the number of entries for userID, saturating at MaxInt32.
func (r *PostgresRepository) Count(ctx context.Context, userID string) (int32, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, countQuery, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	if n > math.MaxInt32 {
		return math.MaxInt32, nil
	}
	return int32(n), nil
}
