package library

import (
	"context"

	"github.com/dmitrijs2005/playhub-library/internal/server/models"
)

// Repository is the storage capability used by the library service.
type Repository interface {
	// Upsert inserts the (userID, gameID) entry or overwrites its status.
	Upsert(ctx context.Context, userID, gameID string, status models.GameStatus) (*models.LibraryEntry, error)
	// List returns userID's entries, most recently updated first.
	// GameStatusUnspecified disables the status filter.
	List(ctx context.Context, userID string, status models.GameStatus, limit, offset int32) ([]*models.LibraryEntry, error)
	// Count returns the number of entries owned by userID.
	Count(ctx context.Context, userID string) (int32, error)
}
