package models

import (
	"time"

	"github.com/google/uuid"
)

// LibraryEntry is one user's recorded status for one game. (UserID, GameID)
// is unique in storage.
type LibraryEntry struct {
	UserID    uuid.UUID  `db:"user_id"`
	GameID    uuid.UUID  `db:"game_id"`
	Status    GameStatus `db:"game_status"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

// IsEmpty reports whether e is nil or carries the zero user id, which the
// store never produces for a real row.
func (e *LibraryEntry) IsEmpty() bool {
	return e == nil || e.UserID == uuid.Nil
}
