// Package library provides the PostgreSQL-backed repository for user game
// library entries stored in library.library_entries.
package library

const (
	// Every conflicting upsert resets created_at as well as updated_at.
	upsertQuery = `
		INSERT INTO library.library_entries (user_id, game_id, game_status)
		VALUES ($1, $2, $3::library.game_status)
		ON CONFLICT (user_id, game_id)
		DO UPDATE SET
			game_status = EXCLUDED.game_status,
			created_at = timezone('utc', NOW()),
			updated_at = timezone('utc', NOW())
		RETURNING user_id, game_id, game_status, created_at, updated_at
	`

	listQuery = `
		SELECT user_id, game_id, game_status, created_at, updated_at
		FROM library.library_entries
		WHERE user_id = $1
		ORDER BY updated_at DESC, game_id
		LIMIT $2 OFFSET $3
	`

	listByStatusQuery = `
		SELECT user_id, game_id, game_status, created_at, updated_at
		FROM library.library_entries
		WHERE user_id = $1 AND game_status = $2::library.game_status
		ORDER BY updated_at DESC, game_id
		LIMIT $3 OFFSET $4
	`

	countQuery = `
		SELECT COUNT(*)
		FROM library.library_entries
		WHERE user_id = $1
	`
)
