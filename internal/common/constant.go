package common

// UserIDLogKey and GameIDLogKey are the structured logging keys used for
// library entry identifiers across layers.
const (
	UserIDLogKey = "user_id"
	GameIDLogKey = "game_id"
)
