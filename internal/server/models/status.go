package models

// GameStatus is the storage token of a play status, as understood by the
// library.game_status Postgres enum.
type GameStatus string

const (
	GameStatusUnspecified GameStatus = "unspecified"
	GameStatusPlan        GameStatus = "plan"
	GameStatusPlaying     GameStatus = "playing"
	GameStatusCompleted   GameStatus = "completed"
	GameStatusDropped     GameStatus = "dropped"
	GameStatusWaiting     GameStatus = "waiting"
)

// AllGameStatuses lists every storage token in enum declaration order.
var AllGameStatuses = []GameStatus{
	GameStatusUnspecified,
	GameStatusPlan,
	GameStatusPlaying,
	GameStatusCompleted,
	GameStatusDropped,
	GameStatusWaiting,
}

// ParseGameStatus returns the GameStatus for token and whether it is known.
// Unknown tokens yield GameStatusUnspecified.
func ParseGameStatus(token string) (GameStatus, bool) {
	for _, s := range AllGameStatuses {
		if string(s) == token {
			return s, true
		}
	}
	return GameStatusUnspecified, false
}

func (s GameStatus) String() string {
	return string(s)
}
