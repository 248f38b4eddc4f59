package models

// Account event types published to the events topic.
const (
	EventUserRegistered   = "user.registered"
	EventUserLoggedIn     = "user.logged_in"
	EventUserGoalsUpdated = "user.goals_updated"
)

// AccountEvent is an audit record of something that happened to an account.
type AccountEvent struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix time (seconds) the event occurred.
	UserID    int64  `json:"user_id"`   // UserID is the account the event belongs to.
	Type      string `json:"type"`      // Type is one of the Event* constants.
}
