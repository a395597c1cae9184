package models

// Event types published after successful state changes.
const (
	EventAccountRegistered = "account.registered"
	EventAccountLogin      = "account.login"
	EventSkinUploaded      = "skin.uploaded"
)

// Event represents a domain event published to the message broker.
type Event struct {
	EventID   string `json:"event_id"`          // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"`         // Timestamp is the Unix time (seconds) the event occurred.
	Type      string `json:"type"`              // Type is one of the Event* constants.
	AccountID string `json:"account_id"`        // AccountID is the account that caused the event.
	SkinID    string `json:"skin_id,omitempty"` // SkinID is set for skin events.
}
