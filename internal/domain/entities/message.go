package entities

import "time"

type MessageType string

const (
	MessageTypeSystem MessageType = "system"
	MessageTypeText   MessageType = "text"
	// MessageTypeLink carries an invoice capability token so the buyer can
	// open the invoice without a session.
	MessageTypeLink MessageType = "link"
)

// Message is one append-only thread history entry. Every user-visible saga
// transition writes one.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI thread_id-index: thread_id
type Message struct {
	ID        string
	ThreadID  string
	SenderID  string
	Content   string
	Type      MessageType
	Token     string
	Read      bool
	CreatedAt time.Time
}
