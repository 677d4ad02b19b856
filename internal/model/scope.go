package model

// Scope carries the identity of the user behind a request, sourced from the
// Telegram transport.
type Scope struct {
	UserID   int64  // Telegram sender ID; tasks and conversations are keyed by it
	Username string
	ChatID   int64 // Chat to reply into
}
