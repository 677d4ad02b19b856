package model

import (
	"sync"
	"time"
)

// Mode describes how the next free-text message from a user is interpreted.
type Mode string

const (
	// ModeListening is the idle state; free text gets an "unrecognized" reply.
	ModeListening Mode = "listening"
	// ModeCollecting means the add wizard is active and the next message
	// fills the first unset Draft field.
	ModeCollecting Mode = "collecting"
)

// Draft accumulates a task's fields as they are entered one per message.
type Draft struct {
	Title    string
	HasTitle bool
	Date     time.Time
	HasDate  bool
}

// Conversation is the per-owner state of the add wizard. Each owner gets an
// independent instance, created lazily on first contact.
type Conversation struct {
	mu    sync.Mutex
	Mode  Mode
	Draft Draft
}

// NewConversation returns a conversation in the listening state.
func NewConversation() *Conversation {
	return &Conversation{Mode: ModeListening}
}

// Lock serializes access to Mode and Draft. Telegram delivers one update at a
// time per chat, but the webhook endpoint itself is concurrent.
func (c *Conversation) Lock() { c.mu.Lock() }

// Unlock releases the conversation lock.
func (c *Conversation) Unlock() { c.mu.Unlock() }

// Reset clears the draft and returns the conversation to listening.
func (c *Conversation) Reset() {
	c.Mode = ModeListening
	c.Draft = Draft{}
}
