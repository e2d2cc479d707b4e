package app

import "github.com/google/uuid"

// newSessionID returns a random UUIDv4 used to correlate log lines of one game.
func newSessionID() string { return uuid.NewString() }
