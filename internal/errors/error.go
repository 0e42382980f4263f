package errors

import "errors"

var (
	ErrInvalidTableSize  = errors.New("hash table size must be positive")
	ErrEmptyMansion      = errors.New("mansion has no entrance room")
	ErrInvalidLeafPolicy = errors.New("unknown leaf policy")
	ErrNoPath            = errors.New("no path in that direction")
	ErrUnknownChoice     = errors.New("unknown movement choice")
	ErrExplorationOver   = errors.New("exploration already finished")
	ErrNotStarted        = errors.New("exploration has not started")
	ErrCasebookNotFound  = errors.New("casebook not found")
	ErrInvalidCasebook   = errors.New("invalid casebook")
	ErrSessionClosed     = errors.New("session is closed")
)
