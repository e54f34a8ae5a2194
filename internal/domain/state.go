package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// NotificationID is the canonical ordered form of a notification id. The
// server sends ids as decimal strings; they are normalized here so cursor
// comparisons are numeric.
type NotificationID int64

func ParseNotificationID(raw string) (NotificationID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, nil
	}

	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse notification id %q: %w", raw, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("notification id %q is negative", raw)
	}

	return NotificationID(n), nil
}

func (id NotificationID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// IsZero reports whether the cursor carries no lower bound.
func (id NotificationID) IsZero() bool {
	return id == 0
}

// State is the single document persisted between runs.
type State struct {
	Server       string
	ClientID     string
	ClientSecret string
	AccessToken  string
	NotifPointer NotificationID
}

func (s State) HasCredentials() bool {
	return strings.TrimSpace(s.Server) != "" &&
		strings.TrimSpace(s.ClientID) != "" &&
		strings.TrimSpace(s.ClientSecret) != "" &&
		strings.TrimSpace(s.AccessToken) != ""
}

// Advance moves the cursor forward to id. It never moves it backwards and
// reports whether the cursor changed.
func (s *State) Advance(id NotificationID) bool {
	if s == nil || id <= s.NotifPointer {
		return false
	}

	s.NotifPointer = id
	return true
}
