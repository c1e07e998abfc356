package entity

import "time"

// CodeEntry is a pending verification code issued for one identifier. A new
// issuance for the same identifier replaces the previous entry.
type CodeEntry struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the entry is past its expiry at the given time.
func (e CodeEntry) Expired(now time.Time) bool {
	return now.After(e.ExpiresAt)
}
