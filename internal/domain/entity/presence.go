package entity

import "strings"

// PresenceTier classifies how recently a user reported a location.
type PresenceTier string

const (
	PresenceOnline  PresenceTier = "ONLINE"
	PresenceAway    PresenceTier = "AWAY"
	PresenceOffline PresenceTier = "OFFLINE"

	// PresenceAll is a filter value only; it never describes a user.
	PresenceAll PresenceTier = "ALL"
)

// ParsePresenceTier accepts any casing. Empty and unknown values return PresenceAll
// and false so callers can decide whether to reject them.
func ParsePresenceTier(s string) (PresenceTier, bool) {
	switch tier := PresenceTier(strings.ToUpper(strings.TrimSpace(s))); tier {
	case PresenceOnline, PresenceAway, PresenceOffline, PresenceAll:
		return tier, true
	default:
		return PresenceAll, false
	}
}

// String returns the wire form.
func (p PresenceTier) String() string {
	return string(p)
}
