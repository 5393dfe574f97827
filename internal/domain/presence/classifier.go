// Package presence turns the age of a user's latest location sample into a
// presence tier.
package presence

import (
	"time"

	"mapic/internal/domain/entity"
)

const (
	// OnlineWithin is the inclusive upper bound of ONLINE.
	OnlineWithin = 5 * time.Minute
	// AwayWithin is the inclusive upper bound of AWAY.
	AwayWithin = 30 * time.Minute
)

// Classify compares the full elapsed duration against the tier bounds, so exactly
// five minutes is ONLINE and one second more is AWAY. Samples from the future
// (client clock skew) count as ONLINE.
func Classify(lastObservedAt, now time.Time) entity.PresenceTier {
	age := now.Sub(lastObservedAt)

	switch {
	case age <= OnlineWithin:
		return entity.PresenceOnline
	case age <= AwayWithin:
		return entity.PresenceAway
	default:
		return entity.PresenceOffline
	}
}
