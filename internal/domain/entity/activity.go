package entity

import "strings"

// ActivityTag is the movement mode reported with a location sample.
type ActivityTag string

const (
	ActivityStationary ActivityTag = "stationary"
	ActivityWalking    ActivityTag = "walking"
	ActivityRunning    ActivityTag = "running"
	ActivityBiking     ActivityTag = "biking"
	ActivityDriving    ActivityTag = "driving"

	// ActivityUnknown covers values written by older clients that this build does not know.
	ActivityUnknown ActivityTag = "unknown"
)

// ParseActivityTag normalises s. Empty input defaults to stationary.
func ParseActivityTag(s string) ActivityTag {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ActivityStationary
	}

	switch tag := ActivityTag(s); tag {
	case ActivityStationary, ActivityWalking, ActivityRunning, ActivityBiking, ActivityDriving:
		return tag
	default:
		return ActivityUnknown
	}
}

// Matches compares tags case-insensitively against a raw filter value.
func (a ActivityTag) Matches(filter string) bool {
	return strings.EqualFold(string(a), strings.TrimSpace(filter))
}
