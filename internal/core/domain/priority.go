package domain

// SecurityPriority is a coarse ordinal risk classification derived from
// version thresholds and known-dangerous features.
type SecurityPriority int

const (
	// PriorityNone means no classification was derived.
	PriorityNone SecurityPriority = iota
	// PriorityLow indicates a modern stack with sane defaults.
	PriorityLow
	// PriorityMedium indicates best practices should be reviewed.
	PriorityMedium
	// PriorityHigh indicates known weaknesses needing prompt review.
	PriorityHigh
	// PriorityCritical indicates known vulnerabilities needing immediate action.
	PriorityCritical
)

var priorityNames = map[SecurityPriority]string{
	PriorityNone:     "none",
	PriorityLow:      "low",
	PriorityMedium:   "medium",
	PriorityHigh:     "high",
	PriorityCritical: "critical",
}

// String returns the lowercase name of the priority.
func (p SecurityPriority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return "none"
}

// AtLeast reports whether p is at or above the given threshold.
func (p SecurityPriority) AtLeast(min SecurityPriority) bool {
	return p >= min
}
