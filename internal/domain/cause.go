package domain

import "strings"

// Cause is the triggering cause of a reward event
type Cause string

const (
	CauseArrest       Cause = "arrest"
	CauseCombat       Cause = "combat"
	CauseEscape       Cause = "escape"
	CauseTaskComplete Cause = "task_complete"
	CauseContraband   Cause = "contraband"
	CauseEvent        Cause = "event"
	CauseOther        Cause = "other"
)

var knownCauses = map[Cause]bool{
	CauseArrest:       true,
	CauseCombat:       true,
	CauseEscape:       true,
	CauseTaskComplete: true,
	CauseContraband:   true,
	CauseEvent:        true,
	CauseOther:        true,
}

// ParseCause maps a raw cause name to a Cause. Unknown names map to CauseOther.
func ParseCause(s string) Cause {
	c := Cause(strings.ToLower(strings.TrimSpace(s)))
	if knownCauses[c] {
		return c
	}
	return CauseOther
}

// IsKnown returns true if c is part of the cause vocabulary
func (c Cause) IsKnown() bool {
	return knownCauses[c]
}
