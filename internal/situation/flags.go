package situation

import (
	"fmt"

	"github.com/osse101/BrandishRewards_Go/internal/domain"
)

// Flag is a named boolean condition derived from a Context. Weight and quantity
// modifiers are keyed by flags.
type Flag string

const (
	FlagContestedZone         Flag = "contested_zone"
	FlagSpecialEvent          Flag = "special_event"
	FlagControlledTask        Flag = "controlled_task"
	FlagRestrained            Flag = "restrained"
	FlagIsolation             Flag = "isolation"
	FlagOutnumbered           Flag = "outnumbered"
	FlagHighRank              Flag = "high_rank"
	FlagLongActivity          Flag = "long_activity"
	FlagActivePerformer       Flag = "active_performer"
	FlagFirstOccurrenceWindow Flag = "first_occurrence_window"
)

// Flags is the complete flag vocabulary in a stable order
var Flags = []Flag{
	FlagContestedZone,
	FlagSpecialEvent,
	FlagControlledTask,
	FlagRestrained,
	FlagIsolation,
	FlagOutnumbered,
	FlagHighRank,
	FlagLongActivity,
	FlagActivePerformer,
	FlagFirstOccurrenceWindow,
}

// ParseFlag validates a flag name from configuration
func ParseFlag(s string) (Flag, error) {
	for _, f := range Flags {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownFlag, s)
}

// Resolver evaluates flags against contexts. It needs the rank ladder for high_rank.
type Resolver struct {
	Ladder Ladder
}

// NewResolver creates a flag resolver for the given ladder
func NewResolver(l Ladder) Resolver {
	return Resolver{Ladder: l}
}

// Holds reports whether flag is true for c. Unknown flags never hold.
func (r Resolver) Holds(c *Context, flag Flag) bool {
	switch flag {
	case FlagContestedZone:
		return c.contestedZone
	case FlagSpecialEvent:
		return c.specialEvent
	case FlagControlledTask:
		return c.controlledTask
	case FlagRestrained:
		return c.restrained
	case FlagIsolation:
		return c.allies <= IsolationMaxAllies
	case FlagOutnumbered:
		return c.opponents > c.allies
	case FlagHighRank:
		return r.Ladder.IsHigh(c.rank)
	case FlagLongActivity:
		return c.elapsedMinutes >= LongActivityMinutes
	case FlagActivePerformer:
		return c.successCount >= ActivePerformerSuccesses
	case FlagFirstOccurrenceWindow:
		return c.successCount == 0
	default:
		return false
	}
}
