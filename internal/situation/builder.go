package situation

import (
	"github.com/osse101/BrandishRewards_Go/internal/domain"
)

// Builder accumulates facts for a Context. Every setter is optional except
// Subject and Location; missing numbers default to 0 and missing booleans to false.
type Builder struct {
	c Context
}

// NewBuilder creates a builder with default values
func NewBuilder() *Builder {
	return &Builder{c: Context{
		cause:      domain.CauseOther,
		multiplier: DefaultMultiplier,
		ext:        make(map[string]any),
	}}
}

// Subject sets the actor the rewards are generated for. Required.
func (b *Builder) Subject(id domain.ActorID) *Builder {
	b.c.subject = id
	return b
}

// Counterpart sets the other actor involved in the event, if any.
func (b *Builder) Counterpart(id domain.ActorID) *Builder {
	b.c.counterpart = id
	return b
}

// ElapsedMinutes sets how long the activity lasted, in minutes.
func (b *Builder) ElapsedMinutes(m int) *Builder {
	b.c.elapsedMinutes = m
	return b
}

// SuccessCount sets the number of prior successes.
func (b *Builder) SuccessCount(n int) *Builder {
	b.c.successCount = n
	return b
}

// SecondsSinceNegative sets the time since the last negative outcome.
func (b *Builder) SecondsSinceNegative(s int) *Builder {
	b.c.sinceNegativeSeconds = s
	return b
}

// ContestSeconds sets how long the contest lasted, in seconds.
func (b *Builder) ContestSeconds(s int) *Builder {
	b.c.contestSeconds = s
	return b
}

// Rank sets the subject's rank. Unknown ranks fall back to the lowest tier.
func (b *Builder) Rank(rank string) *Builder {
	b.c.rank = rank
	return b
}

// Location sets the region tag where the event happened. Required.
func (b *Builder) Location(tag string) *Builder {
	b.c.location = tag
	return b
}

// Cause sets the triggering cause. Defaults to CauseOther.
func (b *Builder) Cause(cause domain.Cause) *Builder {
	b.c.cause = cause
	return b
}

// ControlledTask marks the event as part of a controlled task.
func (b *Builder) ControlledTask(v bool) *Builder {
	b.c.controlledTask = v
	return b
}

// Restrained marks the counterpart as restrained.
func (b *Builder) Restrained(v bool) *Builder {
	b.c.restrained = v
	return b
}

// ContestedZone marks the event as inside a contested zone.
func (b *Builder) ContestedZone(v bool) *Builder {
	b.c.contestedZone = v
	return b
}

// SpecialEvent marks a special event as active.
func (b *Builder) SpecialEvent(v bool) *Builder {
	b.c.specialEvent = v
	return b
}

// Allies sets the number of allies present.
func (b *Builder) Allies(n int) *Builder {
	b.c.allies = n
	return b
}

// Opponents sets the number of opponents present.
func (b *Builder) Opponents(n int) *Builder {
	b.c.opponents = n
	return b
}

// Multiplier sets the global multiplier applied to generated quantities.
func (b *Builder) Multiplier(m float64) *Builder {
	b.c.multiplier = m
	return b
}

// With adds a named extension value for forward-compatible conditions.
// Maps of map[string]any and slices of any, string, int or float64 are copied
// at Build time; other reference values must not be mutated once passed in.
func (b *Builder) With(key string, value any) *Builder {
	b.c.ext[key] = value
	return b
}

// Build validates the mandatory fields and returns an immutable Context.
// The builder may be reused; later setter calls do not affect contexts already built.
func (b *Builder) Build() (*Context, error) {
	var missing []string
	if b.c.subject == "" {
		missing = append(missing, FieldSubject)
	}
	if b.c.location == "" {
		missing = append(missing, FieldLocation)
	}
	if len(missing) > 0 {
		return nil, &domain.ValidationError{Missing: missing}
	}

	c := b.c
	c.ext = cloneMap(b.c.ext)
	return &c, nil
}
