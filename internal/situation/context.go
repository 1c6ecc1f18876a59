package situation

import (
	"log/slog"

	"github.com/osse101/BrandishRewards_Go/internal/domain"
)

// Context is an immutable snapshot of the facts about one triggering event.
// It is built once through a Builder and never changes afterwards; every
// generation decision is a pure function of a Context plus a random source.
type Context struct {
	subject     domain.ActorID
	counterpart domain.ActorID

	elapsedMinutes       int
	successCount         int
	sinceNegativeSeconds int
	contestSeconds       int

	rank     string
	location string
	cause    domain.Cause

	controlledTask bool
	restrained     bool
	contestedZone  bool
	specialEvent   bool
	allies         int
	opponents      int

	multiplier float64
	ext        map[string]any
}

// Subject is the actor the rewards are generated for.
func (c *Context) Subject() domain.ActorID { return c.subject }

// Counterpart is the other actor involved in the event, if any.
func (c *Context) Counterpart() domain.ActorID { return c.counterpart }

// ElapsedMinutes is how long the subject has been active, in minutes.
func (c *Context) ElapsedMinutes() int { return c.elapsedMinutes }

// SuccessCount is the number of prior successes this session.
func (c *Context) SuccessCount() int { return c.successCount }

// SecondsSinceNegative is the time since the subject's last negative event.
func (c *Context) SecondsSinceNegative() int { return c.sinceNegativeSeconds }

// ContestSeconds is how long the contest that produced this event lasted.
func (c *Context) ContestSeconds() int { return c.contestSeconds }

// Rank is the subject's rank on the ladder.
func (c *Context) Rank() string { return c.rank }

// Location is the region tag where the event happened.
func (c *Context) Location() string { return c.location }

// Cause is the triggering cause.
func (c *Context) Cause() domain.Cause { return c.cause }

// ControlledTask reports whether the event was part of a controlled task.
func (c *Context) ControlledTask() bool { return c.controlledTask }

// Restrained reports whether the counterpart was restrained.
func (c *Context) Restrained() bool { return c.restrained }

// ContestedZone reports whether the event happened in a contested zone.
func (c *Context) ContestedZone() bool { return c.contestedZone }

// SpecialEvent reports whether a special event is active.
func (c *Context) SpecialEvent() bool { return c.specialEvent }

// Allies is the number of allies present.
func (c *Context) Allies() int { return c.allies }

// Opponents is the number of opponents present.
func (c *Context) Opponents() int { return c.opponents }

// Multiplier is the global quantity multiplier (1.0 unless set).
func (c *Context) Multiplier() float64 { return c.multiplier }

// Ext returns the raw extension value for key.
func (c *Context) Ext(key string) (any, bool) {
	v, ok := c.ext[key]
	return v, ok
}

// ExtInt returns an integer extension value. Any Go integer type or a whole
// float64 (as produced by JSON decoding) is accepted.
func (c *Context) ExtInt(key string) (int64, bool) {
	switch v := c.ext[key].(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		if v == float64(int64(v)) {
			return int64(v), true
		}
	}
	return 0, false
}

// ExtFloat returns a numeric extension value as float64.
func (c *Context) ExtFloat(key string) (float64, bool) {
	switch v := c.ext[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// ExtString returns a string extension value.
func (c *Context) ExtString(key string) (string, bool) {
	v, ok := c.ext[key].(string)
	return v, ok
}

// ExtBool returns a boolean extension value.
func (c *Context) ExtBool(key string) (bool, bool) {
	v, ok := c.ext[key].(bool)
	return v, ok
}

// ExtValues returns a deep copy of the extension map. Mutating it does not affect c.
func (c *Context) ExtValues() map[string]any {
	return cloneMap(c.ext)
}

// LogValue implements slog.LogValuer so contexts can be logged as a group.
func (c *Context) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String(LogFieldSubject, string(c.subject)),
		slog.String(LogFieldRank, c.rank),
		slog.String(LogFieldLocation, c.location),
		slog.String(LogFieldCause, string(c.cause)),
	)
}

// cloneMap copies m, descending into []any and map[string]any and copying
// []string, []int and []float64 values.
func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case []string:
		return append([]string(nil), t...)
	case []int:
		return append([]int(nil), t...)
	case []float64:
		return append([]float64(nil), t...)
	}
	return v
}
