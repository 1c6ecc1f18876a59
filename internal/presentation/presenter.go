package presentation

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/BrandishRewards_Go/internal/domain"
	"github.com/osse101/BrandishRewards_Go/internal/logger"
	"github.com/osse101/BrandishRewards_Go/internal/quality"
	"github.com/osse101/BrandishRewards_Go/internal/situation"
)

// LogPresenter renders reward side effects as structured log lines and keeps
// a tally of the effect tokens it has played. It is safe for concurrent use.
type LogPresenter struct {
	mu    sync.Mutex
	tally map[string]int
}

// NewLogPresenter creates a presenter with an empty tally
func NewLogPresenter() *LogPresenter {
	return &LogPresenter{tally: make(map[string]int)}
}

// Present logs the item's effects and, for broadcast tiers, its announcement.
func (p *LogPresenter) Present(ctx context.Context, sc *situation.Context, item domain.RewardItem, tier *quality.Tier) error {
	if tier == nil {
		return nil
	}
	log := logger.FromContext(ctx)

	if !tier.Effects.IsZero() {
		log.Debug(LogMsgEffects,
			LogFieldKind, item.Kind,
			LogFieldTier, tier.ID,
			LogFieldSound, tier.Effects.Sound,
			LogFieldVisual, tier.Effects.Visual)
		p.count(tier.Effects)
	}

	if item.SpecialEffect {
		log.Debug(LogMsgSpecialEffect, LogFieldKind, item.Kind, LogFieldTier, tier.ID)
		p.add(EffectSpecial + ":" + string(tier.ID))
	}

	if item.Broadcast {
		var subject domain.ActorID
		if sc != nil {
			subject = sc.Subject()
		}
		log.Info(LogMsgBroadcast,
			LogFieldSubject, subject,
			LogFieldAnnouncement, tier.Effects.Announcement,
			LogFieldMessage, p.Announcement(subject, item, tier))
	}
	return nil
}

// Announcement renders the chat line for a broadcast item, e.g.
// "p1 found a Legendary Iron Sword (Sharpness IV, Unbreaking II)".
func (p *LogPresenter) Announcement(subject domain.ActorID, item domain.RewardItem, tier *quality.Tier) string {
	var b strings.Builder
	b.WriteString(string(subject))
	b.WriteString(" found ")
	if item.Quantity > 1 {
		b.WriteString(strconv.Itoa(item.Quantity))
		b.WriteString("x ")
	} else {
		b.WriteString("a ")
	}
	b.WriteString(p.TierTitle(tier))
	b.WriteString(" ")
	b.WriteString(p.KindTitle(item.Kind))

	if len(item.Augmentations) > 0 {
		parts := make([]string, len(item.Augmentations))
		for i, aug := range item.Augmentations {
			parts[i] = fmt.Sprintf("%s %s", p.KindTitle(aug.Name), Roman(aug.Level))
		}
		b.WriteString(" (")
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString(")")
	}
	return b.String()
}

// TierTitle returns the display name of tier, title-cased
func (p *LogPresenter) TierTitle(tier *quality.Tier) string {
	name := tier.Name
	if name == "" {
		name = string(tier.ID)
	}
	return title(name)
}

// KindTitle turns an identifier like "iron_sword" into "Iron Sword"
func (p *LogPresenter) KindTitle(kind string) string {
	return title(strings.ReplaceAll(kind, "_", " "))
}

// title uses a fresh Caser per call; a Caser is not safe for concurrent use
func title(s string) string {
	return cases.Title(language.English).String(s)
}

// Tally returns how often each effect token has been played, keyed "group:token".
func (p *LogPresenter) Tally() map[string]int {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[string]int, len(p.tally))
	for k, v := range p.tally {
		out[k] = v
	}
	return out
}

func (p *LogPresenter) count(e quality.Effects) {
	if e.Sound != "" {
		p.add(EffectSound + ":" + e.Sound)
	}
	if e.Visual != "" {
		p.add(EffectVisual + ":" + e.Visual)
	}
	if e.Announcement != "" {
		p.add(EffectAnnouncement + ":" + e.Announcement)
	}
}

func (p *LogPresenter) add(key string) {
	p.mu.Lock()
	p.tally[key]++
	p.mu.Unlock()
}

var romanNumerals = []struct {
	value  int
	symbol string
}{
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// Roman renders levels 1 through 39 as roman numerals; other values are
// rendered as plain digits.
func Roman(n int) string {
	if n <= 0 || n >= 40 {
		return strconv.Itoa(n)
	}
	var b strings.Builder
	for _, r := range romanNumerals {
		for n >= r.value {
			b.WriteString(r.symbol)
			n -= r.value
		}
	}
	return b.String()
}
