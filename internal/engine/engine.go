package engine

import (
	"context"
	"math/rand"
	"time"

	"github.com/osse101/BrandishRewards_Go/internal/catalog"
	"github.com/osse101/BrandishRewards_Go/internal/domain"
	"github.com/osse101/BrandishRewards_Go/internal/logger"
	"github.com/osse101/BrandishRewards_Go/internal/metrics"
	"github.com/osse101/BrandishRewards_Go/internal/quality"
	"github.com/osse101/BrandishRewards_Go/internal/situation"
)

// Engine selects the tables applicable to a situational context, rolls them
// and aggregates the results. One Engine is shared by all callers; rule data
// is read-only and each call gets its own random source.
type Engine struct {
	rules     *catalog.RuleCatalog
	selector  TableSelector
	presenter Presenter
	counters  *metrics.Counters
	seeds     SeedSource
}

// Option configures an Engine
type Option func(*Engine)

// WithSelector overrides the selection policy derived from the catalog
func WithSelector(s TableSelector) Option {
	return func(e *Engine) { e.selector = s }
}

// WithPresenter sets the capability that renders item side effects
func WithPresenter(p Presenter) Option {
	return func(e *Engine) { e.presenter = p }
}

// WithCounters shares a counter map with the engine
func WithCounters(c *metrics.Counters) Option {
	return func(e *Engine) { e.counters = c }
}

// WithSeedSource sets where Generate gets its per-call seeds
func WithSeedSource(s SeedSource) Option {
	return func(e *Engine) { e.seeds = s }
}

// New creates an engine over rules
func New(rules *catalog.RuleCatalog, opts ...Option) *Engine {
	e := &Engine{
		rules:     rules,
		selector:  SelectorFor(rules),
		presenter: NopPresenter{},
		counters:  metrics.NewCounters(),
		seeds:     CryptoSeed,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rules returns the catalog the engine generates from
func (e *Engine) Rules() *catalog.RuleCatalog { return e.rules }

// Generate produces the rewards for sc using a freshly seeded random source.
// The result is never nil.
func (e *Engine) Generate(ctx context.Context, sc *situation.Context) []domain.RewardItem {
	seed, err := e.seeds()
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgSeedFailed, LogFieldError, err)
		seed = time.Now().UnixNano()
	}
	return e.GenerateWithRand(ctx, sc, rand.New(rand.NewSource(seed))) //nolint:gosec
}

// GenerateWithRand produces the rewards for sc drawing only from rng, so the
// same catalog, context and rng state always yield the same items. rng must
// not be shared with a concurrent call. The result is never nil.
func (e *Engine) GenerateWithRand(ctx context.Context, sc *situation.Context, rng quality.Rand) []domain.RewardItem {
	log := logger.FromContext(ctx)
	start := time.Now()

	items := make([]domain.RewardItem, 0)
	if sc == nil {
		log.Warn(LogMsgNilContext)
		return items
	}

	stop := e.counters.Time(metrics.OpSelectTables)
	tables := e.selector.Select(ctx, e.rules, sc)
	stop()

	ids := make([]string, len(tables))
	for i, t := range tables {
		ids[i] = t.ID
	}
	log.Debug(LogMsgTablesSelected, LogFieldSubject, sc.Subject(), LogFieldTables, ids)

	roller := e.rules.Roller(rng)
	for _, t := range tables {
		tableStart := time.Now()
		items = append(items, t.GenerateLoot(sc, roller)...)
		e.counters.Record(metrics.OpTablePrefix+t.ID, time.Since(tableStart))
		metrics.RecordTable(t.ID)
	}

	e.present(ctx, sc, items)

	elapsed := time.Since(start)
	e.counters.Record(metrics.OpGenerate, elapsed)
	metrics.RecordGeneration(ctx, items, elapsed)

	log.Debug(LogMsgGenerated,
		LogFieldSubject, sc.Subject(),
		LogFieldCause, sc.Cause(),
		LogFieldRank, sc.Rank(),
		LogFieldItems, len(items),
		LogFieldElapsed, elapsed)
	return items
}

func (e *Engine) present(ctx context.Context, sc *situation.Context, items []domain.RewardItem) {
	log := logger.FromContext(ctx)
	for _, item := range items {
		var tier *quality.Tier
		if item.Tier != "" {
			t, ok := e.rules.Tiers.ByID(item.Tier)
			if !ok {
				log.Warn(LogMsgNoTierForItem, LogFieldKind, item.Kind, LogFieldTier, item.Tier)
			}
			tier = t
		}
		// Presentation failures never affect the generated rewards.
		if err := e.presenter.Present(ctx, sc, item, tier); err != nil {
			log.Warn(LogMsgPresenterFailed, LogFieldKind, item.Kind, LogFieldError, err)
		}
	}
}

// CountersSnapshot returns a copy of the engine's operation counters
func (e *Engine) CountersSnapshot() map[string]metrics.Stat {
	return e.counters.Snapshot()
}

// Counters returns the live counter map
func (e *Engine) Counters() *metrics.Counters { return e.counters }
