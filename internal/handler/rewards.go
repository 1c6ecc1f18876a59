package handler

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"sort"
	"strings"

	"github.com/osse101/BrandishRewards_Go/internal/catalog"
	"github.com/osse101/BrandishRewards_Go/internal/domain"
	"github.com/osse101/BrandishRewards_Go/internal/logger"
	"github.com/osse101/BrandishRewards_Go/internal/loot"
	"github.com/osse101/BrandishRewards_Go/internal/metrics"
	"github.com/osse101/BrandishRewards_Go/internal/quality"
	"github.com/osse101/BrandishRewards_Go/internal/situation"
)

// RewardGenerator is the engine surface the reward handlers need
type RewardGenerator interface {
	Generate(ctx context.Context, sc *situation.Context) []domain.RewardItem
	GenerateWithRand(ctx context.Context, sc *situation.Context, rng quality.Rand) []domain.RewardItem
	CountersSnapshot() map[string]metrics.Stat
	Rules() *catalog.RuleCatalog
}

// ContextRequest describes a triggering event
type ContextRequest struct {
	Subject              string         `json:"subject" validate:"required,max=128"`
	Counterpart          string         `json:"counterpart,omitempty" validate:"max=128"`
	Rank                 string         `json:"rank,omitempty" validate:"max=64"`
	Location             string         `json:"location" validate:"required,max=128"`
	Cause                string         `json:"cause,omitempty" validate:"omitempty,cause"`
	ElapsedMinutes       int            `json:"elapsed_minutes,omitempty" validate:"gte=0"`
	SuccessCount         int            `json:"success_count,omitempty" validate:"gte=0"`
	SecondsSinceNegative int            `json:"seconds_since_negative,omitempty" validate:"gte=0"`
	ContestSeconds       int            `json:"contest_seconds,omitempty" validate:"gte=0"`
	ControlledTask       bool           `json:"controlled_task,omitempty"`
	Restrained           bool           `json:"restrained,omitempty"`
	ContestedZone        bool           `json:"contested_zone,omitempty"`
	SpecialEvent         bool           `json:"special_event,omitempty"`
	Allies               int            `json:"allies,omitempty" validate:"gte=0"`
	Opponents            int            `json:"opponents,omitempty" validate:"gte=0"`
	Multiplier           *float64       `json:"multiplier,omitempty" validate:"omitempty,gt=0"`
	Ext                  map[string]any `json:"ext,omitempty"`
}

// Build converts the request into an immutable situational context
func (req *ContextRequest) Build() (*situation.Context, error) {
	b := situation.NewBuilder().
		Subject(domain.ActorID(req.Subject)).
		Counterpart(domain.ActorID(req.Counterpart)).
		Rank(req.Rank).
		Location(req.Location).
		ElapsedMinutes(req.ElapsedMinutes).
		SuccessCount(req.SuccessCount).
		SecondsSinceNegative(req.SecondsSinceNegative).
		ContestSeconds(req.ContestSeconds).
		ControlledTask(req.ControlledTask).
		Restrained(req.Restrained).
		ContestedZone(req.ContestedZone).
		SpecialEvent(req.SpecialEvent).
		Allies(req.Allies).
		Opponents(req.Opponents)
	if req.Cause != "" {
		b.Cause(domain.ParseCause(req.Cause))
	}
	if req.Multiplier != nil {
		b.Multiplier(*req.Multiplier)
	}
	for k, v := range req.Ext {
		b.With(k, v)
	}
	return b.Build()
}

// GenerateRequest is the body of POST /rewards/generate. A seed makes the
// result reproducible.
type GenerateRequest struct {
	Context ContextRequest `json:"context"`
	Seed    *int64         `json:"seed,omitempty"`
}

// GenerateResponse carries the generated rewards
type GenerateResponse struct {
	Items []domain.RewardItem `json:"items"`
	Count int                 `json:"count"`
	Seed  *int64              `json:"seed,omitempty"`
}

// OddsResponse lists tier probabilities for a context, worst tier first
type OddsResponse struct {
	Rank       string     `json:"rank"`
	Escalation float64    `json:"escalation"`
	Tiers      []TierOdds `json:"tiers"`
}

// TierOdds is one tier's selection probability
type TierOdds struct {
	ID          domain.TierID `json:"id"`
	Name        string        `json:"name"`
	Probability float64       `json:"probability"`
}

// CounterResponse is one operation counter reading
type CounterResponse struct {
	Count   int64 `json:"count"`
	TotalMs int64 `json:"total_ms"`
	MeanUs  int64 `json:"mean_us"`
}

// TableSummary describes a registered table
type TableSummary struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Gates []string      `json:"gates,omitempty"`
	Pools []PoolSummary `json:"pools"`
}

// PoolSummary describes one pool of a table
type PoolSummary struct {
	Name       string   `json:"name"`
	BaseRolls  int      `json:"base_rolls"`
	BonusRolls int      `json:"bonus_rolls,omitempty"`
	Gates      []string `json:"gates,omitempty"`
	Kinds      []string `json:"kinds"`
}

// RewardHandler serves the reward endpoints
type RewardHandler struct {
	gen RewardGenerator
}

// NewRewardHandler creates a handler over gen
func NewRewardHandler(gen RewardGenerator) *RewardHandler {
	return &RewardHandler{gen: gen}
}

// HandleGenerate generates rewards for the posted context
func (h *RewardHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Generate rewards"); err != nil {
		return
	}

	sc, ok := h.buildContext(w, r, &req.Context)
	if !ok {
		return
	}

	var items []domain.RewardItem
	if req.Seed != nil {
		items = h.gen.GenerateWithRand(r.Context(), sc, rand.New(rand.NewSource(*req.Seed))) //nolint:gosec
	} else {
		items = h.gen.Generate(r.Context(), sc)
	}

	logger.FromContext(r.Context()).Debug(LogMsgGenerateCompleted, "subject", req.Context.Subject, "items", len(items))
	respondJSON(w, http.StatusOK, GenerateResponse{Items: items, Count: len(items), Seed: req.Seed})
}

// HandleOdds reports the escalated tier probabilities for the posted context
func (h *RewardHandler) HandleOdds(w http.ResponseWriter, r *http.Request) {
	var req ContextRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Tier odds"); err != nil {
		return
	}

	sc, ok := h.buildContext(w, r, &req)
	if !ok {
		return
	}

	rules := h.gen.Rules()
	probs := rules.QualitySelector().Probabilities(sc.Rank(), sc)
	resp := OddsResponse{
		Rank:       sc.Rank(),
		Escalation: rules.Escalation.Modifier(sc),
		Tiers:      make([]TierOdds, 0, len(probs)),
	}
	for _, t := range rules.Tiers.Tiers() {
		if p, ok := probs[t.ID]; ok {
			resp.Tiers = append(resp.Tiers, TierOdds{ID: t.ID, Name: t.Name, Probability: p})
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

// HandleCounters returns the engine's operation counters, optionally filtered by prefix
func (h *RewardHandler) HandleCounters(w http.ResponseWriter, r *http.Request) {
	prefix := GetOptionalQueryParam(r, QueryParamPrefix, "")
	out := make(map[string]CounterResponse)
	for op, s := range h.gen.CountersSnapshot() {
		if !strings.HasPrefix(op, prefix) {
			continue
		}
		out[op] = CounterResponse{
			Count:   s.Count,
			TotalMs: s.Total.Milliseconds(),
			MeanUs:  s.Mean().Microseconds(),
		}
	}
	respondJSON(w, http.StatusOK, out)
}

// HandleTables lists the registered tables in registration order
func (h *RewardHandler) HandleTables(w http.ResponseWriter, r *http.Request) {
	tables := h.gen.Rules().Tables()
	out := make([]TableSummary, 0, len(tables))
	for _, t := range tables {
		ts := TableSummary{ID: t.ID, Name: t.Name, Gates: gateNames(t.Gates), Pools: make([]PoolSummary, 0, len(t.Pools))}
		for _, p := range t.Pools {
			kinds := make([]string, 0, len(p.Entries))
			seen := make(map[string]bool, len(p.Entries))
			for _, e := range p.Entries {
				if !seen[e.Kind] {
					seen[e.Kind] = true
					kinds = append(kinds, e.Kind)
				}
			}
			sort.Strings(kinds)
			ts.Pools = append(ts.Pools, PoolSummary{
				Name:       p.Name,
				BaseRolls:  p.BaseRolls,
				BonusRolls: p.BonusRolls,
				Gates:      gateNames(p.Gates),
				Kinds:      kinds,
			})
		}
		out = append(out, ts)
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *RewardHandler) buildContext(w http.ResponseWriter, r *http.Request, req *ContextRequest) (*situation.Context, bool) {
	sc, err := req.Build()
	if err != nil {
		logger.FromContext(r.Context()).Warn(LogMsgContextRejected, "error", err)
		status, msg := mapErrorToResponse(err)
		respondError(w, status, msg)
		return nil, false
	}
	return sc, true
}

// CheckHealth reports whether the engine has rules to generate from
func (h *RewardHandler) CheckHealth(_ context.Context) error {
	if h.gen.Rules() == nil {
		return errors.New(ErrMsgRulesNotLoaded)
	}
	return nil
}

func gateNames(gates []loot.Predicate) []string {
	if len(gates) == 0 {
		return nil
	}
	out := make([]string, len(gates))
	for i, g := range gates {
		out[i] = g.String()
	}
	return out
}
