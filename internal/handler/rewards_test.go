package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishRewards_Go/internal/catalog"
	"github.com/osse101/BrandishRewards_Go/internal/domain"
	"github.com/osse101/BrandishRewards_Go/internal/engine"
	"github.com/osse101/BrandishRewards_Go/internal/metrics"
	"github.com/osse101/BrandishRewards_Go/internal/quality"
	"github.com/osse101/BrandishRewards_Go/internal/situation"
)

// MockGenerator mocks RewardGenerator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, sc *situation.Context) []domain.RewardItem {
	args := m.Called(ctx, sc)
	return args.Get(0).([]domain.RewardItem)
}

func (m *MockGenerator) GenerateWithRand(ctx context.Context, sc *situation.Context, rng quality.Rand) []domain.RewardItem {
	args := m.Called(ctx, sc, rng)
	return args.Get(0).([]domain.RewardItem)
}

func (m *MockGenerator) CountersSnapshot() map[string]metrics.Stat {
	args := m.Called()
	return args.Get(0).(map[string]metrics.Stat)
}

func (m *MockGenerator) Rules() *catalog.RuleCatalog {
	args := m.Called()
	rules, _ := args.Get(0).(*catalog.RuleCatalog)
	return rules
}

func loadRules(t *testing.T) *catalog.RuleCatalog {
	t.Helper()
	rules, err := catalog.Load("../../configs/rules.json", catalog.Options{})
	require.NoError(t, err)
	return rules
}

func post(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func TestHandleGenerate(t *testing.T) {
	h := NewRewardHandler(engine.New(loadRules(t)))

	t.Run("seeded requests are reproducible", func(t *testing.T) {
		body := `{"context": {"subject": "p1", "location": "yard", "rank": "warden", "elapsed_minutes": 90}, "seed": 11}`
		first := post(t, h.HandleGenerate, body)
		second := post(t, h.HandleGenerate, body)

		require.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, "application/json", first.Header().Get("Content-Type"))
		assert.Equal(t, first.Body.String(), second.Body.String())

		var resp GenerateResponse
		require.NoError(t, json.Unmarshal(first.Body.Bytes(), &resp))
		assert.Equal(t, len(resp.Items), resp.Count)
		assert.NotZero(t, resp.Count)
		require.NotNil(t, resp.Seed)
		assert.Equal(t, int64(11), *resp.Seed)
	})

	t.Run("unseeded request", func(t *testing.T) {
		w := post(t, h.HandleGenerate, `{"context": {"subject": "p1", "location": "yard"}}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"items":[`)
	})

	t.Run("missing mandatory fields", func(t *testing.T) {
		w := post(t, h.HandleGenerate, `{"context": {"rank": "guard"}}`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp ValidationErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, ErrMsgInvalidRequestSummary, resp.Error)
		assert.Equal(t, "This field is required", resp.Fields["context.subject"])
		assert.Equal(t, "This field is required", resp.Fields["context.location"])
	})

	t.Run("invalid values", func(t *testing.T) {
		w := post(t, h.HandleGenerate, `{"context": {"subject": "p1", "location": "yard", "cause": "jaywalking", "allies": -1, "multiplier": 0}}`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp ValidationErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Unknown cause", resp.Fields["context.cause"])
		assert.Equal(t, "Must be >= 0", resp.Fields["context.allies"])
		assert.Equal(t, "Must be > 0", resp.Fields["context.multiplier"])
	})

	t.Run("malformed body", func(t *testing.T) {
		w := post(t, h.HandleGenerate, `{"context":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidRequest)
	})

	t.Run("unknown field", func(t *testing.T) {
		w := post(t, h.HandleGenerate, `{"context": {"subject": "p1", "location": "yard"}, "luck": 7}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleGenerateUsesSeedOnlyWhenGiven(t *testing.T) {
	gen := &MockGenerator{}
	items := []domain.RewardItem{{Kind: "coin", Quantity: 2, Tier: "standard"}}
	gen.On("Generate", mock.Anything, mock.Anything).Return(items).Once()
	gen.On("GenerateWithRand", mock.Anything, mock.Anything, mock.Anything).Return([]domain.RewardItem{}).Once()

	h := NewRewardHandler(gen)

	w := post(t, h.HandleGenerate, `{"context": {"subject": "p1", "location": "yard", "cause": "ARREST", "ext": {"weather": "storm"}}}`)
	require.Equal(t, http.StatusOK, w.Code)
	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, items, resp.Items)
	assert.Equal(t, 1, resp.Count)
	assert.Nil(t, resp.Seed)

	w = post(t, h.HandleGenerate, `{"context": {"subject": "p1", "location": "yard"}, "seed": 5}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":[],"count":0,"seed":5}`, w.Body.String())

	gen.AssertExpectations(t)

	sc := gen.Calls[0].Arguments.Get(1).(*situation.Context)
	assert.Equal(t, domain.CauseArrest, sc.Cause())
	weather, ok := sc.ExtString("weather")
	assert.True(t, ok)
	assert.Equal(t, "storm", weather)
}

func TestHandleOdds(t *testing.T) {
	h := NewRewardHandler(engine.New(loadRules(t)))

	w := post(t, h.HandleOdds, `{"subject": "p1", "location": "yard", "rank": "trainee", "allies": 2}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp OddsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "trainee", resp.Rank)
	assert.Equal(t, 1.0, resp.Escalation)
	require.Len(t, resp.Tiers, 3)
	assert.Equal(t, domain.TierID("damaged"), resp.Tiers[0].ID)
	assert.InDelta(t, 0.4, resp.Tiers[0].Probability, 1e-9)
	assert.InDelta(t, 0.1, resp.Tiers[2].Probability, 1e-9)

	w = post(t, h.HandleOdds, `{"subject": "p1", "location": "yard", "rank": "trainee", "allies": 2, "special_event": true, "elapsed_minutes": 120}`)
	require.Equal(t, http.StatusOK, w.Code)
	var boosted OddsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &boosted))
	assert.Greater(t, boosted.Escalation, 1.0)
	assert.Greater(t, boosted.Tiers[2].Probability, resp.Tiers[2].Probability)
}

func TestHandleCounters(t *testing.T) {
	gen := &MockGenerator{}
	gen.On("CountersSnapshot").Return(map[string]metrics.Stat{
		metrics.OpGenerate:              {Count: 4, Total: 8 * time.Millisecond},
		metrics.OpTablePrefix + "arrest": {Count: 1, Total: time.Millisecond},
	})
	h := NewRewardHandler(gen)

	req := httptest.NewRequest(http.MethodGet, "/?prefix=table.", nil)
	w := httptest.NewRecorder()
	h.HandleCounters(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"table.arrest":{"count":1,"total_ms":1,"mean_us":1000}}`, w.Body.String())

	w = httptest.NewRecorder()
	h.HandleCounters(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, w.Body.String(), `"engine.generate":{"count":4,"total_ms":8,"mean_us":2000}`)
}

func TestHandleTables(t *testing.T) {
	h := NewRewardHandler(engine.New(loadRules(t)))

	w := httptest.NewRecorder()
	h.HandleTables(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var tables []TableSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tables))
	require.Len(t, tables, 4)
	assert.Equal(t, "standard", tables[0].ID)
	assert.Equal(t, []string{"bolt", "coin", "lockpick", "ration"}, tables[0].Pools[0].Kinds)
	assert.Equal(t, []string{"min_rank(guard)"}, tables[0].Pools[1].Gates)
	assert.Equal(t, []string{"cause(arrest)"}, tables[1].Gates)
}

func TestCheckHealth(t *testing.T) {
	gen := &MockGenerator{}
	gen.On("Rules").Return(nil).Once()
	h := NewRewardHandler(gen)
	assert.EqualError(t, h.CheckHealth(context.Background()), ErrMsgRulesNotLoaded)

	gen.On("Rules").Return(loadRules(t)).Once()
	assert.NoError(t, h.CheckHealth(context.Background()))
}
