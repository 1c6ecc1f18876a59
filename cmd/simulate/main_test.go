package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishRewards_Go/internal/catalog"
	"github.com/osse101/BrandishRewards_Go/internal/domain"
)

const testRules = "../../configs/rules.json"

func TestParseFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		o, err := parseFlags(nil)
		require.NoError(t, err)
		assert.Equal(t, 10000, o.runs)
		assert.Equal(t, "text", o.format)
		assert.Equal(t, string(domain.CauseOther), o.cause)
	})

	t.Run("overrides", func(t *testing.T) {
		o, err := parseFlags([]string{"-n", "50", "-rank", "warden", "-cause", "arrest", "-restrained", "-format", "json"})
		require.NoError(t, err)
		assert.Equal(t, 50, o.runs)
		assert.Equal(t, "warden", o.rank)
		assert.True(t, o.restrained)

		sc, err := o.context()
		require.NoError(t, err)
		assert.Equal(t, domain.CauseArrest, sc.Cause())
		assert.True(t, sc.Restrained())
	})

	t.Run("rejects bad values", func(t *testing.T) {
		_, err := parseFlags([]string{"-n", "0"})
		assert.Error(t, err)
		_, err = parseFlags([]string{"-format", "xml"})
		assert.Error(t, err)
	})
}

func TestSimulate(t *testing.T) {
	rules, err := catalog.Load(testRules, catalog.Options{})
	require.NoError(t, err)

	o, err := parseFlags([]string{"-rank", "trainee", "-allies", "2"})
	require.NoError(t, err)
	sc, err := o.context()
	require.NoError(t, err)

	report := simulate(rules, sc, 2000, 7)
	assert.Equal(t, 2000, report.Runs)
	assert.InDelta(t, 1.0, report.Escalation, 1e-9)
	require.NotZero(t, report.Items)

	observed := 0
	var share float64
	for _, row := range report.Tiers {
		observed += row.Observed
		share += row.Share
		assert.InDelta(t, row.Expected, row.Share, 0.05, row.Tier)
	}
	assert.Equal(t, report.Items, observed)
	assert.InDelta(t, 1.0, share, 1e-9)

	drops := 0
	for _, k := range report.Kinds {
		drops += k.Drops
	}
	assert.Equal(t, report.Items, drops)

	again := simulate(rules, sc, 2000, 7)
	assert.Equal(t, report, again)
}

func TestRunFormats(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		o, err := parseFlags([]string{"-rules", testRules, "-n", "20"})
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, run(o, &buf))
		assert.Contains(t, buf.String(), "runs=20")
		assert.Contains(t, buf.String(), "TIER")
		assert.Contains(t, buf.String(), "KIND")
	})

	t.Run("json", func(t *testing.T) {
		o, err := parseFlags([]string{"-rules", testRules, "-n", "20", "-format", "json"})
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, run(o, &buf))

		var report Report
		require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
		assert.Equal(t, 20, report.Runs)
	})

	t.Run("missing rules", func(t *testing.T) {
		o, err := parseFlags([]string{"-rules", "nope.json", "-n", "1"})
		require.NoError(t, err)
		assert.Error(t, run(o, &bytes.Buffer{}))
	})
}
