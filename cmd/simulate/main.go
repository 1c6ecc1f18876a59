// Command simulate runs many reward generations against a rules file and
// compares the observed tier mix with the analytic odds.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/osse101/BrandishRewards_Go/internal/catalog"
	"github.com/osse101/BrandishRewards_Go/internal/config"
	"github.com/osse101/BrandishRewards_Go/internal/domain"
	"github.com/osse101/BrandishRewards_Go/internal/engine"
	"github.com/osse101/BrandishRewards_Go/internal/logger"
	"github.com/osse101/BrandishRewards_Go/internal/situation"
)

type options struct {
	rulesPath string
	runs      int
	seed      int64
	format    string

	subject        string
	location       string
	rank           string
	cause          string
	elapsed        int
	successes      int
	sinceNegative  int
	contestSeconds int
	allies         int
	opponents      int
	multiplier     float64
	restrained     bool
	contested      bool
	controlled     bool
	event          bool
}

// TierRow compares observed and expected frequency for one tier
type TierRow struct {
	Tier     domain.TierID `json:"tier"`
	Name     string        `json:"name"`
	Observed int           `json:"observed"`
	Share    float64       `json:"share"`
	Expected float64       `json:"expected"`
}

// KindRow aggregates one item kind across all runs
type KindRow struct {
	Kind      string `json:"kind"`
	Drops     int    `json:"drops"`
	Quantity  int    `json:"quantity"`
	Augmented int    `json:"augmented"`
}

// Report is the outcome of a simulation
type Report struct {
	Runs       int       `json:"runs"`
	Seed       int64     `json:"seed"`
	Items      int       `json:"items"`
	Empty      int       `json:"empty_runs"`
	Broadcasts int       `json:"broadcasts"`
	Escalation float64   `json:"escalation"`
	Tiers      []TierRow `json:"tiers"`
	Kinds      []KindRow `json:"kinds"`
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "simulate:", err)
		}
		os.Exit(2)
	}

	// Engine logs would drown the report
	logger.InitLoggerWithWriter(logger.NewConfig("error", "text", "simulate", "", "", false), os.Stderr)

	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "simulate:", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	fs.StringVar(&o.rulesPath, "rules", config.ConfigPathRules, "rules file (json or yaml)")
	fs.IntVar(&o.runs, "n", 10000, "number of generations")
	fs.Int64Var(&o.seed, "seed", 1, "random seed")
	fs.StringVar(&o.format, "format", "text", "output format: text or json")

	fs.StringVar(&o.subject, "subject", "sim", "subject id")
	fs.StringVar(&o.location, "location", "yard", "location tag")
	fs.StringVar(&o.rank, "rank", "", "subject rank")
	fs.StringVar(&o.cause, "cause", string(domain.CauseOther), "triggering cause")
	fs.IntVar(&o.elapsed, "elapsed", 0, "minutes spent in the activity")
	fs.IntVar(&o.successes, "successes", 0, "prior successes")
	fs.IntVar(&o.sinceNegative, "since-negative", 0, "seconds since the last negative outcome")
	fs.IntVar(&o.contestSeconds, "contest", 0, "contest duration in seconds")
	fs.IntVar(&o.allies, "allies", 0, "allies present")
	fs.IntVar(&o.opponents, "opponents", 0, "opponents present")
	fs.Float64Var(&o.multiplier, "multiplier", 1, "global quantity multiplier")
	fs.BoolVar(&o.restrained, "restrained", false, "counterpart was restrained")
	fs.BoolVar(&o.contested, "contested", false, "inside a contested zone")
	fs.BoolVar(&o.controlled, "controlled", false, "controlled task")
	fs.BoolVar(&o.event, "event", false, "special event active")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.runs <= 0 {
		return o, fmt.Errorf("-n must be positive, got %d", o.runs)
	}
	if o.format != "text" && o.format != "json" {
		return o, fmt.Errorf("unknown format %q", o.format)
	}
	return o, nil
}

func (o options) context() (*situation.Context, error) {
	return situation.NewBuilder().
		Subject(domain.ActorID(o.subject)).
		Location(o.location).
		Rank(o.rank).
		Cause(domain.ParseCause(o.cause)).
		ElapsedMinutes(o.elapsed).
		SuccessCount(o.successes).
		SecondsSinceNegative(o.sinceNegative).
		ContestSeconds(o.contestSeconds).
		Allies(o.allies).
		Opponents(o.opponents).
		Multiplier(o.multiplier).
		Restrained(o.restrained).
		ContestedZone(o.contested).
		ControlledTask(o.controlled).
		SpecialEvent(o.event).
		Build()
}

func run(o options, w io.Writer) error {
	rules, err := catalog.Load(o.rulesPath, catalog.Options{})
	if err != nil {
		return err
	}
	sc, err := o.context()
	if err != nil {
		return err
	}

	report := simulate(rules, sc, o.runs, o.seed)
	if o.format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	return writeText(w, report)
}

func simulate(rules *catalog.RuleCatalog, sc *situation.Context, runs int, seed int64) Report {
	eng := engine.New(rules)
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec

	report := Report{
		Runs:       runs,
		Seed:       seed,
		Escalation: rules.Escalation.Modifier(sc),
	}
	tierCount := make(map[domain.TierID]int)
	kinds := make(map[string]*KindRow)

	ctx := context.Background()
	for i := 0; i < runs; i++ {
		items := eng.GenerateWithRand(ctx, sc, rng)
		if len(items) == 0 {
			report.Empty++
		}
		for _, it := range items {
			report.Items++
			tierCount[it.Tier]++
			if it.Broadcast {
				report.Broadcasts++
			}
			k, ok := kinds[it.Kind]
			if !ok {
				k = &KindRow{Kind: it.Kind}
				kinds[it.Kind] = k
			}
			k.Drops++
			k.Quantity += it.Quantity
			if it.IsAugmented() {
				k.Augmented++
			}
		}
	}

	expected := rules.QualitySelector().Probabilities(sc.Rank(), sc)
	for _, t := range rules.Tiers.Tiers() {
		n := tierCount[t.ID]
		p := expected[t.ID]
		if n == 0 && p == 0 {
			continue
		}
		row := TierRow{Tier: t.ID, Name: t.Name, Observed: n, Expected: p}
		if report.Items > 0 {
			row.Share = float64(n) / float64(report.Items)
		}
		report.Tiers = append(report.Tiers, row)
	}

	report.Kinds = make([]KindRow, 0, len(kinds))
	for _, k := range kinds {
		report.Kinds = append(report.Kinds, *k)
	}
	sort.Slice(report.Kinds, func(i, j int) bool {
		if report.Kinds[i].Drops != report.Kinds[j].Drops {
			return report.Kinds[i].Drops > report.Kinds[j].Drops
		}
		return report.Kinds[i].Kind < report.Kinds[j].Kind
	})
	return report
}

func writeText(w io.Writer, r Report) error {
	fmt.Fprintf(w, "runs=%d seed=%d items=%d empty=%d broadcasts=%d escalation=%.3f\n\n",
		r.Runs, r.Seed, r.Items, r.Empty, r.Broadcasts, r.Escalation)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TIER\tOBSERVED\tSHARE\tEXPECTED")
	for _, t := range r.Tiers {
		fmt.Fprintf(tw, "%s\t%d\t%.4f\t%.4f\n", t.Name, t.Observed, t.Share, t.Expected)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "KIND\tDROPS\tQUANTITY\tAUGMENTED")
	for _, k := range r.Kinds {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", k.Kind, k.Drops, k.Quantity, k.Augmented)
	}
	return tw.Flush()
}
