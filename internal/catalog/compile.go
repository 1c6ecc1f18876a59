package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/osse101/BrandishRewards_Go/internal/domain"
	"github.com/osse101/BrandishRewards_Go/internal/logger"
	"github.com/osse101/BrandishRewards_Go/internal/loot"
	"github.com/osse101/BrandishRewards_Go/internal/quality"
	"github.com/osse101/BrandishRewards_Go/internal/situation"
)

// compiler turns validated definitions into immutable rule objects
type compiler struct {
	ladder situation.Ladder
	flags  situation.Resolver
	expr   *ExprCompiler
}

func compile(def *RulesDef, opts Options) (*RuleCatalog, error) {
	ladder := situation.NewLadder(def.Ranks.Ladder, def.Ranks.HighRank)
	flags := situation.NewResolver(ladder)

	expr, err := NewExprCompiler(flags, opts.ProgramCacheSize)
	if err != nil {
		return nil, err
	}
	cc := &compiler{ladder: ladder, flags: flags, expr: expr}

	tiers, err := compileTiers(def.Tiers)
	if err != nil {
		return nil, err
	}

	dist, err := compileDistribution(tiers, def.Distributions)
	if err != nil {
		return nil, err
	}

	items, err := compileItems(def, opts)
	if err != nil {
		return nil, err
	}
	augs := compileAugmentations(def.Augmentations, items)

	c := &RuleCatalog{
		Version:       def.Version,
		Ladder:        ladder,
		Flags:         flags,
		Tiers:         tiers,
		Distribution:  dist,
		Escalation:    compileEscalation(def.Escalation, opts),
		Items:         items,
		Augmentations: augs,
		byID:          make(map[string]*loot.Table, len(def.Tables)),
	}
	c.selector = quality.NewSelector(tiers, dist, c.Escalation)
	c.augmenter = quality.NewAugmenter(items, augs)

	for i := range def.Tables {
		t, err := cc.table(&def.Tables[i])
		if err != nil {
			return nil, err
		}
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("%w: "+ErrMsgDuplicateTable, domain.ErrInvalidRules, t.ID)
		}
		c.byID[t.ID] = t
		c.tables = append(c.tables, t)
	}

	sel, err := compileSelection(def.Selection, c.byID)
	if err != nil {
		return nil, err
	}
	c.Selection = sel

	return c, nil
}

func compileTiers(defs []TierDef) (*quality.Set, error) {
	tiers := quality.DefaultTiers()
	if len(defs) > 0 {
		tiers = make([]quality.Tier, len(defs))
		for i, d := range defs {
			tiers[i] = quality.Tier{
				ID:                  domain.TierID(d.ID),
				Name:                d.Name,
				Color:               d.Color,
				Ordinal:             d.Ordinal,
				AugmentChance:       d.AugmentChance,
				MultiAugmentChance:  d.MultiAugmentChance,
				SpecialEffectChance: d.SpecialEffectChance,
				Broadcast:           d.Broadcast,
				Special:             d.Special,
				Baseline:            d.Baseline,
				Effects: quality.Effects{
					Sound:        d.Effects.Sound,
					Visual:       d.Effects.Visual,
					Announcement: d.Effects.Announcement,
				},
			}
		}
	}
	set, err := quality.NewSet(tiers)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidRules, err)
	}
	return set, nil
}

func compileDistribution(set *quality.Set, defs map[string]map[string]int) (*quality.Distribution, error) {
	weights := make(map[string]map[domain.TierID]int, len(defs))
	for rank, row := range defs {
		tw := make(map[domain.TierID]int, len(row))
		for id, w := range row {
			tw[domain.TierID(id)] = w
		}
		weights[rank] = tw
	}
	dist, err := quality.NewDistribution(set, weights)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidRules, err)
	}
	if degenerate := dist.Degenerate(); len(degenerate) > 0 {
		sort.Strings(degenerate)
		logger.Warn(LogMsgDegenerateRank, "ranks", degenerate, "baseline", set.Baseline().ID)
	}
	return dist, nil
}

func compileEscalation(def EscalationDef, opts Options) quality.Escalation {
	b := quality.DefaultBonuses()
	for key, v := range def.Bonuses {
		switch key {
		case BonusKeyLongActivity:
			b.LongActivity = v
		case BonusKeyActivePerformer:
			b.ActivePerformer = v
		case BonusKeyContestQuality:
			b.ContestQuality = v
		case BonusKeyContestedZone:
			b.ContestedZone = v
		case BonusKeySpecialEvent:
			b.SpecialEvent = v
		case BonusKeyIsolation:
			b.Isolation = v
		case BonusKeyCooldown:
			b.Cooldown = v
		}
	}
	limit := def.Cap
	if opts.EscalationCap > 0 {
		limit = opts.EscalationCap
	}
	return quality.NewEscalation(b, limit)
}

func compileItems(def *RulesDef, opts Options) (*ItemCatalog, error) {
	stack := def.DefaultStack
	if opts.DefaultMaxStack > 0 {
		stack = opts.DefaultMaxStack
	}
	if stack == 0 {
		stack = DefaultMaxStack
	}

	items := NewItemCatalog(stack)
	for _, d := range def.Items {
		if items.Has(d.Kind) {
			return nil, fmt.Errorf("%w: "+ErrMsgDuplicateItem, domain.ErrInvalidRules, d.Kind)
		}
		classes := make([]domain.KindClass, len(d.Classes))
		for i, cl := range d.Classes {
			classes[i] = domain.KindClass(cl)
		}
		items.Add(d.Kind, classes, d.MaxStack)
	}
	return items, nil
}

func compileAugmentations(defs map[string][]AugmentDef, items *ItemCatalog) *AugmentationCatalog {
	used := make(map[domain.KindClass]bool)
	for _, kind := range items.Kinds() {
		for _, cl := range items.Classes(kind) {
			used[cl] = true
		}
	}

	augs := NewAugmentationCatalog()
	for _, class := range domain.KindClasses {
		list, ok := defs[string(class)]
		if !ok {
			continue
		}
		if !used[class] {
			logger.Warn(LogMsgUnusedAugClass, "class", class)
		}
		for _, d := range list {
			augs.Add(class, quality.Augmentation{Name: d.Name, MaxLevel: d.MaxLevel})
		}
	}
	return augs
}

func compileSelection(def SelectionDef, tables map[string]*loot.Table) (Selection, error) {
	sel := Selection{
		Mode:    def.Mode,
		Default: def.Default,
		ByCause: make(map[domain.Cause]string, len(def.ByCause)),
		ByRank:  make(map[string]string, len(def.ByRank)),
	}
	if sel.Mode == "" {
		sel.Mode = SelectionKeyed
	}

	check := func(where, id string) error {
		if _, ok := tables[id]; !ok {
			return fmt.Errorf("%w: %w: "+ErrMsgSelectionTable, domain.ErrInvalidRules, domain.ErrTableNotFound, where, id)
		}
		return nil
	}

	if sel.Default == "" {
		sel.Default = DefaultTableID
	} else if err := check("default", sel.Default); err != nil {
		return Selection{}, err
	}

	for _, cause := range sortedKeys(def.ByCause) {
		id := def.ByCause[cause]
		if err := check("by_cause."+cause, id); err != nil {
			return Selection{}, err
		}
		sel.ByCause[domain.ParseCause(cause)] = id
	}
	for _, rank := range sortedKeys(def.ByRank) {
		id := def.ByRank[rank]
		if err := check("by_rank."+rank, id); err != nil {
			return Selection{}, err
		}
		sel.ByRank[strings.ToLower(rank)] = id
	}
	return sel, nil
}

func (cc *compiler) table(def *TableDef) (*loot.Table, error) {
	gates, err := cc.gates(def.Gates)
	if err != nil {
		return nil, fmt.Errorf("table %q: %w", def.ID, err)
	}
	t := &loot.Table{ID: def.ID, Name: def.Name, Gates: gates}
	if t.Name == "" {
		t.Name = def.ID
	}

	for i := range def.Pools {
		p, err := cc.pool(&def.Pools[i])
		if err != nil {
			return nil, fmt.Errorf("table %q: %w", def.ID, err)
		}
		t.Pools = append(t.Pools, p)
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (cc *compiler) pool(def *PoolDef) (*loot.Pool, error) {
	gates, err := cc.gates(def.Gates)
	if err != nil {
		return nil, fmt.Errorf("pool %q: %w", def.Name, err)
	}
	p := &loot.Pool{
		Name:         def.Name,
		BaseRolls:    def.BaseRolls,
		BonusRolls:   def.BonusRolls,
		Gates:        gates,
		QuantityMods: modifiers(def.QuantityModifiers),
	}

	total := 0.0
	for i := range def.Entries {
		d := &def.Entries[i]
		entryGates, err := cc.gates(d.Gates)
		if err != nil {
			return nil, fmt.Errorf("pool %q entry %q: %w", def.Name, d.Kind, err)
		}
		e, err := loot.NewEntry(d.Kind, d.Min, d.Max, d.Weight, entryGates, modifiers(d.WeightModifiers))
		if err != nil {
			return nil, fmt.Errorf("pool %q: %w", def.Name, err)
		}
		p.Entries = append(p.Entries, e)
		total += d.Weight
	}
	if len(p.Entries) > 0 && total == 0 {
		logger.Warn(LogMsgZeroWeightPool, "pool", def.Name)
	}
	return p, nil
}

func modifiers(defs []ModifierDef) []loot.Modifier {
	if len(defs) == 0 {
		return nil
	}
	mods := make([]loot.Modifier, len(defs))
	for i, d := range defs {
		mods[i] = loot.Modifier{Flag: situation.Flag(d.Flag), Factor: d.Factor}
	}
	return mods
}

func (cc *compiler) gates(defs []GateDef) ([]loot.Predicate, error) {
	if len(defs) == 0 {
		return nil, nil
	}
	preds := make([]loot.Predicate, 0, len(defs))
	for _, d := range defs {
		p, err := cc.gate(d)
		if err != nil {
			return nil, fmt.Errorf("%w: "+ErrMsgCompileGateFailed, domain.ErrInvalidRules, d.Type, err)
		}
		preds = append(preds, p)
	}
	return preds, nil
}

func (cc *compiler) gate(d GateDef) (loot.Predicate, error) {
	needValue := func() error {
		if d.Value == "" {
			return errors.New(ErrMsgGateNeedsValue)
		}
		return nil
	}
	needValues := func() error {
		if len(d.Values) == 0 {
			return errors.New(ErrMsgGateNeedsValues)
		}
		return nil
	}

	switch d.Type {
	case loot.GateRankIs:
		if err := needValues(); err != nil {
			return loot.Predicate{}, err
		}
		return loot.RankIs(d.Values...), nil
	case loot.GateMinRank:
		if err := needValue(); err != nil {
			return loot.Predicate{}, err
		}
		if _, ok := cc.ladder.Index(d.Value); !ok {
			return loot.Predicate{}, fmt.Errorf(ErrMsgUnknownRank, d.Value)
		}
		return loot.MinRank(cc.ladder, d.Value), nil
	case loot.GateRegion:
		if err := needValues(); err != nil {
			return loot.Predicate{}, err
		}
		return loot.Region(d.Values...), nil
	case loot.GateCause:
		if err := needValues(); err != nil {
			return loot.Predicate{}, err
		}
		causes := make([]domain.Cause, len(d.Values))
		for i, v := range d.Values {
			c := domain.Cause(strings.ToLower(strings.TrimSpace(v)))
			if !c.IsKnown() {
				return loot.Predicate{}, fmt.Errorf(ErrMsgUnknownCause, v)
			}
			causes[i] = c
		}
		return loot.CauseIs(causes...), nil
	case loot.GateMinActivity:
		return loot.MinActivityMinutes(d.Minutes), nil
	case loot.GateSpecialEvent:
		return loot.SpecialEventOnly(), nil
	case loot.GateFlag, loot.GateNotFlag:
		if err := needValue(); err != nil {
			return loot.Predicate{}, err
		}
		f, err := situation.ParseFlag(d.Value)
		if err != nil {
			return loot.Predicate{}, err
		}
		if d.Type == loot.GateFlag {
			return loot.FlagHolds(cc.flags, f), nil
		}
		return loot.FlagNot(cc.flags, f), nil
	case loot.GateExpr:
		if err := needValue(); err != nil {
			return loot.Predicate{}, err
		}
		return cc.expr.Predicate(d.Value)
	default:
		return loot.Predicate{}, fmt.Errorf("%w: %q", domain.ErrUnknownGate, d.Type)
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
