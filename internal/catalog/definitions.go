package catalog

// RulesDef is the decoded rules file
type RulesDef struct {
	Version       string                    `json:"version" validate:"required"`
	Description   string                    `json:"description,omitempty"`
	Ranks         RanksDef                  `json:"ranks"`
	Escalation    EscalationDef             `json:"escalation"`
	Tiers         []TierDef                 `json:"tiers,omitempty" validate:"dive"`
	Distributions map[string]map[string]int `json:"distributions" validate:"required"`
	DefaultStack  int                       `json:"default_max_stack,omitempty" validate:"gte=0"`
	Items         []ItemDef                 `json:"items,omitempty" validate:"dive"`
	Augmentations map[string][]AugmentDef   `json:"augmentations,omitempty" validate:"dive,keys,kindclass,endkeys,dive"`
	Tables        []TableDef                `json:"tables" validate:"dive"`
	Selection     SelectionDef              `json:"selection"`
}

// RanksDef is the rank ladder, lowest first
type RanksDef struct {
	Ladder   []string `json:"ladder" validate:"required,min=1,dive,required"`
	HighRank string   `json:"high_rank,omitempty"`
}

// EscalationDef overrides the escalation cap and bonuses
type EscalationDef struct {
	Cap     float64            `json:"cap,omitempty" validate:"gte=0"`
	Bonuses map[string]float64 `json:"bonuses,omitempty" validate:"dive,keys,oneof=long_activity active_performer contest_quality contested_zone special_event isolation cooldown,endkeys,gte=0"`
}

// EffectsDef carries presentation tokens for a tier
type EffectsDef struct {
	Sound        string `json:"sound,omitempty"`
	Visual       string `json:"visual,omitempty"`
	Announcement string `json:"announcement,omitempty"`
}

// TierDef is one quality tier
type TierDef struct {
	ID                  string     `json:"id" validate:"required"`
	Name                string     `json:"name" validate:"required"`
	Color               string     `json:"color,omitempty"`
	Ordinal             int        `json:"ordinal" validate:"gte=0"`
	AugmentChance       float64    `json:"augment_chance,omitempty" validate:"gte=0,lte=1"`
	MultiAugmentChance  float64    `json:"multi_augment_chance,omitempty" validate:"gte=0,lte=1"`
	SpecialEffectChance float64    `json:"special_effect_chance,omitempty" validate:"gte=0,lte=1"`
	Broadcast           bool       `json:"broadcast,omitempty"`
	Special             bool       `json:"special,omitempty"`
	Baseline            bool       `json:"baseline,omitempty"`
	Effects             EffectsDef `json:"effects,omitempty"`
}

// ItemDef describes one item kind for augmentation and stacking
type ItemDef struct {
	Kind     string   `json:"kind" validate:"required"`
	Classes  []string `json:"classes,omitempty" validate:"dive,kindclass"`
	MaxStack int      `json:"max_stack,omitempty" validate:"gte=0"`
}

// AugmentDef is one augmentation candidate
type AugmentDef struct {
	Name     string `json:"name" validate:"required"`
	MaxLevel int    `json:"max_level" validate:"gte=1"`
}

// GateDef is a gating predicate definition
type GateDef struct {
	Type    string   `json:"type" validate:"required,oneof=rank_is min_rank region cause min_activity_minutes special_event_only flag not_flag expr"`
	Value   string   `json:"value,omitempty"`
	Values  []string `json:"values,omitempty"`
	Minutes int      `json:"minutes,omitempty" validate:"gte=0"`
}

// ModifierDef multiplies weight or quantity when its flag holds
type ModifierDef struct {
	Flag   string  `json:"flag" validate:"required,flag"`
	Factor float64 `json:"factor" validate:"gte=0"`
}

// EntryDef is one weighted pool entry
type EntryDef struct {
	Kind            string        `json:"kind" validate:"required"`
	Min             int           `json:"min" validate:"gte=1"`
	Max             int           `json:"max" validate:"gtefield=Min"`
	Weight          float64       `json:"weight" validate:"gte=0"`
	Gates           []GateDef     `json:"gates,omitempty" validate:"dive"`
	WeightModifiers []ModifierDef `json:"weight_modifiers,omitempty" validate:"dive"`
}

// PoolDef is one reward pool
type PoolDef struct {
	Name              string        `json:"name" validate:"required"`
	BaseRolls         int           `json:"base_rolls" validate:"gte=0"`
	BonusRolls        int           `json:"bonus_rolls,omitempty" validate:"gte=0"`
	Gates             []GateDef     `json:"gates,omitempty" validate:"dive"`
	QuantityModifiers []ModifierDef `json:"quantity_modifiers,omitempty" validate:"dive"`
	Entries           []EntryDef    `json:"entries" validate:"dive"`
}

// TableDef is one reward table
type TableDef struct {
	ID    string    `json:"id" validate:"required"`
	Name  string    `json:"name,omitempty"`
	Gates []GateDef `json:"gates,omitempty" validate:"dive"`
	Pools []PoolDef `json:"pools" validate:"dive"`
}

// SelectionDef configures which table(s) a context draws from
type SelectionDef struct {
	Mode    string            `json:"mode,omitempty" validate:"omitempty,oneof=keyed all"`
	Default string            `json:"default,omitempty"`
	ByCause map[string]string `json:"by_cause,omitempty" validate:"dive,keys,cause,endkeys,required"`
	ByRank  map[string]string `json:"by_rank,omitempty" validate:"dive,keys,required,endkeys,required"`
}
