package domain

// ActorID is an opaque handle for an actor involved in a triggering event.
// The engine carries it through but never dereferences it.
type ActorID string

// TierID identifies a quality tier (e.g. "standard", "legendary")
type TierID string

// KindClass groups item kinds for augmentation eligibility
type KindClass string

const (
	KindWeapon KindClass = "weapon"
	KindArmor  KindClass = "armor"
	KindTool   KindClass = "tool"
	KindRanged KindClass = "ranged"
)

// KindClasses lists every kind class in a stable order
var KindClasses = []KindClass{KindWeapon, KindArmor, KindTool, KindRanged}

// AppliedAugmentation is an enchant-like modifier attached to a generated reward
type AppliedAugmentation struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// RewardItem is the abstract descriptor produced by the engine. Rendering it into
// an in-world object is the presentation layer's job; TierName and TierColor are
// opaque metadata carried for that purpose.
type RewardItem struct {
	Kind          string                `json:"kind"`
	Quantity      int                   `json:"quantity"`
	Tier          TierID                `json:"tier"`
	TierName      string                `json:"tier_name"`
	TierColor     string                `json:"tier_color"`
	Augmentations []AppliedAugmentation `json:"augmentations,omitempty"`
	Broadcast     bool                  `json:"broadcast"`
	SpecialEffect bool                  `json:"special_effect"`
}

// IsAugmented returns true if the item carries at least one augmentation
func (r RewardItem) IsAugmented() bool {
	return len(r.Augmentations) > 0
}
