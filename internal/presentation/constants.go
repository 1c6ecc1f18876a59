package presentation

// Log messages
const (
	LogMsgBroadcast     = "Broadcast reward"
	LogMsgEffects       = "Reward effects"
	LogMsgSpecialEffect = "Special effect triggered"
)

// Log field keys
const (
	LogFieldSubject      = "subject"
	LogFieldMessage      = "message"
	LogFieldKind         = "kind"
	LogFieldTier         = "tier"
	LogFieldSound        = "sound"
	LogFieldVisual       = "visual"
	LogFieldAnnouncement = "announcement"
)

// Effect token groups tallied by the presenter
const (
	EffectSound        = "sound"
	EffectVisual       = "visual"
	EffectAnnouncement = "announcement"
	EffectSpecial      = "special"
)
