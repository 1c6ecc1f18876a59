package config

const (
	// Configuration file paths
	ConfigPathRules = "configs/rules.json"
)

// Defaults
const (
	DefaultPort            = 8080
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultEnvironment     = "dev"
	DefaultServiceName     = "brandish-rewards"
	DefaultVersion         = "dev"
	DefaultLogDir          = "logs"
	DefaultMaxStack        = 0 // 0 keeps the rules file value
	DefaultProgramCache    = 256
	DefaultEscalationCap   = 0.0 // 0 keeps the rules file value
	DefaultRNGSeed         = 0   // 0 seeds every generation from crypto/rand
	DefaultReadTimeoutSec  = 10
	DefaultWriteTimeoutSec = 10
	DefaultShutdownSec     = 15
)
