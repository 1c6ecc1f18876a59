package handler

import (
	"net/http"
	"os"
	"runtime"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Version      string `json:"version"`
	GoVersion    string `json:"go_version"`
	BuildTime    string `json:"build_time,omitempty"`
	GitCommit    string `json:"git_commit,omitempty"`
	RulesVersion string `json:"rules_version,omitempty"`
}

// Build-time variables (injected via ldflags)
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unset"
)

// HandleVersion returns build information and the loaded rules version
func HandleVersion(rulesVersion string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionInfo{
			Version:      getVersionInfo(),
			GoVersion:    runtime.Version(),
			BuildTime:    BuildTime,
			GitCommit:    GitCommit,
			RulesVersion: rulesVersion,
		})
	}
}

// getVersionInfo returns version from build-time variable or environment
func getVersionInfo() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if envVersion := os.Getenv("VERSION"); envVersion != "" {
		return envVersion
	}
	return "dev"
}
