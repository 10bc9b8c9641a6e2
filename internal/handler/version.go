package handler

import (
	"net/http"
	"os"
	"runtime"
	"runtime/debug"
	"sync"
)

// Set with -ldflags "-X github.com/osse101/PackSim_Go/internal/handler.Version=..."
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unset"
)

// VersionInfo describes the running binary.
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
	Variant   string `json:"variant,omitempty"`
}

// buildVersion resolves ldflags first, then $VERSION, then the VCS stamp the
// go toolchain embeds in module builds.
var buildVersion = sync.OnceValue(func() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GoVersion: runtime.Version(),
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}
	if info.Version == "" || info.Version == "dev" {
		if v := os.Getenv("VERSION"); v != "" {
			info.Version = v
		} else {
			info.Version = "dev"
		}
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "unset" {
				info.GitCommit = s.Value
			}
		case "vcs.time":
			if info.BuildTime == "unknown" {
				info.BuildTime = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
})

// HandleVersion reports build metadata plus the active collection variant.
// @Summary Version
// @Description Build and runtime version, plus the active collection variant
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion(variant string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info := buildVersion()
		info.Variant = variant
		respondJSON(w, http.StatusOK, info)
	}
}
