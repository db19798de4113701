package handler

import (
	"net/http"
	"runtime"
	"runtime/debug"
	"time"
)

// Set with -ldflags "-X .../internal/handler.GitCommit=..." in release builds.
var (
	BuildTime = ""
	GitCommit = ""
)

type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
	StartedAt string `json:"started_at"`
	Uptime    string `json:"uptime"`
}

// HandleVersion reports the daemon's build and how long it has been running.
// An empty version reports "dev". Without ldflags the commit falls back to
// the VCS stamp the go tool embeds.
func HandleVersion(version string) http.HandlerFunc {
	if version == "" {
		version = "dev"
	}
	started := time.Now()
	base := VersionInfo{
		Version:   version,
		GoVersion: runtime.Version(),
		BuildTime: BuildTime,
		GitCommit: GitCommit,
		StartedAt: started.UTC().Format(time.RFC3339),
	}
	if base.GitCommit == "" || base.BuildTime == "" {
		vcsRevision, vcsTime := vcsStamp()
		if base.GitCommit == "" {
			base.GitCommit = vcsRevision
		}
		if base.BuildTime == "" {
			base.BuildTime = vcsTime
		}
	}

	return func(w http.ResponseWriter, r *http.Request) {
		info := base
		info.Uptime = time.Since(started).Round(time.Second).String()
		respondJSON(w, http.StatusOK, info)
	}
}

func vcsStamp() (revision, at string) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			at = s.Value
		}
	}
	return revision, at
}
