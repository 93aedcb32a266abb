package app

const ServiceName = "academic-service"

// Set at build time:
//
//	go build -ldflags="-X 'academic-service/internal/app.Version=1.2.0' -X 'academic-service/internal/app.GitCommit=$(git rev-parse --short HEAD)'"
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// BuildInfo returns the build metadata as slog key/value pairs.
func BuildInfo() []any {
	return []any{"version", Version, "git_commit", GitCommit, "build_time", BuildTime}
}
