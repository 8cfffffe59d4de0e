package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/sunswift/srpkg/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/sunswift/srpkg/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/sunswift/srpkg/internal/version.Date={{.Date}}
)
