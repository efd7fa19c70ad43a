// Package version reports build metadata stamped in with -ldflags
package version

// BuildInfo holds version information about the service build
type BuildInfo struct {
	Service string `json:"service" example:"jobguard-api"`
	Version string `json:"version" example:"v0.3.0"`
	Commit  string `json:"commit" example:"4f2c9e1"`
	Date    string `json:"date" example:"2026-10-01"`
}

// Info returns the build information for the api binary
func Info() BuildInfo { return InfoFor("jobguard-api") }

// InfoFor is Info under another service name
//
//	go build -ldflags "-X 'jobguard/internal/core/version.version=v0.3.0'
//	  -X 'jobguard/internal/core/version.commit=4f2c9e1' -X 'jobguard/internal/core/version.date=2026-10-01'"
func InfoFor(service string) BuildInfo {
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
