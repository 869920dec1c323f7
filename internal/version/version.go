// Package version holds the application version string.
package version

// Version is the application version, overridable at build time via
// -ldflags "-X github.com/niveshfolio/portfolio-backend/internal/version.Version=x.y.z".
var Version = "1.2.0"
