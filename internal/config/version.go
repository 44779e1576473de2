package config

// Version is the application version, overridable at build time via
// -ldflags "-X github.com/blackroad/dealflow/internal/config.Version=...".
var Version = "0.3.0"

// GetVersion returns the application version string.
func GetVersion() string {
	return Version
}
