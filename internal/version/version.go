package version

// Version is the current version of the sizing tool.
// This value is set at build time using ldflags:
// -ldflags "-X github.com/rxtech-lab/argo-sizing/internal/version.Version=1.2.3"
// The value "main" marks a development build.
var Version = "v0.4.0"

// GetVersion returns the current version of the tool.
func GetVersion() string {
	return Version
}
