package version

// set at build time via -ldflags
var (
	Version        = "dev"
	BuildRevision  = ""
	BuildTimestamp = ""
)
