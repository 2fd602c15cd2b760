package version

// Version is overridden at build time with -ldflags "-X ssp/internal/version.Version=...".
var Version = "dev"
