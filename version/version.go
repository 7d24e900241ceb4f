package version

// Version is the current version of icongen.
var Version = "0.1.0"

// Revision is set at build time via -ldflags.
var Revision = "dev"
