// Package version holds the build metadata stamped in at link time.
package version

// Version is the yamldb release version, set via ldflags.
var Version = "0.0.1"

// Commit is the git commit the binary was built from, set via ldflags.
var Commit = "unknown"

// Date is the build timestamp, set via ldflags.
var Date = "unknown"
