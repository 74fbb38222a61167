// Package staffbook holds module-level metadata shared by the CLI and
// build tooling.
package staffbook

// Version is the current staffbook release.
const Version = "0.1.0"
