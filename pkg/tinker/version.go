// Package tinker exposes build metadata for the tinker module.
package tinker

// Version is the semantic version of the tinker CLI and library.
const Version = "0.3.0"

// ModulePath is the Go module path.
const ModulePath = "github.com/mesh-intelligence/tinker"
