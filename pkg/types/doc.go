// Package types defines the five tinker entities (bank account, book, car,
// coffee maker, smartphone), the sentinel errors their methods return, and
// the Config that tunes them.
//
// Every entity is a plain struct with one boolean mode flag. Methods follow a
// single error convention: invalid input and unmet preconditions return a
// sentinel error and leave the entity untouched; mode toggles return whether
// the flag changed; additions against a capacity clamp and report what was
// accepted. Entities are not safe for concurrent use.
package types
