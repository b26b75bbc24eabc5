// Package coprules defines the canonical rule codes (UXE-series) enforced by codecop
// and the Finding value every rule produces.
//
// # Purpose
//
// The coprules package is the single source of truth for rule identity. Codes are
// used by:
//   - the analyzers, as the diagnostic category, so drivers can filter and suppress;
//   - the config layer, to disable rules by code;
//   - fix titles and messages rendered for humans.
//
// # Structure
//
// Rule codes follow the format “UXE<NNNN>”:
//
//	0001  Enum type names must end with "Enum"
//	0002  Package name must match the project root namespace
//
// Example:
//
//	coprules.UXE0001EnumSuffix.String()      → "UXE0001"
//	coprules.UXE0001EnumSuffix.Title()       → "Enum name must end with 'Enum'"
//
// # Notes
//
//   - Rule identifiers are stable; never renumber existing codes.
//   - Unknown codes render as "rule-unknown(N)".
package coprules
