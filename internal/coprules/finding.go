package coprules

import (
	"go/token"
)

// Finding is a single rule violation produced by a detector.
// It is a value: detectors never share or mutate findings once returned.
type Finding struct {
	Rule Rule

	// Pos and End delimit the offending identifier.
	Pos token.Pos
	End token.Pos

	// Name is the offending name as written in the source.
	Name string

	// Expected is the name the detector expected to see.
	Expected string
}

// Message renders the human-readable diagnostic text of the finding.
func (f Finding) Message() string {
	return f.Rule.Format(f.Name, f.Expected)
}
