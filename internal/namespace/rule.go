// Package namespace implements UXE0002: package clauses must match the project root
// namespace.
//
// The expected name comes from the "rootnamespace" config value. Without it the rule
// does not run. The fix renames the package to the project display name, which is
// taken from a different source ("project_name", else the module path) and may not
// be the name the detector expected.
package namespace

import (
	"context"
	"fmt"
	"go/token"

	"github.com/sirkon/codecop/internal/coprules"
	"github.com/sirkon/codecop/internal/rename"
)

// Decl is what the detector needs to know about a namespace declaration.
type Decl struct {
	Name string
	Pos  token.Pos
	End  token.Pos
}

// Check reports a finding when the declared namespace differs from the expected one.
// ok tells whether the expected value is configured at all; if not, nothing is checked.
func Check(decl Decl, expected string, ok bool) (coprules.Finding, bool) {
	if !ok {
		return coprules.Finding{}, false
	}

	if decl.Name == expected {
		return coprules.Finding{}, false
	}

	return coprules.Finding{
		Rule:     coprules.NamespaceMatch(),
		Pos:      decl.Pos,
		End:      decl.End,
		Name:     decl.Name,
		Expected: expected,
	}, true
}

// Fix renames the package the finding refers to after the project. The expected
// value of the finding is not used. An unresolved target or an unknown project name
// gives back the input snapshot.
func Fix(
	ctx context.Context,
	r rename.Renamer,
	snap *rename.Snapshot,
	target rename.Target,
	f coprules.Finding,
	projectName string,
) (*rename.Snapshot, error) {
	if !target.Resolved() || projectName == "" {
		return snap, nil
	}

	res, err := r.Rename(ctx, snap, rename.Request{
		Target:  target,
		NewName: projectName,
	})
	if err != nil {
		return snap, fmt.Errorf("rename namespace %s to %s: %w", f.Name, projectName, err)
	}

	return res, nil
}
