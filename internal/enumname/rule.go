// Package enumname implements UXE0001: types used as enumerations must have a name
// ending with "Enum".
//
// Go has no enum declarations. A type is treated as an enumeration when it is a
// defined (non-alias) type over an integer or string, and the package declares at
// least one constant of exactly that type:
//
//	type Color int
//
//	const (
//		Red Color = iota
//		Green
//	)
//
// The fix renames the type and every reference to it in the package to Name+"Enum".
package enumname

import (
	"context"
	"fmt"
	"go/token"
	"strings"

	"github.com/sirkon/codecop/internal/coprules"
	"github.com/sirkon/codecop/internal/rename"
)

// Suffix every enumeration name must end with. Matching is case-sensitive.
const Suffix = "Enum"

// Kind classifies declared named types.
type Kind int

const (
	KindOther Kind = iota
	KindAlias
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindOther:
		return "other"
	case KindAlias:
		return "alias"
	case KindEnum:
		return "enum"
	default:
		return fmt.Sprintf("kind-invalid(%d)", k)
	}
}

// Decl is what the detector needs to know about a named type declaration.
type Decl struct {
	Name string
	Pos  token.Pos
	End  token.Pos
	Kind Kind
}

// Check reports a finding for enumerations whose name lacks [Suffix].
func Check(decl Decl) (coprules.Finding, bool) {
	if decl.Kind != KindEnum {
		return coprules.Finding{}, false
	}

	if strings.HasSuffix(decl.Name, Suffix) {
		return coprules.Finding{}, false
	}

	return coprules.Finding{
		Rule:     coprules.EnumSuffix(),
		Pos:      decl.Pos,
		End:      decl.End,
		Name:     decl.Name,
		Expected: decl.Name + Suffix,
	}, true
}

// NewRequest builds the rename the fix asks for.
func NewRequest(target rename.Target, f coprules.Finding) rename.Request {
	return rename.Request{
		Target:  target,
		NewName: f.Name + Suffix,
	}
}

// Fix renames the enumeration the finding refers to. An unresolved target gives back
// the input snapshot.
func Fix(
	ctx context.Context,
	r rename.Renamer,
	snap *rename.Snapshot,
	target rename.Target,
	f coprules.Finding,
) (*rename.Snapshot, error) {
	if !target.Resolved() {
		return snap, nil
	}

	req := NewRequest(target, f)
	res, err := r.Rename(ctx, snap, req)
	if err != nil {
		return snap, fmt.Errorf("rename %s to %s: %w", f.Name, req.NewName, err)
	}

	return res, nil
}
