package rename

import (
	"go/types"
)

// Target refers to a symbol to be renamed: either a declared object or a package.
// The zero Target refers to nothing.
type Target struct {
	obj types.Object
	pkg *types.Package
}

// Object creates a target for a declared object. A nil object gives an unresolved target.
func Object(obj types.Object) Target {
	return Target{obj: obj}
}

// Package creates a target for a package. A nil package gives an unresolved target.
func Package(pkg *types.Package) Target {
	return Target{pkg: pkg}
}

// Resolved reports whether the target refers to a symbol.
func (t Target) Resolved() bool {
	return t.obj != nil || t.pkg != nil
}

// Name returns the current name of the symbol.
func (t Target) Name() string {
	switch {
	case t.obj != nil:
		return t.obj.Name()
	case t.pkg != nil:
		return t.pkg.Name()
	default:
		return ""
	}
}

func (t Target) String() string {
	switch {
	case t.obj != nil:
		return "object " + t.obj.Name()
	case t.pkg != nil:
		return "package " + t.pkg.Path()
	default:
		return "unresolved"
	}
}

// Request asks a [Renamer] to rename the target symbol and all its references.
type Request struct {
	Target  Target
	NewName string
}
