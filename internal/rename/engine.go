package rename

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

var (
	// ErrInvalidName is returned when the new name is not a Go identifier.
	ErrInvalidName = errors.New("not a valid identifier")

	// ErrNameCollision is returned when the new name is already declared in the scope
	// of the renamed object, shadows it at one of its references or clashes with a
	// field of a struct embedding it.
	ErrNameCollision = errors.New("name is already declared")
)

// Renamer renames a symbol and all its references.
type Renamer interface {
	// Rename returns a snapshot with the rename applied. An unresolved target
	// gives back the input snapshot unchanged.
	Rename(ctx context.Context, snap *Snapshot, req Request) (*Snapshot, error)
}

var _ Renamer = Engine{}

// Engine is a [Renamer] working over the type information of a single package.
// References in other packages are out of its reach.
type Engine struct{}

// Rename implements [Renamer].
func (Engine) Rename(ctx context.Context, snap *Snapshot, req Request) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return snap, err
	}

	if !req.Target.Resolved() {
		return snap, nil
	}

	if !token.IsIdentifier(req.NewName) {
		return snap, fmt.Errorf("rename %s to %q: %w", req.Target, req.NewName, ErrInvalidName)
	}

	if req.NewName == req.Target.Name() {
		return snap, nil
	}

	var (
		edits []analysis.TextEdit
		err   error
	)
	if req.Target.obj != nil {
		edits, err = objectEdits(ctx, snap, req)
	} else {
		edits, err = packageEdits(ctx, snap, req)
	}
	if err != nil {
		return snap, err
	}

	return snap.With(edits...), nil
}

func objectEdits(ctx context.Context, snap *Snapshot, req Request) ([]analysis.TextEdit, error) {
	obj := req.Target.obj

	if scope := obj.Parent(); scope != nil {
		if prev := scope.Lookup(req.NewName); prev != nil {
			return nil, collision(snap, req, prev.Pos())
		}
	}

	// Embedded fields take the name of their type, so they are renamed too.
	fields := embeddedFields(snap.info, obj)

	var edits []analysis.TextEdit
	for _, file := range snap.files {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("rename %s: %w", req.Target, err)
		}

		var err error
		ast.Inspect(file, func(n ast.Node) bool {
			if err != nil {
				return false
			}

			switch n := n.(type) {
			case *ast.StructType:
				err = fieldClash(snap, req, n, fields)
				return err == nil
			case *ast.SelectorExpr:
				if fields[snap.info.Uses[n.Sel]] {
					err = selectorClash(snap, req, n)
				}
				return err == nil
			case *ast.Ident:
				switch {
				case snap.info.Defs[n] == obj:
				case snap.info.Uses[n] == obj:
					if err = shadowed(snap, req, n); err != nil {
						return false
					}
				case fields[snap.info.Uses[n]]:
				default:
					return false
				}
				edits = append(edits, replaceIdent(n, req.NewName))
				return false
			}
			return true
		})
		if err != nil {
			return nil, err
		}
	}

	return edits, nil
}

func embeddedFields(info *types.Info, obj types.Object) map[types.Object]bool {
	res := map[types.Object]bool{}
	for id, def := range info.Defs {
		v, ok := def.(*types.Var)
		if !ok || !v.Embedded() {
			continue
		}
		if info.Uses[id] == obj {
			res[v] = true
		}
	}
	return res
}

// shadowed reports a collision if the new name is visible at the reference,
// since the reference would bind to that declaration after the rename.
func shadowed(snap *Snapshot, req Request, id *ast.Ident) error {
	if snap.pkg == nil {
		return nil
	}

	scope := snap.pkg.Scope().Innermost(id.Pos())
	if scope == nil {
		scope = snap.pkg.Scope()
	}
	if _, prev := scope.LookupParent(req.NewName, id.Pos()); prev != nil {
		return collision(snap, req, prev.Pos())
	}
	return nil
}

// fieldClash checks a struct embedding a renamed field has no field with the new name.
func fieldClash(snap *Snapshot, req Request, st *ast.StructType, fields map[types.Object]bool) error {
	if st.Fields == nil {
		return nil
	}

	var embeds bool
	var prev *ast.Ident
	for _, f := range st.Fields.List {
		if len(f.Names) == 0 {
			if id := embeddedIdent(f.Type); id != nil {
				if fields[snap.info.Defs[id]] {
					embeds = true
				} else if id.Name == req.NewName {
					prev = id
				}
			}
			continue
		}
		for _, name := range f.Names {
			if name.Name == req.NewName {
				prev = name
			}
		}
	}

	if embeds && prev != nil {
		return collision(snap, req, prev.Pos())
	}
	return nil
}

// selectorClash checks the new name does not already select something on the receiver.
func selectorClash(snap *Snapshot, req Request, sel *ast.SelectorExpr) error {
	s := snap.info.Selections[sel]
	if s == nil {
		return nil
	}

	prev, _, _ := types.LookupFieldOrMethod(s.Recv(), true, req.Target.obj.Pkg(), req.NewName)
	if prev != nil {
		return collision(snap, req, prev.Pos())
	}
	return nil
}

func embeddedIdent(expr ast.Expr) *ast.Ident {
	switch e := expr.(type) {
	case *ast.Ident:
		return e
	case *ast.StarExpr:
		return embeddedIdent(e.X)
	case *ast.SelectorExpr:
		return e.Sel
	case *ast.IndexExpr:
		return embeddedIdent(e.X)
	case *ast.IndexListExpr:
		return embeddedIdent(e.X)
	}
	return nil
}

func collision(snap *Snapshot, req Request, pos token.Pos) error {
	return fmt.Errorf(
		"rename %s to %q: %w at %s",
		req.Target,
		req.NewName,
		ErrNameCollision,
		snap.fset.Position(pos),
	)
}

func packageEdits(ctx context.Context, snap *Snapshot, req Request) ([]analysis.TextEdit, error) {
	pkg := req.Target.pkg

	var edits []analysis.TextEdit
	for _, file := range snap.files {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("rename %s: %w", req.Target, err)
		}

		// External test packages live next to the package but are not part of it.
		if file.Name == nil || file.Name.Name != pkg.Name() {
			continue
		}

		edits = append(edits, replaceIdent(file.Name, req.NewName))
	}

	return edits, nil
}

func replaceIdent(id *ast.Ident, name string) analysis.TextEdit {
	return analysis.TextEdit{
		Pos:     id.Pos(),
		End:     id.End(),
		NewText: []byte(name),
	}
}
