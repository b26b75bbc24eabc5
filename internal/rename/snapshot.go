// Package rename provides the rename primitive the rule fixes delegate to.
//
// A [Snapshot] is an immutable view of one package: its files, their type
// information and the text edits accumulated so far. A [Renamer] never mutates
// the snapshot it was given, it returns a new one instead.
package rename

import (
	"go/ast"
	"go/token"
	"go/types"
	"slices"

	"golang.org/x/tools/go/analysis"
)

// Snapshot is an immutable package state at a point in time.
type Snapshot struct {
	fset  *token.FileSet
	files []*ast.File
	info  *types.Info
	pkg   *types.Package
	edits []analysis.TextEdit
}

// NewSnapshot creates a snapshot with no pending edits.
func NewSnapshot(fset *token.FileSet, pkg *types.Package, files []*ast.File, info *types.Info) *Snapshot {
	return &Snapshot{
		fset:  fset,
		files: files,
		info:  info,
		pkg:   pkg,
	}
}

// FromPass creates a snapshot of the package under analysis.
func FromPass(pass *analysis.Pass) *Snapshot {
	return NewSnapshot(pass.Fset, pass.Pkg, pass.Files, pass.TypesInfo)
}

// FileSet returns the file set positions of the snapshot belong to.
func (s *Snapshot) FileSet() *token.FileSet { return s.fset }

// Package returns the type-checked package of the snapshot.
func (s *Snapshot) Package() *types.Package { return s.pkg }

// Files returns the syntax trees of the snapshot.
func (s *Snapshot) Files() []*ast.File { return s.files }

// Info returns type information of the snapshot.
func (s *Snapshot) Info() *types.Info { return s.info }

// With returns a new snapshot carrying the given edits after the existing ones.
func (s *Snapshot) With(edits ...analysis.TextEdit) *Snapshot {
	if len(edits) == 0 {
		return s
	}

	ns := *s
	ns.edits = make([]analysis.TextEdit, 0, len(s.edits)+len(edits))
	ns.edits = append(ns.edits, s.edits...)
	ns.edits = append(ns.edits, edits...)
	return &ns
}

// Edits returns a copy of pending edits ordered by position.
func (s *Snapshot) Edits() []analysis.TextEdit {
	out := slices.Clone(s.edits)
	slices.SortStableFunc(out, func(a, b analysis.TextEdit) int {
		return int(a.Pos) - int(b.Pos)
	})
	return out
}

// Changed reports whether the snapshot differs from the state it was created from.
func (s *Snapshot) Changed() bool {
	return len(s.edits) > 0
}

// SuggestedFix renders pending edits as a fix for a diagnostic.
func (s *Snapshot) SuggestedFix(message string) analysis.SuggestedFix {
	return analysis.SuggestedFix{
		Message:   message,
		TextEdits: s.Edits(),
	}
}
