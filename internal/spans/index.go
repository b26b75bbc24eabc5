// Package spans maps source positions to the innermost declaration node covering them.
//
// Rule fixes get only a position from a finding and use the index to get back to
// the declaration they have to rename.
package spans

import (
	"go/ast"
	"go/token"

	"github.com/sirkon/rbtree"
)

// New creates an empty [Index].
func New() *Index {
	return &Index{tree: rbtree.New[*nodeSpan]()}
}

// Index holds declaration nodes collected for a single analysis pass.
type Index struct {
	tree *rbtree.Tree[*nodeSpan]
	size int
}

// Lookup returns the most specific (innermost) node covering pos.
func (x *Index) Lookup(pos token.Pos) ast.Node {
	if !pos.IsValid() {
		return nil
	}
	key := &nodeSpan{start: pos, end: pos}
	res := x.tree.Search(key)
	if res == nil {
		return nil
	}
	return descendSearch(res, pos)
}

// Add registers a node with its source span.
// Nodes of one AST either nest or are disjoint. Enclosing nodes must be added
// before the nodes they contain, which is what a preorder walk gives.
func (x *Index) Add(node ast.Node) {
	if node == nil || !node.Pos().IsValid() {
		return
	}

	end := node.End()
	if end > node.Pos() {
		// ast end positions are exclusive, spans are inclusive.
		end--
	}
	attachInto(x.tree, &nodeSpan{start: node.Pos(), end: end, node: node})
	x.size++
}

// Len returns the number of registered nodes.
func (x *Index) Len() int {
	return x.size
}
