package spans

import (
	"go/ast"
	"go/token"

	"github.com/sirkon/rbtree"
)

// nodeSpan stores a [start,end] span for a node and, if needed,
// a nested RB-tree for child spans fully contained in this span.
type nodeSpan struct {
	start token.Pos
	end   token.Pos

	node     ast.Node
	children *rbtree.Tree[*nodeSpan]
}

// Cmp defines ordering for the RB-tree as "disjoint by position".
// - return -1 if this span is strictly before other (ends before other's start)
// - return  1 if this span is strictly after  other (starts after other's end)
// - return  0 if spans overlap in any way (including containment).
//
// Overlapping spans must be in a strict containment relationship, so 0 means
// either superspan or subspan. InsertReturn hands us the overlapping node and
// attachInto does the containment fix-up.
func (n *nodeSpan) Cmp(other *nodeSpan) int {
	if n.end < other.start {
		return -1
	}
	if n.start > other.end {
		return 1
	}
	return 0
}

func contains(a, b *nodeSpan) bool {
	return a.start <= b.start && a.end >= b.end
}

// attachInto inserts span s into RB-tree t:
//   - no overlapping node in t: s becomes a sibling;
//   - overlapping r and s contains r: r is overwritten in place with s and the old r
//     is re-attached as a child of it;
//   - r contains s: s is attached into r.children.
func attachInto(t *rbtree.Tree[*nodeSpan], s *nodeSpan) {
	r := t.InsertReturn(s)
	if r == s {
		return
	}

	if contains(s, r) {
		old := *r
		*r = *s

		if r.children == nil {
			r.children = rbtree.New[*nodeSpan]()
		}
		attachInto(r.children, &old)
		return
	}

	if contains(r, s) {
		if r.children == nil {
			r.children = rbtree.New[*nodeSpan]()
		}
		attachInto(r.children, s)
		return
	}

	panic("attachInto: partial-overlap spans are not supported")
}

func descendSearch(n *nodeSpan, pos token.Pos) ast.Node {
	if n == nil {
		return nil
	}
	if n.children == nil {
		return n.node
	}
	key := &nodeSpan{start: pos, end: pos}
	child := n.children.Search(key)
	if child == nil {
		return n.node
	}
	if v := descendSearch(child, pos); v != nil {
		return v
	}
	return n.node
}
