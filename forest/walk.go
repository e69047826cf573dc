package forest

import (
	"github.com/npillmayer/ptgen"
)

// --- Listener --------------------------------------------------------------

// Listener is a type for walking a parse tree.
//
// EnterNode returns a boolean value indicating if the traversal should continue
// to the children of this node. ExitNode and Leaf may return user-defined values
// to be propagated upwards of the tree. ExitNode receives the values of all
// children, or nil if the children have not been visited.
type Listener interface {
	EnterNode(*Internal, NodeCtxt) bool
	ExitNode(*Internal, []interface{}, NodeCtxt) interface{}
	Leaf(*Leaf, NodeCtxt) interface{}
}

// NodeCtxt is a context structure for Listeners.
type NodeCtxt struct {
	Span  ptgen.Span // span of input tokens covered by this node
	Level int        // nesting level, 0 for the root
	Index int        // position among the siblings
}

// Walk traverses tree t top-down and left to right, calling listener l for every
// node. It returns the value returned by l for the root of t.
//
// Spans are calculated from the leaves of t: every leaf covers exactly one
// input token, starting with position 0.
func Walk(t Tree, l Listener) interface{} {
	if t == nil {
		return nil
	}
	value, _ := walk(t, l, 0, 0, 0)
	return value
}

func walk(t Tree, l Listener, pos int, level int, index int) (interface{}, int) {
	switch node := t.(type) {
	case *Leaf:
		ctxt := NodeCtxt{Span: ptgen.Span{pos, pos + 1}, Level: level, Index: index}
		return l.Leaf(node, ctxt), 1
	case *Internal:
		width := len(Yield(node))
		ctxt := NodeCtxt{Span: ptgen.Span{pos, pos + width}, Level: level, Index: index}
		var values []interface{}
		if l.EnterNode(node, ctxt) {
			values = make([]interface{}, len(node.Children))
			p := pos
			for i, ch := range node.Children {
				var w int
				values[i], w = walk(ch, l, p, level+1, i)
				p += w
			}
		}
		return l.ExitNode(node, values, ctxt), width
	}
	return nil, 0
}

// ---------------------------------------------------------------------------

// Spans returns the spans of all nodes of t, in the order of a top-down
// traversal. It is a helper to check the consistency of trees.
func Spans(t Tree) []ptgen.Span {
	c := &spanCollector{}
	Walk(t, c)
	return c.spans
}

type spanCollector struct {
	spans []ptgen.Span
}

func (c *spanCollector) EnterNode(n *Internal, ctxt NodeCtxt) bool {
	c.spans = append(c.spans, ctxt.Span)
	return true
}

func (c *spanCollector) ExitNode(*Internal, []interface{}, NodeCtxt) interface{} {
	return nil
}

func (c *spanCollector) Leaf(l *Leaf, ctxt NodeCtxt) interface{} {
	c.spans = append(c.spans, ctxt.Span)
	return nil
}
