package forest

// Tree is a node of a parse tree. It is either a *Leaf or an *Internal node.
// Trees are immutable and may be shared between different parents.
type Tree interface {
	Label() string
	Subtrees() []Tree
	isTree()
}

// Leaf is a terminal node of a parse tree. It matches exactly one input token.
type Leaf struct {
	Symbol string
}

// Label returns the terminal symbol.
func (l *Leaf) Label() string { return l.Symbol }

// Subtrees returns nil.
func (l *Leaf) Subtrees() []Tree { return nil }

func (l *Leaf) isTree() {}

func (l *Leaf) String() string {
	return l.Symbol
}

// Internal is a non-terminal node of a parse tree. Its children correspond
// to the right hand side of the production which has been applied, in order.
type Internal struct {
	Symbol   string
	Children []Tree
}

// Label returns the non-terminal symbol.
func (n *Internal) Label() string { return n.Symbol }

// Subtrees returns the children of n. Clients must not modify the result.
func (n *Internal) Subtrees() []Tree { return n.Children }

func (n *Internal) isTree() {}

// String returns a bracketed representation, e.g. "(NP (Det the) (N dog))".
func (n *Internal) String() string {
	s := "(" + n.Symbol
	for _, ch := range n.Children {
		s += " " + Bracketed(ch)
	}
	return s + ")"
}

// Bracketed returns a single-line representation of a tree.
func Bracketed(t Tree) string {
	switch node := t.(type) {
	case *Leaf:
		return node.String()
	case *Internal:
		return node.String()
	}
	return "<nil>"
}

// Yield returns the sequence of leaf symbols of t, left to right. For a tree
// produced by a parser this is the input token sequence.
func Yield(t Tree) []string {
	var leaves []string
	var collect func(Tree)
	collect = func(t Tree) {
		switch node := t.(type) {
		case *Leaf:
			leaves = append(leaves, node.Symbol)
		case *Internal:
			for _, ch := range node.Children {
				collect(ch)
			}
		}
	}
	collect(t)
	return leaves
}

// Size returns the number of nodes of t.
func Size(t Tree) int {
	n := 1
	for _, ch := range t.Subtrees() {
		n += Size(ch)
	}
	return n
}

// Depth returns the number of levels of t. A single leaf has depth 1.
func Depth(t Tree) int {
	d := 0
	for _, ch := range t.Subtrees() {
		if cd := Depth(ch); cd > d {
			d = cd
		}
	}
	return d + 1
}
