package render

import (
	"github.com/npillmayer/ptgen/forest"
	"github.com/pterm/pterm"
)

// TreeNode converts t into a pterm tree node.
func TreeNode(t forest.Tree) pterm.TreeNode {
	node := pterm.TreeNode{Text: t.Label()}
	for _, ch := range t.Subtrees() {
		node.Children = append(node.Children, TreeNode(ch))
	}
	return node
}

// LeveledList flattens t into a pterm leveled list. Levels are taken from a
// tree walk, i.e. the root is at level 0.
func LeveledList(t forest.Tree) pterm.LeveledList {
	ll := &leveler{}
	forest.Walk(t, ll)
	return ll.list
}

type leveler struct {
	list pterm.LeveledList
}

func (ll *leveler) EnterNode(n *forest.Internal, ctxt forest.NodeCtxt) bool {
	ll.list = append(ll.list, pterm.LeveledListItem{Level: ctxt.Level, Text: n.Symbol})
	return true
}

func (ll *leveler) ExitNode(*forest.Internal, []interface{}, forest.NodeCtxt) interface{} {
	return nil
}

func (ll *leveler) Leaf(l *forest.Leaf, ctxt forest.NodeCtxt) interface{} {
	ll.list = append(ll.list, pterm.LeveledListItem{Level: ctxt.Level, Text: l.Symbol})
	return nil
}

// Pretty renders t as a tree view with pterm. Styling follows the global
// pterm settings; call pterm.DisableStyling() for plain output.
func Pretty(t forest.Tree) (string, error) {
	if t == nil {
		return "", nil
	}
	return pterm.DefaultTree.WithRoot(TreeNode(t)).Srender()
}
