package forest

import (
	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
)

// Fingerprint returns a hash for the structure of t, i.e. labels and shape.
// Structurally identical trees have the same fingerprint, independent of
// node sharing.
func Fingerprint(t Tree) string {
	if t == nil {
		return ""
	}
	h, err := structhash.Hash(t, 1)
	if err != nil { // structhash does not report errors for the types we pass
		panic(err)
	}
	return h
}

// Unique returns trees without structural duplicates, keeping the first
// occurence of each tree.
func Unique(trees []Tree) []Tree {
	seen := treeset.NewWithStringComparator()
	unique := make([]Tree, 0, len(trees))
	for _, t := range trees {
		fp := Fingerprint(t)
		if seen.Contains(fp) {
			tracer().Debugf("dropping duplicate tree %s", Bracketed(t))
			continue
		}
		seen.Add(fp)
		unique = append(unique, t)
	}
	return unique
}

// AllDistinct is true if no two trees of a forest are structurally identical.
func AllDistinct(trees []Tree) bool {
	return len(Unique(trees)) == len(trees)
}
