package forest

// CartesianProduct combines one tree of each set, for all combinations. The
// result is ordered with the choice for the first set varying slowest, i.e.
// combinations are listed in lexicographic order of the input sets.
//
// If any set is empty, the result is empty. The product of no sets at all
// is a single, empty combination.
func CartesianProduct(sets [][]Tree) [][]Tree {
	result := [][]Tree{{}}
	for _, set := range sets {
		next := make([][]Tree, 0, len(result)*len(set))
		for _, prefix := range result {
			for _, t := range set {
				combination := make([]Tree, len(prefix), len(prefix)+1)
				copy(combination, prefix)
				next = append(next, append(combination, t))
			}
		}
		result = next
	}
	return result
}
