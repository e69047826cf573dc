package forest

// EnumerateSplits lists all ways to cut the span (i…j) into n non-empty,
// consecutive sub-spans. Each split is given as the n-1 cut positions, which
// are strictly increasing and taken from {i+1, …, j-1}. Splits are listed in
// lexicographic order.
//
// For a span of length L there are C(L-1, n-1) splits. For n = 1 there is a
// single, empty split, provided the span is not empty. n < 1 or an empty span
// yield no splits at all.
func EnumerateSplits(i, j, n int) [][]int {
	if n < 1 || i >= j {
		return nil
	}
	if n == 1 {
		return [][]int{{}}
	}
	var splits [][]int
	cuts := make([]int, 0, n-1)
	var choose func(from int)
	choose = func(from int) {
		need := n - 1 - len(cuts)
		if need == 0 {
			splits = append(splits, append([]int(nil), cuts...))
			return
		}
		// leave room for the remaining cuts, the last one may be j-1
		for pos := from; pos <= j-need; pos++ {
			cuts = append(cuts, pos)
			choose(pos + 1)
			cuts = cuts[:len(cuts)-1]
		}
	}
	choose(i + 1)
	return splits
}

// subspans converts the cut positions of a split into the boundaries of
// the sub-spans: i, cut1, …, cutN, j.
func subspans(i, j int, cuts []int) []int {
	bounds := make([]int, 0, len(cuts)+2)
	bounds = append(bounds, i)
	bounds = append(bounds, cuts...)
	return append(bounds, j)
}
