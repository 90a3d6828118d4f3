package evo

import "sort"

// RetainIndices mutates vec in place so that it becomes exactly the
// multiset [vec[i] for i in indices], preserving len(indices) as the output
// length. Clones (via the clone function) are produced only for duplicate
// indices; the whole operation is O(N+K) for N = len(vec), K = len(indices).
//
// Algorithm, ported from original_source/src/select/utils.rs's
// retain_indices:
//  1. Sort indices ascending.
//  2. Swap the first picked element to position 0.
//  3. Walk the remaining indices; on a duplicate of the previous index,
//     append a fresh clone of the just-placed element to both vec and the
//     index list; otherwise swap into the next contiguous slot.
//  4. Truncate to the final winner count.
//
// Panics if indices is empty.
func RetainIndices[T any](vec []T, indices []int, clone func(T) T) []T {
	if len(indices) == 0 {
		panic("evo: RetainIndices requires at least one index")
	}

	nIndices := len(indices)
	idx := append([]int(nil), indices...)
	sort.Ints(idx)

	vec[idx[0]], vec[0] = vec[0], vec[idx[0]]
	swapTo := 1
	i := 1
	for i < len(idx) {
		if idx[i] == idx[i-1] {
			idx = append(idx, len(vec))
			vec = append(vec, clone(vec[swapTo-1]))
		} else {
			vec[idx[i]], vec[swapTo] = vec[swapTo], vec[idx[i]]
			swapTo++
		}
		i++
	}

	return vec[:nIndices]
}
