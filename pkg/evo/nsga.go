package evo

import (
	"math"
	"sort"
)

// RankNondominated computes the non-dominated rank of every member of pop
// using the Best Order Sort algorithm (Roy et al. 2016). pop's fitness must
// already be evaluated to MultiObjective values (i.e. via a prior
// evaluate-all pass). Returns ranks (rank 0 is best) and counts (the size
// of each front), per spec.md §4.3.
func RankNondominated(pop []*Cached) (ranks []int, counts []int) {
	popsize := len(pop)
	if popsize == 0 {
		return nil, nil
	}
	m := weightedVector(pop[0])
	numObjectives := len(m)

	// l[k][j] holds the indices assigned to front k, as discovered while
	// scanning objective j's descending order.
	l := make([][][]int, popsize)
	for k := range l {
		l[k] = make([][]int, numObjectives)
	}

	isRanked := make([]bool, popsize)
	rank := make([]int, popsize)
	rankCount := 1
	solutionsCompleted := 0

	// q[j] is a permutation of [0, popsize) sorted by descending
	// fitness[*][j].
	q := make([][]int, numObjectives)
	for j := 0; j < numObjectives; j++ {
		qj := make([]int, popsize)
		for i := range qj {
			qj[i] = i
		}
		sort.Slice(qj, func(a, b int) bool {
			return weightedAt(pop[qj[a]], j) > weightedAt(pop[qj[b]], j)
		})
		q[j] = qj
	}

	for i := 0; i < popsize; i++ {
		for j := 0; j < numObjectives; j++ {
			s := q[j][i]
			if isRanked[s] {
				l[rank[s]][j] = append(l[rank[s]][j], s)
				continue
			}

			found := false
			for k := 0; k < rankCount; k++ {
				dominated := false
				for _, t := range l[k][j] {
					if CompareDominance(weightedVector(pop[t]), weightedVector(pop[s])) == AOverB {
						dominated = true
						break
					}
				}
				if !dominated {
					rank[s] = k
					l[rank[s]][j] = append(l[rank[s]][j], s)
					found = true
					break
				}
			}
			if !found {
				rank[s] = rankCount
				rankCount++
				l[rank[s]][j] = append(l[rank[s]][j], s)
			}

			isRanked[s] = true
			solutionsCompleted++
		}
		if solutionsCompleted == popsize {
			break
		}
	}

	counts = make([]int, rankCount)
	for _, r := range rank {
		counts[r]++
	}

	return rank, counts
}

// CrowdingDistance computes the crowding distance of every member of front,
// a slice of weighted-objective vectors all belonging to the same
// non-dominated rank. For each objective, the endpoints (min/max) get
// +Inf, and interior members accumulate (next-prev)/(max-min); an
// objective with max == min contributes zero to every member rather than
// dividing by zero. Returns one distance per member of front, in the same
// order.
func CrowdingDistance(front [][]float64) []float64 {
	n := len(front)
	distances := make([]float64, n)
	if n == 0 {
		return distances
	}
	if n <= 2 {
		for i := range distances {
			distances[i] = math.Inf(1)
		}
		return distances
	}

	numObjectives := len(front[0])
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	for m := 0; m < numObjectives; m++ {
		sort.Slice(order, func(a, b int) bool {
			return front[order[a]][m] < front[order[b]][m]
		})

		min := front[order[0]][m]
		max := front[order[n-1]][m]

		distances[order[0]] = math.Inf(1)
		distances[order[n-1]] = math.Inf(1)

		if max == min {
			continue
		}

		for i := 1; i < n-1; i++ {
			prev := front[order[i-1]][m]
			next := front[order[i+1]][m]
			distances[order[i]] += (next - prev) / (max - min)
		}
	}

	return distances
}

// NSGA2Selector implements the NSGA-II selection operator: non-dominated
// sorting followed by a crowding-distance tiebreak on the front that would
// otherwise overflow the requested count.
type NSGA2Selector struct{}

var _ Selector = NSGA2Selector{}

// Select retains exactly n solutions: whole fronts are taken in ascending
// rank order until the next front would overflow n, then the highest
// crowding-distance members of that splitting front fill the remainder.
// Every retained solution has rank <= the rank of every discarded one.
func (NSGA2Selector) Select(pop []*Cached, n int) []*Cached {
	ranks, counts := RankNondominated(pop)

	byRank := make([][]int, len(counts))
	for i, r := range ranks {
		byRank[r] = append(byRank[r], i)
	}

	winners := make([]int, 0, n)
	for front := 0; front < len(counts); front++ {
		members := byRank[front]
		if len(winners)+len(members) <= n {
			winners = append(winners, members...)
			continue
		}

		remaining := n - len(winners)
		if remaining <= 0 {
			break
		}

		vectors := make([][]float64, len(members))
		for i, idx := range members {
			vectors[i] = weightedVector(pop[idx])
		}
		distances := CrowdingDistance(vectors)

		order := make([]int, len(members))
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(a, b int) bool {
			return distances[order[a]] > distances[order[b]]
		})

		for i := 0; i < remaining; i++ {
			winners = append(winners, members[order[i]])
		}
		break
	}

	return RetainIndices(pop, winners, cloneCached)
}
