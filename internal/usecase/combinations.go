package usecase

import (
	"iter"

	"github.com/trip-search/flight-trip-search-system/internal/domain"
)

// FindCombinations enumerates every combination between the constraints'
// origin and destination over the given index.
//
// The search is a depth-first traversal of the directed multigraph whose
// nodes are airports and whose edges are flights; parallel flights between
// the same pair of airports are distinct edges. It uses an explicit stack
// rather than recursion, so backtracking is a pop instead of a call return
// and branch depth never touches the call stack. Airport revisits are
// forbidden, which bounds branch depth by the number of distinct airports
// and guarantees termination.
//
// A combination that reaches the destination is yielded and its branch
// terminates there; longer loops through the destination are intentionally
// not explored. The returned sequence is lazy and single-pass: breaking out
// of the iteration stops all further search work, and an unreachable
// destination simply produces an empty sequence.
func FindCombinations(index FlightIndex, c domain.SearchConstraints) iter.Seq[domain.Combination] {
	return func(yield func(domain.Combination) bool) {
		var stack []domain.Combination
		for _, f := range index.Lookup(c.Origin) {
			if DepartsOnRequestedDate(f, c) {
				stack = append(stack, domain.SingleLeg(f))
			}
		}

		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if cur.Destination() == c.Destination {
				if !yield(cur) {
					return
				}
				continue
			}

			for _, f := range index.Lookup(cur.Destination()) {
				// The visited check also rejects flights back to the start.
				if cur.HasVisited(f.Destination) {
					continue
				}
				if !ValidLayover(cur.Last(), f, c) {
					continue
				}
				if ext := cur.Extend(f); CombinationEligible(ext, c) {
					stack = append(stack, ext)
				}
			}
		}
	}
}
