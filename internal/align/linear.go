package align

// Linear computes the alignment with four rolling 1-D arrays (distance plus
// the three error counters) updated row by row. It never materializes the
// matrix, so memory stays O(n) regardless of input length, at the cost of
// itemized operations: Ops is always nil.
//
// Cost ties resolve match > substitution > insertion > deletion, matching
// the detailed backtrace, so the counter breakdown is stable even though any
// optimal split would sum to the same distance.
func Linear(ref, hyp []string) Result {
	m, n := len(ref), len(hyp)
	switch {
	case m == 0 && n == 0:
		return Result{}
	case m == 0:
		return Result{Distance: n, Insertions: n}
	case n == 0:
		return Result{Distance: m, Deletions: m}
	}

	dist := make([]int, n+1)
	subs := make([]int, n+1)
	ins := make([]int, n+1)
	dels := make([]int, n+1)
	for j := 0; j <= n; j++ {
		dist[j] = j
		ins[j] = j
	}

	for i := 1; i <= m; i++ {
		diagDist, diagSubs, diagIns, diagDels := dist[0], subs[0], ins[0], dels[0]
		dist[0] = i
		subs[0], ins[0] = 0, 0
		dels[0] = i

		for j := 1; j <= n; j++ {
			upDist, upSubs, upIns, upDels := dist[j], subs[j], ins[j], dels[j]

			if ref[i-1] == hyp[j-1] {
				dist[j] = diagDist
				subs[j], ins[j], dels[j] = diagSubs, diagIns, diagDels
			} else {
				subCost := diagDist + 1
				insCost := dist[j-1] + 1
				delCost := upDist + 1
				switch {
				case subCost <= insCost && subCost <= delCost:
					dist[j] = subCost
					subs[j], ins[j], dels[j] = diagSubs+1, diagIns, diagDels
				case insCost <= delCost:
					dist[j] = insCost
					subs[j], ins[j], dels[j] = subs[j-1], ins[j-1]+1, dels[j-1]
				default:
					dist[j] = delCost
					subs[j], ins[j], dels[j] = upSubs, upIns, upDels+1
				}
			}

			diagDist, diagSubs, diagIns, diagDels = upDist, upSubs, upIns, upDels
		}
	}

	return Result{
		Distance:      dist[n],
		Substitutions: subs[n],
		Insertions:    ins[n],
		Deletions:     dels[n],
	}
}
