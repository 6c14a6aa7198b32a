package align

// Detailed computes an alignment with a full (m+1)x(n+1) distance matrix and
// backtraces it into ordered edit operations. When either sequence is empty
// or the matrix would exceed the hard cap, it degrades to the linear
// strategy and returns aggregate counts only.
//
// The backtrace breaks cost ties in the order match > substitution >
// insertion > deletion. Other tie orders would be equally optimal; this one
// is kept stable so repeated runs itemize identically.
func Detailed(ref, hyp []string, limits Limits) Result {
	limits = limits.withDefaults()
	m, n := len(ref), len(hyp)
	if m == 0 || n == 0 || m*n > limits.HardCapCells {
		return Linear(ref, hyp)
	}

	d := make([][]int, m+1)
	for i := range d {
		d[i] = make([]int, n+1)
		d[i][0] = i
	}
	for j := 0; j <= n; j++ {
		d[0][j] = j
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if ref[i-1] == hyp[j-1] {
				d[i][j] = d[i-1][j-1]
				continue
			}
			best := d[i-1][j-1] // substitution
			if d[i][j-1] < best {
				best = d[i][j-1] // insertion
			}
			if d[i-1][j] < best {
				best = d[i-1][j] // deletion
			}
			d[i][j] = best + 1
		}
	}

	res := Result{
		Distance: d[m][n],
		Ops:      make([]EditOp, 0, d[m][n]),
	}

	i, j := m, n
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && ref[i-1] == hyp[j-1] && d[i][j] == d[i-1][j-1]:
			i--
			j--
		case i > 0 && j > 0 && d[i][j] == d[i-1][j-1]+1:
			res.Substitutions++
			res.Ops = append(res.Ops, EditOp{Kind: KindSubstitution, Ref: ref[i-1], Hyp: hyp[j-1], Pos: i - 1})
			i--
			j--
		case j > 0 && d[i][j] == d[i][j-1]+1:
			res.Insertions++
			res.Ops = append(res.Ops, EditOp{Kind: KindInsertion, Hyp: hyp[j-1], Pos: j - 1})
			j--
		default:
			res.Deletions++
			res.Ops = append(res.Ops, EditOp{Kind: KindDeletion, Ref: ref[i-1], Pos: i - 1})
			i--
		}
	}

	// Backtrace walks end to start; flip to ascending position order.
	for a, b := 0, len(res.Ops)-1; a < b; a, b = a+1, b-1 {
		res.Ops[a], res.Ops[b] = res.Ops[b], res.Ops[a]
	}
	return res
}
