package align

// Default cell limits for strategy selection. These are policy knobs, not
// semantics: changing them trades itemized diffs against memory.
const (
	DefaultDetailedCells = 20_000
	DefaultHardCapCells  = 250_000
)

// Limits bounds the detailed strategy's matrix size. Zero values fall back to
// the package defaults.
type Limits struct {
	// DetailedCells is the maximum m*n for which Align picks the detailed
	// strategy automatically.
	DetailedCells int
	// HardCapCells is the absolute m*n ceiling for the detailed strategy;
	// beyond it even an explicit Detailed call degrades to linear.
	HardCapCells int
}

func (l Limits) withDefaults() Limits {
	if l.DetailedCells <= 0 {
		l.DetailedCells = DefaultDetailedCells
	}
	if l.HardCapCells <= 0 {
		l.HardCapCells = DefaultHardCapCells
	}
	return l
}

// Kind identifies an edit operation variant.
type Kind string

const (
	KindSubstitution Kind = "substitution"
	KindInsertion    Kind = "insertion"
	KindDeletion     Kind = "deletion"
)

// EditOp is a single edit in an optimal alignment. Pos is the 0-based token
// index within the compared sequence: the reference index for substitutions
// and deletions, the hypothesis index for insertions.
type EditOp struct {
	Kind Kind   `json:"kind"`
	Ref  string `json:"ref,omitempty"`
	Hyp  string `json:"hyp,omitempty"`
	Pos  int    `json:"pos"`
}

// Result holds the aggregate alignment outcome. Ops is nil whenever the
// linear strategy ran; a non-nil empty slice means the detailed strategy ran
// and found a perfect match. The distinction matters to callers that render
// itemized diffs.
type Result struct {
	Distance      int      `json:"distance"`
	Substitutions int      `json:"substitutions"`
	Insertions    int      `json:"insertions"`
	Deletions     int      `json:"deletions"`
	Ops           []EditOp `json:"ops"`
}

// Itemized reports whether the result carries per-token edit operations.
func (r Result) Itemized() bool {
	return r.Ops != nil
}

// Align compares ref against hyp, choosing the detailed strategy when both
// sequences are non-empty and the matrix fits within limits, and the linear
// strategy otherwise.
func Align(ref, hyp []string, limits Limits) Result {
	limits = limits.withDefaults()
	m, n := len(ref), len(hyp)
	if m == 0 || n == 0 {
		return Linear(ref, hyp)
	}
	if m*n < limits.DetailedCells {
		return Detailed(ref, hyp, limits)
	}
	return Linear(ref, hyp)
}
