package scoring

import (
	"math"

	"asrbench/internal/align"
)

// Result bundles the computed metrics for one Calculate call. It is a plain
// value: callers may persist or render it but never mutate shared state
// through it.
//
// Errors is nil whenever the linear alignment strategy ran (itemization not
// computed), and an empty non-nil slice when the detailed strategy found a
// perfect match.
type Result struct {
	WER             float64        `json:"wer"`
	CER             float64        `json:"cer"`
	Substitutions   int            `json:"substitutions"`
	Insertions      int            `json:"insertions"`
	Deletions       int            `json:"deletions"`
	ReferenceWords  int            `json:"reference_words"`
	HypothesisWords int            `json:"hypothesis_words"`
	Errors          []align.EditOp `json:"errors"`
	RefSpan         Span           `json:"ref_span"`
	HypSpan         Span           `json:"hyp_span"`
}

// Accuracy derives the word accuracy percentage, floored at zero since WER
// can exceed 100 when the hypothesis carries many insertions.
func (r Result) Accuracy() float64 {
	return math.Max(0, 100-r.WER)
}

// Itemized reports whether Errors carries per-token edit operations.
func (r Result) Itemized() bool {
	return r.Errors != nil
}

// rate converts an edit distance into a percentage of the reference length,
// rounded to two decimals. A zero-length reference defines the rate as 0.0
// rather than NaN or infinity.
func rate(distance, refLen int) float64 {
	if refLen <= 0 {
		return 0
	}
	return round2(float64(distance) / float64(refLen) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
