package scoring

// Span reports the resolved inclusive token range that was actually scored
// after defaulting and clamping. End is -1 when the sequence was empty.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Empty reports whether the span covers no tokens.
func (s Span) Empty() bool {
	return s.End < s.Start
}

// Len returns the number of tokens the span covers.
func (s Span) Len() int {
	if s.Empty() {
		return 0
	}
	return s.End - s.Start + 1
}

// sliceSpan restricts tokens to the requested inclusive range. Nil bounds
// default to the full sequence; given bounds are clamped into [0, len-1] and
// reordered when inverted. Out-of-range requests are never an error.
func sliceSpan(tokens []string, start, end *int) ([]string, Span) {
	size := len(tokens)
	if size == 0 {
		return tokens, Span{Start: 0, End: -1}
	}
	if start == nil && end == nil {
		return tokens, Span{Start: 0, End: size - 1}
	}

	s, e := 0, size-1
	if start != nil {
		s = clamp(*start, 0, size-1)
	}
	if end != nil {
		e = clamp(*end, 0, size-1)
	}
	if s > e {
		s, e = e, s
	}
	return tokens[s : e+1], Span{Start: s, End: e}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
