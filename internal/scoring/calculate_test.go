package scoring

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"asrbench/internal/align"
)

func intPtr(v int) *int {
	return &v
}

func approx(got, want float64) bool {
	return math.Abs(got-want) < 0.001
}

func TestCalculateIdentity(t *testing.T) {
	texts := []string{
		"the cat sat on the mat",
		"Hello, World!",
		"שָׁלוֹם עֲלֵיכֶם",
		"",
	}
	for _, text := range texts {
		res := Calculate(text, text, Options{})
		if res.WER != 0 {
			t.Errorf("Calculate(%q, same) WER = %v, want 0", text, res.WER)
		}
		if res.CER != 0 {
			t.Errorf("Calculate(%q, same) CER = %v, want 0", text, res.CER)
		}
	}
}

func TestCalculateEmptyHypothesis(t *testing.T) {
	res := Calculate("some reference words", "", Options{})
	if res.WER != 100 {
		t.Errorf("WER = %v, want 100", res.WER)
	}
	if res.CER != 100 {
		t.Errorf("CER = %v, want 100", res.CER)
	}
	if res.Deletions != 3 {
		t.Errorf("Deletions = %d, want 3", res.Deletions)
	}
	if res.ReferenceWords != 3 {
		t.Errorf("ReferenceWords = %d, want 3", res.ReferenceWords)
	}
}

func TestCalculateEmptyReference(t *testing.T) {
	res := Calculate("", "any hypothesis at all", Options{})
	if res.WER != 0 {
		t.Errorf("WER = %v, want 0 under the zero-reference convention", res.WER)
	}
	if res.CER != 0 {
		t.Errorf("CER = %v, want 0", res.CER)
	}
	if res.Insertions != 4 {
		t.Errorf("Insertions = %d, want 4", res.Insertions)
	}
	if res.RefSpan.End != -1 {
		t.Errorf("RefSpan.End = %d, want -1 for empty reference", res.RefSpan.End)
	}
}

func TestCalculateDeterministic(t *testing.T) {
	ref := "the quick brown fox jumps over the lazy dog"
	hyp := "a quick brown cat jumps the lazy dog"
	first := Calculate(ref, hyp, Options{})
	for i := 0; i < 3; i++ {
		if got := Calculate(ref, hyp, Options{}); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %+v vs %+v", i, got, first)
		}
	}
}

func TestCalculateHebrewDiacritics(t *testing.T) {
	res := Calculate("שָׁלוֹם", "שלום", Options{})
	if res.WER != 0 {
		t.Errorf("WER = %v, want 0 after niqqud stripping", res.WER)
	}
	if res.CER != 0 {
		t.Errorf("CER = %v, want 0", res.CER)
	}
}

func TestCalculateRanges(t *testing.T) {
	ref := "one two three four five"
	hyp := "one xxx three yyy five"

	tests := []struct {
		name    string
		opts    Options
		wantWER float64
		wantRef int
	}{
		{
			name:    "full range",
			opts:    Options{},
			wantWER: 40.0,
			wantRef: 5,
		},
		{
			name: "first three words",
			opts: Options{
				RefStart: intPtr(0), RefEnd: intPtr(2),
				HypStart: intPtr(0), HypEnd: intPtr(2),
			},
			wantWER: 33.33,
			wantRef: 3,
		},
		{
			name: "last three words",
			opts: Options{
				RefStart: intPtr(2), RefEnd: intPtr(4),
				HypStart: intPtr(2), HypEnd: intPtr(4),
			},
			wantWER: 33.33,
			wantRef: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Calculate(ref, hyp, tt.opts)
			if !approx(res.WER, tt.wantWER) {
				t.Errorf("WER = %v, want %v", res.WER, tt.wantWER)
			}
			if res.ReferenceWords != tt.wantRef {
				t.Errorf("ReferenceWords = %d, want %d", res.ReferenceWords, tt.wantRef)
			}
		})
	}
}

func TestCalculateRangeClamping(t *testing.T) {
	ref := "one two three"

	res := Calculate(ref, ref, Options{RefStart: intPtr(-5), RefEnd: intPtr(99)})
	if res.RefSpan != (Span{Start: 0, End: 2}) {
		t.Errorf("RefSpan = %+v, want {0 2}", res.RefSpan)
	}
	if res.WER != 0 {
		t.Errorf("WER = %v, want 0", res.WER)
	}

	// Inverted bounds reorder instead of erroring.
	res = Calculate(ref, ref, Options{RefStart: intPtr(2), RefEnd: intPtr(0), HypStart: intPtr(2), HypEnd: intPtr(0)})
	if res.RefSpan != (Span{Start: 0, End: 2}) {
		t.Errorf("inverted RefSpan = %+v, want {0 2}", res.RefSpan)
	}

	// Partial range defaults the missing bound.
	res = Calculate(ref, ref, Options{RefStart: intPtr(1)})
	if res.RefSpan != (Span{Start: 1, End: 2}) {
		t.Errorf("partial RefSpan = %+v, want {1 2}", res.RefSpan)
	}
	if res.ReferenceWords != 2 {
		t.Errorf("ReferenceWords = %d, want 2", res.ReferenceWords)
	}
}

func TestCalculateIgnoredInsertionWords(t *testing.T) {
	ref := "hello world"
	hyp := "hello um world"

	without := Calculate(ref, hyp, Options{})
	if without.Insertions != 1 {
		t.Errorf("unfiltered Insertions = %d, want 1", without.Insertions)
	}
	if without.WER != 50 {
		t.Errorf("unfiltered WER = %v, want 50", without.WER)
	}

	with := Calculate(ref, hyp, Options{IgnoredInsertionWords: []string{"um"}})
	if with.Insertions != 0 {
		t.Errorf("filtered Insertions = %d, want 0", with.Insertions)
	}
	if with.WER != 0 {
		t.Errorf("filtered WER = %v, want 0", with.WER)
	}
	if with.HypothesisWords != 2 {
		t.Errorf("HypothesisWords = %d, want 2 after filtering", with.HypothesisWords)
	}
}

func TestCalculateIgnoredWordsCaseInsensitive(t *testing.T) {
	res := Calculate("hello world", "hello UM world", Options{IgnoredInsertionWords: []string{"um"}})
	if res.WER != 0 {
		t.Errorf("WER = %v, want 0 (UM should match configured um)", res.WER)
	}

	res = Calculate("hello world", "hello um world", Options{IgnoredInsertionWords: []string{"UM"}})
	if res.WER != 0 {
		t.Errorf("WER = %v, want 0 (configured UM should match um)", res.WER)
	}
}

func TestCalculateReferenceNeverFiltered(t *testing.T) {
	// "um" in the reference must still demand a match.
	res := Calculate("hello um world", "hello world", Options{IgnoredInsertionWords: []string{"um"}})
	if res.Deletions != 1 {
		t.Errorf("Deletions = %d, want 1 (reference um is not ignored)", res.Deletions)
	}
}

func TestCalculateErrorsItemization(t *testing.T) {
	res := Calculate("one two three", "one xxx three", Options{})
	want := []align.EditOp{{Kind: align.KindSubstitution, Ref: "two", Hyp: "xxx", Pos: 1}}
	if !reflect.DeepEqual(res.Errors, want) {
		t.Errorf("Errors = %+v, want %+v", res.Errors, want)
	}

	// Forcing the linear strategy must leave Errors nil, not empty.
	res = Calculate("one two three", "one xxx three", Options{Limits: align.Limits{DetailedCells: 1}})
	if res.Errors != nil {
		t.Errorf("Errors = %+v, want nil under the linear strategy", res.Errors)
	}
	if res.Substitutions != 1 {
		t.Errorf("Substitutions = %d, want 1", res.Substitutions)
	}
	if !approx(res.WER, 33.33) {
		t.Errorf("WER = %v, want 33.33", res.WER)
	}
}

func TestCalculateCERGranularity(t *testing.T) {
	// "cat" vs "cut": 1 of 3 codepoints differs, words fully substituted.
	res := Calculate("cat", "cut", Options{})
	if res.WER != 100 {
		t.Errorf("WER = %v, want 100", res.WER)
	}
	if !approx(res.CER, 33.33) {
		t.Errorf("CER = %v, want 33.33", res.CER)
	}
}

func TestCalculateWERCanExceedAccuracyFloor(t *testing.T) {
	res := Calculate("one", "a b c d e", Options{})
	if res.WER <= 100 {
		t.Errorf("WER = %v, want > 100 with four extra insertions", res.WER)
	}
	if res.Accuracy() != 0 {
		t.Errorf("Accuracy = %v, want floor of 0", res.Accuracy())
	}
}

func TestCalculateWhitespaceOnlyInputs(t *testing.T) {
	res := Calculate(" \t\n ", "   ", Options{})
	if res.WER != 0 || res.CER != 0 {
		t.Errorf("whitespace-only inputs: WER=%v CER=%v, want 0/0", res.WER, res.CER)
	}
	if res.ReferenceWords != 0 || res.HypothesisWords != 0 {
		t.Errorf("word counts = %d/%d, want 0/0", res.ReferenceWords, res.HypothesisWords)
	}
}

func TestCalculateLongInputStaysAggregate(t *testing.T) {
	// Above the detailed threshold both sides still score, just without
	// itemized errors.
	ref := strings.Repeat("alef bet gimel dalet he ", 40)   // 200 words
	hyp := strings.Repeat("alef bet shmalef dalet he ", 40) // 200 words

	res := Calculate(ref, hyp, Options{})
	if res.Errors != nil {
		t.Errorf("Errors should be nil for %d x %d words", res.ReferenceWords, res.HypothesisWords)
	}
	if res.Substitutions != 40 {
		t.Errorf("Substitutions = %d, want 40", res.Substitutions)
	}
	if !approx(res.WER, 20.0) {
		t.Errorf("WER = %v, want 20.0", res.WER)
	}
}
