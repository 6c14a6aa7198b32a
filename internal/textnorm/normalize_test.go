package textnorm

import (
	"testing"

	"golang.org/x/text/language"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercase",
			input: "The Quick BROWN Fox",
			want:  "the quick brown fox",
		},
		{
			name:  "punctuation removed",
			input: "Hello, world! How are you?",
			want:  "hello world how are you",
		},
		{
			name:  "whitespace collapsed",
			input: "  the \t cat \n sat  ",
			want:  "the cat sat",
		},
		{
			name:  "digits kept",
			input: "chapter 12, verse 3",
			want:  "chapter 12 verse 3",
		},
		{
			name:  "hebrew niqqud stripped",
			input: "שָׁלוֹם",
			want:  "שלום",
		},
		{
			name:  "hebrew cantillation stripped",
			input: "בְּרֵאשִׁ֖ית בָּרָ֣א",
			want:  "בראשית ברא",
		},
		{
			name:  "latin combining marks stripped",
			input: "café naïve",
			want:  "cafe naive",
		},
		{
			name:  "precomposed diacritics stripped",
			input: "café naïve",
			want:  "cafe naive",
		},
		{
			name:  "symbols removed",
			input: "a+b=c @ 100%",
			want:  "ab c 100",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: " \t\n ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeLocaleAwareCasing(t *testing.T) {
	// Turkish dotted/dotless i distinction only applies under a Turkish caser.
	turkish := New(language.Turkish)
	if got := turkish.Normalize("DIŞ"); got != "dış" {
		t.Errorf("turkish Normalize(DIŞ) = %q, want %q", got, "dış")
	}
	if got := Normalize("DIS"); got != "dis" {
		t.Errorf("neutral Normalize(DIS) = %q, want %q", got, "dis")
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"The Quick Brown Fox!",
		"שָׁלוֹם עֲלֵיכֶם",
		"  mixed   CASE, text. ",
	}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}
