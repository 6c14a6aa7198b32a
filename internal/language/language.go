package language

import (
	"strings"

	xlang "golang.org/x/text/language"
)

type entry struct {
	code2   string   // ISO 639-1 (2-letter)
	code3   string   // ISO 639-2 primary (3-letter)
	alt3    string   // ISO 639-2 alternate (e.g. "heb" vs "iw")
	display string   // Human-readable name
	words   []string // Full word forms (e.g. "yiddish")
}

// Transcript languages the benchmark corpus actually carries, Hebrew-script
// first since that is the primary use case.
var languages = []entry{
	{"yi", "yid", "", "Yiddish", []string{"yiddish"}},
	{"he", "heb", "iw", "Hebrew", []string{"hebrew"}},
	{"ar", "ara", "", "Arabic", []string{"arabic"}},
	{"en", "eng", "", "English", []string{"english"}},
	{"de", "deu", "ger", "German", []string{"german"}},
	{"fr", "fra", "fre", "French", []string{"french"}},
	{"es", "spa", "", "Spanish", []string{"spanish"}},
	{"pt", "por", "", "Portuguese", []string{"portuguese"}},
	{"it", "ita", "", "Italian", []string{"italian"}},
	{"nl", "nld", "dut", "Dutch", []string{"dutch"}},
	{"pl", "pol", "", "Polish", []string{"polish"}},
	{"hu", "hun", "", "Hungarian", []string{"hungarian"}},
	{"ru", "rus", "", "Russian", []string{"russian"}},
	{"uk", "ukr", "", "Ukrainian", []string{"ukrainian"}},
	{"tr", "tur", "", "Turkish", []string{"turkish"}},
}

// Index maps built at init time.
var (
	byCode2 map[string]*entry
	byCode3 map[string]*entry
	byWord  map[string]*entry
)

func init() {
	byCode2 = make(map[string]*entry, len(languages))
	byCode3 = make(map[string]*entry, len(languages)*2)
	byWord = make(map[string]*entry, len(languages))
	for i := range languages {
		e := &languages[i]
		byCode2[e.code2] = e
		byCode3[e.code3] = e
		if e.alt3 != "" {
			byCode3[e.alt3] = e
		}
		for _, w := range e.words {
			byWord[w] = e
		}
	}
}

func lookup(code string) *entry {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil
	}
	if e, ok := byCode2[code]; ok {
		return e
	}
	if e, ok := byCode3[code]; ok {
		return e
	}
	if e, ok := byWord[code]; ok {
		return e
	}
	return nil
}

// Known reports whether the code resolves to a supported language.
func Known(code string) bool {
	return lookup(code) != nil
}

// Tag returns the x/text language tag for any recognized code or word.
// Unrecognized or empty input yields the neutral und tag.
func Tag(code string) xlang.Tag {
	e := lookup(code)
	if e == nil {
		return xlang.Und
	}
	return xlang.Make(e.code2)
}

// ToISO2 converts any recognized language code or word to ISO 639-1.
// Returns empty string for unrecognized input; an unknown 2-letter code
// passes through.
func ToISO2(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return ""
	}
	if e := lookup(code); e != nil {
		return e.code2
	}
	if len(code) == 2 {
		return code
	}
	return ""
}

// DisplayName returns a human-readable language name for any recognized code.
// Returns "Unknown" for empty input, or the uppercased code for unrecognized input.
func DisplayName(code string) string {
	if strings.TrimSpace(code) == "" {
		return "Unknown"
	}
	if e := lookup(code); e != nil {
		return e.display
	}
	return strings.ToUpper(strings.TrimSpace(code))
}
