// Package offline provides dictionary-based English→Kannada translation for
// use when no remote service is reachable. It substitutes known words and
// phrases and passes everything else through unchanged, so the worst case is
// an untranslated word, never an error.
package offline

import (
	"regexp"
	"strings"
)

// tokenRe splits text into word-like runs and single punctuation symbols.
var tokenRe = regexp.MustCompile(`\w+|[^\t\w\s]`)

// noSpaceBeforeRe matches tokens that attach to the preceding token
// without a separating space.
var noSpaceBeforeRe = regexp.MustCompile(`^[.,!?;:%)\]]`)

// Translator substitutes dictionary entries in English text. The entry table
// is fixed at construction and safe for concurrent readers.
type Translator struct {
	entries map[string]string
}

// New returns a Translator over the built-in dictionary merged with extra
// entries (keys are lowercased; extra entries override built-ins).
func New(extra map[string]string) *Translator {
	entries := make(map[string]string, len(builtinDictionary)+len(extra))
	for k, v := range builtinDictionary {
		entries[k] = v
	}
	for k, v := range extra {
		entries[strings.ToLower(k)] = v
	}
	return &Translator{entries: entries}
}

// Size returns the number of dictionary entries.
func (t *Translator) Size() int {
	return len(t.entries)
}

// Translate replaces every token whose lowercase form is a dictionary entry
// and reassembles the text with punctuation-aware spacing. A whole-input
// phrase match takes precedence over per-token substitution. Empty input
// yields an empty string.
func (t *Translator) Translate(text string) string {
	if text == "" {
		return ""
	}

	if translated, ok := t.entries[strings.ToLower(text)]; ok {
		return translated
	}

	tokens := tokenRe.FindAllString(text, -1)

	var sb strings.Builder
	for i, tok := range tokens {
		out := tok
		if translated, ok := t.entries[strings.ToLower(tok)]; ok {
			out = translated
		}
		if i > 0 && !noSpaceBeforeRe.MatchString(out) {
			sb.WriteByte(' ')
		}
		sb.WriteString(out)
	}

	return sb.String()
}
