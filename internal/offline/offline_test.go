package offline

import (
	"strings"
	"testing"
)

func TestTranslator_EmptyInput(t *testing.T) {
	tr := New(nil)

	if got := tr.Translate(""); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestTranslator_AllBuiltinEntries(t *testing.T) {
	tr := New(nil)

	for key, want := range builtinDictionary {
		if got := tr.Translate(key); got != want {
			t.Errorf("Translate(%q) = %q, want %q", key, got, want)
		}
		upper := strings.ToUpper(key)
		if got := tr.Translate(upper); got != want {
			t.Errorf("Translate(%q) = %q, want %q", upper, got, want)
		}
	}
}

func TestTranslator_PhrasePrecedence(t *testing.T) {
	tr := New(nil)

	// "good morning" has its own entry; per-word substitution would give
	// "ಒಳ್ಳೆಯ ಬೆಳಗ್ಗೆ" instead.
	if got := tr.Translate("good morning"); got != "ಶುಭೋದಯ" {
		t.Errorf("expected phrase entry ಶುಭೋದಯ, got %q", got)
	}
	if got := tr.Translate("Good Morning"); got != "ಶುಭೋದಯ" {
		t.Errorf("expected case-insensitive phrase match, got %q", got)
	}
}

func TestTranslator_PunctuationSpacing(t *testing.T) {
	tr := New(nil)

	got := tr.Translate("Hello, friend!")
	want := "ನಮಸ್ಕಾರ, ಸ್ನೇಹಿತ!"
	if got != want {
		t.Errorf("Translate(%q) = %q, want %q", "Hello, friend!", got, want)
	}
}

func TestTranslator_UnknownWordsPassThrough(t *testing.T) {
	tr := New(nil)

	tests := []struct {
		input string
		want  string
	}{
		{"Bengaluru", "Bengaluru"},
		{"hello Bengaluru", "ನಮಸ್ಕಾರ Bengaluru"},
		{"XYZZY plugh", "XYZZY plugh"},
		{"water (cold)", "ನೀರು ( cold)"},
	}

	for _, tt := range tests {
		if got := tr.Translate(tt.input); got != tt.want {
			t.Errorf("Translate(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTranslator_SentenceReassembly(t *testing.T) {
	tr := New(nil)

	got := tr.Translate("thank you, friend; good night!")
	want := "ಧನ್ಯ ನೀವು, ಸ್ನೇಹಿತ; ಒಳ್ಳೆಯ ರಾತ್ರಿ!"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTranslator_ExtraEntries(t *testing.T) {
	tr := New(map[string]string{
		"Bengaluru": "ಬೆಂಗಳೂರು",
		"hello":     "ಹಲೋ ಹಲೋ",
	})

	if got := tr.Translate("bengaluru"); got != "ಬೆಂಗಳೂರು" {
		t.Errorf("expected user entry to match case-insensitively, got %q", got)
	}
	// User entries override built-ins.
	if got := tr.Translate("hello"); got != "ಹಲೋ ಹಲೋ" {
		t.Errorf("expected user override, got %q", got)
	}

	if tr.Size() != len(builtinDictionary)+1 {
		t.Errorf("expected %d entries, got %d", len(builtinDictionary)+1, tr.Size())
	}
}
