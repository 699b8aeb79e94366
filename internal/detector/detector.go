// Package detector wraps the lingua-go language detector. It is used to warn
// when input handed to the translator does not look like English.
package detector

import (
	"strings"

	lingua "github.com/pemistahl/lingua-go"
)

// minDetectionRunes is the minimum input length for a reliable verdict.
// Shorter texts are treated as undetectable.
const minDetectionRunes = 12

type Detector struct {
	detector lingua.LanguageDetector
}

func New() *Detector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromAllLanguages().
		Build()

	return &Detector{detector: detector}
}

func (d *Detector) Detect(text string) (lingua.Language, bool) {
	if text == "" {
		return lingua.Unknown, false
	}
	return d.detector.DetectLanguageOf(text)
}

func (d *Detector) DetectISO(text string) (string, bool) {
	lang, ok := d.Detect(text)
	if !ok {
		return "", false
	}
	return lang.IsoCode639_1().String(), true
}

// LooksEnglish reports whether text is plausibly English. Texts too short to
// classify pass, so only confidently foreign input is flagged.
func (d *Detector) LooksEnglish(text string) bool {
	text = strings.TrimSpace(text)
	if len([]rune(text)) < minDetectionRunes {
		return true
	}
	code, ok := d.DetectISO(text)
	if !ok {
		return true
	}
	return strings.EqualFold(code, "en")
}
