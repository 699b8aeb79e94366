// Package validator checks that a remote translation result is actually
// written in Kannada before it is trusted.
package validator

import (
	"fmt"
	"strings"
	"unicode"
)

// minValidationRunes is the minimum rune count required to attempt
// validation. Shorter texts produce unreliable verdicts and are accepted
// without validation.
const minValidationRunes = 20

// minKannadaShare is the minimum fraction of letters that must belong to the
// Kannada script for a result to be accepted.
const minKannadaShare = 0.5

// Validator checks that translated text is written in the Kannada script.
// Language-detection libraries in the ecosystem do not model Kannada, but the
// script occupies its own Unicode block, so a rune-level check is exact enough.
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// IsValid returns true when translatedText appears to be written in Kannada.
//
// Short texts (fewer than minValidationRunes runes) and texts containing no
// letters at all (numbers, punctuation) pass without error. When most letters
// are from another script the returned error states the observed share.
func (v *Validator) IsValid(translatedText string) (bool, error) {
	text := strings.TrimSpace(translatedText)
	if text == "" {
		return false, fmt.Errorf("translation is empty")
	}

	// The share check is unreliable for very short texts; skip validation.
	if len([]rune(text)) < minValidationRunes {
		return true, nil
	}

	var letters, kannada int
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.Is(unicode.Kannada, r) {
			kannada++
		}
	}

	if letters == 0 {
		return true, nil
	}

	share := float64(kannada) / float64(letters)
	if share < minKannadaShare {
		return false, fmt.Errorf("expected Kannada output but only %.0f%% of letters are Kannada", share*100)
	}

	return true, nil
}
