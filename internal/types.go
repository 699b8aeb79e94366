package internal

import "time"

// SourceLang and TargetLang are the fixed language pair this tool serves.
const (
	SourceLang = "en"
	TargetLang = "kn"
)

type TranslationRequest struct {
	ID         string    `json:"id"`
	SourceText string    `json:"source_text"`
	SourceLang string    `json:"source_lang"`
	TargetLang string    `json:"target_lang"`
	Timestamp  time.Time `json:"timestamp"`
}
