package offline

// builtinDictionary maps lowercase English words and phrases to Kannada.
// Multi-word keys are matched against the whole input before per-word
// substitution, so "good morning" wins over "good" + "morning".
var builtinDictionary = map[string]string{
	"hello":        "ನಮಸ್ಕಾರ",
	"hi":           "ಹಲೋ",
	"good":         "ಒಳ್ಳೆಯ",
	"morning":      "ಬೆಳಗ್ಗೆ",
	"good morning": "ಶುಭೋದಯ",
	"night":        "ರಾತ್ರಿ",
	"good night":   "ಶುಭರಾತ್ರಿ",
	"thank":        "ಧನ್ಯ",
	"thank you":    "ಧನ್ಯವಾದ",
	"please":       "ದಯವಿಟ್ಟು",
	"yes":          "ಹೌದು",
	"no":           "ಇಲ್ಲ",
	"water":        "ನೀರು",
	"food":         "ಆಹಾರ",
	"friend":       "ಸ್ನೇಹಿತ",
	"family":       "ಕುಟುಂಬ",
	"love":         "ಪ್ರೀತಿ",
	"happy":        "ಸುಖ",
	"sad":          "ದುಃಖ",
	"help":         "ಸಹಾಯ",
	"house":        "ಮನೆ",
	"name":         "ಹೆಸರು",
	"person":       "ವ್ಯಕ್ತಿ",
	"i":            "ನಾನು",
	"you":          "ನೀವು",
	"we":           "ನಾವು",
	"they":         "ಅವರು",
	"he":           "ಅವನು",
	"she":          "ಅವಳು",
	"is":           "ಆಗಿದೆ",
	"are":          "ಇವೆ",
	"am":           "ನಾನು",
}
