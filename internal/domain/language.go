package domain

import "unicode"

// Language identifies the language of a chat utterance.
type Language string

const (
	Language_English Language = "english"
	Language_Urdu    Language = "urdu"
)

// urduThreshold is the fraction of Urdu-block runes above which a message is
// classified as Urdu.
const urduThreshold = 0.30

// DetectLanguage classifies text as English or Urdu by counting runes in the
// Arabic-script Unicode block (U+0600-U+06FF) used by Urdu. When more than 30%
// of the non-space runes fall in that block the text is Urdu; everything else,
// including empty input, is English.
func DetectLanguage(text string) Language {
	total := 0
	urdu := 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if r >= 0x0600 && r <= 0x06FF {
			urdu++
		}
	}
	if total == 0 {
		return Language_English
	}
	if float64(urdu)/float64(total) > urduThreshold {
		return Language_Urdu
	}
	return Language_English
}
