package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// TaskReference is what a complete/delete/update utterance points at: a
// number (a listing position or a task id) and/or a title fragment.
type TaskReference struct {
	Number    int
	HasNumber bool
	Title     string
}

var referenceNumberRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:task|id|kaam|number)\s*#?\s*(\d+)\b`),
	regexp.MustCompile(`(?i)#(\d+)\b`),
	regexp.MustCompile(`نمبر\s*(\d+)`),
	regexp.MustCompile(`(?i)\b(\d+)\s*(?:نمبر|number)`),
	regexp.MustCompile(`(?i)\b(?:complete|delete|remove|finish|done|update|mukammal)\s+(\d+)\b`),
}

// ordinalWords maps ordinal phrases to 1-based positions, in English,
// Romanized Urdu and Urdu script.
var ordinalWords = map[string]int{
	"first": 1, "1st": 1, "pehla": 1, "pehli": 1, "پہلا": 1, "پہلے": 1,
	"second": 2, "2nd": 2, "doosra": 2, "dusra": 2, "دوسرا": 2, "دوسرے": 2,
	"third": 3, "3rd": 3, "teesra": 3, "تیسرا": 3, "تیسرے": 3,
	"fourth": 4, "4th": 4, "chautha": 4, "چوتھا": 4,
	"fifth": 5, "5th": 5, "panchwan": 5, "پانچواں": 5,
	"last": -1, "aakhri": -1, "آخری": -1,
}

var referenceTitleRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:complete|finish|delete|remove|update|mark)\s+(?:the\s+)?["'“]([^"'”]+)["'”]`),
	regexp.MustCompile(`(?i)\b(?:complete|finish|delete|remove)\s+(?:the\s+)?(.+?)\s+(?:task|as\s+(?:done|complete[d]?))\b`),
	regexp.MustCompile(`(?i)\bmark\s+(?:the\s+)?(.+?)\s+(?:task\s+)?(?:as\s+)?(?:done|complete[d]?)\b`),
	regexp.MustCompile(`(?i)\b(?:delete|remove)\s+(?:the\s+)?(.+)$`),
	regexp.MustCompile(`(?i)\b(?:complete|finish)\s+(?:the\s+)?(.+)$`),
	regexp.MustCompile(`(.+?)\s*(?:مکمل|ختم|ڈیلیٹ)\s*کر`),
	regexp.MustCompile(`(?i)(.+?)\s+(?:mukammal|khatam|delete)\s+k(?:aro|ar\s*do|arien)\b`),
}

// ExtractTaskReference pulls the referenced task out of an utterance. A
// numeric reference wins over a title fragment: when a number or ordinal is
// present the title is left empty, so resolution never second-guesses an
// explicit number with fuzzy title matching.
func ExtractTaskReference(text string) (TaskReference, bool) {
	ref := TaskReference{}

	for _, re := range referenceNumberRes {
		if m := re.FindStringSubmatch(text); len(m) >= 2 {
			n, err := strconv.Atoi(m[1])
			if err == nil && n > 0 {
				ref.Number = n
				ref.HasNumber = true
				return ref, true
			}
		}
	}

	for _, word := range tokenizeKeywords(text) {
		if pos, ok := ordinalWords[word]; ok {
			ref.Number = pos
			ref.HasNumber = true
			return ref, true
		}
	}

	for _, re := range referenceTitleRes {
		if m := re.FindStringSubmatch(text); len(m) >= 2 {
			title := CleanTitle(m[1])
			title = strings.TrimSpace(strings.TrimSuffix(title, " task"))
			if title != "" {
				ref.Title = title
				return ref, true
			}
		}
	}

	return ref, false
}
