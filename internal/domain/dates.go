package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// datePhraseRe recognizes the date phrases users type in either language:
// absolute dates, relative day words and weekday names. Urdu is covered both
// in script and in the Romanized spelling people use on Latin keyboards.
var datePhraseRe = regexp.MustCompile(
	`(?i)(` +
		`\d{4}-\d{2}-\d{2}` + // YYYY-MM-DD
		`|` +
		`(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\s+\d{1,2},?\s+\d{4}` +
		`|` +
		`next\s+week|agle\s+hafte|اگلے\s*ہفتے` +
		`|` +
		`today|tomorrow|aaj|آج|کل` +
		`|` +
		`\bkal\b` +
		`|` +
		`(?:next\s+)?(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)` +
		`|` +
		`(?:agle\s+)?(?:peer|mangal|budh|jumerat|jumma|itwar|hafta)\b` +
		`|` +
		`پیر|منگل|بدھ|جمعرات|جمعہ|ہفتہ|اتوار` +
		`)`,
)

// ExtractDueDate tries to extract a due date from free text relative to the
// reference date. Weekday names resolve to the next future occurrence of that
// weekday; "next week" means seven days from the reference. Absent phrases
// yield ok=false, which callers treat as "no due date mentioned".
func ExtractDueDate(text string, ref time.Time, loc *time.Location) (time.Time, bool) {
	m := datePhraseRe.FindStringSubmatch(text)
	if len(m) < 2 {
		return time.Time{}, false
	}

	token := strings.ToLower(strings.TrimSpace(m[1]))
	token = strings.Join(strings.Fields(token), " ")

	if due, ok := resolveRelativeDate(token, ref, loc); ok {
		return due, true
	}

	t, err := dateparse.ParseIn(token, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func resolveRelativeDate(token string, ref time.Time, loc *time.Location) (time.Time, bool) {
	ref = dateOnly(ref.In(loc))

	switch token {
	case "today", "aaj", "آج":
		return ref, true
	// "kal" and its script form mean tomorrow in a task context.
	case "tomorrow", "kal", "کل":
		return ref.AddDate(0, 0, 1), true
	case "next week", "agle hafte", "اگلے ہفتے":
		return ref.AddDate(0, 0, 7), true
	}

	weekdayToken := token
	weekdayToken = strings.TrimPrefix(weekdayToken, "next ")
	weekdayToken = strings.TrimPrefix(weekdayToken, "agle ")
	if wd, ok := parseWeekday(weekdayToken); ok {
		return nextWeekday(ref, wd), true
	}

	return time.Time{}, false
}

func parseWeekday(s string) (time.Weekday, bool) {
	switch s {
	case "sunday", "itwar", "اتوار":
		return time.Sunday, true
	case "monday", "peer", "پیر":
		return time.Monday, true
	case "tuesday", "mangal", "منگل":
		return time.Tuesday, true
	case "wednesday", "budh", "بدھ":
		return time.Wednesday, true
	case "thursday", "jumerat", "جمعرات":
		return time.Thursday, true
	case "friday", "jumma", "جمعہ":
		return time.Friday, true
	case "saturday", "hafta", "ہفتہ":
		return time.Saturday, true
	default:
		return 0, false
	}
}

// nextWeekday returns the next future occurrence of the target weekday,
// never the reference day itself.
func nextWeekday(ref time.Time, target time.Weekday) time.Time {
	delta := (int(target) - int(ref.Weekday()) + 7) % 7
	if delta == 0 {
		delta = 7
	}
	return ref.AddDate(0, 0, delta)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
