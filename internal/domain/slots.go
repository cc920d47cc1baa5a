package domain

import (
	"regexp"
	"strings"
	"time"
)

// TaskPriority represents how urgent a task is.
type TaskPriority string

const (
	TaskPriority_Low    TaskPriority = "low"
	TaskPriority_Medium TaskPriority = "medium"
	TaskPriority_High   TaskPriority = "high"
)

// ValidTaskPriority reports whether p is one of the supported priorities.
func ValidTaskPriority(p TaskPriority) bool {
	return p == TaskPriority_Low || p == TaskPriority_Medium || p == TaskPriority_High
}

// DraftField names a slot of a pending task draft.
type DraftField string

const (
	DraftField_Title    DraftField = "title"
	DraftField_DueDate  DraftField = "due_date"
	DraftField_Priority DraftField = "priority"
	DraftField_Category DraftField = "category"
)

// draftFieldOrder is the order in which missing fields are asked for.
var draftFieldOrder = []DraftField{
	DraftField_Title,
	DraftField_DueDate,
	DraftField_Priority,
	DraftField_Category,
}

// TaskDraft accumulates the structured fields of a task being created over
// one or more chat turns. Only the title is required; the user may skip any
// other field.
type TaskDraft struct {
	Title         *string       `json:"title,omitempty"`
	DueDate       *time.Time    `json:"due_date,omitempty"`
	Priority      *TaskPriority `json:"priority,omitempty"`
	Category      *string       `json:"category,omitempty"`
	SkippedFields []DraftField  `json:"skipped_fields,omitempty"`
}

// Merge fills empty fields of the draft from other. Fields already present
// are never overwritten, so accumulation across turns is monotonic.
func (d *TaskDraft) Merge(other TaskDraft) {
	if d.Title == nil && other.Title != nil {
		d.Title = other.Title
	}
	if d.DueDate == nil && other.DueDate != nil {
		d.DueDate = other.DueDate
	}
	if d.Priority == nil && other.Priority != nil {
		d.Priority = other.Priority
	}
	if d.Category == nil && other.Category != nil {
		d.Category = other.Category
	}
}

// Skip marks a field as deliberately left unset by the user.
func (d *TaskDraft) Skip(field DraftField) {
	if d.IsSkipped(field) {
		return
	}
	d.SkippedFields = append(d.SkippedFields, field)
}

// IsSkipped reports whether the user skipped the given field.
func (d TaskDraft) IsSkipped(field DraftField) bool {
	for _, f := range d.SkippedFields {
		if f == field {
			return true
		}
	}
	return false
}

// NextMissingField returns the first field that is neither filled nor
// skipped, in the fixed asking order title, due date, priority, category.
func (d TaskDraft) NextMissingField() (DraftField, bool) {
	for _, field := range draftFieldOrder {
		if d.IsSkipped(field) {
			continue
		}
		switch field {
		case DraftField_Title:
			if d.Title == nil {
				return field, true
			}
		case DraftField_DueDate:
			if d.DueDate == nil {
				return field, true
			}
		case DraftField_Priority:
			if d.Priority == nil {
				return field, true
			}
		case DraftField_Category:
			if d.Category == nil {
				return field, true
			}
		}
	}
	return "", false
}

// titleTemplates capture the task description substring out of an add-task
// utterance. Ordered: the first matching template wins.
var titleTemplates = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:add|create|make)\s+(?:a\s+)?(?:new\s+)?task\s+(?:to|for|called|named)\s+(.+)$`),
	regexp.MustCompile(`(?i)\b(?:add|create|make)\s+(?:a\s+)?(?:new\s+)?task[:\s]+(.+)$`),
	regexp.MustCompile(`(?i)\badd\s+(.+?)\s+to\s+my\s+(?:list|tasks)\b`),
	regexp.MustCompile(`(?i)\bremind\s+me\s+to\s+(.+)$`),
	regexp.MustCompile(`(?i)^(.+?)\s+ka\s+naam\s+hai\b`),
	regexp.MustCompile(`(?i)\b(?:naya|nya)\s+kaam[:\s]+(.+)$`),
	regexp.MustCompile(`(?i)\bkaam\s+(?:shamil|add)\s+k(?:aro|arien|ar\s*do)[:\s]*(.*)$`),
	regexp.MustCompile(`نیا\s*کام\s*شامل\s*کرو[:\s]*(.*)$`),
	regexp.MustCompile(`(.+?)\s*کا\s*کام\s*شامل\s*کرو`),
}

// titleClipRe marks where in a captured title trailing metadata begins: a
// temporal phrase, a priority phrase or a category phrase. The title capture
// stops just before the first occurrence.
var titleClipRe = regexp.MustCompile(
	`(?i)\b(?:today|tomorrow|yesterday|next\s+week|aaj|kal|agle\s+hafte|` +
		`(?:next\s+)?(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)|` +
		`(?:on|by|due|before)\s|` +
		`(?:with\s+)?(?:high|medium|low)\s+priority|urgent|zaroori|` +
		`in\s+(?:the\s+)?\w+\s+category|category)\b` +
		`|آج|کل|اگلے\s*ہفتے|ضروری`,
)

// trailingConnectorRe strips dangling connective words left behind after the
// clip, e.g. "buy groceries with" -> "buy groceries".
var trailingConnectorRe = regexp.MustCompile(`(?i)[\s,]*(?:with|in|on|at|for|by|due|and|ko|ka|ki)\s*$`)

// priorityKeywords maps synonyms in English, Romanized Urdu and Urdu script
// to a task priority.
var priorityKeywords = map[string]TaskPriority{
	"high":      TaskPriority_High,
	"urgent":    TaskPriority_High,
	"important": TaskPriority_High,
	"zaroori":   TaskPriority_High,
	"ضروری":     TaskPriority_High,
	"اہم":       TaskPriority_High,
	"medium":    TaskPriority_Medium,
	"normal":    TaskPriority_Medium,
	"darmiyani": TaskPriority_Medium,
	"درمیانہ":   TaskPriority_Medium,
	"low":       TaskPriority_Low,
	"minor":     TaskPriority_Low,
	"kam":       TaskPriority_Low,
	"کم":        TaskPriority_Low,
}

// categoryKeywords maps synonyms to the fixed category set.
var categoryKeywords = map[string]string{
	"shopping":  "shopping",
	"groceries": "shopping",
	"grocery":   "shopping",
	"kharidari": "shopping",
	"خریداری":   "shopping",
	"work":      "work",
	"office":    "work",
	"daftar":    "work",
	"دفتر":      "work",
	"personal":  "personal",
	"zaati":     "personal",
	"ذاتی":      "personal",
	"health":    "health",
	"sehat":     "health",
	"صحت":       "health",
	"study":     "study",
	"parhai":    "study",
	"پڑھائی":    "study",
}

// ExtractSlots pulls the structured task fields out of an utterance. Each
// sub-extraction runs independently; fields not present in the text stay nil.
func ExtractSlots(text string, _ Language, ref time.Time, loc *time.Location) TaskDraft {
	draft := TaskDraft{}

	if title, ok := extractTitle(text); ok {
		draft.Title = &title
	}
	if due, ok := ExtractDueDate(text, ref, loc); ok {
		draft.DueDate = &due
	}
	if priority, ok := ExtractPriority(text); ok {
		draft.Priority = &priority
	}
	if category, ok := ExtractCategory(text); ok {
		draft.Category = &category
	}
	return draft
}

// extractTitle applies the title templates in order and clips the capture at
// the first trailing-metadata keyword.
func extractTitle(text string) (string, bool) {
	for _, template := range titleTemplates {
		m := template.FindStringSubmatch(text)
		if len(m) < 2 {
			continue
		}
		title := CleanTitle(m[1])
		if title != "" {
			return title, true
		}
	}
	return "", false
}

// CleanTitle clips trailing metadata phrases off a candidate title and trims
// leftover connective words and punctuation.
func CleanTitle(raw string) string {
	title := strings.TrimSpace(raw)
	if loc := titleClipRe.FindStringIndex(title); loc != nil {
		title = title[:loc[0]]
	}
	for {
		next := trailingConnectorRe.ReplaceAllString(title, "")
		if next == title {
			break
		}
		title = next
	}
	return strings.Trim(title, " \t.,!?\"'،۔")
}

// ExtractPriority scans the utterance for a priority keyword.
func ExtractPriority(text string) (TaskPriority, bool) {
	for _, word := range tokenizeKeywords(text) {
		if p, ok := priorityKeywords[word]; ok {
			return p, true
		}
	}
	return "", false
}

// ExtractCategory scans the utterance for a category keyword.
func ExtractCategory(text string) (string, bool) {
	for _, word := range tokenizeKeywords(text) {
		if c, ok := categoryKeywords[word]; ok {
			return c, true
		}
	}
	return "", false
}

func tokenizeKeywords(text string) []string {
	lowered := strings.ToLower(text)
	return strings.FieldsFunc(lowered, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == ',' || r == '.' || r == '!' || r == '?' || r == '،' || r == '۔'
	})
}
