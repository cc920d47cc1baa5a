package domain

import (
	"regexp"
	"strings"
)

// Intent represents the classified purpose of a user utterance.
type Intent string

const (
	Intent_AddingTask     Intent = "ADDING_TASK"
	Intent_ListingTasks   Intent = "LISTING_TASKS"
	Intent_CompletingTask Intent = "COMPLETING_TASK"
	Intent_DeletingTask   Intent = "DELETING_TASK"
	Intent_UpdatingTask   Intent = "UPDATING_TASK"
	Intent_None           Intent = "NONE"
)

// intentPattern is one classification pattern, optionally vetoed by a second
// pattern. The veto keeps the broad groups that run first from swallowing
// utterances that belong to a later group, since RE2 has no lookahead.
type intentPattern struct {
	re     *regexp.Regexp
	unless *regexp.Regexp
}

func pat(expr string) intentPattern {
	return intentPattern{re: regexp.MustCompile(expr)}
}

// addMarkerRe recognizes utterances the Adding group would claim, in either
// language. "add a task to remove the trash" must not read as a deletion
// just because "remove the trash" ends the sentence.
var addMarkerRe = regexp.MustCompile(
	`\b(?:add|create|make)\b.*\btask\b|\bnew\s+task\b|\badd\b.+\bto\s+my\s+(?:list|tasks)\b|\bremind\s+me\s+to\b|` +
		`\b(?:naya|nya)\s+kaam\b|\bkaam\s+(?:shamil|add|banao)\b|نیا\s*کام|کام\s*شامل|شامل\s*کرو`)

// intentPatternGroup ties one intent to its full pattern set. Each group mixes
// English, Romanized-Urdu and Urdu-script patterns so a single pass covers
// both supported languages.
type intentPatternGroup struct {
	intent   Intent
	patterns []intentPattern
}

// intentRules is the classification dispatch table. Groups are tried in
// order: Completing, Deleting, Updating, Listing, Adding. The first group
// with any matching pattern wins; no match at all means Intent_None.
var intentRules = []intentPatternGroup{
	{
		intent: Intent_CompletingTask,
		patterns: []intentPattern{
			pat(`\bmark\b.*\b(?:done|complete|completed)\b`),
			pat(`\b(?:complete|finish)\s+(?:the\s+)?[\p{L}\d]`),
			pat(`\b(?:task|kaam)\b.*\b(?:mukammal|poora|pura|done|ho\s*gaya)\b`),
			pat(`\bmukammal\b`),
			pat(`مکمل`),
			pat(`پورا\s*کرو`),
			pat(`ہو\s*گیا`),
		},
	},
	{
		intent: Intent_DeletingTask,
		patterns: []intentPattern{
			{re: regexp.MustCompile(`\b(?:delete|remove|cancel)\b.*\btask\b`), unless: addMarkerRe},
			// Users often omit the word "task": "delete buy groceries".
			{re: regexp.MustCompile(`\b(?:delete|remove)\s+(?:the\s+)?[\p{L}][\p{L}\d\s]*$`), unless: addMarkerRe},
			pat(`\b(?:hatao|hata\s*do|mitao|mita\s*do)\b`),
			pat(`\bkhatam\s*k(?:aro|ar\s*do)\b`),
			pat(`حذف`),
			pat(`ہٹا\s*(?:دو|ؤ)`),
			pat(`ختم\s*کرو`),
			pat(`مٹا\s*(?:دو|ؤ)`),
		},
	},
	{
		intent: Intent_UpdatingTask,
		patterns: []intentPattern{
			pat(`\b(?:update|change|edit|rename|modify)\b.*\btask\b`),
			pat(`\btask\s*#?\d+\b.*\b(?:update|change|edit)\b`),
			pat(`\b(?:badlo|badal\s*do|tabdeel)\b`),
			pat(`تبدیل`),
			pat(`بدل\s*(?:دو|و)`),
		},
	},
	{
		intent: Intent_ListingTasks,
		patterns: []intentPattern{
			pat(`\b(?:show|list|view|display|see)\b.*\btasks?\b`),
			pat(`\bwhat(?:'s|\s+is|\s+are)?\b.*\btasks?\b`),
			pat(`\bmy\s+tasks\b`),
			pat(`\b(?:dikhao|dikha\s*do|batao)\b.*\b(?:kaam|tasks?)\b`),
			pat(`\b(?:kaam|tasks?)\b.*\b(?:dikhao|dikha\s*do|batao)\b`),
			pat(`کام.*دکھاؤ`),
			pat(`دکھاؤ.*کام`),
			pat(`کام.*بتاؤ`),
		},
	},
	{
		intent: Intent_AddingTask,
		patterns: []intentPattern{
			pat(`\b(?:add|create|make)\b.*\btask\b`),
			pat(`\bnew\s+task\b`),
			pat(`\badd\b.+\bto\s+my\s+(?:list|tasks)\b`),
			pat(`\bremind\s+me\s+to\b`),
			pat(`\b(?:naya|nya)\s+kaam\b`),
			pat(`\bkaam\s+(?:shamil|add)\b`),
			pat(`\bkaam\s+banao\b`),
			pat(`نیا\s*کام`),
			pat(`کام\s*شامل`),
			pat(`شامل\s*کرو`),
		},
	},
}

// ClassifyIntent maps a raw utterance to one of the fixed intents using the
// ordered pattern groups above. Matching is done against the lowercased text.
// The detected language is accepted for signature symmetry with the other
// extractors; the rule set already covers both languages.
func ClassifyIntent(text string, _ Language) Intent {
	lowered := strings.ToLower(strings.TrimSpace(text))
	if lowered == "" {
		return Intent_None
	}

	for _, group := range intentRules {
		for _, pattern := range group.patterns {
			if !pattern.re.MatchString(lowered) {
				continue
			}
			if pattern.unless != nil && pattern.unless.MatchString(lowered) {
				continue
			}
			return group.intent
		}
	}
	return Intent_None
}
