package usecases

import (
	"fmt"
	"strings"

	"github.com/kaamkaaj/kaamkaaj/internal/domain"
)

// replies.go holds the deterministic reply templates for both supported
// languages. Every chat turn produces one of these; the LLM only rephrases
// them when it is available.

func replyAskField(lang domain.Language, field domain.DraftField) string {
	if lang == domain.Language_Urdu {
		switch field {
		case domain.DraftField_Title:
			return "کام کا نام کیا ہے؟"
		case domain.DraftField_DueDate:
			return "یہ کام کب تک کرنا ہے؟ (نہ بتانے کے لیے «skip» لکھیں)"
		case domain.DraftField_Priority:
			return "اس کام کی ترجیح کیا ہے؟ high، medium یا low؟ (skip بھی لکھ سکتے ہیں)"
		case domain.DraftField_Category:
			return "یہ کام کس زمرے میں ہے؟ (skip بھی لکھ سکتے ہیں)"
		}
	}
	switch field {
	case domain.DraftField_Title:
		return "What should I call this task?"
	case domain.DraftField_DueDate:
		return "When is it due? (say \"skip\" to leave it open)"
	case domain.DraftField_Priority:
		return "What priority: high, medium or low? (or \"skip\")"
	case domain.DraftField_Category:
		return "Which category does it belong to? (or \"skip\")"
	}
	return ""
}

func replyTaskCreated(lang domain.Language, task domain.Task) string {
	if lang == domain.Language_Urdu {
		reply := fmt.Sprintf("ٹھیک ہے، کام «%s» شامل کر دیا۔", task.Title)
		if task.DueDate != nil {
			reply += fmt.Sprintf(" آخری تاریخ: %s۔", task.DueDate.Format("2006-01-02"))
		}
		return reply
	}
	reply := fmt.Sprintf("Done, I've added %q to your list.", task.Title)
	if task.DueDate != nil {
		reply += fmt.Sprintf(" It's due %s.", task.DueDate.Format("Monday, Jan 2"))
	}
	return reply
}

func replyTaskCompleted(lang domain.Language, task domain.Task) string {
	if lang == domain.Language_Urdu {
		return fmt.Sprintf("شاباش! کام «%s» مکمل ہو گیا۔", task.Title)
	}
	return fmt.Sprintf("Nice, %q is marked as done.", task.Title)
}

func replyTaskDeleted(lang domain.Language, task domain.Task) string {
	if lang == domain.Language_Urdu {
		return fmt.Sprintf("کام «%s» حذف کر دیا گیا۔", task.Title)
	}
	return fmt.Sprintf("I've deleted %q.", task.Title)
}

func replyTaskUpdated(lang domain.Language, task domain.Task) string {
	if lang == domain.Language_Urdu {
		return fmt.Sprintf("کام «%s» تبدیل کر دیا گیا۔", task.Title)
	}
	return fmt.Sprintf("I've updated %q.", task.Title)
}

func replyTaskList(lang domain.Language, tasks []domain.Task) string {
	if len(tasks) == 0 {
		if lang == domain.Language_Urdu {
			return "ابھی کوئی کام نہیں ہے۔ نیا کام شامل کرنے کے لیے بتائیں۔"
		}
		return "Your list is empty. Tell me about a task to add one."
	}

	var b strings.Builder
	if lang == domain.Language_Urdu {
		b.WriteString("آپ کے کام:\n")
	} else {
		b.WriteString("Here are your tasks:\n")
	}
	for i, task := range tasks {
		b.WriteString(fmt.Sprintf("%d. %s", i+1, task.Title))
		if task.Status == domain.TaskStatus_Completed {
			b.WriteString(" ✓")
		}
		if task.DueDate != nil {
			b.WriteString(fmt.Sprintf(" (due %s)", task.DueDate.Format("2006-01-02")))
		}
		if task.Priority == domain.TaskPriority_High {
			b.WriteString(" [high]")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func replyTaskNotFound(lang domain.Language) string {
	if lang == domain.Language_Urdu {
		return "معاف کیجیے، مجھے وہ کام نہیں ملا۔ «میرے کام دکھاؤ» لکھ کر فہرست دیکھ لیں۔"
	}
	return "I couldn't find that task. Try \"show my tasks\" to see the list."
}

func replyWhichTask(lang domain.Language) string {
	if lang == domain.Language_Urdu {
		return "کون سا کام؟ نمبر یا نام بتائیں۔"
	}
	return "Which task do you mean? Give me its number or name."
}

func replyDateNotUnderstood(lang domain.Language) string {
	if lang == domain.Language_Urdu {
		return "یہ تاریخ سمجھ نہیں آئی۔ مثلاً «کل»، «اگلے ہفتے» یا 2026-02-15 لکھیں، یا «skip»۔"
	}
	return "I didn't catch that date. Try something like \"tomorrow\", \"next friday\" or 2026-02-15, or say \"skip\"."
}

func replyPriorityNotUnderstood(lang domain.Language) string {
	if lang == domain.Language_Urdu {
		return "ترجیح سمجھ نہیں آئی۔ high، medium یا low میں سے بتائیں، یا «skip»۔"
	}
	return "I didn't catch that. Priority can be high, medium or low, or say \"skip\"."
}

func replyNothingToUpdate(lang domain.Language) string {
	if lang == domain.Language_Urdu {
		return "کیا تبدیل کرنا ہے؟ نئی تاریخ، ترجیح یا نام بتائیں۔"
	}
	return "What should I change? Tell me a new due date, priority or name."
}

func replyValidationFailed(lang domain.Language, err error) string {
	if lang == domain.Language_Urdu {
		return fmt.Sprintf("معاف کیجیے، یہ نہیں ہو سکا: %s۔ دوبارہ کوشش کریں۔", err.Error())
	}
	return fmt.Sprintf("I couldn't do that: %s. Let's try again.", err.Error())
}

func replyTryAgain(lang domain.Language) string {
	if lang == domain.Language_Urdu {
		return "معذرت، میری طرف سے کچھ گڑبڑ ہو گئی۔ تھوڑی دیر بعد دوبارہ کوشش کریں۔"
	}
	return "Sorry, something went wrong on my side. Please try that again."
}

func replyFallback(lang domain.Language) string {
	if lang == domain.Language_Urdu {
		return "میں آپ کے کاموں میں مدد کر سکتا ہوں: کام شامل کریں، فہرست دیکھیں، مکمل کریں یا حذف کریں۔"
	}
	return "I can help with your tasks: add one, show the list, mark one done or delete one."
}

// freeFormSystemPrompt frames the LLM conversation for messages that do not
// map to any task operation.
func freeFormSystemPrompt(lang domain.Language) string {
	language := "English"
	if lang == domain.Language_Urdu {
		language = "Urdu"
	}
	return fmt.Sprintf(
		"You are a friendly todo-list assistant. Answer the user in natural %s. "+
			"You manage their task list; when they seem to want a task added, listed, "+
			"completed or deleted, tell them how to ask for it. Keep answers short.", language)
}

// polishSystemPrompt instructs the LLM to rephrase a templated reply without
// changing its meaning or language.
func polishSystemPrompt(lang domain.Language) string {
	language := "English"
	if lang == domain.Language_Urdu {
		language = "Urdu"
	}
	return fmt.Sprintf(
		"You are a friendly todo-list assistant. Rephrase the given reply in natural %s. "+
			"Keep every fact, number and task name exactly as given. Keep lists numbered. "+
			"Answer with the rephrased reply only.", language)
}
