package classifier

import (
	"fmt"
	"strings"

	"github.com/campusdesk/complaint-api/internal/models"
)

func quotedCategoryList() string {
	categories := models.Categories()
	quoted := make([]string, len(categories))
	for i, c := range categories {
		quoted[i] = fmt.Sprintf("%q", string(c))
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func quotedSentimentList() string {
	sentiments := models.Sentiments()
	quoted := make([]string, len(sentiments))
	for i, s := range sentiments {
		quoted[i] = fmt.Sprintf("%q", string(s))
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// CategoryPrompt asks the model to pick exactly one complaint category.
func CategoryPrompt(complaintText string) string {
	return fmt.Sprintf(`Classify the following complaint into ONLY ONE of these categories:
%s

Complaint: %q

Respond with only the category name, nothing else.`, quotedCategoryList(), complaintText)
}

// SentimentPrompt asks the model to grade the complaint as a single word.
func SentimentPrompt(complaintText string) string {
	return fmt.Sprintf(`Analyze the sentiment of this complaint and respond with ONLY ONE word:
%s

Complaint: %q

Respond with only the sentiment word, nothing else.`, quotedSentimentList(), complaintText)
}

// SupportPrompt builds the first-line troubleshooting request. The style
// constraints (generic network names, length) live in the prompt only and
// are not validated programmatically.
func SupportPrompt(message string) string {
	return fmt.Sprintf(`You are a college support assistant. Give ONE focused solution approach.

Student message: %q

Respond with:
1. Brief problem acknowledgment (1 sentence)
2. ONE specific solution with 2-3 clear steps
3. Ask if it worked or if they need alternative steps

IMPORTANT: Use generic terms like "college WiFi", "your network", "the WiFi" - never mention specific network names like Eduroam.
Keep response under 50 words. Be direct and actionable.`, message)
}

// FollowUpPrompt builds the escalation request used once a conversation has
// gone past two turns. lastTurns should hold the most recent history lines.
func FollowUpPrompt(message string, lastTurns []string) string {
	return fmt.Sprintf(`Previous conversation: %s
Student's response: %q

If previous solution didn't work, give ONE different approach (2-3 steps max).
If they've tried 2+ solutions, suggest: "Let's submit a formal complaint for admin help."
Use generic terms only - no specific network names.
Keep under 40 words.`, strings.Join(lastTurns, " | "), message)
}
