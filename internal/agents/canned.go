package agents

import "strings"

// Offline replies. They are constant apart from the reviewer's reaction
// to FeedbackMarker, so a run with no credential always refines once.
const (
	cannedDraft = `{"explanation": "MOCK: Gemini Key missing. Angles are formed by two rays.", "questions": [{"question": "Angle < 90?", "options": ["Acute", "Obtuse"], "answer": "Acute"}]}`

	cannedPass = `{"status": "pass", "feedback": ["Looks good now."]}`

	cannedFail = `{"status": "fail", "feedback": ["(Mock) Too complex.", "(Mock) Add example."]}`
)

func cannedReply(role Role, prompt string) string {
	switch role {
	case RoleReviewer:
		if strings.Contains(prompt, FeedbackMarker) {
			return cannedPass
		}
		return cannedFail
	case RoleGenerator:
		return cannedDraft
	default:
		return "{}"
	}
}
