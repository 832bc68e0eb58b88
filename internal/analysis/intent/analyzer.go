// Package intent classifies user utterances with cheap keyword
// heuristics so telemetry can report what visitors ask for without an
// extra model call.
package intent

import "strings"

// Label identifies the dominant intent of a chat turn.
type Label string

const (
	General     Label = "general"
	Appointment Label = "appointment"
	Hours       Label = "hours"
	Pricing     Label = "pricing"
	Handoff     Label = "handoff"
)

// Decision carries the detected intent and the flags the metrics
// collector understands.
type Decision struct {
	Intent               Label
	Score                int
	AppointmentRequested bool
	HandoffRequested     bool
}

var keywordBuckets = map[Label][]string{
	Appointment: {
		"appointment", "book", "booking", "schedule", "reschedule", "reserve",
		"reservation", "availability", "available", "slot", "come in", "visit",
		"consultation", "check-up", "checkup",
	},
	Hours: {
		"hours", "open", "closed", "closing", "opening", "what time",
		"weekend", "saturday", "sunday", "holiday", "today until",
	},
	Pricing: {
		"price", "pricing", "cost", "how much", "fee", "fees", "charge",
		"quote", "estimate", "insurance", "payment plan", "discount",
	},
	Handoff: {
		"human", "real person", "someone", "staff", "manager", "speak to",
		"talk to", "call me", "call back", "phone number", "representative",
		"agent", "operator",
	},
}

// Analyze inspects the user utterance (and, as a weak signal, the AI
// reply) and returns the dominant intent with collector-ready flags.
func Analyze(userUtterance, aiUtterance string) Decision {
	scores := scoreText(userUtterance, 3)

	// The reply only reinforces what the user asked; it never
	// introduces an intent on its own.
	for label, s := range scoreText(aiUtterance, 1) {
		if scores[label] > 0 {
			scores[label] += s
		}
	}

	bestLabel := General
	bestScore := 0
	for label, s := range scores {
		if s > bestScore {
			bestScore = s
			bestLabel = label
		}
	}

	return Decision{
		Intent:               bestLabel,
		Score:                bestScore,
		AppointmentRequested: scores[Appointment] > 0,
		HandoffRequested:     scores[Handoff] > 0,
	}
}

func scoreText(text string, weight int) map[Label]int {
	scores := make(map[Label]int)

	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return scores
	}

	for label, keywords := range keywordBuckets {
		for _, word := range keywords {
			if strings.Contains(normalized, word) {
				scores[label] += weight
			}
		}
	}
	return scores
}
