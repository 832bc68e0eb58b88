package chat

import "time"

// Recognized message roles for inbound turns.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// TurnMessage is one entry of the inbound conversation payload.
type TurnMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ValidRole reports whether the role is one the pipeline recognizes.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAssistant || role == RoleSystem
}

// Message persists individual turns for audit/debug.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId,omitempty"`
	BusinessID     string    `json:"businessId"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
}
