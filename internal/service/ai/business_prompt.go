package ai

import (
	"fmt"
	"strings"

	"github.com/frontdeskhq/frontdesk/backend/internal/model/business"
	"github.com/frontdeskhq/frontdesk/backend/internal/model/chat"
)

const (
	// Bounds keeping the prompt small regardless of how much knowledge
	// a business uploads.
	maxKnowledgeDocs       = 5
	maxKnowledgeDocContent = 1500

	styleDirective = "Be concise, friendly, and helpful. If an appointment is requested, capture details."
	taskDirective  = "Reply as the AI receptionist in plain text."
)

// BuildKnowledgeBase renders the business's documents as a titled
// grounding section. Returns the empty string when there are no
// documents so the prompt carries no stray header.
func BuildKnowledgeBase(docs []business.Document) string {
	if len(docs) == 0 {
		return ""
	}

	if len(docs) > maxKnowledgeDocs {
		docs = docs[:maxKnowledgeDocs]
	}

	sections := make([]string, 0, len(docs))
	for i, doc := range docs {
		title := strings.TrimSpace(doc.Title)
		if title == "" {
			title = fmt.Sprintf("Doc %d", i+1)
		}

		content := strings.TrimSpace(doc.Content)
		if len(content) > maxKnowledgeDocContent {
			content = content[:maxKnowledgeDocContent]
		}

		sections = append(sections, fmt.Sprintf("### %s\n%s", title, content))
	}

	return "\n\n### Business Knowledge Base\n" + strings.Join(sections, "\n\n")
}

// BuildPrompt composes the full generation prompt: business framing,
// optional metadata lines, style directive, knowledge base, the latest
// user message, and the task directive. Absent optional fields leave no
// blank lines behind.
func BuildPrompt(biz business.Business, knowledgeBase, userMessage string) string {
	lines := []string{
		fmt.Sprintf("You are an AI receptionist for the business %q.", biz.Name),
	}
	if biz.Industry != "" {
		lines = append(lines, "Industry: "+biz.Industry)
	}
	if biz.Description != "" {
		lines = append(lines, "About: "+biz.Description)
	}
	lines = append(lines, styleDirective)
	if knowledgeBase != "" {
		lines = append(lines, knowledgeBase)
	}

	systemContext := strings.Join(lines, "\n")

	return strings.Join([]string{
		"### Instructions\n" + systemContext,
		"\n### User Message\n" + userMessage,
		"\n### Your Task\n" + taskDirective,
	}, "\n")
}

// LatestUserMessage returns the content of the last user-role message,
// or the empty string when the turn carries none.
func LatestUserMessage(messages []chat.TurnMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == chat.RoleUser {
			return messages[i].Content
		}
	}
	return ""
}
