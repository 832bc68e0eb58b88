package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/frontdeskhq/frontdesk/backend/internal/config"
)

// FallbackReply is substituted when the backend answers successfully
// but the reply field is missing or empty.
const FallbackReply = "Sorry, I didn't catch that."

// outputContract pins the structured-output shape the backend must
// produce. It rides in the system message so the business prompt stays
// free of wire-format concerns.
const outputContract = `You generate replies for a business chat widget. ` +
	`Answer with a single JSON object of the form {"reply": "<your reply text>"} and nothing else.`

// Reply is the result of one generation call.
type Reply struct {
	Text      string
	ModelName string
	Elapsed   time.Duration
}

// Service invokes the generation backend with a structured-output
// contract and measures latency around each call.
type Service struct {
	chatModel model.ChatModel
	cfg       config.AIConfig
	chain     compose.Runnable[map[string]any, *schema.Message]
}

// NewService creates the generation service from configuration.
func NewService(ctx context.Context, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{
		chatModel: chatModel,
		cfg:       cfg,
		chain:     runnable,
	}, nil
}

// Generate runs the chain for the assembled prompt. Backend errors
// propagate to the caller; a successful response without a usable reply
// field falls back to FallbackReply.
func (s *Service) Generate(ctx context.Context, fullPrompt string) (Reply, error) {
	input := map[string]any{
		"system": outputContract,
		"query":  fullPrompt,
	}

	start := time.Now()
	response, err := s.chain.Invoke(ctx, input)
	elapsed := time.Since(start)
	if err != nil {
		return Reply{}, fmt.Errorf("failed to run AI chain: %w", err)
	}

	return Reply{
		Text:      decodeReply(response.Content),
		ModelName: s.cfg.Model,
		Elapsed:   elapsed,
	}, nil
}

// decodeReply extracts the reply field from the model output, tolerating
// surrounding code fences or prose, and substitutes the fallback when no
// usable reply is present.
func decodeReply(content string) string {
	trimmed := strings.TrimSpace(content)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)

	var payload struct {
		Reply string `json:"reply"`
	}
	if err := json.Unmarshal([]byte(trimmed), &payload); err != nil {
		start := strings.Index(trimmed, "{")
		end := strings.LastIndex(trimmed, "}")
		if start == -1 || end <= start {
			return FallbackReply
		}
		if err := json.Unmarshal([]byte(trimmed[start:end+1]), &payload); err != nil {
			return FallbackReply
		}
	}

	if strings.TrimSpace(payload.Reply) == "" {
		return FallbackReply
	}
	return payload.Reply
}
