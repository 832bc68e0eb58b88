package chat

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/frontdeskhq/frontdesk/backend/internal/analysis/intent"
	businessModel "github.com/frontdeskhq/frontdesk/backend/internal/model/business"
	chatModel "github.com/frontdeskhq/frontdesk/backend/internal/model/chat"
	"github.com/frontdeskhq/frontdesk/backend/internal/service/ai"
	"github.com/frontdeskhq/frontdesk/backend/internal/telemetry"
)

var (
	ErrQuotaExceeded    = errors.New("message quota exceeded")
	ErrBusinessNotFound = errors.New("business not found")
)

// BusinessDirectory resolves businesses and their knowledge documents.
type BusinessDirectory interface {
	FindByID(id string) (businessModel.Business, bool)
	DocumentsByBusiness(id string) []businessModel.Document
}

// QuotaStore tracks the per-session free-message allowance.
type QuotaStore interface {
	Remaining(sessionID, businessID string) int
	Decrement(sessionID, businessID string)
}

// MessageStore persists assistant replies, best-effort.
type MessageStore interface {
	Append(ctx context.Context, message chatModel.Message) error
}

// Generator produces a reply for an assembled prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (ai.Reply, error)
}

// TurnRequest is one validated inbound chat turn.
type TurnRequest struct {
	Messages       []chatModel.TurnMessage
	BusinessID     string
	ConversationID string
}

// TurnResult is the successful outcome of a processed turn.
type TurnResult struct {
	Reply             string
	ConversationID    string
	RemainingMessages int
}

// Service sequences the turn pipeline: quota gate, context loading,
// generation, then best-effort bookkeeping. Only a generation failure
// can abort a turn once the gate has passed.
type Service struct {
	businesses BusinessDirectory
	quota      QuotaStore
	messages   MessageStore
	generator  Generator
	reporter   telemetry.Reporter
	costPer1K  float64
}

// NewService wires the orchestrator with its collaborators. A nil
// reporter disables telemetry.
func NewService(businesses BusinessDirectory, quota QuotaStore, messages MessageStore, generator Generator, reporter telemetry.Reporter, costPer1K float64) *Service {
	if reporter == nil {
		reporter = telemetry.Nop{}
	}
	return &Service{
		businesses: businesses,
		quota:      quota,
		messages:   messages,
		generator:  generator,
		reporter:   reporter,
		costPer1K:  costPer1K,
	}
}

// ProcessTurn runs one chat turn end to end. The quota gate runs before
// any business lookup or generation so an exhausted session costs
// nothing. After a successful generation, persistence, the quota
// decrement, and telemetry are each attempted independently; their
// failures are logged and never change the outcome.
func (s *Service) ProcessTurn(ctx context.Context, sessionID string, req TurnRequest) (TurnResult, error) {
	remaining := s.quota.Remaining(sessionID, req.BusinessID)
	if remaining <= 0 {
		return TurnResult{}, ErrQuotaExceeded
	}

	biz, ok := s.businesses.FindByID(req.BusinessID)
	if !ok {
		return TurnResult{}, ErrBusinessNotFound
	}

	docs := s.businesses.DocumentsByBusiness(req.BusinessID)
	userMessage := ai.LatestUserMessage(req.Messages)
	prompt := ai.BuildPrompt(biz, ai.BuildKnowledgeBase(docs), userMessage)

	reply, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return TurnResult{}, fmt.Errorf("generate reply: %w", err)
	}

	log.Printf("[chat] generated reply for business=%s, session=%s, length=%d, elapsed=%s",
		req.BusinessID, sessionID, len(reply.Text), reply.Elapsed)

	s.bestEffort("persist assistant message", func() error {
		return s.messages.Append(ctx, chatModel.Message{
			ConversationID: req.ConversationID,
			BusinessID:     req.BusinessID,
			Role:           chatModel.RoleAssistant,
			Content:        reply.Text,
		})
	})

	s.bestEffort("decrement message quota", func() error {
		s.quota.Decrement(sessionID, req.BusinessID)
		return nil
	})

	s.bestEffort("track metrics", func() error {
		return s.reporter.Track(ctx, s.buildRecord(sessionID, req.BusinessID, userMessage, prompt, reply))
	})

	remaining--
	if remaining < 0 {
		remaining = 0
	}

	return TurnResult{
		Reply:             reply.Text,
		ConversationID:    req.ConversationID,
		RemainingMessages: remaining,
	}, nil
}

// bestEffort runs one post-generation side effect, containing both
// errors and panics so no bookkeeping failure can reach the caller.
func (s *Service) bestEffort(name string, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("warning: %s panicked: %v", name, r)
		}
	}()

	if err := fn(); err != nil {
		log.Printf("warning: %s failed: %v", name, err)
	}
}

func (s *Service) buildRecord(sessionID, businessID, userMessage, prompt string, reply ai.Reply) telemetry.Record {
	decision := intent.Analyze(userMessage, reply.Text)
	tokens := telemetry.EstimateTokens(prompt) + telemetry.EstimateTokens(reply.Text)

	return telemetry.Record{
		BusinessID:            businessID,
		ResponseTimeMs:        reply.Elapsed.Milliseconds(),
		SessionID:             sessionID,
		SuccessRate:           1,
		TokensUsed:            tokens,
		APICostUSD:            telemetry.EstimateCostUSD(tokens, s.costPer1K),
		ModelName:             reply.ModelName,
		IntentDetected:        string(decision.Intent),
		AppointmentRequested:  decision.AppointmentRequested,
		HumanHandoffRequested: decision.HandoffRequested,
		UserMessageLength:     len(userMessage),
		AIResponseLength:      len(reply.Text),
		ResponseType:          "chat",
	}
}
