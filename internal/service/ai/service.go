package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/mirelabs/zelda/backend/internal/config"
	"github.com/mirelabs/zelda/backend/internal/model/chat"
	"github.com/mirelabs/zelda/backend/internal/model/mode"
)

// historyLimit caps how many prior turns are replayed to the model; older
// turns are dropped client history, not server state.
const historyLimit = 20

// Service wraps the chat-completion model behind a mode-aware prompt chain.
type Service struct {
	modes mode.Store
	cfg   config.AIConfig
	chain compose.Runnable[map[string]any, *schema.Message]
}

// NewService compiles the prompt chain for the configured chat model.
func NewService(ctx context.Context, modes mode.Store, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
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
		modes: modes,
		cfg:   cfg,
		chain: runnable,
	}, nil
}

// StreamingEnabled reports whether SSE delta streaming is configured.
func (s *Service) StreamingEnabled() bool {
	return s.cfg.StreamResponse
}

// GenerateReply produces one assistant reply for the given mode, history,
// and user message.
func (s *Service) GenerateReply(ctx context.Context, modeID string, history []chat.Turn, message string) (string, error) {
	input := s.buildChainInput(modeID, history, message)

	response, err := s.chain.Invoke(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to run chat chain: %w", err)
	}

	reply := strings.TrimSpace(response.Content)
	log.Printf("[ai] generated reply, mode=%s, length=%d", s.resolveModeID(modeID), len(reply))
	return reply, nil
}

// StreamReply streams reply deltas through the same chain.
func (s *Service) StreamReply(ctx context.Context, modeID string, history []chat.Turn, message string) (*schema.StreamReader[*schema.Message], error) {
	if !s.StreamingEnabled() {
		return nil, fmt.Errorf("streaming disabled in configuration")
	}

	input := s.buildChainInput(modeID, history, message)

	stream, err := s.chain.Stream(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to stream chat chain output: %w", err)
	}

	return stream, nil
}

func (s *Service) buildChainInput(modeID string, history []chat.Turn, message string) map[string]any {
	return map[string]any{
		"system":  s.systemPromptFor(modeID),
		"history": buildHistoryMessages(history),
		"query":   message,
	}
}

func (s *Service) resolveModeID(modeID string) string {
	modeID = strings.ToLower(strings.TrimSpace(modeID))
	if modeID == "" {
		return mode.DefaultID
	}
	if _, ok := s.modes.FindByID(modeID); !ok {
		return mode.DefaultID
	}
	return modeID
}

func (s *Service) systemPromptFor(modeID string) string {
	m, ok := s.modes.FindByID(s.resolveModeID(modeID))
	if !ok {
		// Seed data always carries the default; an empty store is a wiring bug.
		return ""
	}
	return m.SystemPrompt
}

func buildHistoryMessages(history []chat.Turn) []*schema.Message {
	if len(history) == 0 {
		return nil
	}

	startIdx := 0
	if len(history) > historyLimit {
		startIdx = len(history) - historyLimit
	}

	messages := make([]*schema.Message, 0, len(history)-startIdx)
	for _, turn := range history[startIdx:] {
		switch turn.Role {
		case "user":
			messages = append(messages, schema.UserMessage(turn.Content))
		case "assistant":
			messages = append(messages, schema.AssistantMessage(turn.Content, nil))
		}
	}

	return messages
}
