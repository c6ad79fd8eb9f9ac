package ai

import (
	"testing"

	"github.com/mirelabs/zelda/backend/internal/model/chat"
	"github.com/mirelabs/zelda/backend/internal/model/mode"
)

func newTestService() *Service {
	return &Service{modes: mode.NewMemoryStore(mode.Seed())}
}

func TestResolveModeID(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		in   string
		want string
	}{
		{"", mode.DefaultID},
		{"friendly", "friendly"},
		{"  Therapist ", "therapist"},
		{"balanced", "balanced"},
		{"unknown-mode", mode.DefaultID},
	}

	for _, tt := range tests {
		if got := svc.resolveModeID(tt.in); got != tt.want {
			t.Errorf("resolveModeID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSystemPromptVariesByMode(t *testing.T) {
	svc := newTestService()

	friendly := svc.systemPromptFor("friendly")
	therapist := svc.systemPromptFor("therapist")

	if friendly == "" || therapist == "" {
		t.Fatal("system prompts should not be empty")
	}
	if friendly == therapist {
		t.Error("friendly and therapist prompts should differ")
	}

	if got := svc.systemPromptFor("nope"); got != friendly {
		t.Error("unknown mode should fall back to the default prompt")
	}
}

func TestBuildHistoryMessagesMapsRoles(t *testing.T) {
	history := []chat.Turn{
		{Role: "user", Content: "hello"},
		{Role: "assistant", Content: "hi there"},
		{Role: "system", Content: "dropped"},
	}

	messages := buildHistoryMessages(history)
	if len(messages) != 2 {
		t.Fatalf("messages length = %d, want 2", len(messages))
	}
	if messages[0].Content != "hello" || messages[1].Content != "hi there" {
		t.Errorf("unexpected message contents: %+v", messages)
	}
}

func TestBuildHistoryMessagesCapsLength(t *testing.T) {
	history := make([]chat.Turn, historyLimit+10)
	for i := range history {
		history[i] = chat.Turn{Role: "user", Content: "turn"}
	}

	messages := buildHistoryMessages(history)
	if len(messages) != historyLimit {
		t.Errorf("messages length = %d, want %d", len(messages), historyLimit)
	}
}

func TestBuildHistoryMessagesEmpty(t *testing.T) {
	if got := buildHistoryMessages(nil); got != nil {
		t.Errorf("expected nil for empty history, got %v", got)
	}
}
