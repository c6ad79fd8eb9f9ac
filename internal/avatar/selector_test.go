package avatar

import (
	"testing"

	"github.com/mirelabs/zelda/backend/internal/analysis/tone"
)

func TestClipForEveryLabel(t *testing.T) {
	for _, label := range tone.Labels() {
		clip := ClipFor(string(label))
		if clip == "" {
			t.Fatalf("no clip for label %s", label)
		}
	}
}

func TestClipForUnknownFallsBackToNeutral(t *testing.T) {
	for _, raw := range []string{"", "grumpy", "  HAPPY  "} {
		clip := ClipFor(raw)
		if raw == "  HAPPY  " {
			if clip != clipsByTone[tone.Happy] {
				t.Fatalf("expected happy clip for %q, got %s", raw, clip)
			}
			continue
		}
		if clip != NeutralClip {
			t.Fatalf("expected neutral fallback for %q, got %s", raw, clip)
		}
	}
}

func TestClipsCopiesTable(t *testing.T) {
	clips := Clips()
	clips["neutral"] = "tampered.mp4"
	if ClipFor("neutral") != NeutralClip {
		t.Fatalf("Clips() must return a copy of the table")
	}
}
