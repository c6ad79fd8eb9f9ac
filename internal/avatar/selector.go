package avatar

import (
	"strings"

	"github.com/mirelabs/zelda/backend/internal/analysis/tone"
)

// NeutralClip is the fallback reaction video.
const NeutralClip = "zelda_neutral.mp4"

var clipsByTone = map[tone.Label]string{
	tone.Neutral:     NeutralClip,
	tone.Happy:       "zelda_happy.mp4",
	tone.Excited:     "zelda_excited.mp4",
	tone.Sympathetic: "zelda_sympathetic.mp4",
	tone.Bummed:      "zelda_bummed.mp4",
	tone.Reassuring:  "zelda_reassuring.mp4",
	tone.Encouraging: "zelda_encouraging.mp4",
	tone.Playful:     "zelda_playful.mp4",
	tone.Intrigued:   "zelda_intrigued.mp4",
	tone.Caution:     "zelda_caution.mp4",
}

// ClipFor maps a tone label to its pre-recorded reaction clip. Labels without
// a clip fall back to the neutral one so the frontend always has something to
// play.
func ClipFor(label string) string {
	normalized := strings.ToLower(strings.TrimSpace(label))
	if !tone.Known(normalized) {
		return NeutralClip
	}
	if clip, ok := clipsByTone[tone.Label(normalized)]; ok {
		return clip
	}
	return NeutralClip
}

// Clips returns the full tone-to-clip table for the frontend to preload.
func Clips() map[string]string {
	out := make(map[string]string, len(clipsByTone))
	for label, clip := range clipsByTone {
		out[string(label)] = clip
	}
	return out
}
