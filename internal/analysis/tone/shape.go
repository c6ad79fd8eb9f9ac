package tone

import (
	"regexp"
	"strings"
)

// Shape rewrites reply text for more expressive TTS delivery: shorter lines,
// gentle ellipsis pauses, and paragraph breaks matched to the tone. It never
// substitutes or drops words; only punctuation and spacing change. Shaping is
// not idempotent: re-shaping shaped text may add redundant markers, so
// callers are expected to shape the raw reply exactly once.
func Shape(text string, tone Label) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return text
	}

	sentences := splitSentences(text)
	if tone == Sympathetic {
		sentences = softenLeadingName(sentences)
	}

	var lines []string

	switch tone {
	case Sympathetic, Bummed:
		// One sentence per line with breathing room after every second one.
		for i, s := range sentences {
			if hasHeavyWord(s) && !strings.HasSuffix(s, "...") {
				s += "..."
			}
			lines = append(lines, s)
			if i%2 == 1 {
				lines = append(lines, "")
			}
		}

	case Encouraging, Happy, Reassuring, Playful, Excited:
		// Group short phrases to keep momentum, then land on a closing lift.
		lines = groupSentences(sentences, 80)
		if len(lines) > 0 {
			last := lines[len(lines)-1]
			switch tone {
			case Happy, Excited:
				if !strings.HasSuffix(last, "!") {
					last += "!"
				}
			default:
				if !strings.HasSuffix(last, "!") && !strings.HasSuffix(last, "…") && !strings.HasSuffix(last, "...") {
					last += "..."
				}
			}
			lines[len(lines)-1] = last
		}

	case Caution:
		// Slower, segmented delivery: a pause after every sentence.
		for _, s := range sentences {
			lines = append(lines, s, "")
		}

	default:
		lines = groupSentences(sentences, 100)
	}

	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	out := text
	if len(lines) > 0 {
		out = strings.Join(lines, "\n\n")
	}

	// A single ellipsis rune keeps synthesizers from reading "dot dot dot".
	out = strings.ReplaceAll(out, "...", "…")
	out = danglingDotPattern.ReplaceAllString(out, ".")

	return out
}

var danglingDotPattern = regexp.MustCompile(`\s+\.`)

// splitSentences is a crude punctuation-based splitter, good enough for
// delivery shaping.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '?' || r == '!' {
			flush()
		}
	}
	flush()

	if len(sentences) == 0 {
		return []string{strings.TrimSpace(text)}
	}
	return sentences
}

var leadingNamePattern = regexp.MustCompile(`^([A-Z][a-z]{1,20})[, ]+(\S.*)$`)

// softenLeadingName turns "Ana, that must hurt" into "Ana... that must hurt"
// in the first sentence only, so sympathetic replies open with a pause
// instead of a clipped address.
func softenLeadingName(sentences []string) []string {
	if len(sentences) == 0 {
		return sentences
	}

	softened := append([]string(nil), sentences...)
	if m := leadingNamePattern.FindStringSubmatch(softened[0]); m != nil {
		softened[0] = m[1] + "... " + m[2]
	}
	return softened
}

var heavyWords = []string{"sorry", "hard", "tough", "understand", "alone", "worried"}

func hasHeavyWord(sentence string) bool {
	lower := strings.ToLower(sentence)
	for _, w := range heavyWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// groupSentences joins sentences into lines of roughly maxLen characters.
func groupSentences(sentences []string, maxLen int) []string {
	var lines []string
	var buffer []string

	for _, s := range sentences {
		buffer = append(buffer, s)
		joined := strings.Join(buffer, " ")
		if len(joined) > maxLen {
			lines = append(lines, joined)
			buffer = buffer[:0]
		}
	}
	if len(buffer) > 0 {
		lines = append(lines, strings.Join(buffer, " "))
	}

	return lines
}
