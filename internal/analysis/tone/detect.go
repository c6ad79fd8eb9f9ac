package tone

import "strings"

// Label is one discrete delivery tone. Every assistant reply gets exactly one
// label; it drives both the TTS shaping and the avatar clip selection.
type Label string

const (
	Neutral     Label = "neutral"
	Happy       Label = "happy"
	Excited     Label = "excited"
	Sympathetic Label = "sympathetic"
	Bummed      Label = "bummed"
	Reassuring  Label = "reassuring"
	Encouraging Label = "encouraging"
	Playful     Label = "playful"
	Intrigued   Label = "intrigued"
	Caution     Label = "caution"
)

// Labels returns the full fixed label set.
func Labels() []Label {
	return []Label{
		Neutral, Happy, Excited, Sympathetic, Bummed,
		Reassuring, Encouraging, Playful, Intrigued, Caution,
	}
}

// Known reports whether raw is a member of the fixed label set.
func Known(raw string) bool {
	for _, l := range Labels() {
		if string(l) == raw {
			return true
		}
	}
	return false
}

type rule struct {
	label   Label
	phrases []string
}

// ruleTable is evaluated top to bottom and the first rule containing a
// matching phrase wins, so ties between cue categories resolve by table
// order. Phrases are matched as lowercase substrings after apostrophe
// normalization.
var ruleTable = []rule{
	{Sympathetic, []string{
		"i'm sorry", "i am sorry", "that sounds really hard",
		"that sounds tough", "i know this is hard",
		"i know this is tough", "i can see why", "i understand this is",
		"it makes sense you feel", "i get why you feel",
	}},
	{Bummed, []string{
		"that really sucks", "that sucks", "that's rough",
		"that's not fair", "that is not fair",
	}},
	{Reassuring, []string{
		"don't worry", "do not worry",
		"you're not alone", "you are not alone",
		"it's okay to", "it's ok to",
		"it's understandable",
		"you're doing your best", "you are doing your best",
	}},
	{Encouraging, []string{
		"you've got this", "you got this",
		"i believe in you", "i'm proud of you", "i am proud of you",
		"keep going", "keep at it",
		"this is a great step", "this is a good step",
		"you're doing great",
	}},
	{Happy, []string{
		"that's great", "that's awesome", "that's fantastic",
		"i'm glad", "i am glad",
		"i'm happy for you", "i am happy for you",
		"congratulations", "congrats",
	}},
	{Playful, []string{
		"haha", "lol", "just kidding", "couldn't resist",
		"little bit cheeky", "let's have some fun",
	}},
	{Intrigued, []string{
		"i'm curious", "i am curious",
		"interesting question", "that's interesting",
		"let's unpack", "i wonder", "makes me wonder",
	}},
	{Caution, []string{
		"be careful", "you'll want to be careful", "you will want to be careful",
		"this might be risky", "this could be risky",
		"i'd strongly recommend", "i would strongly recommend",
		"i'd avoid", "i would avoid",
		"it's important to",
	}},
	{Excited, []string{
		"this is huge", "i'm so excited", "i am so excited",
		"this is amazing", "i'm really excited", "i am really excited",
		"this is incredible", "that's incredible",
		"this is insane", "that's insane",
	}},
}

var apostropheNormalizer = strings.NewReplacer("’", "'", "‘", "'")

// Detect assigns a delivery tone to the reply text. It is total and
// deterministic: empty or whitespace-only input is neutral, and when no rule
// matches, exclamation density decides between excited, happy, and neutral.
func Detect(text string) Label {
	normalized := apostropheNormalizer.Replace(strings.ToLower(strings.TrimSpace(text)))
	if normalized == "" {
		return Neutral
	}

	for _, r := range ruleTable {
		for _, phrase := range r.phrases {
			if strings.Contains(normalized, phrase) {
				return r.label
			}
		}
	}

	switch exclamations := strings.Count(normalized, "!"); {
	case exclamations >= 2:
		return Excited
	case exclamations == 1:
		return Happy
	}

	return Neutral
}
