package tone

import "testing"

func TestDetectEmptyInputIsNeutral(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t  "} {
		if got := Detect(input); got != Neutral {
			t.Fatalf("Detect(%q) = %s, want neutral", input, got)
		}
	}
}

func TestDetectIsDeterministic(t *testing.T) {
	inputs := []string{
		"",
		"Hello there.",
		"I'm sorry, that sounds tough.",
		"This is amazing!!!",
		"Congrats on the new job!",
		"Be careful with that ladder.",
	}
	for _, input := range inputs {
		first := Detect(input)
		second := Detect(input)
		if first != second {
			t.Fatalf("Detect(%q) unstable: %s then %s", input, first, second)
		}
	}
}

func TestDetectKeywordRules(t *testing.T) {
	cases := []struct {
		text string
		want Label
	}{
		{"I'm sorry you're going through this.", Sympathetic},
		{"Ugh, that really sucks.", Bummed},
		{"Don't worry, we can fix it together.", Reassuring},
		{"You've got this, one step at a time.", Encouraging},
		{"Congratulations on shipping the project.", Happy},
		{"Haha, I couldn't help myself.", Playful},
		{"That's interesting, tell me more.", Intrigued},
		{"Be careful before you sign anything.", Caution},
		{"This is incredible news.", Excited},
		{"The meeting is at three.", Neutral},
	}

	for _, tc := range cases {
		if got := Detect(tc.text); got != tc.want {
			t.Errorf("Detect(%q) = %s, want %s", tc.text, got, tc.want)
		}
	}
}

func TestDetectCurlyApostrophes(t *testing.T) {
	if got := Detect("That’s incredible, truly."); got != Excited {
		t.Fatalf("expected excited for curly-quoted cue, got %s", got)
	}
}

func TestDetectExclamationFallback(t *testing.T) {
	if got := Detect("This is amazing!!!"); got != Excited && got != Happy {
		t.Fatalf("expected excited or happy, got %s", got)
	}
	if got := Detect("See you soon!"); got != Happy {
		t.Fatalf("single exclamation should read happy, got %s", got)
	}
	if got := Detect("Go go go!! We did it!!"); got != Excited {
		t.Fatalf("dense exclamations should read excited, got %s", got)
	}
}

func TestDetectTieBreaksByTableOrder(t *testing.T) {
	// Carries both a sympathetic cue and a bummed cue; the sympathetic rule
	// sits earlier in the table and must win.
	text := "I'm sorry, that really sucks."
	if got := Detect(text); got != Sympathetic {
		t.Fatalf("Detect(%q) = %s, want sympathetic", text, got)
	}
}

func TestKnownCoversEveryLabel(t *testing.T) {
	for _, l := range Labels() {
		if !Known(string(l)) {
			t.Fatalf("label %s not recognized by Known", l)
		}
	}
	if Known("grumpy") {
		t.Fatalf("unexpected label accepted")
	}
}
