package chat

// Turn is one prior exchange supplied by the client. History is ephemeral:
// it lives only for the duration of a single request.
type Turn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Request is the body of POST /api/chat.
type Request struct {
	Message string `json:"message"`
	Mode    string `json:"mode,omitempty"`
	History []Turn `json:"history,omitempty"`
}

// Response carries the reply text plus the synthesized audio reference and
// the tone-derived avatar clip.
type Response struct {
	Reply    string `json:"reply"`
	AudioURL string `json:"audioUrl,omitempty"`
	Tone     string `json:"tone"`
	Clip     string `json:"clip,omitempty"`
}

// ValidRole reports whether the history role is one the model accepts.
func ValidRole(role string) bool {
	return role == "user" || role == "assistant"
}
