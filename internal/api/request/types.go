package request

// Envelope is the voice platform's request body for one turn
type Envelope struct {
	Version string  `json:"version"`
	Session Session `json:"session"`
	Request Request `json:"request"`
}

// Session carries the conversation's identity and attribute bag
type Session struct {
	New        bool           `json:"new"`
	SessionID  string         `json:"sessionId"`
	User       User           `json:"user"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// User identifies the account talking to the skill
type User struct {
	UserID string `json:"userId"`
}

// Request types sent by the platform
const (
	TypeLaunch       = "LaunchRequest"
	TypeIntent       = "IntentRequest"
	TypeSessionEnded = "SessionEndedRequest"
)

// Request describes what the user asked for
type Request struct {
	Type      string  `json:"type"`
	RequestID string  `json:"requestId"`
	Locale    string  `json:"locale,omitempty"`
	Intent    *Intent `json:"intent,omitempty"`
}

// Intent is the resolved intent of an IntentRequest
type Intent struct {
	Name string `json:"name"`
}
