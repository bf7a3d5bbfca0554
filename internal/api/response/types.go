package response

import "github.com/zeroXten/alexa-threat-model-game/internal/skill"

// Envelope is the reply body the voice platform expects
type Envelope struct {
	Version           string         `json:"version"`
	SessionAttributes map[string]any `json:"sessionAttributes,omitempty"`
	Response          Body           `json:"response"`
}

// Body is the spoken part of the reply
type Body struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	ShouldEndSession bool          `json:"shouldEndSession"`
}

// OutputSpeech is plain spoken text
type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// HealthResponse is the body of the health endpoint
type HealthResponse struct {
	Status string `json:"status"`
	Cards  int    `json:"cards"`
	Store  string `json:"store"`
}

// EnvelopeFromSkill converts a skill response into the platform reply
func EnvelopeFromSkill(resp skill.Response) Envelope {
	env := Envelope{
		Version:           "1.0",
		SessionAttributes: resp.Attributes,
		Response: Body{
			ShouldEndSession: resp.EndSession,
		},
	}
	if resp.Speech != "" {
		env.Response.OutputSpeech = &OutputSpeech{Type: "PlainText", Text: resp.Speech}
	}
	return env
}
