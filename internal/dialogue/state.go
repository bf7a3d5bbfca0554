// Package dialogue tracks what the skill last asked the user, so that a bare
// "yes" or "no" on the next turn can be routed to the right follow-up.
package dialogue

// State records the last prompt given to the user
type State int

const (
	// StateNone means no follow-up question is pending
	StateNone State = iota
	StateLaunch
	StateCurrentCard
	StateNextCard
	StatePreviousCard
	StateRestartGame
	StateRandomCard
	StateHelpInfo
	StateHowToPlayInfo
	StateHowToPlayQuestion
	StateThreatModellingInfo
	StateThreatModellingQuestion
	StateAboutGameInfo
	StateAboutGameQuestion
	// StateEnd means the help sequence has finished
	StateEnd
)

// Tokens are the values kept in the platform's session attributes
var tokens = map[State]string{
	StateLaunch:                  "launch",
	StateCurrentCard:             "current_card",
	StateNextCard:                "next_card",
	StatePreviousCard:            "previous_card",
	StateRestartGame:             "restart_game",
	StateRandomCard:              "random_card",
	StateHelpInfo:                "help_info",
	StateHowToPlayInfo:           "how_to_play_info",
	StateHowToPlayQuestion:       "how_to_play_question",
	StateThreatModellingInfo:     "threat_modelling_info",
	StateThreatModellingQuestion: "threat_modelling_question",
	StateAboutGameInfo:           "about_game_info",
	StateAboutGameQuestion:       "about_game_question",
	StateEnd:                     "end_of_help",
}

var statesByToken = func() map[string]State {
	m := make(map[string]State, len(tokens))
	for s, t := range tokens {
		m[t] = s
	}
	return m
}()

// String returns the attribute token for the state, or "" for StateNone
func (s State) String() string {
	return tokens[s]
}

// Parse converts an attribute token into a State. Unknown or empty tokens
// are StateNone.
func Parse(token string) State {
	return statesByToken[token]
}
