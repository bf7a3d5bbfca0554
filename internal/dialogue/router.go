package dialogue

// Answer is the user's reply to a yes/no question
type Answer int

const (
	AnswerYes Answer = iota
	AnswerNo
)

// String returns "yes" or "no"
func (a Answer) String() string {
	if a == AnswerYes {
		return "yes"
	}
	return "no"
}

type transition struct {
	yes State
	no  State
}

// Yes follows the informational branch; no skips ahead to the next question
var transitions = map[State]transition{
	StateHelpInfo:                {yes: StateHowToPlayInfo, no: StateThreatModellingQuestion},
	StateHowToPlayQuestion:       {yes: StateHowToPlayInfo, no: StateThreatModellingQuestion},
	StateHowToPlayInfo:           {yes: StateThreatModellingInfo, no: StateAboutGameQuestion},
	StateThreatModellingQuestion: {yes: StateThreatModellingInfo, no: StateAboutGameQuestion},
	StateThreatModellingInfo:     {yes: StateAboutGameInfo, no: StateEnd},
	StateAboutGameQuestion:       {yes: StateAboutGameInfo, no: StateEnd},
}

// Route returns the prompt that follows answer when the user was last shown
// state. It returns StateNone when state carries no pending question.
func Route(state State, answer Answer) State {
	t, ok := transitions[state]
	if !ok {
		return StateNone
	}
	if answer == AnswerYes {
		return t.yes
	}
	return t.no
}

// Pending reports whether state is waiting on a yes/no answer
func Pending(state State) bool {
	_, ok := transitions[state]
	return ok
}
