package skill

import "github.com/zeroXten/alexa-threat-model-game/internal/dialogue"

type prompt struct {
	speech string
	ask    bool
}

var prompts = map[dialogue.State]prompt{
	dialogue.StateHelpInfo:                {speechHelpInfo, true},
	dialogue.StateHowToPlayInfo:           {speechHowToPlayInfo, true},
	dialogue.StateHowToPlayQuestion:       {speechHowToPlayQuestion, true},
	dialogue.StateThreatModellingInfo:     {speechThreatModellingInfo, true},
	dialogue.StateThreatModellingQuestion: {speechThreatModellingQuestion, true},
	dialogue.StateAboutGameInfo:           {speechAboutGameInfo, false},
	dialogue.StateAboutGameQuestion:       {speechAboutGameQuestion, true},
	dialogue.StateEnd:                     {speechEndOfHelp, false},
}

// prompt records state and speaks its text. Question prompts keep the
// session open for a yes/no answer.
func (s *Skill) prompt(t *turn, state dialogue.State) Response {
	p, ok := prompts[state]
	if !ok {
		return t.tell(speechNoHandler)
	}
	t.setState(state)
	if p.ask {
		return t.ask(p.speech)
	}
	return t.tell(p.speech)
}

func (s *Skill) answer(t *turn, answer dialogue.Answer) Response {
	next := dialogue.Route(t.state(), answer)
	if next == dialogue.StateNone {
		return t.tell(speechNoHandler)
	}
	return s.prompt(t, next)
}
