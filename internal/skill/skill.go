package skill

import (
	"context"
	"errors"
	"log/slog"

	"github.com/zeroXten/alexa-threat-model-game/internal/catalog"
	"github.com/zeroXten/alexa-threat-model-game/internal/dependencies/random"
	"github.com/zeroXten/alexa-threat-model-game/internal/dialogue"
	"github.com/zeroXten/alexa-threat-model-game/internal/model"
	"github.com/zeroXten/alexa-threat-model-game/internal/services/session"
)

// Intent names as sent by the voice platform. Launch and session-ended
// requests have no intent name and are given one here.
const (
	IntentLaunch          = "LaunchRequest"
	IntentSessionEnded    = "SessionEndedRequest"
	IntentCurrentCard     = "CurrentCardIntent"
	IntentNextCard        = "NextCardIntent"
	IntentNext            = "AMAZON.NextIntent"
	IntentPreviousCard    = "PreviousCardIntent"
	IntentPrevious        = "AMAZON.PreviousIntent"
	IntentRestartGame     = "RestartGameIntent"
	IntentRandomCard      = "RandomCardIntent"
	IntentHelp            = "AMAZON.HelpIntent"
	IntentHowToPlay       = "HowToPlayIntent"
	IntentThreatModelling = "ThreatModellingIntent"
	IntentAboutGame       = "AboutGameIntent"
	IntentYes             = "AMAZON.YesIntent"
	IntentNo              = "AMAZON.NoIntent"
	IntentStop            = "AMAZON.StopIntent"
	IntentCancel          = "AMAZON.CancelIntent"
)

// HandlerAttribute is the session attribute holding the last dialogue state
const HandlerAttribute = "handler"

// Request is one conversational turn
type Request struct {
	UserID     model.UserID
	Intent     string
	Attributes map[string]any
}

// Response is what the platform should say, plus the attribute bag to carry
// into the next turn
type Response struct {
	Speech     string
	EndSession bool
	Attributes map[string]any
}

// Skill answers conversational turns
type Skill struct {
	sessions *session.Service
	catalog  *catalog.Catalog
	random   random.Random
	logger   *slog.Logger
}

// New creates a new Skill
func New(sessions *session.Service, cat *catalog.Catalog, random random.Random, logger *slog.Logger) *Skill {
	return &Skill{
		sessions: sessions,
		catalog:  cat,
		random:   random,
		logger:   logger,
	}
}

// turn carries the per-request state through a handler
type turn struct {
	ctx   context.Context
	req   Request
	attrs map[string]any
}

func (t *turn) setState(state dialogue.State) {
	t.attrs[HandlerAttribute] = state.String()
}

func (t *turn) state() dialogue.State {
	token, _ := t.req.Attributes[HandlerAttribute].(string)
	return dialogue.Parse(token)
}

func (t *turn) ask(speech string) Response {
	return Response{Speech: speech, EndSession: false, Attributes: t.attrs}
}

func (t *turn) tell(speech string) Response {
	return Response{Speech: speech, EndSession: true, Attributes: t.attrs}
}

// Handle dispatches a turn to its intent handler. Store failures are turned
// into an apology; anything else that fails is returned as an error.
func (s *Skill) Handle(ctx context.Context, req Request) (Response, error) {
	t := &turn{
		ctx:   ctx,
		req:   req,
		attrs: make(map[string]any, len(req.Attributes)+1),
	}
	for k, v := range req.Attributes {
		t.attrs[k] = v
	}

	resp, err := s.dispatch(t)
	if err != nil {
		if errors.Is(err, model.ErrStoreUnavailable) ||
			errors.Is(err, model.ErrStoreCorrupt) ||
			errors.Is(err, model.ErrEmptyCatalog) {
			s.logger.Error("turn failed",
				slog.String("user_id", string(req.UserID)),
				slog.String("intent", req.Intent),
				slog.String("error", err.Error()),
			)
			return t.tell(speechApology), nil
		}
		return Response{}, err
	}

	s.logger.Debug("turn handled",
		slog.String("user_id", string(req.UserID)),
		slog.String("intent", req.Intent),
		slog.Any("handler", t.attrs[HandlerAttribute]),
	)
	return resp, nil
}

func (s *Skill) dispatch(t *turn) (Response, error) {
	switch t.req.Intent {
	case IntentLaunch:
		return s.launch(t)
	case IntentCurrentCard:
		return s.currentCard(t)
	case IntentNextCard, IntentNext:
		return s.nextCard(t)
	case IntentPreviousCard, IntentPrevious:
		return s.previousCard(t)
	case IntentRestartGame:
		return s.restartGame(t)
	case IntentRandomCard:
		return s.randomCard(t)
	case IntentHelp:
		return s.prompt(t, dialogue.StateHelpInfo), nil
	case IntentHowToPlay:
		return s.prompt(t, dialogue.StateHowToPlayInfo), nil
	case IntentThreatModelling:
		return s.prompt(t, dialogue.StateThreatModellingInfo), nil
	case IntentAboutGame:
		return s.prompt(t, dialogue.StateAboutGameInfo), nil
	case IntentYes:
		return s.answer(t, dialogue.AnswerYes), nil
	case IntentNo:
		return s.answer(t, dialogue.AnswerNo), nil
	case IntentStop, IntentCancel:
		return t.tell(speechGoodbye), nil
	case IntentSessionEnded:
		return Response{EndSession: true, Attributes: t.attrs}, nil
	default:
		return t.ask(speechFallback), nil
	}
}
