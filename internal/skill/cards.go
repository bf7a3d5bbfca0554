package skill

import (
	"github.com/zeroXten/alexa-threat-model-game/internal/dialogue"
	"github.com/zeroXten/alexa-threat-model-game/internal/model"
	"github.com/zeroXten/alexa-threat-model-game/internal/services/deck"
	"github.com/zeroXten/alexa-threat-model-game/internal/services/session"
)

// load builds this turn's session and deck for the requesting user
func (s *Skill) load(t *turn) (*session.Session, *deck.Deck, error) {
	sess, err := s.sessions.Load(t.ctx, t.req.UserID)
	if err != nil {
		return nil, nil, err
	}
	d, err := deck.New(s.catalog, sess)
	if err != nil {
		return nil, nil, err
	}
	return sess, d, nil
}

func (s *Skill) launch(t *turn) (Response, error) {
	t.setState(dialogue.StateLaunch)

	sess, d, err := s.load(t)
	if err != nil {
		return Response{}, err
	}
	name, err := sess.Name()
	if err != nil {
		return Response{}, err
	}
	pos, err := d.Current()
	if err != nil {
		return Response{}, err
	}
	return t.tell(welcomeSpeech(name, pos.Card)), nil
}

func (s *Skill) currentCard(t *turn) (Response, error) {
	t.setState(dialogue.StateCurrentCard)

	_, d, err := s.load(t)
	if err != nil {
		return Response{}, err
	}
	pos, err := d.Current()
	if err != nil {
		return Response{}, err
	}
	return t.tell(cardSpeech("current", pos.Card)), nil
}

func (s *Skill) nextCard(t *turn) (Response, error) {
	t.setState(dialogue.StateNextCard)

	_, d, err := s.load(t)
	if err != nil {
		return Response{}, err
	}
	before, err := d.Current()
	if err != nil {
		return Response{}, err
	}
	after, err := d.Advance(t.ctx)
	if err != nil {
		return Response{}, err
	}
	if after.Index == before.Index {
		return t.tell(lastCardSpeech(before.Card)), nil
	}
	return t.tell(cardSpeech("new", after.Card)), nil
}

func (s *Skill) previousCard(t *turn) (Response, error) {
	t.setState(dialogue.StatePreviousCard)

	_, d, err := s.load(t)
	if err != nil {
		return Response{}, err
	}
	before, err := d.Current()
	if err != nil {
		return Response{}, err
	}
	after, err := d.Retreat(t.ctx)
	if err != nil {
		return Response{}, err
	}
	if after.Index == before.Index {
		return t.tell(firstCardSpeech(before.Card)), nil
	}
	return t.tell(cardSpeech("new", after.Card)), nil
}

// restartGame starts the active game again with a fresh shuffle
func (s *Skill) restartGame(t *turn) (Response, error) {
	t.setState(dialogue.StateRestartGame)

	sess, d, err := s.load(t)
	if err != nil {
		return Response{}, err
	}
	if err := sess.Restart(t.ctx); err != nil {
		return Response{}, err
	}
	if err := d.Restore(); err != nil {
		return Response{}, err
	}

	name, err := sess.Name()
	if err != nil {
		return Response{}, err
	}
	pos, err := d.Current()
	if err != nil {
		return Response{}, err
	}
	return t.tell(restartSpeech(name, pos.Card)), nil
}

// randomCard draws from a one-off shuffle and leaves saved progress alone
func (s *Skill) randomCard(t *turn) (Response, error) {
	t.setState(dialogue.StateRandomCard)

	order := deck.Order(s.catalog, s.random.Uint32())
	if len(order) == 0 {
		return Response{}, model.ErrEmptyCatalog
	}
	return t.tell(cardSpeech("random", order[0])), nil
}
