package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/zeroXten/alexa-threat-model-game/internal/api/apierr"
	"github.com/zeroXten/alexa-threat-model-game/internal/api/request"
	"github.com/zeroXten/alexa-threat-model-game/internal/api/response"
	"github.com/zeroXten/alexa-threat-model-game/internal/model"
	"github.com/zeroXten/alexa-threat-model-game/internal/skill"
)

// maxEnvelopeBytes bounds the size of a decoded request body
const maxEnvelopeBytes = 1 << 20

// SkillHandler binds the voice platform's request envelope to the skill
type SkillHandler struct {
	skill  *skill.Skill
	logger *slog.Logger
}

// NewSkillHandler creates a new skill handler
func NewSkillHandler(s *skill.Skill, logger *slog.Logger) *SkillHandler {
	return &SkillHandler{
		skill:  s,
		logger: logger,
	}
}

// Handle handles POST /api/v1/skill
func (h *SkillHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var env request.Envelope
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxEnvelopeBytes)).Decode(&env); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid request body"))
		return
	}

	req, err := turnFromEnvelope(env)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	resp, err := h.skill.Handle(r.Context(), req)
	if err != nil {
		h.logger.Error("skill request failed",
			slog.String("user_id", string(req.UserID)),
			slog.String("intent", req.Intent),
			slog.String("error", err.Error()),
		)
		apierr.WriteError(w, err)
		return
	}

	response.Skill(w, resp)
}

// turnFromEnvelope maps the platform's request type and intent onto a skill turn
func turnFromEnvelope(env request.Envelope) (skill.Request, error) {
	if env.Session.User.UserID == "" {
		return skill.Request{}, apierr.NewInvalidRequestError("session.user.userId is required")
	}

	var intent string
	switch env.Request.Type {
	case request.TypeLaunch:
		intent = skill.IntentLaunch
	case request.TypeSessionEnded:
		intent = skill.IntentSessionEnded
	case request.TypeIntent:
		if env.Request.Intent == nil || env.Request.Intent.Name == "" {
			return skill.Request{}, apierr.NewInvalidRequestError("request.intent.name is required")
		}
		intent = env.Request.Intent.Name
	default:
		return skill.Request{}, apierr.NewInvalidRequestError("unsupported request type")
	}

	return skill.Request{
		UserID:     model.UserID(env.Session.User.UserID),
		Intent:     intent,
		Attributes: env.Session.Attributes,
	}, nil
}
