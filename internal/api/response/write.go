package response

import (
	"encoding/json"
	"net/http"

	"github.com/zeroXten/alexa-threat-model-game/internal/skill"
)

// JSON writes a JSON response
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json;charset=UTF-8")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// Skill writes a turn's reply. Every handled turn, apologies included,
// is a 200 as far as the platform is concerned.
func Skill(w http.ResponseWriter, resp skill.Response) {
	JSON(w, http.StatusOK, EnvelopeFromSkill(resp))
}
