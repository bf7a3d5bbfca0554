package redis

import (
	"github.com/zeroXten/alexa-threat-model-game/internal/model"
)

// progressKey returns the Redis key for a user's progress record,
// e.g. eopgame:progress:amzn1.ask.account.XYZ
func (s *Storage) progressKey(userID model.UserID) string {
	return s.prefix + ":progress:" + string(userID)
}
