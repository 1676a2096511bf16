package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/okuren/Tavern/internal/domain"
)

type rollPayload struct {
	Type   string `json:"type"`
	RoomID string `json:"roomId"`
	Roll   any    `json:"roll"`
}

func (ctl *SessionWSController) handleRollSend(id domain.ConnID, c *WsSessionConn, data []byte) {
	var p rollPayload
	if err := json.Unmarshal(data, &p); err != nil {
		ctl.badPayload(c, err)
		return
	}
	if !ctl.rolls.Allow(id) {
		log.Warn().Str("module", "signal").Str("conn", string(id)).Msg("roll rate exceeded, dropped")
		return
	}
	ctl.Gate.SendRoll(id, p.RoomID, p.Roll)
}
