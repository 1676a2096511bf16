package signal

import (
	"encoding/json"

	"github.com/okuren/Tavern/internal/domain"
)

type npcPayload struct {
	Type   string       `json:"type"`
	RoomID string       `json:"roomId"`
	NpcID  domain.NPCID `json:"npcId,omitempty"`
	Sheet  domain.Sheet `json:"sheet,omitempty"`
}

func (ctl *SessionWSController) handleNpcCreate(id domain.ConnID, c *WsSessionConn, data []byte) {
	var p npcPayload
	if err := json.Unmarshal(data, &p); err != nil {
		ctl.badPayload(c, err)
		return
	}
	ctl.Gate.CreateNPC(id, p.RoomID, p.Sheet)
}

func (ctl *SessionWSController) handleNpcGet(id domain.ConnID, c *WsSessionConn, data []byte) {
	var p npcPayload
	if err := json.Unmarshal(data, &p); err != nil {
		ctl.badPayload(c, err)
		return
	}
	ctl.Gate.RequestNPC(id, p.RoomID, p.NpcID)
}

func (ctl *SessionWSController) handleNpcUpdate(id domain.ConnID, c *WsSessionConn, data []byte) {
	var p npcPayload
	if err := json.Unmarshal(data, &p); err != nil {
		ctl.badPayload(c, err)
		return
	}
	ctl.Gate.UpdateNPC(id, p.RoomID, p.NpcID, p.Sheet)
}

func (ctl *SessionWSController) handleNpcDelete(id domain.ConnID, c *WsSessionConn, data []byte) {
	var p npcPayload
	if err := json.Unmarshal(data, &p); err != nil {
		ctl.badPayload(c, err)
		return
	}
	ctl.Gate.DeleteNPC(id, p.RoomID, p.NpcID)
}
