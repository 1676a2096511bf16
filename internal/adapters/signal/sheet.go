package signal

import (
	"encoding/json"

	"github.com/okuren/Tavern/internal/domain"
)

type sheetPayload struct {
	Type   string        `json:"type"`
	RoomID string        `json:"roomId"`
	Target domain.ConnID `json:"targetId,omitempty"`
	Sheet  domain.Sheet  `json:"sheet,omitempty"`
}

func (ctl *SessionWSController) handleSheetSave(id domain.ConnID, c *WsSessionConn, data []byte) {
	var p sheetPayload
	if err := json.Unmarshal(data, &p); err != nil {
		ctl.badPayload(c, err)
		return
	}
	ctl.Gate.SaveSheet(id, p.RoomID, p.Sheet)
}

func (ctl *SessionWSController) handleSheetGet(id domain.ConnID, c *WsSessionConn, data []byte) {
	var p sheetPayload
	if err := json.Unmarshal(data, &p); err != nil {
		ctl.badPayload(c, err)
		return
	}
	ctl.Gate.RequestSheet(id, p.RoomID, p.Target)
}

func (ctl *SessionWSController) handleSheetUpdate(id domain.ConnID, c *WsSessionConn, data []byte) {
	var p sheetPayload
	if err := json.Unmarshal(data, &p); err != nil {
		ctl.badPayload(c, err)
		return
	}
	ctl.Gate.UpdateSheet(id, p.RoomID, p.Target, p.Sheet)
}
