package signal

import (
	"encoding/json"

	"github.com/okuren/Tavern/internal/domain"
)

type roomPayload struct {
	Type   string `json:"type"`
	RoomID string `json:"roomId"`
	Name   string `json:"name,omitempty"`
}

func (ctl *SessionWSController) handleRoomCreate(id domain.ConnID, c *WsSessionConn, data []byte) {
	var p roomPayload
	if err := json.Unmarshal(data, &p); err != nil {
		ctl.badPayload(c, err)
		return
	}
	ctl.Gate.CreateRoom(id, p.RoomID, p.Name)
}

func (ctl *SessionWSController) handleRoomJoin(id domain.ConnID, c *WsSessionConn, data []byte) {
	var p roomPayload
	if err := json.Unmarshal(data, &p); err != nil {
		ctl.badPayload(c, err)
		return
	}
	ctl.Gate.JoinRoom(id, p.RoomID, p.Name)
}

func (ctl *SessionWSController) handleRoomIndex(id domain.ConnID, c *WsSessionConn, data []byte) {
	var p roomPayload
	if err := json.Unmarshal(data, &p); err != nil {
		ctl.badPayload(c, err)
		return
	}
	ctl.Gate.RequestIndex(id, p.RoomID)
}
