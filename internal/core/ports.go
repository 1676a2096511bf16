package core

import "github.com/okuren/Tavern/internal/domain"

// Frame is a serialized outbound message.
type Frame []byte

// SignalConnection abstracts the messaging transport endpoint.
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	TrySend(Frame) error
	Close()
}

// Outbound event names. Inbound names live in the signal adapter because
// only it parses frames.
const (
	EvError         = "error:msg"
	EvRoomJoined    = "room:joined"
	EvRoomNoMaster  = "room:noMaster"
	EvRollHistory   = "roll:history"
	EvRollBroadcast = "roll:broadcast"
	EvSheetLoad     = "sheet:load"
	EvSheetSummary  = "sheet:summary"
	EvSheetPush     = "sheet:push"
	EvSheetsIndex   = "room:sheetsIndex"
	EvNpcCreated    = "npc:created"
	EvNpcLoad       = "npc:load"
)

// Emitter is the gateway's outbound port. Delivery is fire-and-forget:
// implementations never block and never report failure back into room
// state, so a slow destination cannot stall or corrupt a dispatch.
type Emitter interface {
	ToConn(id domain.ConnID, event string, payload any)
	ToRoom(roomID domain.RoomID, event string, payload any)
}

type IndexKind string

const (
	IndexPlayer IndexKind = "player"
	IndexNpc    IndexKind = "npc"
)

// IndexEntry is one row of the master-only summary index (no transport
// fields, safe to marshal as-is).
type IndexEntry struct {
	ID   string    `json:"id"`
	Type IndexKind `json:"type"`
	Name string    `json:"name"`
	HP   *float64  `json:"hp"`
	PD   *float64  `json:"pd"`
}
