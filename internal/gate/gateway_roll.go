package gate

import (
	"github.com/okuren/Tavern/internal/app"
	"github.com/okuren/Tavern/internal/core"
	"github.com/okuren/Tavern/internal/domain"
)

// SendRoll appends a roll to the room's ledger and broadcasts it to the
// whole room, sender included. The timestamp is server-assigned and the
// actor fields are snapshotted at roll time. Unregistered callers are
// ignored without an error.
func (g *Gateway) SendRoll(id domain.ConnID, rawRoom string, payload any) {
	g.mu.Lock()
	defer g.mu.Unlock()

	room, ok := g.resolve(rawRoom)
	if !ok {
		return
	}
	u, ok := room.Users[id]
	if !ok {
		return
	}
	entry := domain.RollEntry{
		RoomID:  room.ID,
		From:    domain.RollActor{ConnID: id, Name: u.Name, Role: u.Role},
		Payload: payload,
		At:      g.now(),
	}
	app.AppendRoll(room, entry)
	g.Emit.ToRoom(room.ID, core.EvRollBroadcast, entry)
}
