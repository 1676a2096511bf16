package gate

import (
	"github.com/rs/zerolog/log"

	"github.com/okuren/Tavern/internal/core"
	"github.com/okuren/Tavern/internal/domain"
)

type noMasterPayload struct {
	RoomID domain.RoomID `json:"roomId"`
}

// Disconnect handles an abrupt connection loss: the user entry goes, a
// lost master is announced to the survivors, and an empty room dies.
// Sheet documents stay with the room.
func (g *Gateway) Disconnect(id domain.ConnID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.evictLocked(id)
}

// evictLocked removes the connection from whatever room the reverse
// index binds it to. Also the first step of any re-join, which is what
// keeps "one room per connection" true. Callers hold g.mu.
func (g *Gateway) evictLocked(id domain.ConnID) {
	roomID, ok := g.Registry.RoomOf(id)
	if !ok {
		return
	}
	g.Registry.RemoveRoom(id)
	room, ok := g.Rooms.Get(roomID)
	if !ok {
		return
	}

	wasMaster := room.Master == id
	delete(room.Users, id)
	if wasMaster {
		room.Master = ""
		log.Info().Str("module", "gate").Str("conn", string(id)).Str("room", string(roomID)).Msg("master left, room unmastered")
		g.Emit.ToRoom(roomID, core.EvRoomNoMaster, noMasterPayload{RoomID: roomID})
	}
	if room.Empty() {
		g.Rooms.DeleteIfEmpty(roomID)
		return
	}
	// survivors with a master still get a fresh index
	g.pushIndex(room)
}
