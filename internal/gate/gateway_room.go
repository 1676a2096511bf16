package gate

import (
	"github.com/rs/zerolog/log"

	"github.com/okuren/Tavern/internal/app"
	"github.com/okuren/Tavern/internal/core"
	"github.com/okuren/Tavern/internal/domain"
)

type joinedPayload struct {
	RoomID domain.RoomID `json:"roomId"`
	Role   domain.Role   `json:"role"`
	ConnID domain.ConnID `json:"connectionId"`
}

type historyPayload struct {
	List []domain.RollEntry `json:"list"`
}

// CreateRoom claims the master seat of the named room, creating the room
// if needed. A room that already has a live master rejects the claim.
func (g *Gateway) CreateRoom(id domain.ConnID, rawRoom, name string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	roomID, err := domain.SanitizeRoomID(rawRoom)
	if err != nil {
		g.fail(id, "invalid room id")
		return
	}
	if room, ok := g.Rooms.Get(roomID); ok && room.HasMaster() {
		g.fail(id, "room already has a master")
		return
	}

	// leave the previous room before Ensure: eviction may delete that
	// room, and it may be this very one
	g.evictLocked(id)

	room := g.Rooms.Ensure(roomID)
	room.Master = id
	room.Users[id] = domain.NewUserInfo(name, domain.RoleMaster)
	g.Registry.UpdateRoom(id, roomID)
	log.Info().Str("module", "gate").Str("conn", string(id)).Str("room", string(roomID)).Msg("master claimed room")

	g.Emit.ToConn(id, core.EvRoomJoined, joinedPayload{RoomID: roomID, Role: domain.RoleMaster, ConnID: id})
	g.Emit.ToConn(id, core.EvRollHistory, historyPayload{List: app.RollHistory(room)})
}

// JoinRoom adds the connection as a player. Joining requires an existing
// room with a live master; a sheet already keyed by this connection id
// (the transport token survives reconnects) is delivered back.
func (g *Gateway) JoinRoom(id domain.ConnID, rawRoom, name string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	roomID, err := domain.SanitizeRoomID(rawRoom)
	if err != nil {
		g.fail(id, "invalid room id")
		return
	}
	if room, ok := g.Rooms.Get(roomID); !ok || !room.HasMaster() {
		g.fail(id, "room not found or has no master")
		return
	}

	g.evictLocked(id)

	// re-fetch: eviction can tear down the target room when the caller
	// was its master or sole occupant
	room, ok := g.Rooms.Get(roomID)
	if !ok || !room.HasMaster() {
		g.fail(id, "room not found or has no master")
		return
	}

	room.Users[id] = domain.NewUserInfo(name, domain.RolePlayer)
	g.Registry.UpdateRoom(id, roomID)
	log.Info().Str("module", "gate").Str("conn", string(id)).Str("room", string(roomID)).Msg("player joined room")

	g.Emit.ToConn(id, core.EvRoomJoined, joinedPayload{RoomID: roomID, Role: domain.RolePlayer, ConnID: id})
	if sheet, ok := room.Sheets[id]; ok {
		g.Emit.ToConn(id, core.EvSheetLoad, sheetLoadPayload{Owner: id, Sheet: sheet, Type: "player", ID: string(id)})
	}
	g.Emit.ToConn(id, core.EvRollHistory, historyPayload{List: app.RollHistory(room)})
}

// RequestIndex delivers the summary index to the caller. Non-masters are
// ignored without an error: passive reads fail silent.
func (g *Gateway) RequestIndex(id domain.ConnID, rawRoom string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	room, ok := g.resolve(rawRoom)
	if !ok || !g.Policy.IsMaster(room, id) {
		return
	}
	g.pushIndex(room)
}
