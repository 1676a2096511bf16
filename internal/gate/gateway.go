// Package gate is the event dispatcher: it resolves the room named by an
// inbound event, applies the authorization policy, mutates room state and
// emits the outbound events through the transport port.
package gate

import (
	"sync"
	"time"

	"github.com/okuren/Tavern/internal/app"
	"github.com/okuren/Tavern/internal/core"
	"github.com/okuren/Tavern/internal/domain"
)

// Gateway serializes every dispatch under one mutex held for the whole
// handler, so room state never sees concurrent mutation regardless of
// how many reader goroutines feed it. Emission goes through the Emit
// port, which never blocks, so the lock is safe to hold across sends.
type Gateway struct {
	mu sync.Mutex

	Rooms    *app.RoomRegistry
	Registry *app.Registry
	Policy   app.AuthPolicy
	Emit     core.Emitter

	now func() time.Time
}

func New(rooms *app.RoomRegistry, reg *app.Registry, policy app.AuthPolicy, emit core.Emitter) *Gateway {
	return &Gateway{Rooms: rooms, Registry: reg, Policy: policy, Emit: emit, now: time.Now}
}

func (g *Gateway) fail(id domain.ConnID, msg string) {
	g.Emit.ToConn(id, core.EvError, msg)
}

// resolve sanitizes the raw room id from the wire and looks the room up.
// It never creates; creation is the create-room path's business.
func (g *Gateway) resolve(rawRoom string) (*domain.Room, bool) {
	roomID, err := domain.SanitizeRoomID(rawRoom)
	if err != nil {
		return nil, false
	}
	return g.Rooms.Get(roomID)
}

func (g *Gateway) pushIndex(room *domain.Room) {
	if !room.HasMaster() {
		return
	}
	g.Emit.ToConn(room.Master, core.EvSheetsIndex, indexPayload{List: app.BuildIndex(room)})
}

type indexPayload struct {
	List []core.IndexEntry `json:"list"`
}
