package gate

import (
	"github.com/google/uuid"

	"github.com/okuren/Tavern/internal/core"
	"github.com/okuren/Tavern/internal/domain"
)

type npcPayload struct {
	ID    domain.NPCID `json:"id"`
	Sheet domain.Sheet `json:"sheet"`
	Type  string       `json:"type"`
}

// newNPCID generates an id disjoint from the connection-id namespace;
// the prefix is what keeps the two apart.
func newNPCID() domain.NPCID {
	return domain.NPCID("npc_" + uuid.NewString())
}

// CreateNPC stores a new NPC document (empty when none is supplied) and
// echoes it to the master with its generated id.
func (g *Gateway) CreateNPC(id domain.ConnID, rawRoom string, doc domain.Sheet) {
	g.mu.Lock()
	defer g.mu.Unlock()

	room, ok := g.resolve(rawRoom)
	if !ok || !g.Policy.IsMaster(room, id) {
		g.fail(id, "not authorized")
		return
	}
	if doc == nil {
		doc = domain.Sheet{}
	}
	npcID := newNPCID()
	room.NPCs[npcID] = doc
	g.Emit.ToConn(id, core.EvNpcCreated, npcPayload{ID: npcID, Sheet: doc, Type: "npc"})
	g.pushIndex(room)
}

// RequestNPC is a passive read: a non-master gets no error, only a
// missing NPC is reported.
func (g *Gateway) RequestNPC(id domain.ConnID, rawRoom string, npcID domain.NPCID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	room, ok := g.resolve(rawRoom)
	if !ok || !g.Policy.IsMaster(room, id) {
		return
	}
	doc, ok := room.NPCs[npcID]
	if !ok {
		g.fail(id, "npc not found")
		return
	}
	g.Emit.ToConn(id, core.EvNpcLoad, npcPayload{ID: npcID, Sheet: doc, Type: "npc"})
}

func (g *Gateway) UpdateNPC(id domain.ConnID, rawRoom string, npcID domain.NPCID, doc domain.Sheet) {
	g.mu.Lock()
	defer g.mu.Unlock()

	room, ok := g.resolve(rawRoom)
	if !ok || !g.Policy.IsMaster(room, id) {
		g.fail(id, "not authorized")
		return
	}
	if _, ok := room.NPCs[npcID]; !ok {
		g.fail(id, "npc not found")
		return
	}
	room.NPCs[npcID] = doc
	g.Emit.ToConn(id, core.EvNpcLoad, npcPayload{ID: npcID, Sheet: doc, Type: "npc"})
	g.pushIndex(room)
}

// DeleteNPC removes the NPC if present; deleting an unknown id is a
// no-op, not an error.
func (g *Gateway) DeleteNPC(id domain.ConnID, rawRoom string, npcID domain.NPCID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	room, ok := g.resolve(rawRoom)
	if !ok || !g.Policy.IsMaster(room, id) {
		g.fail(id, "not authorized")
		return
	}
	delete(room.NPCs, npcID)
	g.pushIndex(room)
}
