package gate

import (
	"github.com/okuren/Tavern/internal/app"
	"github.com/okuren/Tavern/internal/core"
	"github.com/okuren/Tavern/internal/domain"
)

type sheetLoadPayload struct {
	Owner domain.ConnID `json:"ownerConnectionId"`
	Sheet domain.Sheet  `json:"sheet"`
	Type  string        `json:"type"`
	ID    string        `json:"id"`
}

type sheetSummaryPayload struct {
	Owner   domain.ConnID  `json:"ownerConnectionId"`
	Summary domain.Summary `json:"summary"`
}

// SaveSheet stores the caller's own sheet. If a master is present it gets
// the derived summary, the raw document and a fresh index. An unknown
// room or an unregistered caller is ignored without an error.
func (g *Gateway) SaveSheet(id domain.ConnID, rawRoom string, doc domain.Sheet) {
	g.mu.Lock()
	defer g.mu.Unlock()

	room, ok := g.resolve(rawRoom)
	if !ok {
		return
	}
	if _, ok := room.Users[id]; !ok {
		return
	}
	room.Sheets[id] = doc
	if !room.HasMaster() {
		return
	}
	g.Emit.ToConn(room.Master, core.EvSheetSummary, sheetSummaryPayload{Owner: id, Summary: app.ExtractSummary(doc)})
	g.Emit.ToConn(room.Master, core.EvSheetPush, sheetLoadPayload{Owner: id, Sheet: doc, Type: "player", ID: string(id)})
	g.pushIndex(room)
}

// RequestSheet delivers another connection's sheet to the master.
func (g *Gateway) RequestSheet(id domain.ConnID, rawRoom string, target domain.ConnID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	room, ok := g.resolve(rawRoom)
	if !ok || !g.Policy.IsMaster(room, id) {
		g.fail(id, "not authorized")
		return
	}
	sheet, ok := room.Sheets[target]
	if !ok {
		g.fail(id, "sheet not found")
		return
	}
	g.Emit.ToConn(id, core.EvSheetLoad, sheetLoadPayload{Owner: target, Sheet: sheet, Type: "player", ID: string(target)})
}

// UpdateSheet lets the master overwrite any sheet in the room. The
// updated document goes to both the owning connection and the master,
// followed by a fresh index.
func (g *Gateway) UpdateSheet(id domain.ConnID, rawRoom string, target domain.ConnID, doc domain.Sheet) {
	g.mu.Lock()
	defer g.mu.Unlock()

	room, ok := g.resolve(rawRoom)
	if !ok || !g.Policy.IsMaster(room, id) {
		g.fail(id, "not authorized")
		return
	}
	room.Sheets[target] = doc
	payload := sheetLoadPayload{Owner: target, Sheet: doc, Type: "player", ID: string(target)}
	g.Emit.ToConn(target, core.EvSheetLoad, payload)
	g.Emit.ToConn(id, core.EvSheetLoad, payload)
	g.pushIndex(room)
}
