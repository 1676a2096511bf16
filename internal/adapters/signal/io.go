package signal

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/okuren/Tavern/internal/core"
	"github.com/okuren/Tavern/internal/domain"
)

func (ctl *SessionWSController) writePump(ctx context.Context, c *WsSessionConn) {
	ping := time.NewTicker(ctl.cfg.PingPeriod)
	defer ping.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "signal").Msg("writePump ctx done")
			return
		case <-ping.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Warn().Err(err).Str("module", "signal").Msg("writePump ping error")
				return
			}
		case data, ok := <-c.send:
			if !ok {
				log.Warn().Str("module", "signal").Msg("writePump channel closed")
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second)); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump set deadline")
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump write error")
				return
			}
		}
	}
}

func (ctl *SessionWSController) readPump(ctx context.Context, id domain.ConnID, c *WsSessionConn) {
	defer ctl.teardown(id, c)

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "signal").Str("conn", string(id)).Msg("readPump ctx done")
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				log.Info().Err(err).Str("module", "signal").Str("conn", string(id)).Msg("readPump read error")
				return
			}
			ctl.handleFrame(id, c, data)
		}
	}
}

// teardown runs the disconnect path exactly once per connection: close
// the socket, let the gateway evict the user, drop the binding. When a
// newer socket has taken over the id, the binding is theirs and only the
// local socket is closed.
func (ctl *SessionWSController) teardown(id domain.ConnID, c *WsSessionConn) {
	log.Info().Str("module", "signal").Str("conn", string(id)).Msg("connection closing")
	c.Close()
	if !ctl.Registry.Owns(id, c) {
		log.Info().Str("module", "signal").Str("conn", string(id)).Msg("stale connection retired, binding kept")
		return
	}
	ctl.Gate.Disconnect(id)
	ctl.rolls.Forget(id)
	ctl.Registry.Cancel(id)
	ctl.Registry.Unbind(id)
}

func (ctl *SessionWSController) handleFrame(id domain.ConnID, c *WsSessionConn, data []byte) {
	var env struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		ctl.badPayload(c, err)
		return
	}

	switch env.Type {
	case "room:create":
		ctl.handleRoomCreate(id, c, data)
	case "room:join":
		ctl.handleRoomJoin(id, c, data)
	case "room:index":
		ctl.handleRoomIndex(id, c, data)
	case "sheet:save":
		ctl.handleSheetSave(id, c, data)
	case "sheet:get":
		ctl.handleSheetGet(id, c, data)
	case "sheet:update":
		ctl.handleSheetUpdate(id, c, data)
	case "npc:create":
		ctl.handleNpcCreate(id, c, data)
	case "npc:get":
		ctl.handleNpcGet(id, c, data)
	case "npc:update":
		ctl.handleNpcUpdate(id, c, data)
	case "npc:delete":
		ctl.handleNpcDelete(id, c, data)
	case "roll:send":
		ctl.handleRollSend(id, c, data)
	case "ping":
		ctl.handlePing(c)
	default:
		log.Warn().Str("module", "signal").Str("type", env.Type).Msg("unknown event")
	}
}

func (ctl *SessionWSController) badPayload(c *WsSessionConn, err error) {
	log.Error().Err(err).Str("module", "signal").Msg("bad payload")
	ctl.sendJSON(c, envelope{Type: core.EvError, Data: "bad payload"})
}
