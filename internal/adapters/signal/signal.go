package signal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/okuren/Tavern/internal/app"
	"github.com/okuren/Tavern/internal/config"
	"github.com/okuren/Tavern/internal/core"
	"github.com/okuren/Tavern/internal/domain"
	"github.com/okuren/Tavern/internal/gate"
)

var ErrBackpressure = errors.New("backpressure")

// SessionWSController is the websocket face of the relay. It owns the
// connection lifecycle and the wire envelope; room semantics live behind
// Gate. It also implements core.Emitter, which is how the gateway's
// outbound events reach the sockets.
type SessionWSController struct {
	Gate     *gate.Gateway
	Registry *app.Registry

	cfg   *config.Config
	rolls *RollRateLimiter
}

func NewSessionWSController(cfg *config.Config, reg *app.Registry) *SessionWSController {
	return &SessionWSController{
		Registry: reg,
		cfg:      cfg,
		rolls:    NewRollRateLimiter(cfg.RollRate, cfg.RollRateWindow),
	}
}

type WsSessionConn struct {
	conn *websocket.Conn
	send chan core.Frame

	mu     sync.RWMutex
	closed bool
}

func (c *WsSessionConn) TrySend(f core.Frame) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return errors.New("connection closed")
	}
	select {
	case c.send <- f:
	default:
		return ErrBackpressure
	}
	return nil
}

func (c *WsSessionConn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	_ = c.conn.Close()
	c.mu.Unlock()
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleSession upgrades the request and binds the connection under its
// client token. The token is a persistent cookie, so a reconnecting
// client comes back under the same connection id.
func (ctl *SessionWSController) HandleSession(ctx context.Context, c *gin.Context) {
	id := domain.ConnID(c.GetString("client_token"))
	log.Info().Str("module", "signal").Str("conn", string(id)).Msg("new WS connection")

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("ws upgrade")
		return
	}
	ws.SetReadLimit(ctl.cfg.ReadLimit)

	conn := &WsSessionConn{
		conn: ws,
		send: make(chan core.Frame, 32),
	}

	ctx, cancel := context.WithCancel(ctx)
	ctl.Registry.BindSignal(id, conn, cancel)

	go ctl.writePump(ctx, conn)
	go ctl.readPump(ctx, id, conn)
}

// envelope is the outbound wire shape: the event name plus its payload.
type envelope struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

func (ctl *SessionWSController) ToConn(id domain.ConnID, event string, payload any) {
	conn, ok := ctl.Registry.GetConn(id)
	if !ok {
		return
	}
	ctl.sendJSON(conn, envelope{Type: event, Data: payload})
}

func (ctl *SessionWSController) ToRoom(roomID domain.RoomID, event string, payload any) {
	for _, snap := range ctl.Registry.MembersOfRoom(roomID) {
		ctl.sendJSON(snap.Conn, envelope{Type: event, Data: payload})
	}
}

func (ctl *SessionWSController) sendJSON(c core.SignalConnection, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("sendJSON marshal")
		return
	}
	if err := c.TrySend(b); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("frame dropped")
	}
}
