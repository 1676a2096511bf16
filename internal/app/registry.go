package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/okuren/Tavern/internal/core"
	"github.com/okuren/Tavern/internal/domain"
)

type sessionEntry struct {
	RoomID domain.RoomID
	Conn   core.SignalConnection
	Cancel context.CancelFunc
}

// Registry tracks live connections and the room each one is bound to.
// The RoomID field is the reverse index that lets disconnect handling
// find a connection's room without scanning the room table.
type Registry struct {
	mu       sync.RWMutex
	sessions map[domain.ConnID]*sessionEntry
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[domain.ConnID]*sessionEntry)}
}

// BindSignal binds a connection under its id. A second socket arriving
// under the same id (second tab, overlapping reconnect) replaces the old
// one: the room binding carries over and the stale connection is retired,
// so the later teardown of the old socket cannot evict the live session.
func (r *Registry) BindSignal(id domain.ConnID, conn core.SignalConnection, cancel context.CancelFunc) {
	r.mu.Lock()
	old, replaced := r.sessions[id]
	entry := &sessionEntry{Conn: conn, Cancel: cancel}
	if replaced {
		entry.RoomID = old.RoomID
	}
	r.sessions[id] = entry
	r.mu.Unlock()

	if replaced {
		if old.Cancel != nil {
			old.Cancel()
		}
		if old.Conn != nil {
			old.Conn.Close()
		}
		log.Info().Str("module", "app.registry").Str("conn", string(id)).Str("room", string(old.RoomID)).Msg("rebound signal, retired old connection")
		return
	}
	log.Info().Str("module", "app.registry").Str("conn", string(id)).Msg("bound signal")
}

// Owns reports whether conn is still the connection bound under id.
// Stale sockets use this to tell a real disconnect from a takeover.
func (r *Registry) Owns(id domain.ConnID, conn core.SignalConnection) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.sessions[id]
	return ok && e.Conn == conn
}

func (r *Registry) GetConn(id domain.ConnID) (core.SignalConnection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.sessions[id]; ok && e.Conn != nil {
		return e.Conn, true
	}
	return nil, false
}

func (r *Registry) Unbind(id domain.ConnID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	log.Info().Str("module", "app.registry").Str("conn", string(id)).Msg("unbind session")
}

// RoomOf reports the room the connection is currently bound to, if any.
func (r *Registry) RoomOf(id domain.ConnID) (domain.RoomID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.sessions[id]
	if !ok || e.RoomID == "" {
		return "", false
	}
	return e.RoomID, true
}

func (r *Registry) UpdateRoom(id domain.ConnID, roomID domain.RoomID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[id]
	if !ok {
		return false
	}
	e.RoomID = roomID
	log.Info().Str("module", "app.registry").Str("conn", string(id)).Str("room", string(roomID)).Msg("updated room")
	return true
}

func (r *Registry) RemoveRoom(id domain.ConnID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.sessions[id]; ok {
		e.RoomID = ""
	}
	log.Info().Str("module", "app.registry").Str("conn", string(id)).Msg("removed room association")
}

type MemberSnap struct {
	ID   domain.ConnID
	Conn core.SignalConnection
}

func (r *Registry) MembersOfRoom(roomID domain.RoomID) []MemberSnap {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]MemberSnap, 0, len(r.sessions))
	for id, e := range r.sessions {
		if e.RoomID == roomID && e.Conn != nil {
			out = append(out, MemberSnap{ID: id, Conn: e.Conn})
		}
	}
	return out
}

// Cancel fires the session's cancel func, which tears down its pumps.
func (r *Registry) Cancel(id domain.ConnID) bool {
	r.mu.RLock()
	e, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	if e.Cancel != nil {
		e.Cancel()
	}
	log.Info().Str("module", "app.registry").Str("conn", string(id)).Msg("canceled session")
	return true
}
