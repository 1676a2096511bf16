package app

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/okuren/Tavern/internal/domain"
)

// RoomRegistry owns the room id -> state mapping for the process.
// Rooms exist only while they have at least one user.
type RoomRegistry struct {
	mu    sync.RWMutex
	rooms map[domain.RoomID]*domain.Room
}

func NewRoomRegistry() *RoomRegistry {
	return &RoomRegistry{rooms: make(map[domain.RoomID]*domain.Room)}
}

// Ensure returns the existing room or creates an empty one.
func (r *RoomRegistry) Ensure(id domain.RoomID) *domain.Room {
	r.mu.RLock()
	room, ok := r.rooms[id]
	r.mu.RUnlock()
	if ok {
		return room
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if room, ok = r.rooms[id]; ok {
		return room
	}
	room = domain.NewRoom(id)
	r.rooms[id] = room
	log.Info().Str("module", "app.rooms").Str("room", string(id)).Msg("created room")
	return room
}

// Get is a read-only lookup, it never creates.
func (r *RoomRegistry) Get(id domain.RoomID) (*domain.Room, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.rooms[id]
	return room, ok
}

// DeleteIfEmpty drops the room once its user set is empty and reports
// whether it did.
func (r *RoomRegistry) DeleteIfEmpty(id domain.RoomID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[id]
	if !ok || !room.Empty() {
		return false
	}
	delete(r.rooms, id)
	log.Info().Str("module", "app.rooms").Str("room", string(id)).Msg("room empty, deleted")
	return true
}

func (r *RoomRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}
