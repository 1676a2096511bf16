package app

import "github.com/okuren/Tavern/internal/domain"

// AppendRoll pushes entry onto the room's roll log; once the log is over
// MaxRollHistory the oldest entry is evicted. Appends happen one at a
// time, so a single eviction is always enough.
func AppendRoll(room *domain.Room, entry domain.RollEntry) {
	room.Rolls = append(room.Rolls, entry)
	if len(room.Rolls) > domain.MaxRollHistory {
		// shift in place so the backing array stays at capacity
		room.Rolls = append(room.Rolls[:0], room.Rolls[1:]...)
	}
}

// RollHistory returns a copy of the log, oldest first, detached from the
// room so callers can marshal it outside any lock.
func RollHistory(room *domain.Room) []domain.RollEntry {
	out := make([]domain.RollEntry, len(room.Rolls))
	copy(out, room.Rolls)
	return out
}
