package domain

import (
	"errors"
	"regexp"
	"strings"
)

const MaxRoomIDLen = 32

var ErrInvalidRoomID = errors.New("invalid room id")

var roomIDStrip = regexp.MustCompile(`[^A-Za-z0-9_-]`)

type RoomID string

// Room is one named play session: zero or one master, any number of
// players, their sheet documents, the room's NPCs and the roll log.
type Room struct {
	ID     RoomID
	Master ConnID // empty while the room has no master
	Users  map[ConnID]*UserInfo
	Sheets map[ConnID]Sheet
	NPCs   map[NPCID]Sheet
	Rolls  []RollEntry
}

// NewRoom avoids raw literals in the registry and keeps construction obvious.
func NewRoom(id RoomID) *Room {
	return &Room{
		ID:     id,
		Users:  make(map[ConnID]*UserInfo),
		Sheets: make(map[ConnID]Sheet),
		NPCs:   make(map[NPCID]Sheet),
	}
}

func (r *Room) HasMaster() bool { return r.Master != "" }

func (r *Room) Empty() bool { return len(r.Users) == 0 }

// SanitizeRoomID trims, truncates to MaxRoomIDLen and drops every
// character outside [A-Za-z0-9_-]. An id that ends up empty is invalid.
func SanitizeRoomID(raw string) (RoomID, error) {
	s := strings.TrimSpace(raw)
	if len(s) > MaxRoomIDLen {
		s = s[:MaxRoomIDLen]
	}
	s = roomIDStrip.ReplaceAllString(s, "")
	if s == "" {
		return "", ErrInvalidRoomID
	}
	return RoomID(s), nil
}
