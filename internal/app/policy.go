package app

import "github.com/okuren/Tavern/internal/domain"

// AuthPolicy decides whether a connection may take master-only actions
// in a room (NPC mutation, foreign sheet edits, the summary index).
type AuthPolicy interface {
	IsMaster(room *domain.Room, id domain.ConnID) bool
}

type MasterPolicy struct{}

func (MasterPolicy) IsMaster(room *domain.Room, id domain.ConnID) bool {
	return room != nil && room.HasMaster() && room.Master == id
}
