package domain

import "time"

// MaxRollHistory caps the per-room roll log; the oldest entry is evicted
// once the cap is reached.
const MaxRollHistory = 50

// RollActor snapshots who rolled at the moment of the roll. The name and
// role are copied, not referenced, so later renames don't rewrite history.
type RollActor struct {
	ConnID ConnID `json:"connId"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
}

// RollEntry is immutable once appended.
type RollEntry struct {
	RoomID  RoomID    `json:"roomId"`
	From    RollActor `json:"from"`
	Payload any       `json:"payload"`
	At      time.Time `json:"at"`
}
