package app

import (
	"testing"

	"github.com/okuren/Tavern/internal/core"
)

type stubConn struct {
	closed bool
}

func (s *stubConn) TrySend(core.Frame) error { return nil }
func (s *stubConn) Close()                   { s.closed = true }

func TestRegistryRoomReverseIndex(t *testing.T) {
	reg := NewRegistry()
	reg.BindSignal("c1", nil, nil)

	if _, ok := reg.RoomOf("c1"); ok {
		t.Fatalf("fresh session must not be bound to a room")
	}
	if !reg.UpdateRoom("c1", "tavern") {
		t.Fatalf("expected UpdateRoom to succeed for bound session")
	}
	roomID, ok := reg.RoomOf("c1")
	if !ok || roomID != "tavern" {
		t.Fatalf("expected room tavern, got %q ok=%v", roomID, ok)
	}

	reg.RemoveRoom("c1")
	if _, ok := reg.RoomOf("c1"); ok {
		t.Fatalf("room association must be gone after RemoveRoom")
	}
}

func TestRegistryUpdateRoomUnknownSession(t *testing.T) {
	reg := NewRegistry()
	if reg.UpdateRoom("ghost", "tavern") {
		t.Fatalf("UpdateRoom must fail for an unbound session")
	}
}

func TestBindSignalReplacementKeepsRoomAndRetiresOld(t *testing.T) {
	reg := NewRegistry()
	oldConn := &stubConn{}
	oldCanceled := false
	reg.BindSignal("c1", oldConn, func() { oldCanceled = true })
	reg.UpdateRoom("c1", "tavern")

	newConn := &stubConn{}
	reg.BindSignal("c1", newConn, nil)

	roomID, ok := reg.RoomOf("c1")
	if !ok || roomID != "tavern" {
		t.Fatalf("room binding must carry over on rebind, got %q ok=%v", roomID, ok)
	}
	if !oldConn.closed {
		t.Fatalf("old connection must be closed on rebind")
	}
	if !oldCanceled {
		t.Fatalf("old session context must be canceled on rebind")
	}
	if reg.Owns("c1", oldConn) {
		t.Fatalf("stale connection must not own the binding")
	}
	if !reg.Owns("c1", newConn) {
		t.Fatalf("replacement connection must own the binding")
	}
}

func TestRegistryOwnsUnknownSession(t *testing.T) {
	reg := NewRegistry()
	if reg.Owns("ghost", &stubConn{}) {
		t.Fatalf("unknown session must own nothing")
	}
}

func TestRegistryUnbind(t *testing.T) {
	reg := NewRegistry()
	reg.BindSignal("c1", nil, nil)
	reg.UpdateRoom("c1", "tavern")
	reg.Unbind("c1")
	if _, ok := reg.RoomOf("c1"); ok {
		t.Fatalf("unbound session still resolves a room")
	}
}
