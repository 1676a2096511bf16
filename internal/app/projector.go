package app

import (
	"github.com/spf13/cast"

	"github.com/okuren/Tavern/internal/core"
	"github.com/okuren/Tavern/internal/domain"
)

// ExtractSummary reads the optional status fields out of an opaque sheet:
// hp from hp_now, else resources.hp; pd likewise; the display name from
// name, else character.name. Empty strings count as absent, and numeric
// fields may arrive as strings ("12"), so values are coerced.
func ExtractSummary(doc domain.Sheet) domain.Summary {
	return domain.Summary{
		HP:   numField(doc, "hp_now", "resources", "hp"),
		PD:   numField(doc, "pd_now", "resources", "pd"),
		Name: strField(doc, "name", "character", "name"),
	}
}

func lookup(doc domain.Sheet, direct, nestKey, nestField string) (any, bool) {
	if v, ok := doc[direct]; ok && present(v) {
		return v, true
	}
	sub := cast.ToStringMap(doc[nestKey])
	if v, ok := sub[nestField]; ok && present(v) {
		return v, true
	}
	return nil, false
}

func present(v any) bool {
	if v == nil {
		return false
	}
	if s, ok := v.(string); ok && s == "" {
		return false
	}
	return true
}

func numField(doc domain.Sheet, direct, nestKey, nestField string) *float64 {
	v, ok := lookup(doc, direct, nestKey, nestField)
	if !ok {
		return nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return nil
	}
	return &f
}

func strField(doc domain.Sheet, direct, nestKey, nestField string) *string {
	v, ok := lookup(doc, direct, nestKey, nestField)
	if !ok {
		return nil
	}
	s := cast.ToString(v)
	if s == "" {
		return nil
	}
	return &s
}

// BuildIndex derives the master-only index: every player first (sheet
// summary when one exists, else the stored name with null stats), then
// every NPC. The result is only ever delivered to the room's master.
func BuildIndex(room *domain.Room) []core.IndexEntry {
	out := make([]core.IndexEntry, 0, len(room.Users)+len(room.NPCs))
	for id, u := range room.Users {
		if u.Role != domain.RolePlayer {
			continue
		}
		e := core.IndexEntry{ID: string(id), Type: core.IndexPlayer, Name: u.Name}
		if sheet, ok := room.Sheets[id]; ok {
			sum := ExtractSummary(sheet)
			e.HP, e.PD = sum.HP, sum.PD
			if sum.Name != nil {
				e.Name = *sum.Name
			}
		}
		out = append(out, e)
	}
	for id, npc := range room.NPCs {
		sum := ExtractSummary(npc)
		name := "NPC"
		if sum.Name != nil {
			name = *sum.Name
		}
		out = append(out, core.IndexEntry{ID: string(id), Type: core.IndexNpc, Name: name, HP: sum.HP, PD: sum.PD})
	}
	return out
}
