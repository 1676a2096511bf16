package domain

// Sheet is an opaque character document. The relay never validates its
// shape; clients own the schema.
type Sheet map[string]any

// NPCID identifies a master-created NPC document. Generated ids carry an
// "npc_" prefix so they can never collide with connection ids.
type NPCID string

// Summary is the derived status view of a sheet. Nil fields marshal to
// JSON null, which is how "absent" travels on the wire.
type Summary struct {
	HP   *float64 `json:"hp"`
	PD   *float64 `json:"pd"`
	Name *string  `json:"name"`
}
