package state

// Snapshot is the session transfer shape used by stateless transports to
// carry a game across turns. Quest log and NPC registry are deliberately
// outside the shape and are dropped on restore.
type Snapshot struct {
	Inventory []string `json:"inventory"`
	Location  Location `json:"location"`
	Health    int      `json:"health"`
	Gold      int      `json:"gold"`
	History   []string `json:"history"`
}

// Snapshot captures the transferable fields of the game state.
func (gs *GameState) Snapshot() Snapshot {
	inv := make([]string, len(gs.Inventory))
	copy(inv, gs.Inventory)
	hist := make([]string, len(gs.History))
	copy(hist, gs.History)

	return Snapshot{
		Inventory: inv,
		Location:  gs.Location,
		Health:    gs.Health,
		Gold:      gs.Gold,
		History:   hist,
	}
}

// Restore overwrites the transferable fields from a snapshot. The health
// value is clamped into range; everything else is taken as-is.
func (gs *GameState) Restore(s Snapshot) {
	gs.Inventory = make([]string, len(s.Inventory))
	copy(gs.Inventory, s.Inventory)
	gs.History = make([]string, len(s.History))
	copy(gs.History, s.History)

	gs.Location = s.Location
	gs.Gold = s.Gold

	gs.Health = s.Health
	if gs.Health > MaxHealth {
		gs.Health = MaxHealth
	}
	if gs.Health < MinHealth {
		gs.Health = MinHealth
	}

	gs.updateActiveNPCs()
}
