package state

import (
	"reflect"
	"testing"
)

func TestSnapshotRestore(t *testing.T) {
	gs := NewGameState(mustCharacter(t), mustSetting(t, "fantasy"))
	gs.AddToInventory("rope")
	gs.AddPlayerLine("look around")
	gs.AddStorytellerLine("You see a village square.")
	gs.Health = 65
	gs.Gold = 120
	gs.ChangeLocation("Arcane Isles", "Whispering Beach", "")

	snap := gs.Snapshot()

	restored := NewGameState(mustCharacter(t), mustSetting(t, "fantasy"))
	restored.Restore(snap)

	if !reflect.DeepEqual(restored.Inventory, gs.Inventory) {
		t.Errorf("inventory mismatch: %v vs %v", restored.Inventory, gs.Inventory)
	}
	if !reflect.DeepEqual(restored.History, gs.History) {
		t.Errorf("history mismatch: %v vs %v", restored.History, gs.History)
	}
	if restored.Location != gs.Location {
		t.Errorf("location mismatch: %+v vs %+v", restored.Location, gs.Location)
	}
	if restored.Health != 65 || restored.Gold != 120 {
		t.Errorf("health/gold mismatch: %d/%d", restored.Health, restored.Gold)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	gs := NewGameState(mustCharacter(t), mustSetting(t, "fantasy"))
	gs.AddToInventory("rope")

	snap := gs.Snapshot()
	gs.AddToInventory("lantern")
	gs.AddPlayerLine("wait")

	if len(snap.Inventory) != 1 {
		t.Errorf("expected snapshot unaffected by later mutation, got %v", snap.Inventory)
	}
	if len(snap.History) != 0 {
		t.Errorf("expected snapshot history unaffected, got %v", snap.History)
	}
}

func TestRestoreClampsHealth(t *testing.T) {
	gs := NewGameState(mustCharacter(t), mustSetting(t, "fantasy"))

	gs.Restore(Snapshot{Health: 250, Gold: 10})
	if gs.Health != MaxHealth {
		t.Errorf("expected health clamped to %d, got %d", MaxHealth, gs.Health)
	}

	gs.Restore(Snapshot{Health: -30})
	if gs.Health != MinHealth {
		t.Errorf("expected health clamped to %d, got %d", MinHealth, gs.Health)
	}
}
