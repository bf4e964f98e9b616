package state

import (
	"strings"
	"testing"

	"github.com/oakmund/adventure-engine/pkg/character"
	"github.com/oakmund/adventure-engine/pkg/world"
)

func mustCharacter(t *testing.T) *character.Character {
	t.Helper()
	c, err := character.New("Aria", map[string]int{character.Strength: 5}, "a wandering bard")
	if err != nil {
		t.Fatalf("failed to create character: %v", err)
	}
	return c
}

func mustSetting(t *testing.T, key string) *world.Setting {
	t.Helper()
	w, err := world.NewSetting(key)
	if err != nil {
		t.Fatalf("failed to create world setting: %v", err)
	}
	return w
}

func TestNewGameState(t *testing.T) {
	gs := NewGameState(mustCharacter(t), mustSetting(t, "fantasy"))

	if gs.Health != 100 {
		t.Errorf("expected starting health 100, got %d", gs.Health)
	}
	if gs.Gold != 50 {
		t.Errorf("expected starting gold 50, got %d", gs.Gold)
	}
	if len(gs.Inventory) != 0 {
		t.Errorf("expected empty inventory, got %v", gs.Inventory)
	}
	if len(gs.History) != 0 {
		t.Errorf("expected empty history, got %v", gs.History)
	}
	if len(gs.ActiveNPCs) != 0 {
		t.Errorf("expected no active NPCs, got %v", gs.ActiveNPCs)
	}
	if gs.Location.Region != "Kingdom of Eldoria" || gs.Location.Area != "Village of Riverdale" {
		t.Errorf("unexpected fantasy starting location: %+v", gs.Location)
	}
}

func TestStartingLocation(t *testing.T) {
	tests := []struct {
		worldType world.Type
		region    string
		area      string
	}{
		{world.TypeFantasy, "Kingdom of Eldoria", "Village of Riverdale"},
		{world.TypeSpace, "Alpha Centauri System", "Your Spaceship Bridge"},
		{world.TypePirate, "Caribbean Sea", "Aboard the 'Sea Serpent'"},
		{world.TypeRegular, "Metropolis City", "Downtown Apartment"},
		{world.TypeHackathon, "Stockholm", "Modal Hackathon Venue"},
		{world.Type("unknown"), "Unknown", "Starting Area"},
	}

	for _, tt := range tests {
		t.Run(string(tt.worldType), func(t *testing.T) {
			loc := StartingLocation(tt.worldType)
			if loc.Region != tt.region || loc.Area != tt.area {
				t.Errorf("StartingLocation(%q) = %q: %q, want %q: %q",
					tt.worldType, loc.Region, loc.Area, tt.region, tt.area)
			}
			if loc.Description == "" {
				t.Error("expected non-empty location description")
			}
		})
	}
}

func TestInventory(t *testing.T) {
	gs := NewGameState(mustCharacter(t), mustSetting(t, "fantasy"))

	gs.AddToInventory("rusty sword")
	gs.AddToInventory("rope")
	gs.AddToInventory("rusty sword") // duplicates allowed

	if len(gs.Inventory) != 3 {
		t.Fatalf("expected 3 items, got %d", len(gs.Inventory))
	}

	if !gs.RemoveFromInventory("rusty sword") {
		t.Error("expected removal to succeed")
	}
	if len(gs.Inventory) != 2 {
		t.Errorf("expected 2 items after removal, got %d", len(gs.Inventory))
	}
	if gs.RemoveFromInventory("lantern") {
		t.Error("expected removal of unheld item to fail")
	}
}

func TestQuests(t *testing.T) {
	gs := NewGameState(mustCharacter(t), mustSetting(t, "fantasy"))

	gs.AddQuest("Find the lost amulet")
	if !gs.CompleteQuest("Find the lost amulet") {
		t.Error("expected quest completion to succeed")
	}
	if gs.CompleteQuest("Find the lost amulet") {
		t.Error("expected second completion to fail")
	}
	if gs.CompleteQuest("Slay the dragon") {
		t.Error("expected completion of unknown quest to fail")
	}
}

func TestHistory(t *testing.T) {
	gs := NewGameState(mustCharacter(t), mustSetting(t, "fantasy"))

	if got := gs.RecentHistory(5); got != "No history yet." {
		t.Errorf("expected empty-history sentinel, got %q", got)
	}

	gs.AddPlayerLine("look around")
	gs.AddStorytellerLine("You see a village square.")

	recent := gs.RecentHistory(5)
	if !strings.Contains(recent, "PLAYER: look around") {
		t.Errorf("expected tagged player line, got %q", recent)
	}
	if !strings.Contains(recent, "STORYTELLER: You see a village square.") {
		t.Errorf("expected tagged storyteller line, got %q", recent)
	}

	for i := 0; i < 10; i++ {
		gs.AddPlayerLine("wait")
	}

	lines := strings.Split(gs.RecentHistory(5), "\n")
	if len(lines) != 5 {
		t.Errorf("expected 5 lines in window, got %d", len(lines))
	}
	if len(gs.History) != 12 {
		t.Errorf("expected full history retained, got %d entries", len(gs.History))
	}
}

func TestHealthStatus(t *testing.T) {
	tests := []struct {
		health int
		want   string
	}{
		{100, "Healthy"},
		{71, "Healthy"},
		{70, "Injured"},
		{31, "Injured"},
		{30, "Critical"},
		{0, "Critical"},
	}

	gs := NewGameState(mustCharacter(t), mustSetting(t, "fantasy"))
	for _, tt := range tests {
		gs.Health = tt.health
		if got := gs.HealthStatus(); got != tt.want {
			t.Errorf("HealthStatus at %d = %q, want %q", tt.health, got, tt.want)
		}
	}
}

func TestStateDescription(t *testing.T) {
	gs := NewGameState(mustCharacter(t), mustSetting(t, "fantasy"))

	desc := gs.StateDescription()
	for _, want := range []string{
		"Location: Kingdom of Eldoria: Village of Riverdale",
		"Health: 100/100 (Healthy)",
		"Gold: 50",
		"Inventory (0 items): Empty",
		"No active quests.",
		"NPCs Present:\nNone",
	} {
		if !strings.Contains(desc, want) {
			t.Errorf("state description missing %q:\n%s", want, desc)
		}
	}

	gs.AddToInventory("rope")
	gs.AddQuest("Find the lost amulet")
	gs.AddQuest("Visit the castle")
	gs.CompleteQuest("Visit the castle")

	desc = gs.StateDescription()
	if !strings.Contains(desc, "Inventory (1 items): rope") {
		t.Errorf("expected inventory listing, got:\n%s", desc)
	}
	if !strings.Contains(desc, "⋯ Find the lost amulet") {
		t.Errorf("expected pending quest marker, got:\n%s", desc)
	}
	if !strings.Contains(desc, "✓ Visit the castle") {
		t.Errorf("expected completed quest marker, got:\n%s", desc)
	}
}

func TestInteractWithNPC(t *testing.T) {
	gs := NewGameState(mustCharacter(t), mustSetting(t, "fantasy"))

	gs.AddNPC("blacksmith", NPC{
		Name:        "Gorin",
		Description: "a burly blacksmith",
		Dialogue:    map[string]string{"default": "Need something forged?"},
		Disposition: 50,
	})

	if got := gs.InteractWithNPC("blacksmith", "talk"); got != "Need something forged?" {
		t.Errorf("expected default dialogue, got %q", got)
	}
	if got := gs.InteractWithNPC("blacksmith", "trade"); got != "You attempted to trade with Gorin." {
		t.Errorf("unexpected interaction result: %q", got)
	}
	if got := gs.InteractWithNPC("mayor", "talk"); got != "There is no one named mayor here." {
		t.Errorf("unexpected missing-NPC result: %q", got)
	}
}

type fixedLocator struct {
	ids []string
}

func (f fixedLocator) NPCsAt(loc Location) []string { return f.ids }

func TestChangeLocationUpdatesActiveNPCs(t *testing.T) {
	gs := NewGameState(mustCharacter(t), mustSetting(t, "fantasy"))

	gs.ChangeLocation("Arcane Isles", "Wizard's Academy", "")
	if gs.ActiveNPCs != nil {
		t.Errorf("expected no active NPCs without a locator, got %v", gs.ActiveNPCs)
	}

	gs.SetNPCLocator(fixedLocator{ids: []string{"archmage"}})
	gs.ChangeLocation("Arcane Isles", "Elemental Shrine", "")
	if len(gs.ActiveNPCs) != 1 || gs.ActiveNPCs[0] != "archmage" {
		t.Errorf("expected locator-driven active NPCs, got %v", gs.ActiveNPCs)
	}
}
