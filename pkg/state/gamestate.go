package state

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/oakmund/adventure-engine/pkg/character"
	"github.com/oakmund/adventure-engine/pkg/world"
)

// Location is where the player currently is. The parser can set an
// arbitrary region/area pair extracted from model output; nothing ties a
// Location to the world catalog.
type Location struct {
	Region      string `json:"region"`
	Area        string `json:"area"`
	Description string `json:"description,omitempty"`
}

func (l Location) String() string {
	return l.Region + ": " + l.Area
}

// NPC is a non-player character in the game world.
type NPC struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Dialogue    map[string]string `json:"dialogue,omitempty"`
	Disposition int               `json:"disposition"` // 0-100, 50 is neutral
}

// Quest is one entry in the quest log.
type Quest struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// History line tags. Every history entry starts with one of these.
const (
	SpeakerPlayer      = "PLAYER"
	SpeakerStoryteller = "STORYTELLER"
)

const (
	MaxHealth = 100
	MinHealth = 0

	startingHealth = 100
	startingGold   = 50
)

// NPCLocator computes which NPC ids are present at a location. No rule
// exists yet; ChangeLocation always recomputes through this seam so a
// future membership policy only needs to implement the interface.
type NPCLocator interface {
	NPCsAt(loc Location) []string
}

// GameState is the mutable per-session record: location, inventory, gold,
// health, quest log, NPC registry, and an append-only history log. The
// character and world setting are shared references, not owned.
type GameState struct {
	ID        uuid.UUID `json:"id"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`

	Character *character.Character `json:"character,omitempty"`
	World     *world.Setting       `json:"world,omitempty"`

	Location   Location       `json:"location"`
	Inventory  []string       `json:"inventory"`
	QuestLog   []Quest        `json:"quest_log,omitempty"`
	History    []string       `json:"history"`
	Health     int            `json:"health"`
	Gold       int            `json:"gold"`
	NPCs       map[string]NPC `json:"npcs,omitempty"`
	ActiveNPCs []string       `json:"active_npcs,omitempty"`

	locator NPCLocator
}

// NewGameState creates the session record for a character in a world.
// The starting location derives purely from the world type.
func NewGameState(c *character.Character, w *world.Setting) *GameState {
	gs := &GameState{
		ID:        uuid.New(),
		Character: c,
		World:     w,
		Inventory: make([]string, 0),
		QuestLog:  make([]Quest, 0),
		History:   make([]string, 0),
		Health:    startingHealth,
		Gold:      startingGold,
		NPCs:      make(map[string]NPC),
	}
	if w != nil {
		gs.Location = StartingLocation(w.Type)
	} else {
		gs.Location = StartingLocation("")
	}
	return gs
}

// StartingLocation is the fixed per-world-type starting point. Unknown
// types fall back to a generic starting area.
func StartingLocation(t world.Type) Location {
	switch t {
	case world.TypeFantasy:
		return Location{
			Region:      "Kingdom of Eldoria",
			Area:        "Village of Riverdale",
			Description: "A peaceful village nestled between rolling hills and a serene river.",
		}
	case world.TypeSpace:
		return Location{
			Region:      "Alpha Centauri System",
			Area:        "Your Spaceship Bridge",
			Description: "The command center of your vessel, filled with blinking consoles and viewscreens.",
		}
	case world.TypePirate:
		return Location{
			Region:      "Caribbean Sea",
			Area:        "Aboard the 'Sea Serpent'",
			Description: "The deck of your ship sways gently as waves lap against its hull.",
		}
	case world.TypeRegular:
		return Location{
			Region:      "Metropolis City",
			Area:        "Downtown Apartment",
			Description: "Your modest but comfortable living space in the heart of the city.",
		}
	case world.TypeHackathon:
		return Location{
			Region:      "Stockholm",
			Area:        "Modal Hackathon Venue",
			Description: "A buzzing space filled with developers, venture capitalists, and Modal staff.",
		}
	default:
		return Location{
			Region:      "Unknown",
			Area:        "Starting Area",
			Description: "A mysterious place where your adventure begins.",
		}
	}
}

// SetNPCLocator installs the active-NPC membership rule.
func (gs *GameState) SetNPCLocator(l NPCLocator) {
	gs.locator = l
}

// AddToInventory appends an item. Duplicates are allowed.
func (gs *GameState) AddToInventory(item string) {
	gs.Inventory = append(gs.Inventory, item)
}

// RemoveFromInventory removes the first matching item. Returns false if
// the item is not held.
func (gs *GameState) RemoveFromInventory(item string) bool {
	for i, held := range gs.Inventory {
		if held == item {
			gs.Inventory = append(gs.Inventory[:i], gs.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

// AddQuest appends a quest to the quest log.
func (gs *GameState) AddQuest(name string) {
	gs.QuestLog = append(gs.QuestLog, Quest{Name: name})
}

// CompleteQuest marks the first incomplete quest with the given name as
// completed. Returns false if no such quest exists.
func (gs *GameState) CompleteQuest(name string) bool {
	for i := range gs.QuestLog {
		if gs.QuestLog[i].Name == name && !gs.QuestLog[i].Completed {
			gs.QuestLog[i].Completed = true
			return true
		}
	}
	return false
}

// ChangeLocation replaces the current location and recomputes the
// active-NPC list.
func (gs *GameState) ChangeLocation(region, area, description string) {
	gs.Location = Location{Region: region, Area: area, Description: description}
	gs.updateActiveNPCs()
}

func (gs *GameState) updateActiveNPCs() {
	if gs.locator == nil {
		gs.ActiveNPCs = nil
		return
	}
	gs.ActiveNPCs = gs.locator.NPCsAt(gs.Location)
}

// AddNPC registers an NPC in the game world.
func (gs *GameState) AddNPC(id string, npc NPC) {
	if gs.NPCs == nil {
		gs.NPCs = make(map[string]NPC)
	}
	gs.NPCs[id] = npc
}

// InteractWithNPC performs a named interaction with a registered NPC and
// returns the resulting line of text.
func (gs *GameState) InteractWithNPC(id, interaction string) string {
	npc, ok := gs.NPCs[id]
	if !ok {
		return fmt.Sprintf("There is no one named %s here.", id)
	}
	if interaction == "talk" {
		if line, ok := npc.Dialogue["default"]; ok {
			return line
		}
	}
	return fmt.Sprintf("You attempted to %s with %s.", interaction, npc.Name)
}

// AddPlayerLine appends the player's input to history, tagged.
func (gs *GameState) AddPlayerLine(text string) {
	gs.History = append(gs.History, SpeakerPlayer+": "+text)
}

// AddStorytellerLine appends a storyteller response to history, tagged.
func (gs *GameState) AddStorytellerLine(text string) {
	gs.History = append(gs.History, SpeakerStoryteller+": "+text)
}

// RecentHistory returns the last count history lines joined by newlines,
// or the literal "No history yet." when history is empty. The window is a
// read-time slice; full history is retained for the session's lifetime.
func (gs *GameState) RecentHistory(count int) string {
	if len(gs.History) == 0 {
		return "No history yet."
	}
	start := len(gs.History) - count
	if start < 0 {
		start = 0
	}
	return strings.Join(gs.History[start:], "\n")
}

// HealthStatus is the three-tier qualitative health label.
func (gs *GameState) HealthStatus() string {
	switch {
	case gs.Health > 70:
		return "Healthy"
	case gs.Health > 30:
		return "Injured"
	default:
		return "Critical"
	}
}

// StateDescription renders the fixed-format game state summary used both
// in storyteller prompts and in the status command response.
func (gs *GameState) StateDescription() string {
	inventory := "Empty"
	if len(gs.Inventory) > 0 {
		inventory = strings.Join(gs.Inventory, ", ")
	}

	npcs := "None"
	if len(gs.ActiveNPCs) > 0 {
		npcs = strings.Join(gs.ActiveNPCs, ", ")
	}

	return fmt.Sprintf(`Location: %s
Health: %d/100 (%s)
Gold: %d

Inventory (%d items): %s

Active Quests:
%s

NPCs Present:
%s`,
		gs.Location, gs.Health, gs.HealthStatus(), gs.Gold,
		len(gs.Inventory), inventory,
		gs.formatQuests(),
		npcs)
}

func (gs *GameState) formatQuests() string {
	if len(gs.QuestLog) == 0 {
		return "No active quests."
	}
	lines := make([]string, 0, len(gs.QuestLog))
	for _, q := range gs.QuestLog {
		status := "⋯"
		if q.Completed {
			status = "✓"
		}
		lines = append(lines, status+" "+q.Name)
	}
	return strings.Join(lines, "\n")
}
