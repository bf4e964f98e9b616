package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/oakmund/adventure-engine/pkg/character"
	"github.com/oakmund/adventure-engine/pkg/chat"
	"github.com/oakmund/adventure-engine/pkg/prompts"
	"github.com/oakmund/adventure-engine/pkg/state"
	"github.com/oakmund/adventure-engine/pkg/world"
)

var (
	// ErrMissingSetup is returned by Initialize when the world or
	// character has not been created yet.
	ErrMissingSetup = errors.New("character and world setting must be created before initializing the game")

	// ErrNotInitialized is returned by ProcessAction before Initialize
	// has run.
	ErrNotInitialized = errors.New("game is not initialized")
)

// historyWindow is how many trailing history lines go into each turn prompt.
const historyWindow = 5

// Storyteller generates narrative responses. It is satisfied by the LLM
// services in internal/services and by mocks in tests.
type Storyteller interface {
	GenerateResponse(ctx context.Context, messages []chat.ChatMessage) (*chat.ChatResponse, error)
}

// Game orchestrates one player's session: a character, a world setting,
// the game state, and the storyteller handle. One instance per session;
// no internal locking because each session owns its state exclusively.
type Game struct {
	llm    Storyteller
	logger *slog.Logger

	character *character.Character
	world     *world.Setting
	state     *state.GameState
}

// New creates an empty game bound to a storyteller.
func New(llm Storyteller, logger *slog.Logger) *Game {
	return &Game{
		llm:    llm,
		logger: logger,
	}
}

// Character returns the player character, or nil before creation.
func (g *Game) Character() *character.Character { return g.character }

// World returns the selected world setting, or nil before selection.
func (g *Game) World() *world.Setting { return g.world }

// State returns the game state, or nil before initialization.
func (g *Game) State() *state.GameState { return g.state }

// SelectWorld selects one of the fixed world settings by key.
func (g *Game) SelectWorld(key string) (*world.Setting, error) {
	w, err := world.NewSetting(key)
	if err != nil {
		return nil, err
	}
	g.world = w
	return w, nil
}

// CreateCharacter creates the player character. Attribute point budgets
// are a transport-layer concern; this validates only key names and ranges.
func (g *Game) CreateCharacter(name string, attrs map[string]int, description string) (*character.Character, error) {
	c, err := character.New(name, attrs, description)
	if err != nil {
		return nil, err
	}
	g.character = c
	return c, nil
}

// Initialize constructs the game state and generates the opening story.
// The full raw response is appended to history tagged STORYTELLER and
// returned verbatim.
func (g *Game) Initialize(ctx context.Context) (string, error) {
	if g.character == nil || g.world == nil {
		return "", ErrMissingSetup
	}

	g.state = state.NewGameState(g.character, g.world)

	prompt, err := prompts.BuildIntroduction(prompts.IntroductionData{
		Character: g.character.Summary(),
		World:     g.world.Description,
	})
	if err != nil {
		return "", fmt.Errorf("failed to build introduction prompt: %w", err)
	}

	resp, err := g.llm.GenerateResponse(ctx, []chat.ChatMessage{
		{Role: chat.ChatRoleUser, Content: prompt},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate introduction: %w", err)
	}

	g.state.AddStorytellerLine(resp.Message)
	return resp.Message, nil
}

// Rebuild reconstructs a game from a prior session's transferable state
// without re-running the introduction. Used by stateless transports that
// carry a snapshot between turns.
func (g *Game) Rebuild(worldKey string, c *character.Character, snap state.Snapshot) error {
	w, err := world.NewSetting(worldKey)
	if err != nil {
		return err
	}
	g.world = w
	g.character = c
	g.state = state.NewGameState(c, w)
	g.state.Restore(snap)
	return nil
}

// ProcessAction runs one turn. Recognized commands are answered from
// local state without a model call; anything else becomes a storyteller
// turn. On storyteller failure no history entries are appended, so the
// state stays consistent with the last completed turn.
func (g *Game) ProcessAction(ctx context.Context, input string) (string, error) {
	if g.state == nil {
		return "", ErrNotInitialized
	}

	switch command(input) {
	case cmdStatus:
		g.state.AddPlayerLine(input)
		resp := g.statusResponse()
		g.state.AddStorytellerLine(resp)
		return resp, nil

	case cmdInventory:
		g.state.AddPlayerLine(input)
		resp := g.inventoryResponse()
		g.state.AddStorytellerLine(resp)
		return resp, nil

	case cmdHelp:
		g.state.AddPlayerLine(input)
		g.state.AddStorytellerLine(helpResponse)
		return helpResponse, nil
	}

	prompt, err := prompts.BuildTurn(prompts.TurnData{
		GameState: g.state.StateDescription(),
		Character: g.character.Summary(),
		World:     g.world.Description,
		History:   g.state.RecentHistory(historyWindow),
		UserInput: input,
	})
	if err != nil {
		return "", fmt.Errorf("failed to build turn prompt: %w", err)
	}

	resp, err := g.llm.GenerateResponse(ctx, []chat.ChatMessage{
		{Role: chat.ChatRoleUser, Content: prompt},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}

	g.state.AddPlayerLine(input)
	g.state.AddStorytellerLine(resp.Message)
	g.state.ApplyResponse(resp.Message)

	if g.logger != nil {
		g.logger.Debug("Turn processed",
			"game_id", g.state.ID.String(),
			"location", g.state.Location.String(),
			"health", g.state.Health,
			"inventory_count", len(g.state.Inventory))
	}

	return resp.Message, nil
}

type commandType int

const (
	cmdNone commandType = iota
	cmdStatus
	cmdInventory
	cmdHelp
)

// command matches input against the fixed command sets. Matching is
// case-insensitive and exact: "status report" is not a command.
func command(input string) commandType {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "status", "stats", "state":
		return cmdStatus
	case "inventory", "items", "i":
		return cmdInventory
	case "help", "commands", "?":
		return cmdHelp
	default:
		return cmdNone
	}
}

func (g *Game) statusResponse() string {
	return fmt.Sprintf(`DESCRIPTION: Here's your current status:

%s

OPTIONS:
1. Continue your adventure
2. Check your inventory
3. Look around
4. [Type your own action]`, g.state.StateDescription())
}

func (g *Game) inventoryResponse() string {
	listing := "Your inventory is empty."
	if len(g.state.Inventory) > 0 {
		lines := make([]string, 0, len(g.state.Inventory))
		for _, item := range g.state.Inventory {
			lines = append(lines, "- "+item)
		}
		listing = strings.Join(lines, "\n")
	}

	return fmt.Sprintf(`DESCRIPTION: You check your belongings:

%s

OPTIONS:
1. Continue your adventure
2. Use an item
3. Look around
4. [Type your own action]`, listing)
}

const helpResponse = `DESCRIPTION: Available commands:

- status/stats - View your current game state
- inventory/items/i - View your inventory
- help/commands/? - Display this help message
- quit/exit - Exit the game

You can also type any action you want to perform.

OPTIONS:
1. Continue your adventure
2. Check your status
3. Check your inventory
4. [Type your own action]`
