package main

import (
	"bufio"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oakmund/adventure-engine/pkg/character"
)

type ConsoleConfig struct {
	APIBaseURL string
	Timeout    time.Duration
}

func main() {
	cfg := &ConsoleConfig{
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8080"),
		Timeout:    90 * time.Second,
	}

	client := &http.Client{
		Timeout: cfg.Timeout,
	}

	if !testConnection(client, cfg.APIBaseURL) {
		fmt.Fprintf(os.Stderr, "Could not connect to API. Please ensure the API is running.\n")
		os.Exit(1)
	}

	worlds, err := listWorlds(client, cfg.APIBaseURL)
	if err != nil || len(worlds) == 0 {
		fmt.Fprintf(os.Stderr, "Failed to list worlds: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Available Worlds:")
	for i, w := range worlds {
		fmt.Printf("  %d - %s: %s\n", i+1, w.Name, w.Description)
	}
	fmt.Print("\nSelect a world by number: ")

	var choice int
	if _, err := fmt.Scanf("%d\n", &choice); err != nil || choice < 1 || choice > len(worlds) {
		fmt.Fprintf(os.Stderr, "Invalid selection\n")
		os.Exit(1)
	}
	selectedWorld := worlds[choice-1]

	reader := bufio.NewReader(os.Stdin)

	name := promptLine(reader, "\nEnter your character's name: ")
	for name == "" {
		name = promptLine(reader, "Name cannot be empty. Enter your character's name: ")
	}

	description := promptLine(reader, "Describe your character in a sentence or two: ")

	fmt.Printf("\nDistribute %d points across your attributes (each 0-%d).\n",
		character.AttributeBudget, character.AttributeMax)
	attrs := allocateAttributes(reader)

	fmt.Println("\nCreating your adventure...")
	created, err := createGame(client, cfg.APIBaseURL, CreateGameRequest{
		World: selectedWorld.Key,
		Character: CharacterSpec{
			Name:        name,
			Attributes:  attrs,
			Description: description,
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create game: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(NewConsoleUI(cfg, client, created),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

// allocateAttributes walks the player through spending the point budget,
// one attribute at a time.
func allocateAttributes(reader *bufio.Reader) map[string]int {
	attrs := make(map[string]int, len(character.AttributeNames))
	remaining := character.AttributeBudget

	for i, attr := range character.AttributeNames {
		// The last attribute can take whatever fits of the remainder.
		max := character.AttributeMax
		if remaining < max {
			max = remaining
		}

		for {
			value := promptLine(reader, fmt.Sprintf("  %s (0-%d, %d points remaining): ", attr, max, remaining))
			n, err := strconv.Atoi(value)
			if err != nil || n < character.AttributeMin || n > max {
				fmt.Printf("  Enter a number between 0 and %d.\n", max)
				continue
			}
			attrs[attr] = n
			remaining -= n
			break
		}

		if remaining == 0 && i < len(character.AttributeNames)-1 {
			fmt.Println("  No points remaining; the rest default to 0.")
			break
		}
	}

	return attrs
}

func promptLine(reader *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
