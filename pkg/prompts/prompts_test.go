package prompts

import (
	"reflect"
	"strings"
	"testing"
)

func TestBuildIntroduction(t *testing.T) {
	prompt, err := BuildIntroduction(IntroductionData{
		Character: "Name: Aria",
		World:     "A magical realm of dragons, wizards, and ancient mysteries.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"World Setting: A magical realm of dragons, wizards, and ancient mysteries.",
		"Player Character: Name: Aria",
		"Have the text be about 200 words, not more.",
		"4. [Type your own action]",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("introduction prompt missing %q", want)
		}
	}
}

func TestBuildTurn(t *testing.T) {
	prompt, err := BuildTurn(TurnData{
		GameState: "Location: Kingdom of Eldoria: Village of Riverdale",
		Character: "Name: Aria",
		World:     "A magical realm.",
		History:   "PLAYER: look around",
		UserInput: "enter the forest",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"You are the AI storyteller for an adventure game set in A magical realm.",
		"# Current Game State:\nLocation: Kingdom of Eldoria: Village of Riverdale",
		"# History:\nPLAYER: look around",
		"# User Action:\nenter the forest",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("turn prompt missing %q", want)
		}
	}
}

func TestExtractDescription(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "well formed response",
			text: "DESCRIPTION: You enter the forest.\n\nOPTIONS:\n1. Go deeper",
			want: "You enter the forest.",
		},
		{
			name: "no markers",
			text: "The model ignored the format entirely.",
			want: "The model ignored the format entirely.",
		},
		{
			name: "description without options",
			text: "DESCRIPTION: A quiet clearing.",
			want: "A quiet clearing.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractDescription(tt.text); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractOptions(t *testing.T) {
	text := `DESCRIPTION: You enter the forest.

OPTIONS:
1. Go deeper
2. Climb a tree
3. Turn back
4. [Type your own action]`

	got := ExtractOptions(text)
	want := []string{"Go deeper", "Climb a tree", "Turn back", "[Type your own action]"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestExtractOptionsFallback(t *testing.T) {
	if got := ExtractOptions("No structure at all."); !reflect.DeepEqual(got, DefaultOptions()) {
		t.Errorf("expected default options, got %v", got)
	}
	if got := ExtractOptions("OPTIONS:\nnothing numbered here"); !reflect.DeepEqual(got, DefaultOptions()) {
		t.Errorf("expected default options for unparseable block, got %v", got)
	}
}
