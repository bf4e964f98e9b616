package prompts

import (
	"bytes"
	"text/template"
)

// IntroductionTemplate asks the model for the opening scene of a new game.
const IntroductionTemplate = `Create an engaging introduction for a game where:

World Setting: {{.World}}
Player Character: {{.Character}}

Create a vivid opening scene that:
1. Describes the world and immediate surroundings
2. Establishes the character's initial situation
3. Hints at possible adventures or challenges ahead
4. Ends with three specific choices the player can make

Have the text be about 200 words, not more.
Format your response as:
DESCRIPTION: [your detailed introduction here]

OPTIONS:
1. [option 1]
2. [option 2]
3. [option 3]
4. [Type your own action]`

// TurnTemplate is the storyteller prompt issued once per narrative turn.
const TurnTemplate = `You are the AI storyteller for an adventure game set in {{.World}}.

# Current Game State:
{{.GameState}}

# Character Information:
{{.Character}}

# History:
{{.History}}

# User Action:
{{.UserInput}}

Respond with:
1. A vivid description of what happens based on the user's action
2. Three specific choice options for the player
3. A reminder that they can also type a custom action

Format your response as:
DESCRIPTION: [your detailed narrative here]

OPTIONS:
1. [option 1]
2. [option 2]
3. [option 3]
4. [Type your own action]`

var (
	introTmpl = template.Must(template.New("introduction").Parse(IntroductionTemplate))
	turnTmpl  = template.Must(template.New("turn").Parse(TurnTemplate))
)

// IntroductionData fills the introduction prompt's slots.
type IntroductionData struct {
	Character string
	World     string
}

// TurnData fills the storyteller turn prompt's slots.
type TurnData struct {
	GameState string
	Character string
	World     string
	History   string
	UserInput string
}

// BuildIntroduction renders the introduction prompt.
func BuildIntroduction(data IntroductionData) (string, error) {
	var buf bytes.Buffer
	if err := introTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// BuildTurn renders the storyteller turn prompt.
func BuildTurn(data TurnData) (string, error) {
	var buf bytes.Buffer
	if err := turnTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
