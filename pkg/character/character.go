package character

import (
	"fmt"
	"sort"
	"strings"
)

// Attribute names form a closed set. Unknown keys are rejected at
// construction rather than silently ignored on lookup.
const (
	Strength     = "strength"
	Intelligence = "intelligence"
	Dexterity    = "dexterity"
	Charisma     = "charisma"
	Luck         = "luck"
)

// AttributeNames lists the valid attributes in display order.
var AttributeNames = []string{Strength, Intelligence, Dexterity, Charisma, Luck}

const (
	AttributeMin = 0
	AttributeMax = 10

	// AttributeBudget is the total points available at character creation.
	// Enforced by transports, not by New.
	AttributeBudget = 20

	// ExperiencePerLevel is the XP required per level beyond the first.
	ExperiencePerLevel = 100
)

// TotalPoints sums the attribute values in attrs, ignoring unknown keys.
func TotalPoints(attrs map[string]int) int {
	total := 0
	for k, v := range attrs {
		if isValidAttribute(strings.ToLower(strings.TrimSpace(k))) {
			total += v
		}
	}
	return total
}

// Character is the player character: a name, the five core attributes,
// a free-text description, and slowly-accumulating level/XP/skills.
type Character struct {
	Name        string         `json:"name"`
	Attributes  map[string]int `json:"attributes"`
	Description string         `json:"description"`
	Level       int            `json:"level"`
	Experience  int            `json:"experience"`
	Skills      map[string]int `json:"skills,omitempty"`
}

// New creates a character. Every key in attrs must be one of the five
// attribute names, and every value must lie in [AttributeMin, AttributeMax].
// Attributes not present in attrs default to zero.
func New(name string, attrs map[string]int, description string) (*Character, error) {
	c := &Character{
		Name:        name,
		Attributes:  make(map[string]int, len(AttributeNames)),
		Description: description,
		Level:       1,
		Experience:  0,
		Skills:      make(map[string]int),
	}

	for _, attr := range AttributeNames {
		c.Attributes[attr] = 0
	}

	for k, v := range attrs {
		key := strings.ToLower(strings.TrimSpace(k))
		if !isValidAttribute(key) {
			return nil, fmt.Errorf("unknown attribute: %s", k)
		}
		if v < AttributeMin || v > AttributeMax {
			return nil, fmt.Errorf("attribute %s out of range: %d", key, v)
		}
		c.Attributes[key] = v
	}

	return c, nil
}

func isValidAttribute(name string) bool {
	for _, attr := range AttributeNames {
		if attr == name {
			return true
		}
	}
	return false
}

// Attribute returns the value of the named attribute, or 0 if unknown.
func (c *Character) Attribute(name string) int {
	return c.Attributes[strings.ToLower(name)]
}

// ModifyAttribute adds delta to the named attribute, clamping the result
// to [AttributeMin, AttributeMax]. Returns false for unknown attributes.
func (c *Character) ModifyAttribute(name string, delta int) bool {
	key := strings.ToLower(name)
	if !isValidAttribute(key) {
		return false
	}
	v := c.Attributes[key] + delta
	if v < AttributeMin {
		v = AttributeMin
	}
	if v > AttributeMax {
		v = AttributeMax
	}
	c.Attributes[key] = v
	return true
}

// AddSkill adds a new skill or replaces the level of an existing one.
func (c *Character) AddSkill(name string, level int) {
	if c.Skills == nil {
		c.Skills = make(map[string]int)
	}
	c.Skills[name] = level
}

// GainExperience adds XP and recomputes the level. It returns true when
// the character advanced at least one level.
func (c *Character) GainExperience(amount int) bool {
	if amount < 0 {
		amount = 0
	}
	c.Experience += amount

	newLevel := 1 + c.Experience/ExperiencePerLevel
	if newLevel > c.Level {
		c.Level = newLevel
		return true
	}
	return false
}

// Summary renders the character sheet used in storyteller prompts.
func (c *Character) Summary() string {
	attrParts := make([]string, 0, len(AttributeNames))
	for _, attr := range AttributeNames {
		attrParts = append(attrParts, fmt.Sprintf("%s: %d", titleCase(attr), c.Attributes[attr]))
	}

	skills := "None"
	if len(c.Skills) > 0 {
		names := make([]string, 0, len(c.Skills))
		for name := range c.Skills {
			names = append(names, name)
		}
		sort.Strings(names)
		parts := make([]string, 0, len(names))
		for _, name := range names {
			parts = append(parts, fmt.Sprintf("%s (Lv.%d)", name, c.Skills[name]))
		}
		skills = strings.Join(parts, ", ")
	}

	return fmt.Sprintf(`Name: %s
Level: %d (XP: %d)

Attributes: %s

Description: %s

Skills: %s`,
		c.Name, c.Level, c.Experience,
		strings.Join(attrParts, ", "),
		c.Description,
		skills)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
