package state

import (
	"regexp"
	"strconv"
	"strings"
)

// A Directive is a structured instruction embedded in otherwise free-text
// model output, recognized by a fixed literal prefix. Model output is
// untrusted: anything that doesn't match a known pattern is ignored, and
// a response carrying no directives at all is the normal case.
type Directive interface {
	isDirective()
}

// LocationChange moves the player to a new region/area.
type LocationChange struct {
	Region string
	Area   string
}

// InventoryAdd appends an item to the player's inventory.
type InventoryAdd struct {
	Item string
}

// HealthChange adds a signed delta to the player's health.
type HealthChange struct {
	Delta int
}

func (LocationChange) isDirective() {}
func (InventoryAdd) isDirective()   {}
func (HealthChange) isDirective()   {}

var (
	locationChangeRe = regexp.MustCompile(`LOCATION_CHANGE: ([^:\n]+):([^\n]+)`)
	inventoryAddRe   = regexp.MustCompile(`INVENTORY_ADD: ([^\n]+)`)
	healthChangeRe   = regexp.MustCompile(`HEALTH_CHANGE: ([+-]\d+)`)
)

// ExtractLocationChange returns the first LOCATION_CHANGE directive in the
// text, if any.
func ExtractLocationChange(text string) (LocationChange, bool) {
	m := locationChangeRe.FindStringSubmatch(text)
	if m == nil {
		return LocationChange{}, false
	}
	return LocationChange{
		Region: strings.TrimSpace(m[1]),
		Area:   strings.TrimSpace(m[2]),
	}, true
}

// ExtractInventoryAdd returns the first INVENTORY_ADD directive in the
// text, if any.
func ExtractInventoryAdd(text string) (InventoryAdd, bool) {
	m := inventoryAddRe.FindStringSubmatch(text)
	if m == nil {
		return InventoryAdd{}, false
	}
	return InventoryAdd{Item: strings.TrimSpace(m[1])}, true
}

// ExtractHealthChange returns the first HEALTH_CHANGE directive in the
// text, if any. The value must be a signed integer; anything else fails
// the pattern and is ignored.
func ExtractHealthChange(text string) (HealthChange, bool) {
	m := healthChangeRe.FindStringSubmatch(text)
	if m == nil {
		return HealthChange{}, false
	}
	delta, err := strconv.Atoi(m[1])
	if err != nil {
		return HealthChange{}, false
	}
	return HealthChange{Delta: delta}, true
}

// ExtractDirectives scans a model response for all known directive kinds.
// Only the first instance of each kind is honored per response.
func ExtractDirectives(text string) []Directive {
	var out []Directive
	if d, ok := ExtractLocationChange(text); ok {
		out = append(out, d)
	}
	if d, ok := ExtractInventoryAdd(text); ok {
		out = append(out, d)
	}
	if d, ok := ExtractHealthChange(text); ok {
		out = append(out, d)
	}
	return out
}

// Apply mutates the game state according to one directive.
func (gs *GameState) Apply(d Directive) {
	switch d := d.(type) {
	case LocationChange:
		gs.ChangeLocation(d.Region, d.Area, "")
	case InventoryAdd:
		gs.AddToInventory(d.Item)
	case HealthChange:
		gs.Health += d.Delta
		if gs.Health > MaxHealth {
			gs.Health = MaxHealth
		}
		if gs.Health < MinHealth {
			gs.Health = MinHealth
		}
	}
}

// ApplyResponse extracts and applies every directive embedded in a
// storyteller response.
func (gs *GameState) ApplyResponse(text string) {
	for _, d := range ExtractDirectives(text) {
		gs.Apply(d)
	}
}
