package world

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Type tags one of the fixed world settings a game can be played in.
type Type string

const (
	TypeFantasy   Type = "fantasy"
	TypeSpace     Type = "space"
	TypePirate    Type = "pirate"
	TypeRegular   Type = "regular"
	TypeHackathon Type = "hackathon"
)

// Types lists the available world types in menu order.
var Types = []Type{TypeFantasy, TypeSpace, TypePirate, TypeRegular, TypeHackathon}

var descriptions = map[Type]string{
	TypeFantasy:   "A magical realm of dragons, wizards, and ancient mysteries.",
	TypeSpace:     "A futuristic universe where you navigate your spaceship through the stars.",
	TypePirate:    "A world of high seas adventures, buried treasures, and naval battles.",
	TypeRegular:   "A modern-day setting in a bustling city with everyday challenges.",
	TypeHackathon: "You are attending the Modal hackathon in Stockholm, hosted by venture capital firms and the cloud computing company.",
}

var titler = cases.Title(language.English)

// ParseType validates a world key against the fixed set.
func ParseType(key string) (Type, error) {
	t := Type(key)
	if _, ok := descriptions[t]; !ok {
		return "", fmt.Errorf("unknown world: %s", key)
	}
	return t, nil
}

// Description returns the one-line pitch for a world type, or "" if unknown.
func Description(t Type) string {
	return descriptions[t]
}

// DisplayName returns the menu-facing name for a world type.
func DisplayName(t Type) string {
	return titler.String(string(t))
}

// Descriptions returns a copy of the world key to description catalog.
func Descriptions() map[Type]string {
	out := make(map[Type]string, len(descriptions))
	for k, v := range descriptions {
		out[k] = v
	}
	return out
}

// Region is a named part of the world holding an ordered list of areas.
type Region struct {
	Description string   `json:"description"`
	Areas       []string `json:"areas"`
}

// Setting is the immutable region/area catalog for one world type,
// selected once at game start.
type Setting struct {
	Type        Type              `json:"world_type"`
	Description string            `json:"description"`
	Regions     map[string]Region `json:"regions"`
}

// NewSetting constructs the setting for a world key. It fails with a
// descriptive error when the key is not in the fixed world set.
func NewSetting(key string) (*Setting, error) {
	t, err := ParseType(key)
	if err != nil {
		return nil, err
	}
	return &Setting{
		Type:        t,
		Description: descriptions[t],
		Regions:     regionsFor(t),
	}, nil
}

// AreasInRegion returns the areas of a region, or nil for unknown regions.
func (s *Setting) AreasInRegion(region string) []string {
	if r, ok := s.Regions[region]; ok {
		return r.Areas
	}
	return nil
}

// RegionDescription returns the description of a region.
func (s *Setting) RegionDescription(region string) string {
	if r, ok := s.Regions[region]; ok {
		return r.Description
	}
	return "Unknown region"
}

// IsValidLocation reports whether the region/area pair appears in this
// world's catalog. The turn parser does not enforce this; it exists for
// transports that want to sanity-check model output.
func (s *Setting) IsValidLocation(region, area string) bool {
	r, ok := s.Regions[region]
	if !ok {
		return false
	}
	for _, a := range r.Areas {
		if a == area {
			return true
		}
	}
	return false
}

func regionsFor(t Type) map[string]Region {
	switch t {
	case TypeFantasy:
		return map[string]Region{
			"Kingdom of Eldoria": {
				Description: "A vast realm of rolling hills, dense forests, and ancient castles.",
				Areas: []string{
					"Village of Riverdale",
					"Drakenwood Forest",
					"Castle Eldoria",
					"Mountain Peaks",
					"Mystical Caves",
				},
			},
			"Arcane Isles": {
				Description: "A cluster of islands where magic flows freely and strange creatures abound.",
				Areas: []string{
					"Wizard's Academy",
					"Whispering Beach",
					"Elemental Shrine",
				},
			},
		}
	case TypeSpace:
		return map[string]Region{
			"Alpha Centauri System": {
				Description: "The closest star system to Earth, home to multiple habitable planets.",
				Areas: []string{
					"Your Spaceship Bridge",
					"Space Station Centauri",
					"Planet Proxima b",
				},
			},
			"Nebulon Cluster": {
				Description: "A distant region of space filled with colorful nebulae and strange phenomena.",
				Areas: []string{
					"Asteroid Belt",
					"Abandoned Research Facility",
					"Alien Trading Post",
				},
			},
		}
	case TypePirate:
		return map[string]Region{
			"Caribbean Sea": {
				Description: "Warm waters filled with islands, colonial outposts, and hidden treasures.",
				Areas: []string{
					"Aboard the 'Sea Serpent'",
					"Port Royal",
					"Skull Island",
					"Treasure Cove",
				},
			},
			"Mediterranean": {
				Description: "Ancient waters with rich history, powerful navies, and coastal fortresses.",
				Areas: []string{
					"Barbary Coast",
					"Merchant Shipping Lanes",
					"Naval Fortress",
				},
			},
		}
	case TypeRegular:
		return map[string]Region{
			"Metropolis City": {
				Description: "A bustling modern city with towering skyscrapers and busy streets.",
				Areas: []string{
					"Downtown Apartment",
					"Business District",
					"City Park",
					"Shopping Mall",
				},
			},
			"Countryside": {
				Description: "Peaceful rural areas surrounding the city, with farms and small towns.",
				Areas: []string{
					"Small Town",
					"Highway Rest Stop",
					"Hiking Trails",
				},
			},
		}
	case TypeHackathon:
		return map[string]Region{
			"Stockholm": {
				Description: "The beautiful capital of Sweden, hosting the Modal hackathon.",
				Areas: []string{
					"Modal Hackathon Venue",
					"Conference Rooms",
					"Networking Area",
					"Coffee Station",
					"Stockholm Old Town",
				},
			},
			"Virtual Space": {
				Description: "Online areas related to the hackathon experience.",
				Areas: []string{
					"Discord Server",
					"Project Repository",
					"Video Conference",
				},
			},
		}
	default:
		return map[string]Region{}
	}
}
