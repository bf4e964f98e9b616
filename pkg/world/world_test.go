package world

import "testing"

func TestParseType(t *testing.T) {
	for _, typ := range Types {
		parsed, err := ParseType(string(typ))
		if err != nil {
			t.Errorf("ParseType(%q) returned error: %v", typ, err)
		}
		if parsed != typ {
			t.Errorf("ParseType(%q) = %q", typ, parsed)
		}
	}

	if _, err := ParseType("underwater"); err == nil {
		t.Error("expected error for unknown world key")
	}
	if _, err := ParseType(""); err == nil {
		t.Error("expected error for empty world key")
	}
}

func TestNewSetting(t *testing.T) {
	for _, typ := range Types {
		s, err := NewSetting(string(typ))
		if err != nil {
			t.Fatalf("NewSetting(%q) returned error: %v", typ, err)
		}
		if s.Type != typ {
			t.Errorf("expected type %q, got %q", typ, s.Type)
		}
		if s.Description == "" {
			t.Errorf("world %q has empty description", typ)
		}
		if len(s.Regions) == 0 {
			t.Errorf("world %q has no regions", typ)
		}
		for name, region := range s.Regions {
			if len(region.Areas) == 0 {
				t.Errorf("world %q region %q has no areas", typ, name)
			}
		}
	}

	if _, err := NewSetting("underwater"); err == nil {
		t.Error("expected error for unknown world key")
	}
}

func TestIsValidLocation(t *testing.T) {
	s, err := NewSetting(string(TypeFantasy))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !s.IsValidLocation("Kingdom of Eldoria", "Village of Riverdale") {
		t.Error("expected the fantasy starting location to be valid")
	}
	if s.IsValidLocation("Kingdom of Eldoria", "Space Station") {
		t.Error("expected unknown area to be invalid")
	}
	if s.IsValidLocation("Atlantis", "Village of Riverdale") {
		t.Error("expected unknown region to be invalid")
	}
}

func TestRegionDescription(t *testing.T) {
	s, err := NewSetting(string(TypeFantasy))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if desc := s.RegionDescription("Atlantis"); desc != "Unknown region" {
		t.Errorf("expected unknown region fallback, got %q", desc)
	}
	if desc := s.RegionDescription("Kingdom of Eldoria"); desc == "Unknown region" || desc == "" {
		t.Errorf("expected real description for known region, got %q", desc)
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName(TypeFantasy); got != "Fantasy" {
		t.Errorf("expected Fantasy, got %q", got)
	}
	if got := DisplayName(TypeSpace); got != "Space" {
		t.Errorf("expected Space, got %q", got)
	}
}
