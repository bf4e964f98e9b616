package prompts

import "strings"

// The model is asked to answer in a DESCRIPTION/OPTIONS block format, but
// nothing guarantees it does. These helpers extract what they can and fall
// back gracefully when the format is absent.

const (
	descriptionMarker = "DESCRIPTION:"
	optionsMarker     = "OPTIONS:"
)

// DefaultOptions are offered when no OPTIONS block can be parsed from a
// response.
func DefaultOptions() []string {
	return []string{
		"Explore your surroundings",
		"Talk to someone nearby",
		"Check your inventory",
	}
}

// ExtractDescription returns the text between the DESCRIPTION and OPTIONS
// markers. When no DESCRIPTION marker exists, the entire response is
// treated as description text.
func ExtractDescription(text string) string {
	if !strings.Contains(text, descriptionMarker) {
		return text
	}
	desc := strings.SplitN(text, descriptionMarker, 2)[1]
	desc = strings.SplitN(desc, optionsMarker, 2)[0]
	return strings.TrimSpace(desc)
}

// ExtractOptions returns the numbered choices from the OPTIONS block.
// When none can be parsed, it returns DefaultOptions.
func ExtractOptions(text string) []string {
	var options []string

	if strings.Contains(text, optionsMarker) {
		section := strings.SplitN(text, optionsMarker, 2)[1]
		for _, line := range strings.Split(section, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			for i := 1; i <= 4; i++ {
				prefix := string(rune('0'+i)) + "."
				if strings.HasPrefix(line, prefix) {
					options = append(options, strings.TrimSpace(line[len(prefix):]))
					break
				}
			}
		}
	}

	if len(options) == 0 {
		return DefaultOptions()
	}
	return options
}
