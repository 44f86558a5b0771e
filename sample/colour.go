package sample

import (
	"fmt"
	"strings"
)

// Colour is a favourite colour. The zero value means no colour was chosen.
type Colour int

const (
	NoColour Colour = iota
	Red
	Green
	Blue
	Purple
)

var colourNames = map[Colour]string{
	Red:    "RED",
	Green:  "GREEN",
	Blue:   "BLUE",
	Purple: "PURPLE",
}

func (c Colour) String() string {
	if name, ok := colourNames[c]; ok {
		return name
	}
	if c == NoColour {
		return ""
	}
	return fmt.Sprintf("Colour(%d)", int(c))
}

// ParseColour returns the Colour with the given name, ignoring case.
func ParseColour(name string) (Colour, error) {
	for c, n := range colourNames {
		if strings.EqualFold(n, name) {
			return c, nil
		}
	}
	return NoColour, fmt.Errorf("unknown colour %q", name)
}
