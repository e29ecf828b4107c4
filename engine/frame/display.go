package frame

import (
	"bytes"
	"strings"
)

// DisplayMode is a type for CSS property "display".
type DisplayMode uint16

// Flags for box context and display mode (outer and inner).
const (
	NoMode      DisplayMode = iota   // unset or error condition
	DisplayNone DisplayMode = 0x0001 // CSS outer display = none
	FlowMode    DisplayMode = 0x0002 // CSS inner display = flow
	BlockMode   DisplayMode = 0x0004 // CSS block context (inner or outer)
	InlineMode  DisplayMode = 0x0008 // CSS inline context
	AnonMode    DisplayMode = 0x0010 // anonymous block wrapping inline content
)

var allDisplayModes = []DisplayMode{
	DisplayNone, FlowMode, BlockMode, InlineMode, AnonMode,
}

var displayModeNames = map[DisplayMode]string{
	NoMode:      "NoMode",
	DisplayNone: "DisplayNone",
	FlowMode:    "FlowMode",
	BlockMode:   "BlockMode",
	InlineMode:  "InlineMode",
	AnonMode:    "AnonMode",
}

// Set sets a given atomic mode within this display mode.
func (disp *DisplayMode) Set(d DisplayMode) {
	*disp = (*disp) | d
}

// Contains checks if a display mode contains a given atomic mode.
// Returns false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return d != NoMode && (disp&d > 0)
}

// Overlaps returns true if a given display mode shares at least one atomic
// mode flag with disp (excluding NoMode).
func (disp DisplayMode) Overlaps(d DisplayMode) bool {
	for _, m := range allDisplayModes {
		if disp.Contains(m) && d.Contains(m) {
			return true
		}
	}
	return false
}

func (disp DisplayMode) String() string {
	if s, ok := displayModeNames[disp]; ok {
		return s
	}
	return disp.FullString()
}

// FullString returns all atomic modes set in a display mode.
func (disp DisplayMode) FullString() string {
	var b bytes.Buffer
	first := true
	for _, m := range allDisplayModes {
		if disp.Contains(m) {
			if !first {
				b.WriteString(" ")
			}
			first = false
			b.WriteString(displayModeNames[m])
		}
	}
	return b.String()
}

// Symbol returns a Unicode symbol for a mode.
func (disp DisplayMode) Symbol() string {
	if disp.Contains(AnonMode) {
		return "▢"
	} else if disp == FlowMode {
		return "▧"
	} else if disp.Contains(BlockMode) {
		return "▩"
	} else if disp.Contains(InlineMode) {
		return "►"
	}
	return "?"
}

// ParseDisplay returns the display mode for a value of CSS property `display`.
// `inline-block` is treated as inline, as atomic inlines are not supported.
// Unknown values result in NoMode.
func ParseDisplay(display string) DisplayMode {
	switch strings.TrimSpace(strings.ToLower(display)) {
	case "none":
		return DisplayNone
	case "block":
		return BlockMode | FlowMode
	case "inline", "inline-block":
		return InlineMode | FlowMode
	}
	return NoMode
}
