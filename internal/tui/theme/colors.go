package theme

// Terminal-compatible color constants using ANSI standard colors
// These colors work consistently across different terminal themes
const (
	// Primary colors (ANSI standard)
	ColorWhite        = "#FFFFFF" // ANSI 15 - primary text
	ColorBrightBlack  = "#808080" // ANSI 8 - secondary text
	ColorBrightBlue   = "#5C7CFA" // ANSI 12 - primary accent
	ColorBrightCyan   = "#22B8CF" // ANSI 14 - secondary accent
	ColorBrightGreen  = "#51CF66" // ANSI 10 - success
	ColorBrightYellow = "#FFD43B" // ANSI 11 - warning
	ColorBrightRed    = "#FF6B6B" // ANSI 9 - error

	// Panel colors
	ColorPanelBackground    = "#1A1B26"
	ColorPanelAltBackground = "#24283B"
	ColorPanelCollapsed     = "#3B3F51"
	ColorDivider            = "#565F89"
	ColorDividerFocused     = ColorBrightBlue
	ColorDividerDragging    = ColorBrightCyan
	ColorDividerLimit       = ColorBrightRed
)

// Message types, in the order used by the status line
const (
	MessageInfo = iota
	MessageSuccess
	MessageWarning
	MessageError
)

// GetMessageColor returns the color for a given message type
func GetMessageColor(messageType int) string {
	switch messageType {
	case MessageError:
		return ColorBrightRed
	case MessageSuccess:
		return ColorBrightGreen
	case MessageWarning:
		return ColorBrightYellow
	default: // MessageInfo
		return ColorBrightCyan
	}
}

// GetMessageIcon returns the icon for a given message type
func GetMessageIcon(messageType int) string {
	switch messageType {
	case MessageError:
		return "✗"
	case MessageSuccess:
		return "✓"
	case MessageWarning:
		return "!"
	default: // MessageInfo
		return "i"
	}
}

// GetPanelBackground alternates panel backgrounds so neighbors stay distinguishable
func GetPanelBackground(index int, collapsed bool) string {
	if collapsed {
		return ColorPanelCollapsed
	}
	if index%2 == 1 {
		return ColorPanelAltBackground
	}
	return ColorPanelBackground
}
