package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetMessageColor(t *testing.T) {
	assert.Equal(t, ColorBrightRed, GetMessageColor(MessageError))
	assert.Equal(t, ColorBrightGreen, GetMessageColor(MessageSuccess))
	assert.Equal(t, ColorBrightYellow, GetMessageColor(MessageWarning))
	assert.Equal(t, ColorBrightCyan, GetMessageColor(MessageInfo))
}

func TestDividerGlyph(t *testing.T) {
	assert.Equal(t, "│", DividerGlyph(true, false))
	assert.Equal(t, "┃", DividerGlyph(true, true))
	assert.Equal(t, "─", DividerGlyph(false, false))
	assert.Equal(t, "━", DividerGlyph(false, true))
}

func TestGetPanelBackground(t *testing.T) {
	assert.Equal(t, ColorPanelBackground, GetPanelBackground(0, false))
	assert.Equal(t, ColorPanelAltBackground, GetPanelBackground(1, false))
	assert.Equal(t, ColorPanelCollapsed, GetPanelBackground(1, true))
}
