package theme

// Divider glyphs by group direction
const (
	DividerVertical       = "│"
	DividerVerticalBold   = "┃"
	DividerHorizontal     = "─"
	DividerHorizontalBold = "━"
)

// DividerGlyph returns the glyph drawn for a divider. Vertical dividers
// separate panels laid out side by side.
func DividerGlyph(vertical, emphasized bool) string {
	switch {
	case vertical && emphasized:
		return DividerVerticalBold
	case vertical:
		return DividerVertical
	case emphasized:
		return DividerHorizontalBold
	default:
		return DividerHorizontal
	}
}
