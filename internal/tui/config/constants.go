package config

// Layout constants
const (
	// Rows above and below the panel area
	HeaderHeight = 1
	FooterHeight = 2

	// Smallest panel area drawn
	MinContentWidth  = 10
	MinContentHeight = 3

	// Help dialog dimensions
	HelpDialogWidth  = 60
	DialogMarginSize = 4

	// Size label precision, in decimals
	SizeLabelDecimals = 1
)
