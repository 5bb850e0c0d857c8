package tui

// Color constants for the daylist TUI theme (warm sand and brown)
const (
	// Base Colors
	ColorCardBackground = "#2A2118" // Dark brown card
	ColorBorder         = "#6B5428" // Brown border
	ColorBorderFocus    = "#B69F66" // Sand, focused element

	// Text Colors
	ColorPrimaryText   = "#F3E9D8" // Titles, user input
	ColorSecondaryText = "#CDBB98" // Descriptions, labels
	ColorDisabledText  = "#7D6E55" // Muted text
	ColorPlaceholder   = "#A8977A" // Input placeholders
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors
	ColorAccentMain   = "#B69F66" // Date button, headers
	ColorAccentBright = "#EAD0A8" // Highlights, selected row
	ColorLink         = "#4DA3FF" // Complete/Undo action

	// State Colors
	ColorError   = "#EF4444" // Validation alerts
	ColorSuccess = "#22C55E" // Completed tasks, confirmations
	ColorWarning = "#F59E0B" // Due today/tomorrow
)
