package tui

import "github.com/charmbracelet/lipgloss"

// Color palette matching the fatih/color usage in CLI output
var (
	// ColorSage for branding, active tabs and the cursor
	ColorSage = lipgloss.AdaptiveColor{Light: "#44705A", Dark: "#9CC7AD"}

	// ColorSageDim for badge backgrounds
	ColorSageDim = lipgloss.AdaptiveColor{Light: "#DCEBE1", Dark: "#23392D"}

	// ColorCyan for tags and metadata
	ColorCyan = lipgloss.AdaptiveColor{Light: "#00AFAF", Dark: "#00D7D7"}

	// ColorWhite for primary text
	ColorWhite = lipgloss.AdaptiveColor{Light: "#262626", Dark: "#FFFFFF"}

	// ColorGray for secondary text and help
	ColorGray = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#808080"}

	// ColorYellow for highlights
	ColorYellow = lipgloss.AdaptiveColor{Light: "#D7AF00", Dark: "#FFD700"}

	// ColorRed for load failures
	ColorRed = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}
)

// Reusable styles
var (
	StyleNormal = lipgloss.NewStyle().Foreground(ColorWhite)

	// StyleHighlight is for the selected row and active shortcuts
	StyleHighlight = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	StyleTag = lipgloss.NewStyle().Foreground(ColorCyan)

	StyleHelp = lipgloss.NewStyle().Foreground(ColorGray)

	StyleError = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)

	// StyleHeader is for section headers
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	StyleBrand = lipgloss.NewStyle().
			Foreground(ColorSage).
			Bold(true)

	StyleBadge = lipgloss.NewStyle().
			Background(ColorSageDim).
			Foreground(ColorSage).
			Padding(0, 1)

	StyleTabActive = lipgloss.NewStyle().
			Foreground(ColorSage).
			Bold(true).
			Underline(true)

	StyleTabInactive = lipgloss.NewStyle().Foreground(ColorGray)

	// StyleBorder is for borders and separators
	StyleBorder = lipgloss.NewStyle().
			Foreground(ColorGray).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray)

	// StyleOverlay frames the detail view
	StyleOverlay = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorSage).
			Padding(1, 2)
)
