package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Design System Constants
const (
	// Spacing units
	SpaceNone = 0
	SpaceXS   = 1
	SpaceSM   = 2
	SpaceMD   = 3
	SpaceLG   = 4

	// Tile geometry. A tile is a bordered cell with one letter inside.
	TileWidth  = 5
	TileHeight = 1
	TileGap    = 1

	// Below these dimensions the board is drawn in compact form.
	MinBoardWidth  = 40
	MinBoardHeight = 24
)

// Color Palette - Semantic colors with consistent light/dark mode support
var (
	ColorPrimary = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}

	// State Colors
	ColorSuccess = lipgloss.AdaptiveColor{
		Light: "#059669",
		Dark:  "#10B981",
	}
	ColorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#D97706",
		Dark:  "#F59E0B",
	}
	ColorInfo = lipgloss.AdaptiveColor{
		Light: "#2563EB",
		Dark:  "#3B82F6",
	}

	// Neutral Colors
	ColorBackground = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#0F0F0F",
	}
	ColorSurface = lipgloss.AdaptiveColor{
		Light: "#F9FAFB",
		Dark:  "#1A1A1A",
	}
	ColorSurfaceAlt = lipgloss.AdaptiveColor{
		Light: "#F3F4F6",
		Dark:  "#262626",
	}
	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#D1D5DB",
		Dark:  "#404040",
	}
	ColorBorderActive = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#A3A3A3",
	}

	// Text Colors
	ColorText = lipgloss.AdaptiveColor{
		Light: "#111827",
		Dark:  "#F9FAFB",
	}
	ColorTextSecondary = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}
	ColorTextMuted = lipgloss.AdaptiveColor{
		Light: "#9CA3AF",
		Dark:  "#6B7280",
	}
	ColorBackgroundOverlay = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#1E1E1E",
	}

	// Tile Colors
	ColorTileCorrect = lipgloss.AdaptiveColor{
		Light: "#6AAA64",
		Dark:  "#538D4E",
	}
	ColorTileClose = lipgloss.AdaptiveColor{
		Light: "#C9B458",
		Dark:  "#B59F3B",
	}
	ColorTileAbsent = lipgloss.AdaptiveColor{
		Light: "#787C7E",
		Dark:  "#3A3A3C",
	}
	ColorTileText = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#FFFFFF",
	}
)

// Base Styles
var (
	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	TextSecondaryStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary)

	TextSuccessStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Bold(true)

	TextErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)
)

// Tile Styles
var (
	// TileEmptyStyle is a blank cell or a typed letter that is not revealed.
	TileEmptyStyle = lipgloss.NewStyle().
			Width(TileWidth).
			Height(TileHeight).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(ColorText).
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder)

	TileFilledStyle = TileEmptyStyle.
			BorderForeground(ColorBorderActive)

	TileAbsentStyle = TileEmptyStyle.
			Foreground(ColorTileText).
			Background(ColorTileAbsent).
			BorderForeground(ColorTileAbsent)

	TileCloseStyle = TileEmptyStyle.
			Foreground(ColorTileText).
			Background(ColorTileClose).
			BorderForeground(ColorTileClose)

	TileCorrectStyle = TileEmptyStyle.
				Foreground(ColorTileText).
				Background(ColorTileCorrect).
				BorderForeground(ColorTileCorrect)

	// Compact tiles drop the border for small terminals.
	CompactTileStyle = lipgloss.NewStyle().
				Width(3).
				Align(lipgloss.Center).
				Bold(true)
)

// Component Styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Background(ColorSurface).
			Foreground(ColorText).
			Padding(0, SpaceSM).
			Width(100) // Will be overridden

	// Status Bar Styles
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorSurfaceAlt).
			Foreground(ColorText).
			Padding(0, SpaceSM).
			Height(1)

	StatusBarSuccessStyle = StatusBarStyle.
				Background(ColorSuccess).
				Foreground(ColorBackground)

	StatusBarErrorStyle = StatusBarStyle.
				Background(ColorError).
				Foreground(ColorBackground)

	StatusBarWarningStyle = StatusBarStyle.
				Background(ColorWarning).
				Foreground(ColorBackground)

	StatusBarInfoStyle = StatusBarStyle.
				Background(ColorInfo).
				Foreground(ColorBackground)

	// GameStatusStyle is the line under the board.
	GameStatusStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			MarginTop(SpaceXS)

	RestartHintStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)
)

// Overlay styles
var (
	HelpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1).
			Align(lipgloss.Center).
			Foreground(ColorText)

	CenteredOverlayContainerStyle = lipgloss.NewStyle().
					Border(lipgloss.RoundedBorder()).
					BorderForeground(ColorBorder).
					Background(ColorBackgroundOverlay).
					Foreground(ColorText).
					Padding(1, 2)

	LogOverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Background(ColorBackgroundOverlay).
			Foreground(ColorText).
			Padding(1, 2)

	LogPanelTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				MarginBottom(1).
				Foreground(ColorText)

	ErrorPanelStyle = CenteredOverlayContainerStyle.
			BorderForeground(ColorError)
)

// Log level styles
var (
	LogInfoStyle  = lipgloss.NewStyle().Foreground(ColorText)
	LogWarnStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	LogErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	LogDebugStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
)

// Layout Helpers
func CenterHorizontal(width int, content string) string {
	contentWidth := lipgloss.Width(content)
	if contentWidth >= width {
		return content
	}
	padding := (width - contentWidth) / 2
	return lipgloss.NewStyle().
		PaddingLeft(padding).
		Width(width).
		Render(content)
}
