package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette with light/dark mode support
var (
	ColorPrimary = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}
	ColorSuccess = lipgloss.AdaptiveColor{
		Light: "#059669",
		Dark:  "#10B981",
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#D97706",
		Dark:  "#F59E0B",
	}
	ColorInfo = lipgloss.AdaptiveColor{
		Light: "#2563EB",
		Dark:  "#3B82F6",
	}
	ColorText = lipgloss.AdaptiveColor{
		Light: "#111827",
		Dark:  "#F9FAFB",
	}
	ColorTextSecondary = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}
	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#E5E7EB",
		Dark:  "#404040",
	}
)

// Tree styles
var (
	RootStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SuiteStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	// SizeBranchStyle marks the per-size branches.
	SizeBranchStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	TestStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	KeyStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Italic(true)

	CountStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	EnumeratorStyle = lipgloss.NewStyle().
			Foreground(ColorBorder).
			PaddingRight(1)
)
