package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	colorPrimary = lipgloss.Color("62")  // Purple
	colorMuted   = lipgloss.Color("241") // Gray
	colorSuccess = lipgloss.Color("78")  // Green
	colorError   = lipgloss.Color("196") // Red
	colorAccent  = lipgloss.Color("212") // Pink
)

// Header style for the top title bar.
var Header = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// ActiveTab style for the selected tab label.
var ActiveTab = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorAccent).
	Padding(0, 1)

// InactiveTab style for unselected tab labels.
var InactiveTab = lipgloss.NewStyle().
	Foreground(colorMuted).
	Padding(0, 1)

// TabBadge style for the per-tab count badges.
var TabBadge = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// StatusBar style for the bottom status bar.
var StatusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// StatusBarKey style for key hints in the status bar.
var StatusBarKey = lipgloss.NewStyle().
	Foreground(colorAccent).
	Bold(true)

// ToastSuccess style for the transient success notification.
var ToastSuccess = lipgloss.NewStyle().
	Foreground(colorSuccess).
	Bold(true).
	Padding(0, 1)

// ToastError style for the transient failure notification.
var ToastError = lipgloss.NewStyle().
	Foreground(colorError).
	Bold(true).
	Padding(0, 1)

// LastFetch style for the "last updated" label.
var LastFetch = lipgloss.NewStyle().
	Foreground(colorMuted).
	Padding(0, 1)
