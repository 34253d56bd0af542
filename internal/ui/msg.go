package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Tea message types for UI communication

// RouterMsg represents navigation between screens
type RouterMsg struct {
	To Route
}

// ErrorMsg represents error conditions
type ErrorMsg struct {
	Error error
	Title string
}

// SuccessMsg represents success conditions
type SuccessMsg struct {
	Message string
	Title   string
}

// Event Bus for UI communication
var (
	// Bus is the global event bus for UI communication
	Bus = make(chan tea.Msg, 64)
)

// PublishError publishes an error message to the UI bus
func PublishError(err error, title string) {
	select {
	case Bus <- ErrorMsg{Error: err, Title: title}:
	default:
		// Bus is full, drop the error
	}
}

// PublishSuccess publishes a success message to the UI bus
func PublishSuccess(message, title string) {
	select {
	case Bus <- SuccessMsg{Message: message, Title: title}:
	default:
		// Bus is full, drop the success message
	}
}

// ListenBus returns a tea.Cmd that listens to the event bus
func ListenBus() tea.Cmd {
	return func() tea.Msg {
		return <-Bus
	}
}

// Route represents different screens in the application
type Route int

const (
	RouteWelcome Route = iota
	RouteCalculator
)

// String returns the string representation of the route
func (r Route) String() string {
	switch r {
	case RouteWelcome:
		return "welcome"
	case RouteCalculator:
		return "calculator"
	default:
		return "unknown"
	}
}
