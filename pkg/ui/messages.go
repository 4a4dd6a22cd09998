// Package ui provides the Bubble Tea TUI for the order-book feed engine.
package ui

import (
	"time"

	"github.com/fd1az/bookfeed/business/book/domain"
)

// Message types for TUI updates.

// SummaryMsg is sent when the supervisor publishes a fresh aggregate.
type SummaryMsg struct {
	Summary *domain.Summary
}

// ConnectionStatusMsg is sent when an exchange connection's status changes.
type ConnectionStatusMsg struct {
	Name      string
	Connected bool
	Latency   time.Duration
}

// ErrorMsg is sent when an error occurs.
type ErrorMsg struct {
	Error error
}

// TickMsg is sent periodically for UI updates.
type TickMsg struct{}

// WelcomeCompleteMsg signals the welcome screen is done (timeout or keypress).
type WelcomeCompleteMsg struct{}

// StartModulesMsg signals that modules should start loading.
type StartModulesMsg struct{}

// LogMsg is sent to display a log message in the UI.
type LogMsg struct {
	Level   string // "info", "warn", "error"
	Message string
}

// StartupMsg is sent during application startup to show progress.
type StartupMsg struct {
	Step    string // exchange name, or "config"
	Status  string // "connecting", "connected", "failed"
	Message string
}
