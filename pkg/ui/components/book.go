// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fd1az/bookfeed/business/book/domain"
)

// BookComponent renders the aggregated bid/ask ladder of the most recent
// published summary.
type BookComponent struct {
	summary *domain.Summary
}

// NewBookComponent creates a new book component.
func NewBookComponent() *BookComponent {
	return &BookComponent{}
}

// Update replaces the displayed summary.
func (b *BookComponent) Update(summary *domain.Summary) {
	b.summary = summary
}

// View renders the ladder as two side-by-side columns.
func (b *BookComponent) View() string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	bidStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	askStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

	if b.summary == nil {
		return headerStyle.Render("ORDER BOOK") + "\n" + mutedStyle.Render("  waiting for first update...")
	}

	var bidsCol, asksCol strings.Builder
	bidsCol.WriteString(bidStyle.Render("BIDS") + "\n")
	for _, lvl := range b.summary.Bids {
		bidsCol.WriteString(fmt.Sprintf("  %-10s %10s %10s\n", lvl.Exchange, lvl.Price, lvl.Amount))
	}
	asksCol.WriteString(askStyle.Render("ASKS") + "\n")
	for _, lvl := range b.summary.Asks {
		asksCol.WriteString(fmt.Sprintf("  %-10s %10s %10s\n", lvl.Exchange, lvl.Price, lvl.Amount))
	}

	var sb strings.Builder
	sb.WriteString(headerStyle.Render("ORDER BOOK"))
	sb.WriteString(mutedStyle.Render(fmt.Sprintf("  spread %s  seq %d", b.summary.Spread, b.summary.Sequence)))
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, bidsCol.String(), "   ", asksCol.String()))
	return sb.String()
}
