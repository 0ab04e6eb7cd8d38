package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/dmitrijs2005/clientdesk/internal/client/ui"
)

// PrintTable writes t as a bordered table. A non-positive width lets the
// table size itself to its content.
func PrintTable(w io.Writer, t ui.Table, width int) error {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	tb := ltable.New().
		Border(lipgloss.NormalBorder()).
		Headers(t.Columns...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return header
			}
			return cell
		})
	if width > 0 {
		tb = tb.Width(width)
	}

	for _, r := range t.Rows {
		contacts := make([]string, 0, len(r.Badges))
		for _, b := range r.Badges {
			contacts = append(contacts, b.Icon+" "+b.Tooltip)
		}
		tb = tb.Row(string(r.ID), r.FullName, r.Created, r.Updated, strings.Join(contacts, "\n"))
	}

	if _, err := fmt.Fprintln(w, tb.Render()); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}
