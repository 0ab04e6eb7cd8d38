package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/clientdesk/internal/client/ui"
)

const defaultWidth = 100

// columns sizes the list columns for a terminal of the given width. The
// name and contact columns take whatever the fixed ones leave.
func columns(width int) []table.Column {
	if width <= 0 {
		width = defaultWidth
	}
	const idW, timeW = 6, 20
	rest := max(width-idW-2*timeW-10, 20)
	return []table.Column{
		{Title: ui.Columns[0], Width: idW},
		{Title: ui.Columns[1], Width: rest * 3 / 5},
		{Title: ui.Columns[2], Width: timeW},
		{Title: ui.Columns[3], Width: timeW},
		{Title: ui.Columns[4], Width: rest * 2 / 5},
	}
}

func tableRows(rows []ui.Row) []table.Row {
	out := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, table.Row{string(r.ID), r.FullName, r.Created, r.Updated, badgeIcons(r.Badges)})
	}
	return out
}

func badgeIcons(badges []ui.Badge) string {
	icons := make([]string, 0, len(badges))
	for _, b := range badges {
		icons = append(icons, b.Icon)
	}
	return strings.Join(icons, " ")
}

func renderHelp(bindings []key.Binding, width int) string {
	h := help.New()
	h.Width = width
	return h.ShortHelpView(bindings)
}

// View draws the current screen.
func (m *Model) View() string {
	switch m.mode {
	case modeForm:
		return m.form.view(m.styles, m.width)
	case modeConfirm:
		return m.confirmView()
	}
	return m.listView()
}

func (m *Model) listView() string {
	st := m.styles
	var b strings.Builder

	b.WriteString(st.Title.Render("Clients"))
	b.WriteString("  ")
	if m.mode == modeSearch || m.input.Value() != "" {
		b.WriteString(m.input.View())
	} else {
		b.WriteString(st.Muted.Render("press / to search"))
	}
	b.WriteString("\n\n")

	if m.loaded && len(m.rows) == 0 {
		b.WriteString(st.Muted.Render("No clients found") + "\n")
	} else {
		b.WriteString(m.table.View() + "\n")
	}

	if row, ok := m.selectedRow(); ok && len(row.Badges) > 0 {
		tips := make([]string, 0, len(row.Badges))
		for i, badge := range row.Badges {
			label := badge.Icon + " " + badge.Tooltip
			if i < 10 {
				label = string(rune('0'+(i+1)%10)) + " " + label
			}
			tips = append(tips, st.Badge.Render(label))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tips...) + "\n")
	}

	if m.status != "" {
		style := st.Success
		if m.statusErr {
			style = st.Error
		}
		b.WriteString(style.Render(m.status) + "\n")
	}

	if m.mode == modeSearch {
		b.WriteString(renderHelp([]key.Binding{searchKeys.Done}, m.width))
	} else {
		b.WriteString(renderHelp(listKeys.ShortHelp(), m.width))
	}
	return b.String()
}

func (m *Model) confirmView() string {
	body := m.styles.Title.Render(ui.DeleteConfirm) + "\n\n" + renderHelp(confirmKeys.ShortHelp(), m.width)
	return m.styles.Confirm.Render(body)
}
