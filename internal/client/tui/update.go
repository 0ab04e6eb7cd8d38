package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/clientdesk/internal/client/ui"
)

// Update handles key presses and backend responses.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetColumns(columns(msg.Width))
		m.table.SetHeight(max(msg.Height-8, 3))
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case modeSearch:
			return m, m.updateSearch(msg)
		case modeForm:
			return m, m.updateForm(msg)
		case modeConfirm:
			return m, m.updateConfirm(msg)
		default:
			return m.updateList(msg)
		}

	case searchTickMsg:
		text, ok := m.search.Elapsed(msg.tag)
		if !ok {
			return m, nil
		}
		return m, loadClientsCmd(m.ctx, m.svc, text, m.listSeq.Next())

	case clientsLoadedMsg:
		if !m.listSeq.Latest(msg.token) {
			return m, nil
		}
		m.search.Settled()
		if msg.err != nil {
			m.setStatus(ui.LoadFailure, true)
			return m, nil
		}
		m.setRecords(msg.records)
		return m, nil

	case clientLoadedMsg:
		if !m.editSeq.Latest(msg.token) {
			return m, nil
		}
		if msg.err != nil {
			if id, ok := m.session.CurrentID(); ok && id == msg.id && m.session.IsOpen() {
				m.form.alert = ui.DetailFailure
			}
			return m, nil
		}
		if m.session.Apply(*msg.record) {
			m.form.reset()
		}
		return m, nil

	case clientSavedMsg:
		m.form.saving = false
		if msg.err != nil {
			m.form.alert = ui.SaveErrorMessage(msg.err)
			return m, nil
		}
		m.session.Close()
		m.mode = modeList
		m.setStatus(ui.NoticeSaved, false)
		return m, m.reload()

	case clientDeletedMsg:
		// The dialog may have moved on to another client while the request ran.
		if id, ok := m.session.CurrentID(); msg.fromModal && ok && id == msg.id {
			m.session.Close()
		}
		if m.mode == modeForm && !m.session.IsOpen() {
			m.mode = modeList
		}
		if msg.err != nil {
			m.setStatus(ui.DeleteFailure, true)
		} else {
			m.setStatus(ui.NoticeDeleted, false)
		}
		return m, m.reload()
	}

	return m, nil
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, listKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, listKeys.Reload):
		return m, m.reload()

	case key.Matches(msg, listKeys.Search):
		m.mode = modeSearch
		return m, m.input.Focus()

	case key.Matches(msg, listKeys.Add):
		m.session.OpenCreate()
		m.form.reset()
		m.mode = modeForm
		return m, nil

	case key.Matches(msg, listKeys.Edit):
		row, ok := m.selectedRow()
		if !ok {
			return m, nil
		}
		return m, m.openEdit(row.Edit)

	case key.Matches(msg, listKeys.Delete):
		row, ok := m.selectedRow()
		if !ok {
			return m, nil
		}
		m.confirm = pendingDelete{id: row.Delete.ClientID}
		m.mode = modeConfirm
		return m, nil

	case key.Matches(msg, listKeys.Copy):
		m.copyContact(msg.String())
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *Model) openEdit(b ui.Binding) tea.Cmd {
	m.session.OpenEdit(b.ClientID)
	m.form.reset()
	m.mode = modeForm
	return loadClientCmd(m.ctx, m.svc, b.ClientID, m.editSeq.Next())
}

// copyContact copies the badge selected by digit key k ("1" is the first
// badge, "0" the tenth) of the selected row.
func (m *Model) copyContact(k string) {
	row, ok := m.selectedRow()
	if !ok || len(k) != 1 {
		return
	}
	i := int(k[0] - '1')
	if k == "0" {
		i = 9
	}
	if i < 0 || i >= len(row.Badges) {
		return
	}

	b := row.Badges[i].Copy
	if err := clipboardWriteAll(b.Value); err != nil {
		m.logger.Error(m.ctx, "copy to clipboard failed", "error", err)
		m.setStatus(ui.CopyFailure+": "+err.Error(), true)
		return
	}
	m.setStatus(ui.NoticeCopied, false)
}

func (m *Model) updateSearch(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, searchKeys.Done) {
		m.input.Blur()
		m.mode = modeList
		return nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return cmd
	}

	tag := m.search.Keystroke(m.input.Value())
	return tea.Batch(cmd, searchTickCmd(m.search.Delay, tag))
}

func (m *Model) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, formKeys.Close):
		m.session.Close()
		m.mode = modeList
		return nil

	case key.Matches(msg, formKeys.Submit):
		if m.form.saving {
			return nil
		}
		sub, err := m.session.Submit()
		if err != nil {
			m.form.alert = ui.SaveErrorMessage(err)
			return nil
		}
		m.form.alert = ""
		m.form.saving = true
		return saveClientCmd(m.ctx, m.svc, sub.ID, sub.Create, sub.Payload)

	case key.Matches(msg, formKeys.Delete):
		id, ok := m.session.CurrentID()
		if !ok {
			return nil
		}
		m.confirm = pendingDelete{id: id, fromModal: true}
		m.mode = modeConfirm
		return nil
	}

	return m.form.update(msg)
}

func (m *Model) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, confirmKeys.Yes):
		target := m.confirm
		m.mode = m.returnMode()
		m.confirm = pendingDelete{}
		if target.id == "" {
			return nil
		}
		return deleteClientCmd(m.ctx, m.svc, target)

	case key.Matches(msg, confirmKeys.No):
		m.mode = m.returnMode()
		m.confirm = pendingDelete{}
	}
	return nil
}

func (m *Model) returnMode() mode {
	if m.confirm.fromModal && m.session.IsOpen() {
		return modeForm
	}
	return modeList
}
