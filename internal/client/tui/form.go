package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/clientdesk/internal/client/ui"
)

const scalarFields = 3

var scalarLabels = [scalarFields]string{"Name", "Surname", "Last name"}

// formModel draws the add/edit dialog over a ui.Session. The session's form
// is the source of truth; the text inputs mirror it.
type formModel struct {
	session  *ui.Session
	scalars  [scalarFields]textinput.Model
	contacts map[ui.RowKey]textinput.Model
	focus    int

	alert  string
	saving bool
}

func newFormModel(session *ui.Session) formModel {
	f := formModel{session: session, contacts: map[ui.RowKey]textinput.Model{}}
	for i := range f.scalars {
		f.scalars[i] = newInput(scalarLabels[i], 64)
	}
	return f
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 40
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// reset rebuilds every input from the session form and focuses the first
// field.
func (f *formModel) reset() {
	form := &f.session.Form
	values := [scalarFields]string{form.Name, form.Surname, form.LastName}
	for i := range f.scalars {
		f.scalars[i].SetValue(values[i])
		f.scalars[i].CursorEnd()
	}

	f.contacts = map[ui.RowKey]textinput.Model{}
	for _, r := range form.Contacts.Rows() {
		ti := newInput("Contact value", 128)
		ti.SetValue(r.Value)
		f.contacts[r.Key] = ti
	}

	f.alert = ""
	f.saving = false
	f.setFocus(0)
}

func (f *formModel) fieldCount() int {
	return scalarFields + f.session.Form.Contacts.Len()
}

// focusedRow returns the key of the focused contact row.
func (f *formModel) focusedRow() (ui.RowKey, bool) {
	i := f.focus - scalarFields
	rows := f.session.Form.Contacts.Rows()
	if i < 0 || i >= len(rows) {
		return 0, false
	}
	return rows[i].Key, true
}

func (f *formModel) setFocus(i int) {
	n := f.fieldCount()
	f.focus = ((i % n) + n) % n

	for j := range f.scalars {
		if j == f.focus {
			f.scalars[j].Focus()
		} else {
			f.scalars[j].Blur()
		}
	}
	focused, _ := f.focusedRow()
	for k, ti := range f.contacts {
		if k == focused && f.focus >= scalarFields {
			ti.Focus()
		} else {
			ti.Blur()
		}
		f.contacts[k] = ti
	}
}

func (f *formModel) addRow() {
	k, ok := f.session.Form.Contacts.Add()
	if !ok {
		return
	}
	f.contacts[k] = newInput("Contact value", 128)
	f.setFocus(f.fieldCount() - 1)
}

// removeRow fires the remove binding of the focused contact row.
func (f *formModel) removeRow() {
	i := f.focus - scalarFields
	rows := ui.ContactFormRows(&f.session.Form.Contacts)
	if i < 0 || i >= len(rows) {
		return
	}
	f.trigger(rows[i].Remove)
}

func (f *formModel) trigger(b ui.Binding) {
	switch b.Action {
	case ui.ActionRemoveContact:
		if !f.session.Form.Contacts.Remove(b.Row) {
			return
		}
		delete(f.contacts, b.Row)
		f.setFocus(min(f.focus, f.fieldCount()-1))
	}
}

func (f *formModel) update(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, formKeys.Next):
		f.setFocus(f.focus + 1)
		return nil
	case key.Matches(msg, formKeys.Prev):
		f.setFocus(f.focus - 1)
		return nil
	case key.Matches(msg, formKeys.AddRow):
		f.addRow()
		return nil
	case key.Matches(msg, formKeys.RemoveRow):
		f.removeRow()
		return nil
	}

	if k, ok := f.focusedRow(); ok {
		switch {
		case key.Matches(msg, formKeys.typeLeft):
			f.session.Form.Contacts.CycleType(k, -1)
			return nil
		case key.Matches(msg, formKeys.typeRight):
			f.session.Form.Contacts.CycleType(k, 1)
			return nil
		}

		ti, cmd := f.contacts[k].Update(msg)
		f.contacts[k] = ti
		f.session.Form.Contacts.SetValue(k, ti.Value())
		return cmd
	}

	var cmd tea.Cmd
	f.scalars[f.focus], cmd = f.scalars[f.focus].Update(msg)
	form := &f.session.Form
	switch f.focus {
	case 0:
		form.Name = f.scalars[0].Value()
	case 1:
		form.Surname = f.scalars[1].Value()
	case 2:
		form.LastName = f.scalars[2].Value()
	}
	return cmd
}

func (f *formModel) view(st Styles, width int) string {
	var b strings.Builder
	b.WriteString(st.Title.Render(f.session.Title()))
	b.WriteString("\n\n")

	for i, ti := range f.scalars {
		label := st.Label.Render(scalarLabels[i])
		if i == f.focus {
			label = st.Focused.Inherit(st.Label).Render(scalarLabels[i])
		}
		b.WriteString(label + ti.View() + "\n")
	}

	b.WriteString("\n" + st.Label.Render("Contacts"))
	rows := ui.ContactFormRows(&f.session.Form.Contacts)
	if len(rows) == 0 {
		b.WriteString(st.Muted.Render("none"))
	}
	b.WriteString("\n")
	for i, r := range rows {
		selector := st.Selector.Render("‹ " + r.TypeLabel + " ›")
		marker := "  "
		if i+scalarFields == f.focus {
			marker = st.Focused.Render("> ")
		}
		fmt.Fprintf(&b, "%s%2d. %s %s\n", marker, i+1, selector, f.contacts[r.Key].View())
	}
	if !f.session.Form.Contacts.CanAdd() {
		b.WriteString(st.Muted.Render("contact limit reached") + "\n")
	}

	if f.alert != "" {
		b.WriteString("\n" + st.Error.Render(f.alert) + "\n")
	}
	if f.saving {
		b.WriteString("\n" + st.Muted.Render("saving...") + "\n")
	}

	help := formKeys.ShortHelp()
	if !f.session.ShowDelete() {
		help = []key.Binding{formKeys.Next, formKeys.CycleType, formKeys.AddRow, formKeys.RemoveRow, formKeys.Submit, formKeys.Close}
	}
	b.WriteString("\n" + renderHelp(help, width))

	return st.Modal.Render(b.String())
}
