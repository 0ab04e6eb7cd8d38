package tui

import "github.com/charmbracelet/bubbles/key"

type listKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Copy   key.Binding
	Reload key.Binding
	Search key.Binding
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Quit   key.Binding
}

func (k listKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Add, k.Edit, k.Delete, k.Copy, k.Reload, k.Quit}
}

func (k listKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Search, k.Reload},
		{k.Add, k.Edit, k.Delete},
		{k.Copy, k.Quit},
	}
}

type formKeyMap struct {
	Next      key.Binding
	Prev      key.Binding
	CycleType key.Binding
	AddRow    key.Binding
	RemoveRow key.Binding
	Submit    key.Binding
	Delete    key.Binding
	Close     key.Binding
	typeLeft  key.Binding
	typeRight key.Binding
}

func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.CycleType, k.AddRow, k.RemoveRow, k.Submit, k.Delete, k.Close}
}

func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type confirmKeyMap struct {
	Yes key.Binding
	No  key.Binding
}

func (k confirmKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Yes, k.No} }

func (k confirmKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

var listKeys = listKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Copy:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "0"), key.WithHelp("1-0", "copy contact")),
	Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Add:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "add")),
	Edit:   key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
	Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var searchKeys = struct {
	Done key.Binding
}{
	Done: key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("esc", "done")),
}

var formKeys = formKeyMap{
	Next:      key.NewBinding(key.WithKeys("tab", "down", "enter"), key.WithHelp("tab", "next field")),
	Prev:      key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
	CycleType: key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "contact type")),
	AddRow:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "add contact")),
	RemoveRow: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "remove contact")),
	Submit:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	Delete:    key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete client")),
	Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	typeLeft:  key.NewBinding(key.WithKeys("left")),
	typeRight: key.NewBinding(key.WithKeys("right")),
}

var confirmKeys = confirmKeyMap{
	Yes: key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "delete")),
	No:  key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "cancel")),
}
