package tui

import "github.com/charmbracelet/bubbles/v2/key"

type keyMap struct {
	Add      key.Binding
	Delete   key.Binding
	Submit   key.Binding
	Undo     key.Binding
	Received key.Binding
	Up       key.Binding
	Down     key.Binding
	PrevDay  key.Binding
	NextDay  key.Binding
	Today    key.Binding
	NextView key.Binding
	Quick    key.Binding
	Quit     key.Binding

	Confirm key.Binding
	Cancel  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Delete:   key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete")),
		Submit:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "submit")),
		Undo:     key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Received: key.NewBinding(key.WithKeys("space", " ", "r"), key.WithHelp("space", "received")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PrevDay:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "older")),
		NextDay:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "newer")),
		Today:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		NextView: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "view")),
		Quick:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "quick add")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// help returns the bindings worth showing for the current state.
func (k keyMap) help(v view, input bool) []key.Binding {
	if input {
		return []key.Binding{k.Confirm, k.Cancel}
	}
	switch v {
	case viewToday:
		return []key.Binding{k.Add, k.Quick, k.Delete, k.Submit, k.Undo, k.NextView, k.Quit}
	case viewHistory:
		return []key.Binding{k.PrevDay, k.NextDay, k.Today, k.Received, k.Delete, k.Undo, k.NextView, k.Quit}
	default:
		return []key.Binding{k.NextView, k.Quit}
	}
}
