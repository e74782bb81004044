package teaui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	Tab      key.Binding
	Search   key.Binding
	Calendar key.Binding
	Open     key.Binding
	Back     key.Binding
	Convert  key.Binding
	Delete   key.Binding
	Left     key.Binding
	Right    key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Help     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "memories/planned")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Calendar: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "calendar")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:     key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back/clear")),
		Convert:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "to memory")),
		Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		PrevPage: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "previous month")),
		NextPage: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next month")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Search, k.Calendar, k.Open, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Search, k.Calendar, k.Open, k.Back},
		{k.Left, k.Right, k.PrevPage, k.NextPage},
		{k.Convert, k.Delete, k.Help, k.Quit},
	}
}
