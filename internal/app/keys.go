package app

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Home     key.Binding
	End      key.Binding
	Toggle   key.Binding
	Logo     key.Binding
	Switch   key.Binding
	Sort     key.Binding
	Search   key.Binding
	RealSize key.Binding
	Screen   key.Binding
	Export   key.Binding
	Detail   key.Binding
	Back     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		Logo:     key.NewBinding(key.WithKeys("l", "L"), key.WithHelp("l", "select logo")),
		Switch:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "all/selected")),
		Sort:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7"), key.WithHelp("1-7", "sort column")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		RealSize: key.NewBinding(key.WithKeys("r", "R"), key.WithHelp("r", "real size")),
		Screen:   key.NewBinding(key.WithKeys("i", "I"), key.WithHelp("i", "screen inches")),
		Export:   key.NewBinding(key.WithKeys("e", "E"), key.WithHelp("e", "export csv")),
		Detail:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "detail")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "Q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Switch, k.Sort, k.Search, k.RealSize, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Home, k.End},
		{k.Toggle, k.Logo, k.Switch, k.Detail, k.Back},
		{k.Sort, k.Search, k.RealSize, k.Screen},
		{k.Export, k.Help, k.Quit},
	}
}
