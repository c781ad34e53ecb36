package explorer

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the explorer key bindings. Printable keys always edit the
// focused field, so bindings stick to non-printable keys.
type KeyMap struct {
	NextField         key.Binding
	NextOp, PrevOp    key.Binding
	PosLeft, PosRight key.Binding
	PosAuto           key.Binding
	Backspace         key.Binding
	Quit              key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch field")),

		NextOp: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next search")),
		PrevOp: key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "prev search")),

		PosLeft:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "pos-1")),
		PosRight: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "pos+1")),
		PosAuto:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "auto pos")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Quit:      key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp lists the bindings shown in the help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.NextOp, k.PosLeft, k.PosRight, k.PosAuto, k.Quit}
}
