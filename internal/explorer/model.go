package explorer

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/iw2rmb/textview/view"
)

// Config configures the explorer Model.
type Config struct {
	Text    string
	Pattern string
	Op      Op

	Style  Style
	KeyMap KeyMap // zero value: DefaultKeyMap()

	// Logger receives a debug entry per evaluated search.
	// Default: logrus.StandardLogger().
	Logger logrus.FieldLogger
}

type field int

const (
	fieldText field = iota
	fieldPattern
)

// Model is the explorer state. It is a value type, like a Bubble Tea model.
type Model struct {
	text    []rune
	pattern []rune
	focus   field

	op   Op
	pos  int
	auto bool

	style Style
	keys  KeyMap
	log   logrus.FieldLogger
	width int
}

// Result is the outcome of the current search.
type Result struct {
	Op    Op
	Pos   int // position argument passed to the search
	Index int // view.NPos when nothing matched
	Len   int // characters covered by the hit; 0 on a miss
}

func New(cfg Config) Model {
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	if len(cfg.KeyMap.Quit.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Op < 0 || cfg.Op >= opCount {
		cfg.Op = OpFind
	}
	return Model{
		text:    []rune(cfg.Text),
		pattern: []rune(cfg.Pattern),
		op:      cfg.Op,
		auto:    true,
		style:   cfg.Style,
		keys:    cfg.KeyMap,
		log:     cfg.Logger,
	}
}

func (m Model) Text() string { return string(m.text) }

func (m Model) Pattern() string { return string(m.pattern) }

func (m Model) Op() Op { return m.op }

// SearchPos returns the position argument the current search uses.
func (m Model) SearchPos() int {
	if m.auto {
		return m.op.DefaultPos()
	}
	return m.pos
}

func (m Model) Result() Result {
	text, pattern := view.New(m.text), view.New(m.pattern)
	pos := m.SearchPos()
	r := Result{Op: m.op, Pos: pos, Index: m.op.Apply(text, pattern, pos)}
	if r.Index != view.NPos {
		r.Len = m.op.MatchLen(pattern)
	}
	return r
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextField):
		if m.focus == fieldText {
			m.focus = fieldPattern
		} else {
			m.focus = fieldText
		}
		return m, nil
	case key.Matches(msg, m.keys.NextOp):
		m.op = (m.op + 1) % opCount
	case key.Matches(msg, m.keys.PrevOp):
		m.op = (m.op + opCount - 1) % opCount
	case key.Matches(msg, m.keys.PosLeft):
		m.movePos(-1)
	case key.Matches(msg, m.keys.PosRight):
		m.movePos(1)
	case key.Matches(msg, m.keys.PosAuto):
		m.auto = true
	case key.Matches(msg, m.keys.Backspace):
		m.deleteBackward()
	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		m.insert(msg.Runes)
	default:
		return m, nil
	}

	m.logResult()
	return m, nil
}

// movePos leaves auto mode and steps the position within [0, len(text)].
func (m *Model) movePos(delta int) {
	base := m.SearchPos()
	if base > len(m.text) {
		base = len(m.text)
	}
	m.auto = false
	m.pos = min(max(base+delta, 0), len(m.text))
}

func (m *Model) focused() *[]rune {
	if m.focus == fieldPattern {
		return &m.pattern
	}
	return &m.text
}

func (m *Model) insert(rs []rune) {
	f := m.focused()
	*f = append(*f, rs...)
}

func (m *Model) deleteBackward() {
	f := m.focused()
	if len(*f) == 0 {
		return
	}
	*f = (*f)[:len(*f)-1]
	if !m.auto && m.pos > len(m.text) {
		m.pos = len(m.text)
	}
}

func (m Model) logResult() {
	r := m.Result()
	m.log.WithFields(logrus.Fields{
		"op":    r.Op.String(),
		"pos":   posLabel(r.Pos),
		"index": posLabel(r.Index),
		"len":   r.Len,
	}).Debug("search evaluated")
}
