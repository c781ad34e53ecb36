package explorer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/textview/view"
)

func posLabel(pos int) string {
	if pos == view.NPos {
		return "npos"
	}
	return strconv.Itoa(pos)
}

func (m Model) View() string {
	lines := []string{
		m.renderLabel("text   ", fieldText) + m.renderText(),
		m.renderLabel("pattern", fieldPattern) + m.renderPattern(),
		"",
		m.renderStatus(),
		m.renderHelp(),
	}
	out := strings.Join(lines, "\n")
	if m.width > 0 {
		out = lipgloss.NewStyle().MaxWidth(m.width).Render(out)
	}
	return out
}

func (m Model) renderLabel(name string, f field) string {
	if m.focus == f {
		return m.style.LabelFocused.Render("> "+name) + " "
	}
	return m.style.Label.Render("  "+name) + " "
}

func renderNonEmpty(st lipgloss.Style, v view.Runes) string {
	if v.Empty() {
		return ""
	}
	return st.Render(v.String())
}

// renderText renders the text with the current hit highlighted.
func (m Model) renderText() string {
	text := view.New(m.text)
	r := m.Result()
	if r.Index == view.NPos || r.Len == 0 {
		return renderNonEmpty(m.style.Text, text)
	}

	before, _ := text.Substr(0, r.Index)
	match, _ := text.Substr(r.Index, r.Len)
	after, _ := text.Substr(r.Index+match.Len(), view.NPos)
	return renderNonEmpty(m.style.Text, before) +
		renderNonEmpty(m.style.Match, match) +
		renderNonEmpty(m.style.Text, after)
}

func (m Model) renderPattern() string {
	return renderNonEmpty(m.style.Text, view.New(m.pattern))
}

func (m Model) renderStatus() string {
	r := m.Result()
	line := fmt.Sprintf("%s(%q, %s) = %s", r.Op, string(m.pattern), posLabel(r.Pos), posLabel(r.Index))
	if r.Index == view.NPos {
		return m.style.Miss.Render(line)
	}
	return m.style.Status.Render(line)
}

func (m Model) renderHelp() string {
	bindings := m.keys.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return m.style.Help.Render(strings.Join(parts, " • "))
}
