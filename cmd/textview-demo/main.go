package main

import (
	"flag"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"

	"github.com/iw2rmb/textview/internal/explorer"
)

type model struct {
	explorer explorer.Model
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.explorer, cmd = m.explorer.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.explorer.View() }

// newLogger discards everything unless a log file is given; the terminal
// belongs to the UI.
func newLogger(path string) (*logrus.Logger, func(), error) {
	logger := logrus.New()
	if path == "" {
		logger.SetOutput(io.Discard)
		return logger, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger.SetOutput(f)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})
	return logger, func() { _ = f.Close() }, nil
}

func main() {
	text := flag.String("text", "abcabcabc", "text to search")
	needle := flag.String("needle", "abc", "needle, or character set for the *_of searches")
	logPath := flag.String("log", "", "append debug logs to this file")
	flag.Parse()

	if termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	logger, closeLog, err := newLogger(*logPath)
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	m := model{explorer: explorer.New(explorer.Config{
		Text:    *text,
		Pattern: *needle,
		Style:   explorer.DefaultStyle(),
		KeyMap:  explorer.DefaultKeyMap(),
		Logger:  logger,
	})}
	logger.WithFields(logrus.Fields{"text": *text, "needle": *needle}).Info("explorer started")

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	closeLog()
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
