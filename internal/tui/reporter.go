package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"topwords/internal/domain"
)

// Reporter shows the ranking in an interactive terminal program.
type Reporter struct {
	title string
	opts  []tea.ProgramOption
}

// NewReporter creates a TUI reporter. opts are passed to tea.NewProgram.
func NewReporter(title string, opts ...tea.ProgramOption) *Reporter {
	return &Reporter{title: title, opts: opts}
}

// Report implements domain.Reporter. It blocks until the user quits.
func (r *Reporter) Report(ranking domain.Ranking) error {
	if _, err := tea.NewProgram(New(ranking, r.title), r.opts...).Run(); err != nil {
		return errors.Wrap(err, "run tui")
	}
	return nil
}
