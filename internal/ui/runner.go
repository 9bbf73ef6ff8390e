package ui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"ddl/internal/driver"
	"ddl/internal/source"
)

type checkOutcome struct {
	results []driver.CheckResult
	err     error
}

// RunCheck runs driver.CheckFiles while a progress view renders to out.
func RunCheck(ctx context.Context, out io.Writer, title string, fileSet *source.FileSet, root string, files []string, opts driver.CheckOptions) ([]driver.CheckResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	next := opts.Observer
	opts.Observer = func(ev driver.Event) {
		if next != nil {
			next(ev)
		}
		events <- ev
	}
	go func() {
		res, err := driver.CheckFiles(ctx, fileSet, root, files, opts)
		close(events)
		outcomeCh <- checkOutcome{results: res, err: err}
	}()

	model := NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithContext(ctx))
	_, uiErr := program.Run()
	// the view may quit early (ctrl+c); workers must not block on a full channel
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
