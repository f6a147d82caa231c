// Package uitest provides fake ui capabilities for tests.
package uitest

import (
	"context"
	"fmt"

	"github.com/hbjs97/hbgen/internal/form"
	"github.com/hbjs97/hbgen/internal/ui"
)

// Message is one notification captured by Notifier.
type Message struct {
	Level ui.Level
	Text  string
}

// Notifier records every notification.
type Notifier struct {
	Messages []Message
}

// Notify records the message.
func (n *Notifier) Notify(level ui.Level, msg string) {
	n.Messages = append(n.Messages, Message{Level: level, Text: msg})
}

// Last returns the most recent message, or a zero Message if none.
func (n *Notifier) Last() Message {
	if len(n.Messages) == 0 {
		return Message{}
	}
	return n.Messages[len(n.Messages)-1]
}

// Picker returns a pre-configured directory pick result.
type Picker struct {
	Path string
	// Cancel simulates the user closing the dialog.
	Cancel bool
	Err    error

	// Titles records the dialog titles requested, in order.
	Titles []string
}

// PickDirectory returns the configured result.
func (p *Picker) PickDirectory(_ context.Context, title, _ string) (string, bool, error) {
	p.Titles = append(p.Titles, title)
	if p.Err != nil {
		return "", false, p.Err
	}
	if p.Cancel {
		return "", false, nil
	}
	return p.Path, true, nil
}

// Clipboard stores the copied text.
type Clipboard struct {
	Text string
	Err  error
}

// Copy records text unless Err is set.
func (c *Clipboard) Copy(text string) error {
	if c.Err != nil {
		return c.Err
	}
	c.Text = text
	return nil
}

// Previewer wraps the script in markers so tests can see it was used.
type Previewer struct{}

// Preview returns the script between PREVIEW markers.
func (Previewer) Preview(script string) (string, error) {
	return "<<PREVIEW>>\n" + script + "<</PREVIEW>>\n", nil
}

// FormRunner returns canned form answers.
type FormRunner struct {
	// Build, when non-nil, edits the defaults passed to RunBuildForm.
	Build       func(form.State) form.State
	BuildErr    error
	RecentIndex int
	RecentErr   error
	Confirm     bool

	// Defaults records the state RunBuildForm was called with.
	Defaults []form.State
}

// RunBuildForm applies Build to the defaults.
func (f *FormRunner) RunBuildForm(defaults form.State) (form.State, error) {
	f.Defaults = append(f.Defaults, defaults)
	if f.BuildErr != nil {
		return defaults, f.BuildErr
	}
	if f.Build == nil {
		return defaults, nil
	}
	return f.Build(defaults), nil
}

// RunRecentSelect returns RecentIndex.
func (f *FormRunner) RunRecentSelect(paths []string) (int, error) {
	if f.RecentErr != nil {
		return -1, f.RecentErr
	}
	if f.RecentIndex >= len(paths) {
		return -1, fmt.Errorf("uitest: no recent path at %d", f.RecentIndex)
	}
	return f.RecentIndex, nil
}

// RunConfirm returns Confirm.
func (f *FormRunner) RunConfirm(string) (bool, error) {
	return f.Confirm, nil
}

var (
	_ ui.Notifier   = (*Notifier)(nil)
	_ ui.Picker     = (*Picker)(nil)
	_ ui.Clipboard  = (*Clipboard)(nil)
	_ ui.Previewer  = Previewer{}
	_ ui.FormRunner = (*FormRunner)(nil)
)
