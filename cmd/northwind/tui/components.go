package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marshallshelly/northwind-samples/pkg/registry"
	"github.com/marshallshelly/northwind-samples/pkg/runtime"
)

// SampleItem represents a sample in the list
type SampleItem struct {
	Sample  registry.Sample
	LastRun *runtime.Summary
	Failed  bool
}

func (i SampleItem) FilterValue() string {
	return i.Sample.Name + " " + strings.Join(i.Sample.Aliases, " ") + " " + i.Sample.Title
}

func (i SampleItem) Title() string {
	status := mutedStyle.Render("•")
	switch {
	case i.Failed:
		status = dangerStyle.Render("✗")
	case i.LastRun != nil:
		status = successStyle.Render("✓")
	}
	return fmt.Sprintf("%s %s - %s", status, i.Sample.Name, i.Sample.Title)
}

func (i SampleItem) Description() string {
	return mutedStyle.Render(i.Sample.Description)
}

// SampleItemDelegate is a custom delegate for sample list items
type SampleItemDelegate struct{}

func (d SampleItemDelegate) Height() int                             { return 2 }
func (d SampleItemDelegate) Spacing() int                            { return 1 }
func (d SampleItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d SampleItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(SampleItem)
	if !ok {
		return
	}

	var s string
	if index == m.Index() {
		s = selectedItemStyle.Render("▸ " + i.Title() + "\n  " + i.Description())
	} else {
		s = unselectedItemStyle.Render("  " + i.Title() + "\n  " + i.Description())
	}

	_, _ = fmt.Fprint(w, s)
}

// RunFooter summarizes a finished run
type RunFooter struct {
	Summary runtime.Summary
}

// View renders the footer
func (f RunFooter) View() string {
	return infoStyle.Render(fmt.Sprintf("%d records, %d lines in %s",
		f.Summary.Records,
		f.Summary.Lines,
		f.Summary.Duration.Round(time.Microsecond),
	)) + "  " + mutedStyle.Render("run "+f.Summary.RunID.String())
}
