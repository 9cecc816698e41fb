package tui

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/marshallshelly/northwind-samples/cmd/northwind/output"
	"github.com/marshallshelly/northwind-samples/pkg/model"
	"github.com/marshallshelly/northwind-samples/pkg/registry"
	"github.com/marshallshelly/northwind-samples/pkg/runtime"
	"github.com/rs/zerolog"
)

// BrowseMode represents the current mode of the sample browser
type BrowseMode int

const (
	ModeList BrowseMode = iota
	ModeRunning
	ModeOutput
	ModeError
)

// BrowseModel is the Bubbletea model of the sample browser
type BrowseModel struct {
	mode     BrowseMode
	list     list.Model
	viewport viewport.Model
	footer   RunFooter
	current  registry.Sample
	err      error
	width    int
	height   int
	source   model.Source
	logger   zerolog.Logger
}

// NewBrowseModel creates a browser over samples reading from src
func NewBrowseModel(samples []registry.Sample, src model.Source, logger zerolog.Logger) BrowseModel {
	items := make([]list.Item, len(samples))
	for i, s := range samples {
		items[i] = SampleItem{Sample: s}
	}

	l := list.New(items, SampleItemDelegate{}, 0, 0)
	l.Title = "Northwind Samples"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return BrowseModel{
		mode:     ModeList,
		list:     l,
		viewport: viewport.New(0, 0),
		source:   src,
		logger:   logger,
	}
}

// Init initializes the model
func (m BrowseModel) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Messages
type sampleRanMsg struct {
	name    string
	output  string
	summary runtime.Summary
	err     error
}

// Commands
func runSampleCmd(s registry.Sample, src model.Source, logger zerolog.Logger) tea.Cmd {
	return func() tea.Msg {
		var buf bytes.Buffer
		runner := runtime.NewRunner(output.NewDumper(&buf), logger)
		summary, err := runner.Run(s.Name, s.Stream(src))
		return sampleRanMsg{
			name:    s.Name,
			output:  buf.String(),
			summary: summary,
			err:     err,
		}
	}
}

// Update handles messages
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width-4, msg.Height-8)
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 8
		return m, nil

	case sampleRanMsg:
		m.markRun(msg)
		if msg.err != nil {
			m.mode = ModeError
			m.err = msg.err
			return m, nil
		}
		m.mode = ModeOutput
		m.footer = RunFooter{Summary: msg.summary}
		m.viewport.SetContent(msg.output)
		m.viewport.GotoTop()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeList:
			if m.list.FilterState() == list.Filtering {
				break
			}
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit

			case "enter", " ":
				item, ok := m.list.SelectedItem().(SampleItem)
				if !ok {
					return m, nil
				}
				m.current = item.Sample
				m.mode = ModeRunning
				return m, runSampleCmd(item.Sample, m.source, m.logger)
			}

		case ModeOutput:
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc", "q", "backspace":
				m.mode = ModeList
				return m, nil
			}
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd

		case ModeError:
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc", "q", "enter":
				m.mode = ModeList
				m.err = nil
				return m, nil
			}
		}
	}

	// Update list
	if m.mode == ModeList {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	return m, nil
}

// markRun records the outcome on the list item of the sample
func (m *BrowseModel) markRun(msg sampleRanMsg) {
	for i, it := range m.list.Items() {
		item, ok := it.(SampleItem)
		if !ok || item.Sample.Name != msg.name {
			continue
		}
		summary := msg.summary
		item.LastRun = &summary
		item.Failed = msg.err != nil
		m.list.SetItem(i, item)
		return
	}
}

// View renders the UI
func (m BrowseModel) View() string {
	switch m.mode {
	case ModeList:
		help := helpStyle.Render(
			FormatKey("↑/↓", "navigate") + " • " +
				FormatKey("/", "filter") + " • " +
				FormatKey("enter", "run") + " • " +
				FormatKey("q", "quit"),
		)
		return lipgloss.JoinVertical(lipgloss.Left,
			m.list.View(),
			help,
		)

	case ModeRunning:
		return lipgloss.Place(
			m.width,
			m.height,
			lipgloss.Center,
			lipgloss.Center,
			boxStyle.Render(infoStyle.Render("Running "+m.current.Name+"...")),
		)

	case ModeOutput:
		header := titleStyle.Render(m.current.Name+" - "+m.current.Title) + " " + FormatAliases(m.current.Aliases)
		help := helpStyle.Render(
			FormatKey("↑/↓/pgup/pgdn", "scroll") + " • " +
				FormatKey("esc", "back"),
		)
		return lipgloss.JoinVertical(lipgloss.Left,
			header,
			outputStyle.Render(m.viewport.View()),
			m.footer.View(),
			help,
		)

	case ModeError:
		msg := titleStyle.Render(fmt.Sprintf("%s Failed", m.current.Name)) + "\n\n" +
			errorStyle.Render(m.err.Error()) + "\n\n" +
			helpStyle.Render(FormatKey("enter/esc", "back"))

		return lipgloss.Place(
			m.width,
			m.height,
			lipgloss.Center,
			lipgloss.Center,
			boxStyle.Render(msg),
		)
	}

	return "Unknown mode"
}

// RunBrowseUI starts the interactive sample browser
func RunBrowseUI(samples []registry.Sample, src model.Source, logger zerolog.Logger) error {
	p := tea.NewProgram(NewBrowseModel(samples, src, logger))
	_, err := p.Run()
	return err
}
