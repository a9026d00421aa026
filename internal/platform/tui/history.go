package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

const maxHistoryRuns = 50

// HistoryKeyMap defines the key bindings for the run history view.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("tab", "esc", "b"),
			key.WithHelp("tab/esc", "back to game"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// historyView lists this session's runs of one variant, best first.
type historyView struct {
	title  string
	runs   []storage.RunEntry
	err    error
	table  table.Model
	help   help.Model
	keys   HistoryKeyMap
	width  int
	height int
}

func newHistoryView(title string, width, height int) historyView {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	v := historyView{
		title:  title,
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	v.table = v.createTable()
	return v
}

// createTable creates a new table sized to the terminal.
func (v *historyView) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 7},
		{Title: "Length", Width: 7},
		{Title: "Ended", Width: 6},
		{Title: "Steps", Width: 7},
		{Title: "Time", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, v.height-8)), // Leave room for header, help, and margins
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load refreshes the runs from the ledger.
func (v *historyView) load(store *storage.Store, variant string) {
	v.runs, v.err = nil, nil
	if store != nil {
		v.runs, v.err = store.TopRuns(variant, maxHistoryRuns)
	}
	v.updateTableRows()
}

// updateTableRows updates the table with current runs.
func (v *historyView) updateTableRows() {
	rows := make([]table.Row, len(v.runs))
	for i, r := range v.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Length),
			r.Reason,
			fmt.Sprintf("%d", r.Ticks),
			r.CreatedAt.Format("15:04:05"),
		}
	}
	v.table.SetRows(rows)

	// Reset cursor to top
	v.table.GotoTop()
}

func (v *historyView) resize(width, height int) {
	v.width = width
	v.height = height
	v.table = v.createTable()
	v.updateTableRows()
	v.help.Width = width
}

// update handles a key while the view is open. It reports whether the view
// should close and whether the user asked to quit.
func (v *historyView) update(msg tea.KeyMsg) (closeView, quit bool, cmd tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Quit):
		return true, true, nil
	case key.Matches(msg, v.keys.Back):
		return true, false, nil
	case key.Matches(msg, v.keys.Up), key.Matches(msg, v.keys.Down):
		v.table, cmd = v.table.Update(msg)
		return false, false, cmd
	}
	return false, false, nil
}

// view renders the history screen.
func (v historyView) view() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("RUN HISTORY - "+v.title, v.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	switch {
	case v.err != nil:
		content = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).
			Render("Run history unavailable:\n" + v.err.Error())
	case len(v.runs) == 0:
		content = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4).
			Render("No runs finished yet.")
	default:
		content = v.table.View()
	}
	b.WriteString(tableStyle.Render(content))

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(v.help.View(v.keys)))

	return b.String()
}

// centerText pads text on the left so it sits in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
