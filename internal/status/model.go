package status

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/winsweep/winsweep/internal/ui"
)

// ─── Messages ────────────────────────────────────────────────────────────────

type tickMsg time.Time

type disksMsg struct {
	disks []DiskUsage
	err   error
}

// ─── Model ───────────────────────────────────────────────────────────────────

// Model is the bubbletea Model for the disk overview dashboard.
type Model struct {
	Disks           []DiskUsage
	Err             error
	Width           int
	Height          int
	refreshInterval time.Duration
	spin            spinner.Model
	tbl             table.Model
	loaded          bool
	quitting        bool
}

// NewModel creates a Model with the given refresh cadence.
func NewModel(refreshInterval time.Duration) Model {
	if refreshInterval <= 0 {
		refreshInterval = 5 * time.Second
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ui.ColorPrimary)

	tbl := table.New(
		table.WithColumns(diskColumns()),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(ui.ColorPrimary)
	styles.Selected = styles.Selected.Foreground(ui.ColorSuccess)
	tbl.SetStyles(styles)

	return Model{
		Width:           80,
		Height:          24,
		refreshInterval: refreshInterval,
		spin:            sp,
		tbl:             tbl,
	}
}

func diskColumns() []table.Column {
	return []table.Column{
		{Title: "Drive", Width: 10},
		{Title: "FS", Width: 6},
		{Title: "Total", Width: 10},
		{Title: "Used", Width: 10},
		{Title: "Free", Width: 10},
		{Title: "Used %", Width: 8},
	}
}

func (m Model) doTick() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func collectCmd() tea.Msg {
	disks, err := CollectDisks()
	return disksMsg{disks: disks, err: err}
}

// ─── tea.Model interface ─────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, collectCmd)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(msg)
		return m, cmd

	case tickMsg:
		return m, collectCmd

	case disksMsg:
		m.loaded = true
		if msg.err != nil {
			m.Err = msg.err
			return m, m.doTick()
		}
		m.Err = nil
		m.Disks = msg.disks
		m.tbl.SetRows(diskRows(msg.disks))
		return m, m.doTick()

	case spinner.TickMsg:
		if m.loaded {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func diskRows(disks []DiskUsage) []table.Row {
	rows := make([]table.Row, 0, len(disks))
	for _, d := range disks {
		rows = append(rows, table.Row{
			d.Mount,
			d.Fstype,
			ui.HumanBytes(d.Total),
			ui.HumanBytes(d.Used),
			ui.HumanBytes(d.Free),
			percent(d.UsedPercent),
		})
	}
	return rows
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderView()
}
