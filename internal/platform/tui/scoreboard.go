package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-gargoyle/internal/games/gargoyle"
	"github.com/vovakirdan/flappy-gargoyle/internal/rewards"
	"github.com/vovakirdan/flappy-gargoyle/internal/storage"
)

const maxBoardRows = 100

// boardPane is one tab of the scoreboard.
type boardPane int

const (
	paneScores boardPane = iota
	panePractice
	paneClaims
)

func (p boardPane) title() string {
	switch p {
	case paneScores:
		return "Scores"
	case panePractice:
		return "Practice"
	default:
		return "Claims"
	}
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next tab"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev tab"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardOptions configures a ScoreboardModel.
type ScoreboardOptions struct {
	Store   *storage.Store
	Tracker *rewards.Tracker // nil hides the claims tab
	Wallet  string
	Width   int
	Height  int
}

// ScoreboardModel shows the leaderboards and the wallet's claim history.
type ScoreboardModel struct {
	opts       ScoreboardOptions
	wallet     string
	panes      []boardPane
	pane       int
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	summary    string // stats or progress line under the tabs
	empty      string
	loadErr    error
	quitting   bool
	goingBack  bool
	standalone bool // Back exits the program instead of returning to a menu
}

// NewScoreboardModel creates a scoreboard opened on the standard leaderboard.
func NewScoreboardModel(opts ScoreboardOptions) ScoreboardModel {
	m := ScoreboardModel{
		opts:   opts,
		wallet: rewards.NormalizeWallet(opts.Wallet),
		panes:  []boardPane{paneScores, panePractice},
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
	}
	if opts.Tracker != nil {
		m.panes = append(m.panes, paneClaims)
	}
	m.load()
	return m
}

// Pane returns the title of the visible tab.
func (m ScoreboardModel) Pane() string {
	return m.current().title()
}

// Rows returns the rows of the visible table.
func (m ScoreboardModel) Rows() []table.Row {
	return m.table.Rows()
}

func (m ScoreboardModel) current() boardPane {
	return m.panes[m.pane]
}

func (m *ScoreboardModel) load() {
	m.loadErr = nil
	m.summary = ""
	var (
		cols []table.Column
		rows []table.Row
	)
	switch p := m.current(); p {
	case paneScores, panePractice:
		gameID := gargoyle.GameID
		if p == panePractice {
			gameID = gargoyle.PracticeGameID
		}
		cols, rows = m.scoreRows(gameID)
		m.empty = "No scores recorded yet.\nFly through some pipes to set one!"
	case paneClaims:
		cols, rows = m.claimRows()
		m.empty = "No claims filed yet.\nCollect coins and claim them from the menu."
	}
	m.table = newBoardTable(cols, m.opts.Height)
	m.table.SetRows(rows)
}

func (m *ScoreboardModel) scoreRows(gameID string) ([]table.Column, []table.Row) {
	walletWidth := max(14, min(m.opts.Width-40, 42))
	cols := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Wallet", Width: walletWidth},
		{Title: "Date", Width: 14},
	}
	if m.opts.Store == nil {
		return cols, nil
	}
	scores, err := m.opts.Store.TopScores(gameID, maxBoardRows)
	if err != nil {
		m.loadErr = err
		return cols, nil
	}
	if stats, err := m.opts.Store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		m.summary = fmt.Sprintf("Best %d  |  Games %d  |  Average %.1f", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			shortWallet(s.Wallet, walletWidth),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return cols, rows
}

func (m *ScoreboardModel) claimRows() ([]table.Column, []table.Row) {
	cols := []table.Column{
		{Title: "Claim", Width: 10},
		{Title: "Coins", Width: 6},
		{Title: "Tokens", Width: 10},
		{Title: "Status", Width: 9},
		{Title: "Date", Width: 14},
	}
	ctx := context.Background()
	if p, err := m.opts.Tracker.Today(ctx, m.wallet); err == nil {
		m.summary = fmt.Sprintf("%s today: %d/%d coins, %d unclaimed",
			m.wallet, p.Total, m.opts.Tracker.DailyCap(), p.Claimable)
	}
	claims, err := m.opts.Tracker.Claims(ctx, m.wallet, maxBoardRows)
	if err != nil {
		m.loadErr = err
		return cols, nil
	}
	rows := make([]table.Row, len(claims))
	for i, c := range claims {
		rows[i] = table.Row{
			c.ID.String()[:8],
			fmt.Sprintf("%d", c.Coins),
			c.Amount.Shift(-rewards.TokenDecimals).String(),
			string(c.Status),
			c.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return cols, rows
}

func newBoardTable(cols []table.Column, height int) table.Model {
	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Next):
			m.pane = (m.pane + 1) % len(m.panes)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			m.pane = (m.pane + len(m.panes) - 1) % len(m.panes)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.opts.Width = msg.Width
		m.opts.Height = msg.Height
		m.help.Width = msg.Width
		m.load()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("FLAPPY GARGOYLE - HALL OF STONE", m.opts.Width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.opts.Width))
	b.WriteString("\n")

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if m.summary != "" {
		b.WriteString(centerText(dim.Render(m.summary), m.opts.Width))
	}
	b.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(box.Render(m.body()), m.opts.Width))

	b.WriteString("\n")
	b.WriteString(dim.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) tabs() string {
	idle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	active := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	parts := make([]string, len(m.panes))
	for i, p := range m.panes {
		if i == m.pane {
			parts[i] = active.Render(p.title())
		} else {
			parts[i] = idle.Render(p.title())
		}
	}
	return strings.Join(parts, " ")
}

func (m ScoreboardModel) body() string {
	empty := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)
	if m.loadErr != nil {
		return empty.Render("Could not load this board:\n" + m.loadErr.Error())
	}
	if len(m.table.Rows()) == 0 {
		return empty.Render(m.empty)
	}
	return m.table.View()
}

// shortWallet abbreviates long wallet addresses to fit n columns.
func shortWallet(w string, n int) string {
	if len(w) <= n || n < 8 {
		return w
	}
	keep := (n - 3) / 2
	return w[:keep] + "..." + w[len(w)-keep:]
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard as its own program.
func RunScoreboard(opts ScoreboardOptions) error {
	model := NewScoreboardModel(opts)
	model.standalone = true
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
