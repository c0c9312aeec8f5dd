package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-gargoyle/internal/config"
	"github.com/vovakirdan/flappy-gargoyle/internal/core"
	"github.com/vovakirdan/flappy-gargoyle/internal/games/gargoyle"
	"github.com/vovakirdan/flappy-gargoyle/internal/registry"
	"github.com/vovakirdan/flappy-gargoyle/internal/rewards"
	"github.com/vovakirdan/flappy-gargoyle/internal/share"
	"github.com/vovakirdan/flappy-gargoyle/internal/storage"
)

// Options configures a terminal session.
type Options struct {
	Store    *storage.Store   // Score storage; nil disables saving
	Tracker  *rewards.Tracker // Coin ledger; nil disables coins
	Config   config.GargoyleConfig
	Runtime  core.RuntimeConfig
	Logger   *log.Logger
	Wallet   string
	EmbedURL string
	GameID   string // Game started by AutoStart
	// AutoStart skips the menu and starts GameID right away.
	AutoStart bool
}

type viewState int

const (
	stateMenu viewState = iota
	statePlaying
	stateScores
)

// Model is the Bubble Tea model for one player: a menu between sessions and
// the game while a session runs.
type Model struct {
	opts   Options
	config core.RuntimeConfig
	logger *log.Logger
	wallet string
	keys   *KeyMapper
	screen *core.Screen
	state  viewState

	menu       Menu
	scoreboard ScoreboardModel
	status     string
	progress   rewards.Progress

	game       registry.Game
	gen        int // Session generation, bumped per session
	inputFrame core.InputFrame
	gameState  core.GameState
	lastScore  int
	hasScore   bool
	quitting   bool
}

// NewModel creates a terminal session model.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	if opts.GameID == "" {
		opts.GameID = gargoyle.GameID
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	m := Model{
		opts:       opts,
		config:     cfg,
		logger:     logger,
		wallet:     rewards.NormalizeWallet(opts.Wallet),
		keys:       NewKeyMapper(),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		inputFrame: core.NewInputFrame(),
	}
	m.refreshProgress()
	m.refreshMenu()
	return m
}

// Init starts the first session when AutoStart is set.
func (m Model) Init() tea.Cmd {
	if m.opts.AutoStart {
		return func() tea.Msg { return startMsg{gameID: m.opts.GameID} }
	}
	return nil
}

type startMsg struct{ gameID string }

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case startMsg:
		return m.startSession(msg.gameID)
	case TickMsg:
		return m.handleTick(msg)
	}

	switch m.state {
	case statePlaying:
		return m.updatePlaying(msg)
	case stateScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// handleResize resizes the screen buffer. A running session keeps its
// viewport; the cell surface rescales it to the new grid.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	if m.state == stateScores {
		sb, cmd := m.scoreboard.Update(msg)
		m.scoreboard = sb.(ScoreboardModel)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.keys.MapKeyToMenuAction(keyMsg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.menu.Move(-1)
	case MenuActionDown:
		m.menu.Move(1)
	case MenuActionSelect:
		if item, ok := m.menu.Selected(); ok {
			return m.choose(item.Choice)
		}
	}
	return m, nil
}

// choose runs a menu entry.
func (m Model) choose(c MenuChoice) (tea.Model, tea.Cmd) {
	m.status = ""
	switch c {
	case ChoicePlay:
		return m.startSession(gargoyle.GameID)
	case ChoicePractice:
		return m.startSession(gargoyle.PracticeGameID)
	case ChoiceClaim:
		m.claim()
	case ChoiceShare:
		m.status = "Share your run:\n" + share.ComposeURL(m.lastScore, m.opts.EmbedURL)
	case ChoiceScores:
		m.scoreboard = NewScoreboardModel(ScoreboardOptions{
			Store:   m.opts.Store,
			Tracker: m.opts.Tracker,
			Wallet:  m.wallet,
			Width:   m.config.ScreenW,
			Height:  m.config.ScreenH,
		})
		m.state = stateScores
		return m, nil
	case ChoiceReset:
		m.resetProgress()
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit
	}
	m.refreshMenu()
	return m, nil
}

func (m Model) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	sb, cmd := m.scoreboard.Update(msg)
	m.scoreboard = sb.(ScoreboardModel)
	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		m.state = stateMenu
		return m, nil
	}
	return m, cmd
}

func (m Model) updatePlaying(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if a := m.keys.MapMouse(msg); a != core.ActionNone {
			m.inputFrame.Set(a)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+s" {
			m.saveScreenshot()
			return m, nil
		}

		action, isQuit := m.keys.MapKey(msg)
		if isQuit {
			m.quitting = true
			m.gen++
			return m, tea.Quit
		}

		switch {
		case m.gameState.GameOver && action == core.ActionRestart:
			return m.startSession(m.game.ID())
		case action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused),
			action == core.ActionConfirm && m.gameState.GameOver:
			m.leaveSession()
			return m, nil
		case action != core.ActionNone:
			m.inputFrame.Set(action)
		}
	}
	return m, nil
}

// startSession creates a fresh game and schedules its first tick.
func (m Model) startSession(gameID string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(gameID)
	if err != nil {
		m.status = err.Error()
		m.state = stateMenu
		return m, nil
	}

	m.refreshProgress()
	cfg := m.config
	cfg.ViewportW, cfg.ViewportH = m.opts.Config.Viewport(cfg.ScreenW, cfg.ScreenH)
	cfg.Seed = time.Now().UnixNano()
	if m.opts.Runtime.Seed != 0 {
		cfg.Seed = m.opts.Runtime.Seed
	}
	cfg.DailyCap = m.dailyCap()
	cfg.CoinsSoFar = m.progress.Total
	game.Reset(cfg)

	m.game = game
	m.gameState = game.State()
	m.inputFrame.Clear()
	m.state = statePlaying
	m.status = ""
	m.gen++
	return m, tickCmd(m.config.TickRate, m.gen)
}

// leaveSession returns to the menu. Pending ticks for the session are
// dropped by generation.
func (m *Model) leaveSession() {
	m.gen++
	m.game = nil
	m.state = stateMenu
	m.refreshProgress()
	m.refreshMenu()
}

// handleTick processes simulation ticks.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.state != statePlaying || m.game == nil {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	for _, ev := range result.Events {
		switch ev.Kind {
		case core.EventCoinCollected:
			m.recordCoin()
		case core.EventGameOver:
			m.finish(ev.Score)
		}
	}

	if m.gameState.GameOver {
		return m, nil
	}
	return m, tickCmd(m.config.TickRate, m.gen)
}

// recordCoin credits one coin to the ledger. Persistence is best effort.
func (m *Model) recordCoin() {
	if m.opts.Tracker == nil || m.game == nil || m.game.ID() == gargoyle.PracticeGameID {
		return
	}
	p, _, err := m.opts.Tracker.RecordCoin(context.Background(), m.wallet)
	if err != nil {
		m.logger.Warn("could not record coin", "wallet", m.wallet, "err", err)
		return
	}
	m.progress = p
}

// finish saves the final score. Persistence is best effort.
func (m *Model) finish(score int) {
	m.lastScore = score
	m.hasScore = true
	if m.opts.Store == nil || score <= 0 {
		return
	}
	if _, err := m.opts.Store.SaveScore(m.game.ID(), m.wallet, score); err != nil {
		m.logger.Warn("could not save score", "game", m.game.ID(), "err", err)
	}
}

func (m *Model) claim() {
	if m.opts.Tracker == nil {
		return
	}
	c, err := m.opts.Tracker.Claim(context.Background(), m.wallet)
	switch {
	case errors.Is(err, rewards.ErrNothingToClaim):
		m.status = "Nothing to claim yet. Collect some coins first!"
	case err != nil:
		m.logger.Error("claim failed", "wallet", m.wallet, "err", err)
		m.status = "Claim failed, try again later."
	default:
		m.status = fmt.Sprintf("Claimed %d coins (%s base units), claim %s", c.Coins, c.Amount.String(), c.ID)
	}
	m.refreshProgress()
}

func (m *Model) resetProgress() {
	if m.opts.Tracker == nil {
		return
	}
	p, err := m.opts.Tracker.Reset(context.Background(), m.wallet)
	if err != nil {
		m.logger.Error("reset failed", "wallet", m.wallet, "err", err)
		m.status = "Reset failed."
		return
	}
	m.progress = p
	m.status = "Today's coins were reset."
}

func (m *Model) refreshProgress() {
	if m.opts.Tracker == nil {
		m.progress = rewards.Progress{Wallet: m.wallet}
		return
	}
	p, err := m.opts.Tracker.Today(context.Background(), m.wallet)
	if err != nil {
		m.logger.Warn("could not load progress", "wallet", m.wallet, "err", err)
		return
	}
	m.progress = p
}

func (m *Model) refreshMenu() {
	m.menu.SetItems(BuildMenu(MenuState{
		Claimable: m.progress.Claimable,
		LastScore: m.lastScore,
		HasScore:  m.hasScore,
		Ledger:    m.opts.Tracker != nil,
		Scores:    m.opts.Store != nil,
	}))
}

func (m Model) dailyCap() int {
	if m.opts.Tracker != nil {
		return m.opts.Tracker.DailyCap()
	}
	return m.opts.Config.Coins.DailyCap
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case statePlaying:
		m.game.Render(m.screen)
		return RenderScreen(m.screen)
	case stateScores:
		return m.scoreboard.View()
	}

	info := []string{fmt.Sprintf("Wallet: %s", m.wallet)}
	if m.opts.Tracker != nil {
		info = append(info, fmt.Sprintf("Coins today: %d/%d  |  Unclaimed: %d",
			m.progress.Total, m.dailyCap(), m.progress.Claimable))
	}
	if m.hasScore {
		info = append(info, fmt.Sprintf("Last score: %d", m.lastScore))
	}
	return m.menu.View(m.config.ScreenW, info, m.status)
}

// Run starts the Bubble Tea program for a local terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
