// Package desktop runs Flappy Gargoyle in a window with Ebiten.
package desktop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/flappy-gargoyle/internal/config"
	"github.com/vovakirdan/flappy-gargoyle/internal/core"
	"github.com/vovakirdan/flappy-gargoyle/internal/games/gargoyle"
	"github.com/vovakirdan/flappy-gargoyle/internal/render"
	ebitenrender "github.com/vovakirdan/flappy-gargoyle/internal/render/ebiten"
	"github.com/vovakirdan/flappy-gargoyle/internal/rewards"
	"github.com/vovakirdan/flappy-gargoyle/internal/share"
	"github.com/vovakirdan/flappy-gargoyle/internal/storage"
)

// DefaultHeight is the window height used when Options.Height is unset.
const DefaultHeight = 720

// Options configures the desktop host.
type Options struct {
	Config   config.GargoyleConfig
	Assets   *render.Assets   // Sprites; nil paints fallback shapes only
	Store    *storage.Store   // Score storage; nil disables saving
	Tracker  *rewards.Tracker // Coin ledger; nil disables coins
	Logger   *log.Logger
	Wallet   string
	Seed     int64 // 0 seeds each session from the clock
	Height   int
	EmbedURL string
}

type phase int

const (
	phaseMenu phase = iota
	phasePlaying
)

// Game implements ebiten.Game: a start menu between sessions and the
// gargoyle game while one runs.
type Game struct {
	opts   Options
	logger *log.Logger
	wallet string
	width  int
	height int

	game    *gargoyle.Game
	painter *gargoyle.Painter
	cache   *ebitenrender.ImageCache
	phase   phase

	progress  rewards.Progress
	lastScore int
	hasScore  bool
	status    string
}

// New creates the desktop game.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	height := opts.Height
	if height <= 0 {
		height = DefaultHeight
	}
	width := opts.Config.Display.MaxWidth
	if width <= 0 {
		width = config.DefaultGargoyleConfig().Display.MaxWidth
	}

	g := &Game{
		opts:    opts,
		logger:  logger,
		wallet:  rewards.NormalizeWallet(opts.Wallet),
		width:   width,
		height:  height,
		painter: gargoyle.NewPainter(opts.Config.ToParams()),
		cache:   ebitenrender.NewImageCache(),
	}
	g.refreshProgress()
	return g
}

// Update advances one frame. The simulation ticks only while a session is
// active.
func (g *Game) Update() error {
	in := pollInput()
	if in.quit {
		return ebiten.Termination
	}

	switch g.phase {
	case phasePlaying:
		g.updatePlaying(in)
	default:
		g.updateMenu(in)
	}
	return nil
}

func (g *Game) updateMenu(in input) {
	switch {
	case in.flap, in.confirm:
		g.start()
	case in.claim:
		g.claim()
	case in.reset:
		g.resetProgress()
	case in.share && g.hasScore:
		url := share.ComposeURL(g.lastScore, g.opts.EmbedURL)
		g.status = "Share link printed to the log"
		g.logger.Info("share your run", "url", url)
	}
}

func (g *Game) updatePlaying(in input) {
	frame := core.NewInputFrame()
	if in.flap {
		frame.Set(core.ActionJump)
	}
	if in.pause {
		frame.Set(core.ActionPause)
	}

	result := g.game.Step(frame)
	for _, ev := range result.Events {
		switch ev.Kind {
		case core.EventCoinCollected:
			g.recordCoin()
		case core.EventGameOver:
			g.finish(ev.Score)
		}
	}
}

// start begins a new session sized to the window.
func (g *Game) start() {
	g.refreshProgress()

	seed := g.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := core.DefaultConfig()
	cfg.ViewportW = float64(g.width)
	cfg.ViewportH = float64(g.height)
	cfg.Seed = seed
	cfg.CoinsSoFar = g.progress.Total
	cfg.DailyCap = g.opts.Config.Coins.DailyCap
	if g.opts.Tracker != nil {
		cfg.DailyCap = g.opts.Tracker.DailyCap()
	}

	g.game = gargoyle.New()
	g.game.Reset(cfg)
	g.phase = phasePlaying
	g.status = ""
}

func (g *Game) recordCoin() {
	if g.opts.Tracker == nil {
		return
	}
	p, _, err := g.opts.Tracker.RecordCoin(context.Background(), g.wallet)
	if err != nil {
		g.logger.Warn("could not record coin", "wallet", g.wallet, "err", err)
		return
	}
	g.progress = p
}

func (g *Game) finish(score int) {
	g.lastScore = score
	g.hasScore = true
	g.phase = phaseMenu
	if g.opts.Store != nil && score > 0 {
		if _, err := g.opts.Store.SaveScore(gargoyle.GameID, g.wallet, score); err != nil {
			g.logger.Warn("could not save score", "err", err)
		}
	}
	g.refreshProgress()
}

func (g *Game) claim() {
	if g.opts.Tracker == nil {
		return
	}
	c, err := g.opts.Tracker.Claim(context.Background(), g.wallet)
	switch {
	case errors.Is(err, rewards.ErrNothingToClaim):
		g.status = "Nothing to claim yet"
	case err != nil:
		g.logger.Error("claim failed", "wallet", g.wallet, "err", err)
		g.status = "Claim failed"
	default:
		g.status = fmt.Sprintf("Claimed %d coins", c.Coins)
		g.logger.Info("claim filed", "id", c.ID, "coins", c.Coins, "amount", c.Amount.String())
	}
	g.refreshProgress()
}

func (g *Game) resetProgress() {
	if g.opts.Tracker == nil {
		return
	}
	p, err := g.opts.Tracker.Reset(context.Background(), g.wallet)
	if err != nil {
		g.logger.Error("reset failed", "wallet", g.wallet, "err", err)
		return
	}
	g.progress = p
	g.status = "Today's coins were reset"
}

func (g *Game) refreshProgress() {
	if g.opts.Tracker == nil {
		g.progress = rewards.Progress{Wallet: g.wallet}
		return
	}
	p, err := g.opts.Tracker.Today(context.Background(), g.wallet)
	if err != nil {
		g.logger.Warn("could not load progress", "wallet", g.wallet, "err", err)
		return
	}
	g.progress = p
}

// Draw paints the last session frame, with the menu on top between sessions.
func (g *Game) Draw(screen *ebiten.Image) {
	s := ebitenrender.New(screen, g.cache)

	if g.game != nil {
		g.painter.Paint(s, g.game.Engine().Snapshot(), g.opts.Assets)
	} else {
		w, h := s.Size()
		s.FillRect(0, 0, w, h, gargoyle.ColorBackground)
	}

	if g.phase == phaseMenu {
		g.drawMenu(s)
	} else if g.game.State().Paused {
		s.DrawText(g.width/2, g.height/2, "PAUSED", render.AlignCenter, render.TextStyle{Color: gargoyle.ColorWhite, Large: true})
	}
}

func (g *Game) drawMenu(s render.Surface) {
	cx := g.width / 2
	y := g.height/2 - 80
	title := render.TextStyle{Color: gargoyle.ColorCoin, Large: true}
	body := render.TextStyle{Color: gargoyle.ColorWhite}

	s.DrawText(cx, y, "FLAPPY GARGOYLE", render.AlignCenter, title)
	y += 40
	if g.hasScore {
		s.DrawText(cx, y, fmt.Sprintf("Score: %d", g.lastScore), render.AlignCenter, body)
		y += 24
	}
	if g.opts.Tracker != nil {
		s.DrawText(cx, y, fmt.Sprintf("Coins today: %d/%d  Unclaimed: %d",
			g.progress.Total, g.opts.Tracker.DailyCap(), g.progress.Claimable), render.AlignCenter, body)
		y += 24
	}
	y += 16
	for _, line := range g.menuLines() {
		s.DrawText(cx, y, line, render.AlignCenter, body)
		y += 20
	}
	if g.status != "" {
		s.DrawText(cx, y+16, g.status, render.AlignCenter, render.TextStyle{Color: gargoyle.ColorCoin})
	}
}

func (g *Game) menuLines() []string {
	lines := []string{"Space / Click: start"}
	if g.opts.Tracker != nil {
		lines = append(lines, "C: claim coins", "X: reset today's coins")
	}
	if g.hasScore {
		lines = append(lines, "S: share score")
	}
	return append(lines, "Esc: quit")
}

// Layout keeps a fixed logical size; Ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it closes.
func Run(opts Options) error {
	g := New(opts)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle("Flappy Gargoyle")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if fps := opts.Config.Display.FPS; fps > 0 {
		ebiten.SetTPS(fps)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
