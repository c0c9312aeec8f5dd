// Package registry maps game IDs to factories. Game packages register
// themselves in init(), so hosts can create games by ID without importing
// them directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/flappy-gargoyle/internal/core"
)

// Game is what every host drives: a fixed-tick simulation that paints into a
// terminal screen buffer.
type Game interface {
	// ID returns the unique identifier, also used as the score storage key.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new session. The RuntimeConfig carries the pixel
	// viewport, the RNG seed and the host's coin policy.
	Reset(cfg core.RuntimeConfig)

	// Step applies input and advances the simulation by one tick. The result
	// lists the events raised during the tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a game factory under id.
// Panics if id is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
