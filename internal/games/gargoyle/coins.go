package gargoyle

import (
	"github.com/vovakirdan/flappy-gargoyle/internal/core"
)

// Coin is a collectible placed inside a pipe gap.
type Coin struct {
	X         float64 // Left edge
	Y         float64 // Top edge
	Size      float64
	Collected bool
}

// Center returns the coin's center point.
func (c Coin) Center() (float64, float64) {
	return c.X + c.Size/2, c.Y + c.Size/2
}

// CoinManager tracks coins in play and enforces collection geometry.
type CoinManager struct {
	coins  []Coin
	params Params
}

// NewCoinManager creates an empty coin manager.
func NewCoinManager(params Params) *CoinManager {
	return &CoinManager{
		coins:  make([]Coin, 0, 4),
		params: params,
	}
}

// Reset removes every coin.
func (cm *CoinManager) Reset() {
	cm.coins = cm.coins[:0]
}

// Place adds a coin centered in the gap of the given pipe, ahead of it.
func (cm *CoinManager) Place(p Pipe, viewportW float64) Coin {
	size := cm.params.CoinSize
	gapMid := p.GapTop + cm.params.GapHeight/2
	coin := Coin{
		X:    viewportW + cm.params.CoinSpawnOffset,
		Y:    gapMid - size/2,
		Size: size,
	}
	cm.coins = append(cm.coins, coin)
	return coin
}

// reach is the maximum center distance at which the actor picks a coin up.
func (cm *CoinManager) reach() float64 {
	return cm.params.ActorHitbox/2 + cm.params.CoinSize/2
}

// Update scrolls coins left and collects the ones the actor touches, up to
// room more coins. Once room is exhausted every remaining coin is dropped
// since no further pickups can count today.
func (cm *CoinManager) Update(actorX, actorY float64, room int) int {
	collected := 0
	reach := cm.reach()

	for i := range cm.coins {
		c := &cm.coins[i]
		c.X -= cm.params.Speed
		if c.Collected || collected >= room {
			continue
		}
		cx, cy := c.Center()
		if core.Distance(actorX, actorY, cx, cy) < reach {
			c.Collected = true
			collected++
		}
	}

	if collected >= room && collected > 0 {
		cm.coins = cm.coins[:0]
		return collected
	}

	valid := cm.coins[:0]
	for _, c := range cm.coins {
		if c.Collected || c.X+c.Size < -cm.params.CullMargin {
			continue
		}
		valid = append(valid, c)
	}
	cm.coins = valid

	return collected
}

// Coins returns the live coins. The slice is owned by the manager.
func (cm *CoinManager) Coins() []Coin {
	return cm.coins
}
