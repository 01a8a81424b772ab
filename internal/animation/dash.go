// Package animation drives the marching-ants effect of route dashed lines.
package animation

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// DashArrayProperty is the paint property rewritten on every step.
const DashArrayProperty = "line-dasharray"

// DefaultFrame is the real-time length of one animation step.
const DefaultFrame = 50 * time.Millisecond

// DashSequence is the fixed dash pattern cycle; frame 0 is also the
// initial pattern of every dashed layer.
var DashSequence = [14][]float64{
	{0, 4, 3},
	{0.5, 4, 2.5},
	{1, 4, 2},
	{1.5, 4, 1.5},
	{2, 4, 1},
	{2.5, 4, 0.5},
	{3, 4, 0},
	{0, 0.5, 3, 3.5},
	{0, 1, 3, 3},
	{0, 1.5, 3, 2.5},
	{0, 2, 3, 2},
	{0, 2.5, 3, 1.5},
	{0, 3, 3, 1},
	{0, 3.5, 3, 0.5},
}

// Frame returns a copy of dash pattern i.
func Frame(i int) []float64 {
	return slices.Clone(DashSequence[i%len(DashSequence)])
}

// StepAt maps elapsed time to a sequence index.
func StepAt(elapsed, frame time.Duration) int {
	if frame <= 0 {
		frame = DefaultFrame
	}
	if elapsed < 0 {
		elapsed = 0
	}
	return int((elapsed / frame) % time.Duration(len(DashSequence)))
}

// PaintTarget is the part of the map surface the animator writes to.
type PaintTarget interface {
	SetPaintProperty(layerID, property string, value any) error
	Alive() bool
}

// Animator steps every registered dashed layer of one surface.
type Animator struct {
	target PaintTarget
	frame  time.Duration

	mu     sync.Mutex
	layers []string
	step   int
}

func NewAnimator(target PaintTarget, frame time.Duration) *Animator {
	if frame <= 0 {
		frame = DefaultFrame
	}
	return &Animator{target: target, frame: frame}
}

// Add registers a dashed layer.
func (a *Animator) Add(layerID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.layers = append(a.layers, layerID)
}

// Step returns the index currently painted.
func (a *Animator) Step() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.step
}

// Tick paints the frame for elapsed when it differs from the current one.
// A failing layer is logged and skipped. Nothing is written once the
// target is gone. Tick reports whether the step changed.
func (a *Animator) Tick(elapsed time.Duration) bool {
	if a.target == nil || !a.target.Alive() {
		return false
	}

	next := StepAt(elapsed, a.frame)

	a.mu.Lock()
	if next == a.step {
		a.mu.Unlock()
		return false
	}
	a.step = next
	layers := slices.Clone(a.layers)
	a.mu.Unlock()

	for _, id := range layers {
		if !a.target.Alive() {
			return true
		}
		if err := a.target.SetPaintProperty(id, DashArrayProperty, Frame(next)); err != nil {
			log.Warn().Err(err).Str("layer", id).Msg("dash animation step failed")
		}
	}
	return true
}

// Run loops until ctx is done or the target is torn down.
func (a *Animator) Run(ctx context.Context) {
	start := time.Now()
	ticker := time.NewTicker(a.frame)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if a.target == nil || !a.target.Alive() {
				return
			}
			a.Tick(time.Since(start))
		}
	}
}
