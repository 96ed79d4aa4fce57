package visual

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// FPS is the gauge animation frame rate.
const FPS = 30

// FrameInterval is the delay between animation frames.
const FrameInterval = time.Second / FPS

const settleEpsilon = 0.001

// Animator eases the drawn gauge fraction toward its target.
type Animator struct {
	spring   harmonica.Spring
	pos      float64
	velocity float64
	target   float64
}

func NewAnimator() *Animator {
	return &Animator{
		spring: harmonica.NewSpring(harmonica.FPS(FPS), 6.0, 1.0),
	}
}

// SetTarget moves the goal. The current position is kept so the bar glides.
func (a *Animator) SetTarget(fraction float64) {
	a.target = clamp(fraction*100) / 100
}

// Step advances one frame and returns the new position.
func (a *Animator) Step() float64 {
	a.pos, a.velocity = a.spring.Update(a.pos, a.velocity, a.target)
	if a.Settled() {
		a.pos = a.target
		a.velocity = 0
	}
	return a.pos
}

// Settled reports whether another frame would be visually indistinguishable.
func (a *Animator) Settled() bool {
	return math.Abs(a.pos-a.target) < settleEpsilon && math.Abs(a.velocity) < settleEpsilon
}

func (a *Animator) Position() float64 {
	return a.pos
}

func (a *Animator) Target() float64 {
	return a.target
}
