package face

import (
	"fmt"
	"io"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"
)

// Animator owns the eye openness level and the output mutex it shares
// with the session loop. One background goroutine redraws the face
// every tick and runs blink sequences, scheduled or requested.
type Animator struct {
	mu  sync.Mutex // output mutex; also guards level
	out io.Writer

	level float64

	auto  atomic.Bool // autonomous blink gate
	blink atomic.Bool // forced blink request, coalescing

	timing Timing
	rng    *rand.Rand

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func NewAnimator(out io.Writer, timing Timing) *Animator {
	a := &Animator{
		out:    out,
		level:  1.0,
		timing: timing,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	a.auto.Store(true)
	return a
}

// Start spawns the animation loop. Call once per process.
func (a *Animator) Start() {
	go a.run()
}

// Stop asks the loop to exit and waits briefly for it. The wait is
// bounded; after a second the caller proceeds regardless, so shutdown
// never hangs on the animator.
func (a *Animator) Stop() {
	a.stopOnce.Do(func() { close(a.stop) })
	select {
	case <-a.done:
	case <-time.After(time.Second):
	}
}

// TriggerBlink requests one out-of-schedule blink. Calls landing before
// the loop consumes the flag coalesce into a single blink.
func (a *Animator) TriggerBlink() {
	a.blink.Store(true)
}

// SetAuto gates the autonomous blink schedule. Takes effect on the next
// tick; disabling does not trigger a blink.
func (a *Animator) SetAuto(enabled bool) {
	a.auto.Store(enabled)
}

// WithOutputLock runs fn while holding the output mutex, so a prompt or
// response write never interleaves with a frame redraw. The lock is
// released on every exit path, panics included.
func (a *Animator) WithOutputLock(fn func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fn()
}

func (a *Animator) setLevel(v float64) {
	a.mu.Lock()
	a.level = v
	a.mu.Unlock()
}

func (a *Animator) currentLevel() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.level
}

func (a *Animator) uniform(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(a.rng.Int63n(int64(max-min)))
}

func (a *Animator) run() {
	defer close(a.done)

	nextAuto := time.Now().Add(a.uniform(a.timing.FirstBlinkMin, a.timing.FirstBlinkMax))
	for {
		select {
		case <-a.stop:
			return
		default:
		}

		if a.auto.Load() && !time.Now().Before(nextAuto) {
			runBlink(a.setLevel, a.timing, a.rng)
			nextAuto = time.Now().Add(a.uniform(a.timing.IntervalMin, a.timing.IntervalMax))
		} else if a.blink.CompareAndSwap(true, false) {
			// A requested blink does not reschedule the autonomous one.
			runBlink(a.setLevel, a.timing, a.rng)
		}

		a.redraw()

		select {
		case <-a.stop:
			return
		case <-time.After(a.timing.Tick):
		}
	}
}

// redraw wipes the screen and writes the current frame as one atomic
// operation under the output mutex. Always a full clear, so a narrower
// frame never leaves stale characters behind.
func (a *Animator) redraw() {
	a.mu.Lock()
	defer a.mu.Unlock()
	fmt.Fprint(a.out, ScreenClear)
	fmt.Fprint(a.out, Render(a.level))
	fmt.Fprint(a.out, "\n\n")
}
