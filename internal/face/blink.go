package face

import (
	"math/rand"
	"time"
)

// blinkProfile is the closing half of a blink; the opening half replays
// it in reverse.
var blinkProfile = []float64{0.8, 0.5, 0.2, 0.0}

// Timing collects the animation delays in one place so tests can run
// the loop at a scaled-down pace.
type Timing struct {
	Tick            time.Duration // delay between redraws
	BlinkStep       time.Duration // delay between blink profile steps
	BlinkHold       time.Duration // base pause at full closure
	BlinkHoldJitter time.Duration // extra random pause at full closure
	FirstBlinkMin   time.Duration // autonomous blink window after start
	FirstBlinkMax   time.Duration
	IntervalMin     time.Duration // steady-state autonomous blink window
	IntervalMax     time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		Tick:            120 * time.Millisecond,
		BlinkStep:       40 * time.Millisecond,
		BlinkHold:       80 * time.Millisecond,
		BlinkHoldJitter: 120 * time.Millisecond,
		FirstBlinkMin:   500 * time.Millisecond,
		FirstBlinkMax:   2500 * time.Millisecond,
		IntervalMin:     2 * time.Second,
		IntervalMax:     5500 * time.Millisecond,
	}
}

// runBlink steps the shared openness through one close-and-reopen
// cycle. Each setOpenness call is atomic on its own; all sleeps happen
// outside the output lock so redraws keep their cadence mid-blink.
// Ends at exactly 1.0 regardless of the profile's last step.
func runBlink(setOpenness func(float64), t Timing, rng *rand.Rand) {
	for _, s := range blinkProfile {
		setOpenness(s)
		time.Sleep(t.BlinkStep)
	}

	hold := t.BlinkHold
	if t.BlinkHoldJitter > 0 {
		hold += time.Duration(rng.Int63n(int64(t.BlinkHoldJitter)))
	}
	time.Sleep(hold)

	for i := len(blinkProfile) - 1; i >= 0; i-- {
		setOpenness(blinkProfile[i])
		time.Sleep(t.BlinkStep)
	}
	setOpenness(1.0)
}
