// Package gameclock models the in-game clock: an absolute in-game timestamp
// advancing faster than wall time by a configurable multiplier. The tick loop
// that drives it lives outside the core; this package only converts and
// notifies.
package gameclock

import (
	"time"
)

const DefaultMultiplier = 24.0

type Config struct {
	// CurrentTime is the in-game time, ISO-8601.
	CurrentTime string  `json:"current_time"`
	Multiplier  float64 `json:"multiplier"`
}

// TickHandler receives the new in-game time after an intentional advance.
type TickHandler func(now time.Time)

type Clock struct {
	current    time.Time
	multiplier float64
	handlers   []TickHandler
}

func New(start time.Time, multiplier float64) *Clock {
	if multiplier <= 0 {
		multiplier = DefaultMultiplier
	}
	if start.IsZero() {
		start = time.Now().UTC()
	}
	return &Clock{current: start, multiplier: multiplier}
}

func FromConfig(cfg Config) *Clock {
	start, err := time.Parse(time.RFC3339Nano, cfg.CurrentTime)
	if err != nil {
		start = time.Time{}
	}
	return New(start, cfg.Multiplier)
}

// Restore resets the clock from a saved config, keeping registered handlers.
func (c *Clock) Restore(cfg Config) error {
	start, err := time.Parse(time.RFC3339Nano, cfg.CurrentTime)
	if err != nil {
		return err
	}
	c.current = start
	if cfg.Multiplier > 0 {
		c.multiplier = cfg.Multiplier
	}
	return nil
}

func (c *Clock) Config() Config {
	return Config{
		CurrentTime: c.current.Format(time.RFC3339Nano),
		Multiplier:  c.multiplier,
	}
}

func (c *Clock) Now() time.Time {
	return c.current
}

func (c *Clock) Multiplier() float64 {
	return c.multiplier
}

// OnTimeAdvanced registers a handler fired synchronously, in registration
// order, on every Advance.
func (c *Clock) OnTimeAdvanced(h TickHandler) {
	c.handlers = append(c.handlers, h)
}

// Advance moves the in-game clock forward by the given in-game duration and
// notifies handlers.
func (c *Clock) Advance(d time.Duration) time.Time {
	if d > 0 {
		c.current = c.current.Add(d)
	}
	for _, h := range c.handlers {
		h(c.current)
	}
	return c.current
}

// AdvanceReal moves the clock forward by a real-world duration, scaled by the
// multiplier.
func (c *Clock) AdvanceReal(real time.Duration) time.Time {
	return c.Advance(c.scale(real))
}

// GameTimeAfterReal returns the in-game timestamp reached after the given
// real-world duration passes, without advancing the clock.
func (c *Clock) GameTimeAfterReal(real time.Duration) time.Time {
	return c.current.Add(c.scale(real))
}

// RealTimeUntil converts the in-game span between two in-game timestamps back
// into real-world time. Returns zero when target is not after start.
func (c *Clock) RealTimeUntil(start, target time.Time) time.Duration {
	if !target.After(start) {
		return 0
	}
	return time.Duration(float64(target.Sub(start)) / c.multiplier)
}

func (c *Clock) scale(real time.Duration) time.Duration {
	return time.Duration(float64(real) * c.multiplier)
}
