package device

import (
	"fmt"
	"math/rand"
	"time"
)

// Brightness bounds for a powered light, in percent.
// A powered light always reads a uniform value in [minBrightness, maxBrightness].
const (
	minBrightness = 30
	maxBrightness = 100
)

// Light is a dimmable smart light.
//
// Brightness is 0 while off. Each power-on draws a fresh uniform
// brightness in [30,100], including when the light was already on.
type Light struct {
	base
	rng        *rand.Rand
	brightness int
}

// NewLight creates a light with the given id, powered off at brightness 0.
//
// The random source drives the simulated brightness reading. Passing nil
// falls back to a time-seeded source; tests inject a fixed seed for
// deterministic readings.
func NewLight(id int, rng *rand.Rand) *Light {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Light{
		base: base{id: id},
		rng:  rng,
	}
}

// Kind returns KindLight.
func (l *Light) Kind() Kind {
	return KindLight
}

// Capabilities returns the light's capability set.
func (l *Light) Capabilities() []Capability {
	return []Capability{CapOnOff, CapDim, CapSceneActivate}
}

// PowerOn switches the light on and draws a fresh brightness reading.
func (l *Light) PowerOn() {
	l.setPowered(true)
	l.brightness = minBrightness + l.rng.Intn(maxBrightness-minBrightness+1)
}

// PowerOff switches the light off and resets brightness to 0.
func (l *Light) PowerOff() {
	l.setPowered(false)
	l.brightness = 0
}

// Brightness returns the current brightness percentage.
func (l *Light) Brightness() int {
	return l.brightness
}

// Describe returns the light's status line.
func (l *Light) Describe() string {
	return fmt.Sprintf("[%s #%d] Estado: %s | Intensidad: %d%%",
		KindLight.Label(), l.ID(), l.Status(), l.brightness)
}

// Snapshot returns the light's fields for telemetry.
func (l *Light) Snapshot() Snapshot {
	return Snapshot{
		"powered":    l.Powered(),
		"brightness": l.brightness,
	}
}
