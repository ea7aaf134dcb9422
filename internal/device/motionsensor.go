package device

import (
	"fmt"
	"math/rand"
	"time"
)

// MotionSensor is a motion detector.
//
// The motion flag is a snapshot captured at power-on (a uniform random
// boolean, simulating a detection sweep). It is forced to false at
// power-off and is never live-updated between power transitions.
type MotionSensor struct {
	base
	rng            *rand.Rand
	motionDetected bool
}

// NewMotionSensor creates a motion sensor with the given id, powered off
// with no motion detected.
//
// The random source drives the simulated detection sweep. Passing nil
// falls back to a time-seeded source.
func NewMotionSensor(id int, rng *rand.Rand) *MotionSensor {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &MotionSensor{
		base: base{id: id},
		rng:  rng,
	}
}

// Kind returns KindMotionSensor.
func (s *MotionSensor) Kind() Kind {
	return KindMotionSensor
}

// Capabilities returns the sensor's capability set.
func (s *MotionSensor) Capabilities() []Capability {
	return []Capability{CapOnOff, CapMotionDetect}
}

// PowerOn switches the sensor on and captures a fresh motion snapshot.
func (s *MotionSensor) PowerOn() {
	s.setPowered(true)
	s.motionDetected = s.rng.Intn(2) == 1
}

// PowerOff switches the sensor off and clears the motion snapshot.
func (s *MotionSensor) PowerOff() {
	s.setPowered(false)
	s.motionDetected = false
}

// MotionDetected reports the motion snapshot from the last power-on.
func (s *MotionSensor) MotionDetected() bool {
	return s.motionDetected
}

// Describe returns the sensor's status line.
func (s *MotionSensor) Describe() string {
	return fmt.Sprintf("[%s #%d] Estado: %s | Movimiento detectado: %t",
		KindMotionSensor.Label(), s.ID(), s.Status(), s.motionDetected)
}

// Snapshot returns the sensor's fields for telemetry.
func (s *MotionSensor) Snapshot() Snapshot {
	return Snapshot{
		"powered":         s.Powered(),
		"motion_detected": s.motionDetected,
	}
}
