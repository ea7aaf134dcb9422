package device

import (
	"math/rand"
	"testing"
)

func TestMotionSensor_PowerOnCapturesSnapshot(t *testing.T) {
	sensor := NewMotionSensor(5, rand.New(rand.NewSource(1)))

	// Uniform booleans: over enough sweeps both outcomes must appear.
	sawTrue, sawFalse := false, false
	for i := 0; i < 200; i++ {
		sensor.PowerOn()
		if !sensor.Powered() {
			t.Fatal("sensor not powered after PowerOn()")
		}
		if sensor.MotionDetected() {
			sawTrue = true
		} else {
			sawFalse = true
		}
	}
	if !sawTrue || !sawFalse {
		t.Errorf("motion snapshots not uniform: sawTrue=%t sawFalse=%t", sawTrue, sawFalse)
	}
}

func TestMotionSensor_PowerOffClearsSnapshot(t *testing.T) {
	sensor := NewMotionSensor(5, rand.New(rand.NewSource(1)))

	// Force a true snapshot, then verify power-off clears it.
	for !sensor.MotionDetected() {
		sensor.PowerOn()
	}

	sensor.PowerOff()
	if sensor.Powered() {
		t.Error("sensor still powered after PowerOff()")
	}
	if sensor.MotionDetected() {
		t.Error("motion snapshot survived PowerOff()")
	}

	sensor.PowerOff()
	if sensor.Powered() || sensor.MotionDetected() {
		t.Error("double PowerOff() changed sensor state")
	}
}

func TestMotionSensor_DeterministicWithFixedSeed(t *testing.T) {
	a := NewMotionSensor(1, rand.New(rand.NewSource(99)))
	b := NewMotionSensor(2, rand.New(rand.NewSource(99)))

	for i := 0; i < 50; i++ {
		a.PowerOn()
		b.PowerOn()
		if a.MotionDetected() != b.MotionDetected() {
			t.Fatalf("sweep %d: snapshots diverge with equal seeds", i)
		}
	}
}

func TestMotionSensor_Describe(t *testing.T) {
	sensor := NewMotionSensor(5, rand.New(rand.NewSource(1)))

	want := "[SensorMovimiento #5] Estado: Apagado | Movimiento detectado: false"
	if got := sensor.Describe(); got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}
}

func TestMotionSensor_ImplementsMotionReporter(t *testing.T) {
	var d Device = NewMotionSensor(5, rand.New(rand.NewSource(1)))

	if _, ok := d.(MotionReporter); !ok {
		t.Error("MotionSensor does not implement MotionReporter")
	}
}
