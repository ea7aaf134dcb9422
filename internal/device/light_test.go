package device

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

func TestLight_PowerOn(t *testing.T) {
	light := NewLight(1, rand.New(rand.NewSource(1)))

	// Draw many readings; every one must land in [30,100].
	for i := 0; i < 500; i++ {
		light.PowerOn()

		if !light.Powered() {
			t.Fatal("light not powered after PowerOn()")
		}
		if light.Status() != StatusOn {
			t.Errorf("Status() = %q, want %q", light.Status(), StatusOn)
		}
		if b := light.Brightness(); b < minBrightness || b > maxBrightness {
			t.Fatalf("Brightness() = %d, want %d-%d", b, minBrightness, maxBrightness)
		}
	}
}

func TestLight_PowerOff(t *testing.T) {
	light := NewLight(1, rand.New(rand.NewSource(1)))
	light.PowerOn()
	light.PowerOff()

	if light.Powered() {
		t.Error("light still powered after PowerOff()")
	}
	if light.Status() != StatusOff {
		t.Errorf("Status() = %q, want %q", light.Status(), StatusOff)
	}
	if light.Brightness() != 0 {
		t.Errorf("Brightness() = %d, want 0", light.Brightness())
	}
}

func TestLight_PowerOffIdempotent(t *testing.T) {
	light := NewLight(1, rand.New(rand.NewSource(1)))
	light.PowerOn()

	light.PowerOff()
	light.PowerOff()

	if light.Powered() || light.Brightness() != 0 {
		t.Errorf("after double PowerOff(): powered=%t brightness=%d, want false 0",
			light.Powered(), light.Brightness())
	}
}

func TestLight_PowerOnRedrawsBrightness(t *testing.T) {
	// A fixed seed makes the brightness sequence reproducible: the same
	// seed on a second light must yield the same readings in order.
	a := NewLight(1, rand.New(rand.NewSource(7)))
	b := NewLight(2, rand.New(rand.NewSource(7)))

	for i := 0; i < 20; i++ {
		a.PowerOn()
		b.PowerOn()
		if a.Brightness() != b.Brightness() {
			t.Fatalf("reading %d: brightness %d != %d with equal seeds",
				i, a.Brightness(), b.Brightness())
		}
	}
}

func TestLight_Describe(t *testing.T) {
	light := NewLight(4, rand.New(rand.NewSource(1)))

	t.Run("off", func(t *testing.T) {
		got := light.Describe()
		want := "[LuzInteligente #4] Estado: Apagado | Intensidad: 0%"
		if got != want {
			t.Errorf("Describe() = %q, want %q", got, want)
		}
	})

	t.Run("on", func(t *testing.T) {
		light.PowerOn()
		got := light.Describe()
		wantPrefix := "[LuzInteligente #4] Estado: Encendido | Intensidad: "
		if !strings.HasPrefix(got, wantPrefix) {
			t.Errorf("Describe() = %q, want prefix %q", got, wantPrefix)
		}
		wantSuffix := fmt.Sprintf("%d%%", light.Brightness())
		if !strings.HasSuffix(got, wantSuffix) {
			t.Errorf("Describe() = %q, want suffix %q", got, wantSuffix)
		}
	})

	t.Run("does not mutate", func(t *testing.T) {
		before := light.Brightness()
		_ = light.Describe()
		if light.Brightness() != before {
			t.Error("Describe() mutated brightness")
		}
	})
}

func TestLight_Snapshot(t *testing.T) {
	light := NewLight(1, rand.New(rand.NewSource(1)))
	light.PowerOn()

	snap := light.Snapshot()
	if snap["powered"] != true {
		t.Errorf("snapshot powered = %v, want true", snap["powered"])
	}
	if snap["brightness"] != light.Brightness() {
		t.Errorf("snapshot brightness = %v, want %d", snap["brightness"], light.Brightness())
	}
}
