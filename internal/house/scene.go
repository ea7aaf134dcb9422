package house

import (
	"fmt"
	"io"
	"time"

	"github.com/casita-home/casita-core/internal/device"
)

// Scene progress lines written to the console.
const (
	sceneRunning = "🤖 Ejecutando escena automática..."
	sceneAlert   = "🚨 Movimiento detectado → Encendiendo luces y cámaras..."
	sceneIdle    = "✅ No se detectó movimiento. La casa permanece en modo reposo."
)

// SceneReport records the outcome of one scene evaluation, for history
// logging and telemetry.
type SceneReport struct {
	// TriggeredAt is when the scene was evaluated.
	TriggeredAt time.Time `json:"triggered_at"`

	// MotionDetected is the motion snapshot the scene acted on.
	MotionDetected bool `json:"motion_detected"`

	// ActivatedIDs lists the devices powered on, in insertion order.
	// Empty when no motion was detected.
	ActivatedIDs []int `json:"activated_ids"`
}

// RunScene evaluates the motion scene once.
//
// The motion snapshot is taken at call time: any motion-detecting device
// reporting motion triggers the scene (OR-combined across sensors). When
// triggered, every scene-activatable device is powered on, including
// devices already on, which re-randomises a light's brightness and keeps
// a camera recording. Without motion nothing is mutated. The snapshot is
// not recomputed after devices change.
//
// Progress lines go to w; the returned report describes what happened.
func (h *House) RunScene(w io.Writer) (*SceneReport, error) {
	if _, err := fmt.Fprintln(w, sceneRunning); err != nil {
		return nil, fmt.Errorf("writing scene line: %w", err)
	}

	report := &SceneReport{
		TriggeredAt:    time.Now().UTC(),
		MotionDetected: h.anyMotion(),
	}

	if !report.MotionDetected {
		if _, err := fmt.Fprintln(w, sceneIdle); err != nil {
			return nil, fmt.Errorf("writing scene line: %w", err)
		}
		h.logger.Info("scene idle, no motion detected")
		return report, nil
	}

	if _, err := fmt.Fprintln(w, sceneAlert); err != nil {
		return nil, fmt.Errorf("writing scene line: %w", err)
	}

	for _, d := range h.devices {
		if !device.Has(d, device.CapSceneActivate) {
			continue
		}
		d.PowerOn()
		report.ActivatedIDs = append(report.ActivatedIDs, d.ID())
	}

	h.logger.Info("scene activated",
		"motion", true,
		"devices_activated", len(report.ActivatedIDs),
	)
	return report, nil
}

// anyMotion reports whether any motion-detecting device currently holds
// a positive motion snapshot.
func (h *House) anyMotion() bool {
	for _, d := range h.devices {
		if !device.Has(d, device.CapMotionDetect) {
			continue
		}
		if reporter, ok := d.(device.MotionReporter); ok && reporter.MotionDetected() {
			return true
		}
	}
	return false
}
