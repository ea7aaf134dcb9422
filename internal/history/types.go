package history

import (
	"time"

	"github.com/google/uuid"
)

// Run is one complete simulation pass: devices built, powered on,
// scene evaluated, final state shown.
type Run struct {
	ID          string     `json:"id"`
	Seed        int64      `json:"seed"`
	DeviceCount int        `json:"device_count"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Status      RunStatus  `json:"status"`
}

// RunStatus represents the state of a simulation run.
type RunStatus string

const (
	RunRunning   RunStatus = "running"
	RunCompleted RunStatus = "completed"
	RunFailed    RunStatus = "failed"
)

// SceneExecution records a single scene evaluation within a run.
//
// ActivatedIDs holds the device IDs powered on by the scene, in the
// order they were activated. It is empty when no motion was detected.
type SceneExecution struct {
	ID               string    `json:"id"`
	RunID            string    `json:"run_id"`
	TriggeredAt      time.Time `json:"triggered_at"`
	MotionDetected   bool      `json:"motion_detected"`
	DevicesActivated int       `json:"devices_activated"`
	ActivatedIDs     []int     `json:"activated_ids"`
}

// GenerateID creates a new UUID for a run or execution.
func GenerateID() string {
	return uuid.New().String()
}
