package device

import "fmt"

// Camera is a security camera.
//
// Recording tracks the power state exactly: a powered camera is always
// recording, an unpowered camera never is.
type Camera struct {
	base
	recording bool
}

// NewCamera creates a camera with the given id, powered off and not
// recording.
func NewCamera(id int) *Camera {
	return &Camera{base: base{id: id}}
}

// Kind returns KindCamera.
func (c *Camera) Kind() Kind {
	return KindCamera
}

// Capabilities returns the camera's capability set.
func (c *Camera) Capabilities() []Capability {
	return []Capability{CapOnOff, CapRecord, CapSceneActivate}
}

// PowerOn switches the camera on and starts recording.
func (c *Camera) PowerOn() {
	c.setPowered(true)
	c.recording = true
}

// PowerOff switches the camera off and stops recording.
func (c *Camera) PowerOff() {
	c.setPowered(false)
	c.recording = false
}

// Recording reports whether the camera is currently recording.
func (c *Camera) Recording() bool {
	return c.recording
}

// Describe returns the camera's status line.
func (c *Camera) Describe() string {
	return fmt.Sprintf("[%s #%d] Estado: %s | Grabando: %t",
		KindCamera.Label(), c.ID(), c.Status(), c.recording)
}

// Snapshot returns the camera's fields for telemetry.
func (c *Camera) Snapshot() Snapshot {
	return Snapshot{
		"powered":   c.Powered(),
		"recording": c.recording,
	}
}
