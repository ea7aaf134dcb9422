package device

// Status words for the power state, as rendered in status lines.
const (
	StatusOn  = "Encendido"
	StatusOff = "Apagado"
)

// Kind represents the specific kind of simulated device.
type Kind string

// Kind constants.
const (
	KindLight        Kind = "light"
	KindCamera       Kind = "camera"
	KindMotionSensor Kind = "motion_sensor"
)

// AllKinds returns all valid kind values.
func AllKinds() []Kind {
	return []Kind{KindLight, KindCamera, KindMotionSensor}
}

// kindLabels maps kinds to the display names used in Describe output.
var kindLabels = map[Kind]string{
	KindLight:        "LuzInteligente",
	KindCamera:       "CamaraSeguridad",
	KindMotionSensor: "SensorMovimiento",
}

// Label returns the display name for a kind, used in status lines.
// Unknown kinds return the raw kind string.
func (k Kind) Label() string {
	if label, ok := kindLabels[k]; ok {
		return label
	}
	return string(k)
}

// Capability represents what a device can do.
type Capability string

// Capability constants.
const (
	// CapOnOff marks devices that can be switched on and off.
	CapOnOff Capability = "on_off"

	// CapDim marks devices with an adjustable brightness level.
	CapDim Capability = "dim"

	// CapRecord marks devices that record video while powered.
	CapRecord Capability = "record"

	// CapMotionDetect marks devices that report a motion snapshot.
	CapMotionDetect Capability = "motion_detect"

	// CapSceneActivate marks devices the automation scene powers on
	// when motion is detected.
	CapSceneActivate Capability = "scene_activate"
)

// AllCapabilities returns all valid capability values.
func AllCapabilities() []Capability {
	return []Capability{CapOnOff, CapDim, CapRecord, CapMotionDetect, CapSceneActivate}
}

// Snapshot holds a point-in-time view of a device's fields as a JSON map.
//
// Examples:
//   - Light: {"powered": true, "brightness": 75}
//   - Camera: {"powered": true, "recording": true}
//   - MotionSensor: {"powered": true, "motion_detected": false}
type Snapshot map[string]any
