package mqtt

import "fmt"

// Topic prefixes for the casita topic hierarchy.
//
// All topics use the scheme: casita/{category}/...
const (
	// TopicPrefix is the base for all casita topics.
	TopicPrefix = "casita"

	// TopicPrefixSystem is the base for system topics.
	TopicPrefixSystem = "casita/system"
)

// Topics provides builders for casita MQTT topics.
// Using these helpers ensures consistent topic naming across the codebase.
//
//	topics := mqtt.Topics{}
//	stateTopic := topics.DeviceState(3)
//	// Returns: "casita/device/3/state"
type Topics struct{}

// DeviceState returns the topic for a device's state snapshot.
//
// Example: casita/device/3/state
func (Topics) DeviceState(deviceID int) string {
	return fmt.Sprintf("%s/device/%d/state", TopicPrefix, deviceID)
}

// SceneActivated returns the topic for scene activation events.
//
// Example: casita/scene/activated
func (Topics) SceneActivated() string {
	return fmt.Sprintf("%s/scene/activated", TopicPrefix)
}

// RunCompleted returns the topic for simulation run completion events.
//
// Example: casita/run/completed
func (Topics) RunCompleted() string {
	return fmt.Sprintf("%s/run/completed", TopicPrefix)
}

// SystemStatus returns the system status topic.
//
// Example: casita/system/status
func (Topics) SystemStatus() string {
	return fmt.Sprintf("%s/status", TopicPrefixSystem)
}
