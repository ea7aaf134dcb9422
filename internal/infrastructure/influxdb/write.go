package influxdb

import (
	"strconv"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// WriteDeviceMetric writes a single device measurement to InfluxDB.
//
// This is the primary method for recording device telemetry data.
// The write is non-blocking; data is batched and sent asynchronously.
//
// Example:
//
//	client.WriteDeviceMetric(1, "light", "brightness", 85)
func (c *Client) WriteDeviceMetric(deviceID int, kind string, measurement string, value float64) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"device_metrics",
		map[string]string{
			"device_id":   strconv.Itoa(deviceID),
			"kind":        kind,
			"measurement": measurement,
		},
		map[string]interface{}{
			"value": value,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

// WriteSceneActivation records a scene evaluation.
//
// One point per RunScene call: whether motion triggered the scene and
// how many devices it powered on.
func (c *Client) WriteSceneActivation(runID string, motionDetected bool, devicesActivated int) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"scene_activations",
		map[string]string{
			"run_id": runID,
		},
		map[string]interface{}{
			"motion_detected":   motionDetected,
			"devices_activated": devicesActivated,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

