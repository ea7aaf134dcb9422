package telemetry

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/casita-home/casita-core/internal/device"
	"github.com/casita-home/casita-core/internal/house"
	"github.com/casita-home/casita-core/internal/infrastructure/mqtt"
)

// MQTTClient is the interface for publishing state and events to the broker.
// Satisfied by *mqtt.Client.
type MQTTClient interface {
	// Publish sends a one-shot event message.
	Publish(topic string, payload []byte, qos byte, retained bool) error

	// PublishRetained sends a state message the broker keeps for new
	// subscribers.
	PublishRetained(topic string, payload []byte) error
}

// MetricsWriter is the interface for recording time-series metrics.
// Satisfied by *influxdb.Client.
type MetricsWriter interface {
	WriteDeviceMetric(deviceID int, kind string, measurement string, value float64)
	WriteSceneActivation(runID string, motionDetected bool, devicesActivated int)
}

// Logger is the interface for publish failure logging.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Warn(string, ...any)  {}

// Publisher fans device snapshots and scene events out to the configured
// backends. Either backend may be nil; a nil backend is skipped.
//
// Publishing is best-effort: failures are logged at warn level and do
// not propagate to the caller.
type Publisher struct {
	mqtt    MQTTClient
	metrics MetricsWriter
	topics  mqtt.Topics
	qos     byte
	logger  Logger
}

// New creates a Publisher. Pass nil for backends that are disabled.
func New(client MQTTClient, metrics MetricsWriter, qos byte) *Publisher {
	return &Publisher{
		mqtt:    client,
		metrics: metrics,
		qos:     qos,
		logger:  noopLogger{},
	}
}

// SetLogger replaces the no-op logger.
func (p *Publisher) SetLogger(logger Logger) {
	if logger != nil {
		p.logger = logger
	}
}

// devicePayload is the JSON shape published per device.
type devicePayload struct {
	ID        int             `json:"id"`
	Kind      device.Kind     `json:"kind"`
	Snapshot  device.Snapshot `json:"snapshot"`
	Timestamp time.Time       `json:"timestamp"`
}

// scenePayload is the JSON shape published per scene evaluation.
type scenePayload struct {
	RunID            string    `json:"run_id"`
	TriggeredAt      time.Time `json:"triggered_at"`
	MotionDetected   bool      `json:"motion_detected"`
	DevicesActivated int       `json:"devices_activated"`
	ActivatedIDs     []int     `json:"activated_ids"`
}

// PublishDeviceStates publishes a retained state snapshot for every device
// and records numeric metrics for each snapshot field.
func (p *Publisher) PublishDeviceStates(devices []device.Device) {
	now := time.Now().UTC()

	for _, d := range devices {
		snapshot := d.Snapshot()

		if p.mqtt != nil {
			payload, err := json.Marshal(devicePayload{
				ID:        d.ID(),
				Kind:      d.Kind(),
				Snapshot:  snapshot,
				Timestamp: now,
			})
			if err != nil {
				p.logger.Warn("marshalling device state", "device_id", d.ID(), "error", err)
				continue
			}

			topic := p.topics.DeviceState(d.ID())
			if err := p.mqtt.PublishRetained(topic, payload); err != nil {
				p.logger.Warn("publishing device state", "device_id", d.ID(), "error", err)
			}
		}

		if p.metrics != nil {
			for field, value := range snapshot {
				if v, ok := metricValue(value); ok {
					p.metrics.WriteDeviceMetric(d.ID(), string(d.Kind()), field, v)
				}
			}
		}
	}

	p.logger.Debug("published device states", "count", len(devices))
}

// PublishSceneEvent publishes one scene evaluation result.
func (p *Publisher) PublishSceneEvent(runID string, report *house.SceneReport) {
	if report == nil {
		return
	}

	if p.mqtt != nil {
		payload, err := json.Marshal(scenePayload{
			RunID:            runID,
			TriggeredAt:      report.TriggeredAt,
			MotionDetected:   report.MotionDetected,
			DevicesActivated: len(report.ActivatedIDs),
			ActivatedIDs:     report.ActivatedIDs,
		})
		if err != nil {
			p.logger.Warn("marshalling scene event", "run_id", runID, "error", err)
		} else if err := p.mqtt.Publish(p.topics.SceneActivated(), payload, p.qos, false); err != nil {
			p.logger.Warn("publishing scene event", "run_id", runID, "error", err)
		}
	}

	if p.metrics != nil {
		p.metrics.WriteSceneActivation(runID, report.MotionDetected, len(report.ActivatedIDs))
	}
}

// PublishRunCompleted announces the end of a simulation run.
func (p *Publisher) PublishRunCompleted(runID string, seed int64, deviceCount int) {
	if p.mqtt == nil {
		return
	}

	payload := fmt.Sprintf(
		`{"run_id":%q,"seed":%d,"device_count":%d,"completed_at":%q}`,
		runID, seed, deviceCount, time.Now().UTC().Format(time.RFC3339),
	)
	if err := p.mqtt.Publish(p.topics.RunCompleted(), []byte(payload), p.qos, false); err != nil {
		p.logger.Warn("publishing run completion", "run_id", runID, "error", err)
	}
}

// metricValue converts a snapshot field to a float64 metric value.
// Booleans become 0/1 and numeric fields pass through. Other types
// (strings, nested structures) are not metrics.
func metricValue(v any) (float64, bool) {
	switch value := v.(type) {
	case bool:
		if value {
			return 1, true
		}
		return 0, true
	case int:
		return float64(value), true
	case int64:
		return float64(value), true
	case float64:
		return value, true
	default:
		return 0, false
	}
}
