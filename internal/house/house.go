package house

import (
	"fmt"
	"io"

	"github.com/casita-home/casita-core/internal/device"
)

// showAllHeader precedes the device status lines in the console output.
const showAllHeader = "📋 ESTADO ACTUAL DE LOS DISPOSITIVOS:"

// Logger defines the logging interface used by the House.
// This allows different logging implementations to be used.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// House owns an ordered collection of devices and runs the automation
// scene over them. Insertion order is display and iteration order.
type House struct {
	devices []device.Device
	logger  Logger
}

// New creates an empty house.
func New() *House {
	return &House{logger: noopLogger{}}
}

// SetLogger sets the logger for the house.
func (h *House) SetLogger(logger Logger) {
	h.logger = logger
}

// AddDevice appends a device to the house.
// There is no validation, duplicate check or removal: devices are added
// once and stay for the life of the house.
func (h *House) AddDevice(d device.Device) {
	h.devices = append(h.devices, d)
	h.logger.Debug("device added", "kind", d.Kind(), "id", d.ID())
}

// Devices returns the devices in insertion order.
// The slice is a copy; the devices themselves are shared.
func (h *House) Devices() []device.Device {
	devices := make([]device.Device, len(h.devices))
	copy(devices, h.devices)
	return devices
}

// DeviceCount returns the number of devices in the house.
func (h *House) DeviceCount() int {
	return len(h.devices)
}

// PowerOnAll powers on every device in insertion order.
func (h *House) PowerOnAll() {
	for _, d := range h.devices {
		d.PowerOn()
	}
	h.logger.Info("all devices powered on", "count", len(h.devices))
}

// ShowAll writes the status header followed by every device's status
// line in insertion order. It never mutates device state; an empty house
// yields only the header.
func (h *House) ShowAll(w io.Writer) error {
	if _, err := fmt.Fprintln(w, showAllHeader); err != nil {
		return fmt.Errorf("writing status header: %w", err)
	}
	for _, d := range h.devices {
		if _, err := fmt.Fprintf(w, "   %s\n", d.Describe()); err != nil {
			return fmt.Errorf("writing device status: %w", err)
		}
	}
	return nil
}
