package influxdb

import "errors"

// Sentinel errors returned by Connect, matched with errors.Is.
var (
	// ErrConnectionFailed wraps ping failures during Connect.
	ErrConnectionFailed = errors.New("influxdb: connection failed")

	// ErrDisabled is returned when the influxdb config section is off.
	ErrDisabled = errors.New("influxdb: disabled in configuration")
)
