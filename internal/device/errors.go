package device

import "errors"

// Domain errors for the device package.
//
// These errors can be checked using errors.Is():
//
//	if errors.Is(err, device.ErrUnknownKind) {
//	    // handle unrecognised kind
//	}
var (
	// ErrUnknownKind is returned when a kind value is not recognised.
	ErrUnknownKind = errors.New("device: unknown kind")

	// ErrInvalidID is returned when a device id is not positive.
	ErrInvalidID = errors.New("device: invalid id")
)
