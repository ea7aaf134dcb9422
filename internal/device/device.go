package device

// Device is the contract every simulated device variant implements.
//
// Power state is mutated only through PowerOn and PowerOff; there is no
// other way to change it. None of these operations can fail: they are
// total over every reachable device state.
//
// The unexported sealed method restricts implementations to this package,
// so the abstract contract cannot be satisfied without selecting one of
// the concrete variants.
type Device interface {
	// ID returns the opaque identifier assigned at construction.
	ID() int

	// Kind returns the device classification.
	Kind() Kind

	// Capabilities returns what this device can do.
	Capabilities() []Capability

	// PowerOn sets the power state to on and refreshes the
	// variant-specific simulated reading.
	PowerOn()

	// PowerOff sets the power state to off and resets the
	// variant-specific reading to its off-value.
	PowerOff()

	// Powered reports the current power state.
	Powered() bool

	// Status returns the power state word: "Encendido" or "Apagado".
	Status() string

	// Describe returns a human-readable status line including kind,
	// id, power state and the variant-specific fields. It never
	// mutates state.
	Describe() string

	// Snapshot returns a point-in-time view of the device's fields
	// for telemetry and event payloads. It never mutates state.
	Snapshot() Snapshot

	sealed()
}

// MotionReporter is implemented by devices that hold a motion snapshot.
// The snapshot is captured when the device was last powered on; it is not
// live-updated.
type MotionReporter interface {
	MotionDetected() bool
}

// Has reports whether a device declares the given capability.
func Has(d Device, capability Capability) bool {
	for _, c := range d.Capabilities() {
		if c == capability {
			return true
		}
	}
	return false
}

// base carries the state and behaviour shared by every device variant.
// Variants embed it and never touch powered directly outside the two
// power transition helpers.
type base struct {
	id      int
	powered bool
}

// ID returns the opaque identifier assigned at construction.
func (b *base) ID() int {
	return b.id
}

// Powered reports the current power state.
func (b *base) Powered() bool {
	return b.powered
}

// Status returns the power state word derived from the power flag.
func (b *base) Status() string {
	if b.powered {
		return StatusOn
	}
	return StatusOff
}

// setPowered changes the power flag. Only the variants' PowerOn and
// PowerOff methods call this.
func (b *base) setPowered(on bool) {
	b.powered = on
}

func (b *base) sealed() {}
