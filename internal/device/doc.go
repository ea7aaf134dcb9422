// Package device provides the simulated device catalogue for Casita Core.
//
// A Device is an entity with a power state and a human-readable status
// description. Three variants exist: Light (dimmable smart light), Camera
// (security camera) and MotionSensor (motion detector). All simulated
// readings come from an injected random source so tests can fix the seed
// and assert exact values.
//
// # Key Types
//
//   - Device: the sealed device contract (power, status, description)
//   - Kind: device classification (light, camera, motion_sensor)
//   - Capability: what a device can do (on_off, dim, motion_detect, ...)
//   - Snapshot: point-in-time view of a device's fields for telemetry
//
// # Usage
//
//	rng := rand.New(rand.NewSource(42))
//	light := device.NewLight(1, rng)
//	light.PowerOn()
//	fmt.Println(light.Describe())
//	// [LuzInteligente #1] Estado: Encendido | Intensidad: 63%
//
// # Sealing
//
// The Device interface has an unexported method, so only the variants in
// this package can implement it. There is no way to construct the abstract
// contract without choosing a concrete variant.
//
// # Thread Safety
//
// Devices are not safe for concurrent use. The simulation is
// single-threaded; one logical caller drives all devices.
package device
