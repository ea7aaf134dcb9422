// Package house composes simulated devices into a house and runs the
// automation scene over them.
//
// A House owns an ordered collection of devices: insertion order is
// display and iteration order. Devices are added once and never removed.
// The one automation rule is the motion scene: if any motion sensor's
// snapshot reports motion, every scene-activatable device (lights and
// cameras) is powered on; otherwise the house stays idle.
//
// # Usage
//
//	h := house.New()
//	h.AddDevice(device.NewLight(1, rng))
//	h.AddDevice(device.NewMotionSensor(2, rng))
//	h.PowerOnAll()
//	h.ShowAll(os.Stdout)
//	report, _ := h.RunScene(os.Stdout)
//
// # Thread Safety
//
// House is not safe for concurrent use. The simulation is driven by a
// single logical caller.
package house
