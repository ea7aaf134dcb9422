// Package telemetry fans device snapshots and scene events out to the
// optional MQTT and InfluxDB backends.
//
// The Publisher depends on two small interfaces rather than concrete
// clients, so the simulator runs unchanged with both backends disabled
// and tests can substitute mocks. Publish failures are logged and never
// interrupt a simulation run.
package telemetry
