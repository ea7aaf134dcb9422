// Package influxdb records simulation metrics through the official
// influxdb-client-go v2 library.
//
// Two measurements are written: device_metrics (brightness, recording
// and motion flags, tagged by device id and kind) and scene_activations
// (one point per scene evaluation). Writes are non-blocking and batched
// per the config.yaml batch_size and flush_interval settings; batch
// failures surface asynchronously on the SetOnError callback.
//
// Usage:
//
//	client, err := influxdb.Connect(cfg.InfluxDB)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	client.WriteDeviceMetric(1, "light", "brightness", 85)
package influxdb
