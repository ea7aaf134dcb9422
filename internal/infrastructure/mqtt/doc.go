// Package mqtt provides MQTT client connectivity for Casita Core.
//
// This package manages:
//   - Connection to a broker with auto-reconnect
//   - Message publishing with QoS guarantees
//   - Last Will and Testament (LWT) for offline detection
//
// # Architecture
//
// The simulator is publish-only: device state snapshots and scene events
// go out under the casita/ topic hierarchy for any subscriber (dashboards,
// recorders) to pick up. Nothing in the simulator consumes MQTT messages,
// so there is no subscription surface.
//
// # Security Considerations
//
//   - TLS is recommended for non-local brokers (cfg.Broker.TLS=true)
//   - Anonymous access is only for local development
//   - Message payloads are not encrypted beyond TLS transport
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	topic := mqtt.Topics{}.DeviceState(3)
//	client.Publish(topic, []byte(`{"powered":true}`), 1, true)
package mqtt
