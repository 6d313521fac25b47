// Package msgs defines the telemetry messages published by the tracker.
package msgs

// Telemetry is published as Typed envelopes, one message per MQTT payload.
//
// Producer: trackerd
// Consumer: trackermon, anything subscribing to the broker
