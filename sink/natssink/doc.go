// Package natssink publishes rendered log lines to a NATS subject,
// letting the pipeline ship logs off-host without touching disk.
// Each drained line becomes one message; delivery order matches drain
// order on the publishing connection.
package natssink
