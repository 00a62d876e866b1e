// Package network provides ZeroMQ publishing of converted event batches.
// This package implements:
// - A PUB socket broadcasting Arrow IPC frames to analysis subscribers
package network
