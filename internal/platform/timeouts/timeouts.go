// Package timeouts collects the durations shared by service boundaries.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown bounds graceful HTTP shutdown.
const Shutdown = 5 * time.Second

// FixtureFetch caps a single remote fixture download.
const FixtureFetch = 5 * time.Second

// StoreDial caps the initial connection check against a session backend.
const StoreDial = 3 * time.Second
