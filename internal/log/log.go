// Package log is a thin facade over go-log/v2 so the rest of this module
// never imports the subsystem-naming convention directly.
package log

import logging "github.com/ipfs/go-log/v2"

// Logger returns a named structured logger for the given subsystem, e.g.
// log.Logger("webm/mux") or log.Logger("webm/demux").
func Logger(subsystem string) *logging.ZapEventLogger {
	return logging.Logger(subsystem)
}
