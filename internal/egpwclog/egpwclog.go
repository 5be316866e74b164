// Package egpwclog wraps the standard log package the way cmd/egpwcd's
// predecessor daemons do: plain Printf-style helpers, with debug output
// gated behind a package-level flag instead of a log level.
package egpwclog

import "log"

// Debug gates Dbg output. cmd/egpwcd flips this from its loaded config.
var Debug = false

// Inf logs an informational message.
func Inf(format string, v ...interface{}) {
	log.Printf("INFO: "+format, v...)
}

// Err logs an error message.
func Err(format string, v ...interface{}) {
	log.Printf("ERROR: "+format, v...)
}

// Dbg logs a debug message, only when Debug is true.
func Dbg(format string, v ...interface{}) {
	if !Debug {
		return
	}
	log.Printf("DEBUG: "+format, v...)
}
