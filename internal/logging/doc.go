// Package logger provides leveled diagnostics for sessiontrail commands.
//
// Verbosity is controlled by two flags:
//
//   - --verbose: shows info messages
//   - --debug: shows debug detail
//
// Warnings and errors are always shown.
//
// All output goes to stderr. This is deliberate: the hook command's
// stdout may be read by the host process that invoked it, so diagnostics
// must never leak there.
//
// Commands create a logger in their PersistentPreRun and pass it down:
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Debugf("resolved root %s", root)
package logger
