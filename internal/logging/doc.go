// Package logging provides structured logging for ecotrip.
//
// This package wraps the zap logger with package-level helpers so every
// component logs the same way without passing a logger around.
//
// # Silent By Default
//
// Logging is off unless ECOTRIP_LOG_LEVEL is set to "debug", "info", "warn"
// or "error". The wizard draws on stdout, so its log output goes to
// ECOTRIP_LOG_FILE or, by default, to ecotrip.log in the config directory.
// One-shot commands log to stderr.
//
// # Structured Logging
//
//	logging.Info("Location requested",
//	    zap.String("session", sessionID),
//	    zap.String("locator", "gpsd"),
//	)
//
// Domain helpers cover the events worth tracing:
//
//	logging.LogFieldChange(session, "destination", "Iceland")
//	logging.LogOverlayChange(session, "none", "interests", "accommodation_changed")
//	logging.LogStepChange(session, "details", "review")
//	logging.LogGeocodeRequest("9.748", "-83.753", 200, elapsed)
//
// Every wizard session carries a random session id so interleaved runs can be
// told apart in a shared log file.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. Initialize and SetLogger
// must be called before other goroutines start logging.
package logging
