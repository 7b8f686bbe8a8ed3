// Package logging provides zerolog-based structured logging for recview.
//
// Loggers travel through context.Context (see FromContext) and every event
// logged with a context that carries a trace ID is stamped with it, so all
// log lines from one viewer session can be correlated.
package logging
