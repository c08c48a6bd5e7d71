// Package logging provides the process-wide structured logger for langdb.
//
// The package wraps [log/slog] behind a single global logger that is
// initialized once and then retrieved with GetLogger, so the level and
// destination are set in one place (cmd/langdb flags).
//
//	if err := logging.Init(logging.Config{Level: logging.LevelDebug}); err != nil {
//	    log.Fatal(err)
//	}
//
// If GetLogger is called before Init, a WARN-level stderr logger is created
// lazily. Standard output belongs to the REPL and is never used for logs.
//
// WithTable, WithComponent and WithStatement return child loggers carrying
// the matching field.
package logging
