package logging

import "log/slog"

// WithTable creates a logger with table context.
//
//	log := logging.WithTable("users")
//	log.Info("rows inserted", "count", 2)
func WithTable(tableName string) *slog.Logger {
	return GetLogger().With("table", tableName)
}

// WithComponent creates a logger with component/subsystem context.
func WithComponent(component string) *slog.Logger {
	return GetLogger().With("component", component)
}

// WithStatement creates a logger tagged with a statement kind such as
// "SELECT".
func WithStatement(kind string) *slog.Logger {
	return GetLogger().With("stmt", kind)
}
