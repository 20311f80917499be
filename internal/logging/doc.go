// Package logging builds the slog loggers used across tidy.
//
// It provides a console handler (timestamp, level, component prefix, key=value
// attributes) and a JSON handler, selected by configuration. Components obtain
// child loggers through NewComponentLogger so every line identifies its origin.
package logging
