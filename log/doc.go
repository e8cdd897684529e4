// Package log provides structured logging handler construction for use with
// [log/slog].
//
// It supports three output formats ([FormatJSON], [FormatLogfmt], and
// [FormatText], the last rendered by [charm.land/log/v2]) and four levels
// ([LevelError], [LevelWarn], [LevelInfo], and [LevelDebug]).
//
// Commands configure logging from the environment at startup:
//
//	cfg := log.NewConfig()
//	cfg.Load(os.LookupEnv)
//
//	handler, err := cfg.NewHandler(os.Stderr)
//	slog.SetDefault(slog.New(handler))
//
// Setting KEYSHEET_LOG_LEVEL=debug shows every line the parsers skip.
package log
