package fsm

import "log/slog"

// Logger provides logging hooks for machine execution. The machine only
// logs when a logger is configured with WithLogger.
type Logger interface {
	StateEntered(state string)
	StateExited(state string, dwell float64)
	TransitionTriggered(from, to, trigger string)
	TimeoutBlocked(state string)
	ConfigError(op string, err error)
}

// SlogLogger implements Logger using slog. Attach machine identity by
// passing a logger pre-scoped with slog.With, e.g.
// NewSlogLogger(slog.Default().With("machine", "player")).
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger creates a Logger backed by the given slog logger.
// If logger is nil, slog.Default() is used.
func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}

	return &SlogLogger{
		logger: logger,
	}
}

func (l *SlogLogger) StateEntered(state string) {
	l.logger.Debug("State entered",
		"state", state,
	)
}

func (l *SlogLogger) StateExited(state string, dwell float64) {
	l.logger.Debug("State exited",
		"state", state,
		"dwell_seconds", dwell,
	)
}

func (l *SlogLogger) TransitionTriggered(from, to, trigger string) {
	l.logger.Info("Transition triggered",
		"from", from,
		"to", to,
		"trigger", trigger,
	)
}

func (l *SlogLogger) TimeoutBlocked(state string) {
	l.logger.Warn("Timeout blocked by lock",
		"state", state,
	)
}

func (l *SlogLogger) ConfigError(op string, err error) {
	l.logger.Error("Configuration error",
		"op", op,
		"error", err,
	)
}

// logError reports a configuration or reachability error to the diagnostic
// channel, if one is configured.
func (m *Machine) logError(op string, err error) {
	if m.logger != nil {
		m.logger.ConfigError(op, err)
	}

	configErrors.WithLabelValues(m.name, op).Inc()
}
