package audit

import "github.com/rs/zerolog"

// Sink persists audit events.
type Sink interface {
	Record(ev Event) error
}

// Logger writes audit events as structured log lines.
type Logger struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) *Logger {
	return &Logger{log: log.With().Str("component", "audit").Logger()}
}

func (l *Logger) Record(ev Event) error {
	e := l.log.Info().
		Str("action", ev.Action).
		Str("entity", ev.Entity).
		Uint("entity_id", ev.EntityID)

	if ev.RequestID != "" {
		e = e.Str("request_id", ev.RequestID)
	}

	e.Msg("audit")
	return nil
}
