package common

import "github.com/rs/zerolog"

type Log interface {
	Info() *zerolog.Event
	Debug() *zerolog.Event
	Warn() *zerolog.Event
	Error() *zerolog.Event
}

type logger struct {
	l zerolog.Logger
}

func NewLog(l zerolog.Logger) Log {
	return &logger{l: l}
}

// NopLog discards every event. Handy default for tests.
func NopLog() Log {
	return &logger{l: zerolog.Nop()}
}

func (lg *logger) Info() *zerolog.Event  { return lg.l.Info() }
func (lg *logger) Debug() *zerolog.Event { return lg.l.Debug() }
func (lg *logger) Warn() *zerolog.Event  { return lg.l.Warn() }
func (lg *logger) Error() *zerolog.Event { return lg.l.Error() }
