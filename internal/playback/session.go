package playback

import "github.com/cwbudde/algo-barrverb/internal/logger"

const logTag = "play"

// Session maps control keys onto a Stream.
//
//	+  next program
//	-  previous program
//	s  next test source
//	q  quit (also Ctrl-C and Ctrl-D in raw mode)
type Session struct {
	stream *Stream
	log    *logger.Logger
}

// NewSession returns a session that reports changes to log.
func NewSession(s *Stream, log *logger.Logger) *Session {
	return &Session{stream: s, log: log}
}

// Handle applies key and reports whether the session should end.
func (s *Session) Handle(key byte) (quit bool) {
	switch key {
	case '+', '=':
		p, name := s.stream.Step(1)
		s.log.Logf(logTag, "Program: %d - %s", p, name)
	case '-', '_':
		p, name := s.stream.Step(-1)
		s.log.Logf(logTag, "Program: %d - %s", p, name)
	case 's', 'S':
		s.log.Logf(logTag, "Source changed to %s", s.stream.NextSource())
	case 'q', 'Q', 0x03, 0x04:
		return true
	}
	return false
}
