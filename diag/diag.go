// Package diag collects compiler diagnostics.
//
// Passes never abort on a user-level problem. They record a Diagnostic in a
// Sink and keep going, and the caller asks the sink whether the compilation
// is still viable between phases. A nil *Sink discards everything.
package diag

import "fmt"

type Severity int

const (
	Info Severity = iota
	Warning
	Error
	// Internal marks a defect in the compiler itself, such as two adjacent
	// graph nodes built with the same intended color.
	Internal
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Internal:
		return "internal"
	}
	return "<unknown severity>"
}

// Stage is where in the pipeline a diagnostic was raised.
type Stage int

const (
	Decode Stage = iota
	Rewrite
	Force
	Encode
	Export
)

func (s Stage) String() string {
	switch s {
	case Decode:
		return "decode"
	case Rewrite:
		return "rewrite"
	case Force:
		return "force"
	case Encode:
		return "encode"
	case Export:
		return "export"
	}
	return "<unknown stage>"
}

// Span locates a diagnostic in an input file. Line and Col are 1-based, 0
// when unknown.
type Span struct {
	File string
	Line int
	Col  int
}

func (s *Span) String() string {
	switch {
	case s.Line == 0:
		return s.File
	case s.Col == 0:
		return fmt.Sprintf("%s:%d", s.File, s.Line)
	}
	return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Col)
}

type Diagnostic struct {
	Severity Severity
	Stage    Stage
	Message  string
	Span     *Span
}

func (d Diagnostic) String() string {
	if d.Span != nil {
		return fmt.Sprintf("%s: %s [%s]: %s", d.Span, d.Severity, d.Stage, d.Message)
	}
	return fmt.Sprintf("%s [%s]: %s", d.Severity, d.Stage, d.Message)
}

type Sink struct {
	diags []Diagnostic
}

func NewSink() *Sink {
	return &Sink{}
}

func (s *Sink) Add(d Diagnostic) {
	if s == nil {
		return
	}
	s.diags = append(s.diags, d)
}

func (s *Sink) addf(sev Severity, stage Stage, format string, args ...any) {
	s.Add(Diagnostic{Severity: sev, Stage: stage, Message: fmt.Sprintf(format, args...)})
}

func (s *Sink) Infof(stage Stage, format string, args ...any) {
	s.addf(Info, stage, format, args...)
}

func (s *Sink) Warnf(stage Stage, format string, args ...any) {
	s.addf(Warning, stage, format, args...)
}

func (s *Sink) Errorf(stage Stage, format string, args ...any) {
	s.addf(Error, stage, format, args...)
}

func (s *Sink) Internalf(stage Stage, format string, args ...any) {
	s.addf(Internal, stage, format, args...)
}

// Diagnostics returns the recorded diagnostics in the order they were added.
func (s *Sink) Diagnostics() []Diagnostic {
	if s == nil {
		return nil
	}
	return s.diags
}

// Count returns the number of diagnostics of severity sev.
func (s *Sink) Count(sev Severity) int {
	n := 0
	for _, d := range s.Diagnostics() {
		if d.Severity == sev {
			n++
		}
	}
	return n
}

// OK reports whether no error or internal diagnostic has been recorded.
func (s *Sink) OK() bool {
	for _, d := range s.Diagnostics() {
		if d.Severity >= Error {
			return false
		}
	}
	return true
}
