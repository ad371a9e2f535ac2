package report

import "fmt"

// TextSpan represents a range of source text.  The starting position is the
// position of the first character in the span and the ending position is the
// position just past the last character.  Line and column numbers are
// zero-indexed.
type TextSpan struct {
	StartLine, StartCol int
	EndLine, EndCol     int
}

// NewSpanOver returns a new text span which spans over and between the two
// given text spans.
func NewSpanOver(start, end *TextSpan) *TextSpan {
	return &TextSpan{
		StartLine: start.StartLine,
		StartCol:  start.StartCol,
		EndLine:   end.EndLine,
		EndCol:    end.EndCol,
	}
}

// -----------------------------------------------------------------------------

// Diagnostic is an accumulated parsing or evaluation error.  A diagnostic is
// built bottom-up: the sub-parser that first detects the problem raises one,
// and each enclosing production that fails because of it wraps the existing
// diagnostic in a new frame naming its own production.  The resulting chain
// reads outermost-production-first when printed.
type Diagnostic struct {
	// Production is the name of the parser/evaluator stage that raised or
	// forwarded this frame (e.g. "parse_directive_var", "build_statement").
	Production string

	// Message is this frame's own description of the failure.
	Message string

	// Span is the offending token's source span.
	Span *TextSpan

	// Wrapped is the diagnostic this frame was raised in response to, or nil
	// if this is the original failure.
	Wrapped *Diagnostic
}

func (d *Diagnostic) Error() string {
	return d.Chain()
}

// Chain renders the full accumulated diagnostic, outermost frame first.
func (d *Diagnostic) Chain() string {
	if d == nil {
		return ""
	}

	msg := fmt.Sprintf("[%s] %s", d.Production, d.Message)
	if d.Span != nil {
		msg += fmt.Sprintf(" (line %d, col %d)", d.Span.StartLine+1, d.Span.StartCol+1)
	}

	if d.Wrapped != nil {
		return msg + "\n  " + d.Wrapped.Chain()
	}

	return msg
}

// Raise constructs a new, un-wrapped diagnostic.  It is also used as the
// panic payload for non-recoverable expression/scope errors (§7): the
// production name identifies the throwing parser. The parser recovers the
// panic at the nearest statement boundary of a block (and in parser.Parse);
// the evaluator recovers its own in Evaluator.Run.
func Raise(production string, span *TextSpan, msg string, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		Production: production,
		Message:    fmt.Sprintf(msg, args...),
		Span:       span,
	}
}

// Wrap accumulates a new frame on top of an existing diagnostic, naming the
// production that is propagating the failure further up the call stack.
func Wrap(production string, span *TextSpan, msg string, inner *Diagnostic) *Diagnostic {
	return &Diagnostic{
		Production: production,
		Message:    msg,
		Span:       span,
		Wrapped:    inner,
	}
}

// -----------------------------------------------------------------------------

// CatchErrors recovers a *Diagnostic panicked by a non-recoverable
// expression/scope production (§7) and reports it through the reporter. path
// is the source file the diagnostic belongs to. ok is set to false if a
// diagnostic was caught.
// NB: this function must ALWAYS be deferred.
func CatchErrors(path string, ok *bool) {
	if x := recover(); x != nil {
		*ok = false

		if diag, isDiag := x.(*Diagnostic); isDiag {
			ReportCompileError(path, diag)
		} else if err, isErr := x.(error); isErr {
			ReportStdError(path, err)
		} else {
			ReportFatal("%v", x)
		}
	}
}
