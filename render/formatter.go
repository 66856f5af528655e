// Package render formats diagnostics for presentation, separate from the
// diag package that defines their shape. It provides a TextFormatter for
// colored terminal output (bean-check style) and a JSONFormatter for
// machine consumption, so the same []diag.Diagnostic can serve the CLI,
// a future web UI, or a script piping through jq.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bursa-lang/bursa/ast"
	"github.com/bursa-lang/bursa/diag"
	"github.com/bursa-lang/bursa/output"
)

// Formatter formats diagnostics for output in a particular shape.
type Formatter interface {
	Format(d diag.Diagnostic) string
	FormatAll(ds []diag.Diagnostic) string
}

// TextFormatter formats diagnostics for command-line output: the message,
// colored by severity, followed by the offending source line with a caret
// under the column the diagnostic starts at.
type TextFormatter struct {
	// Source is the file contents the diagnostics' spans index into. If
	// empty, Format falls back to message-only output.
	Source string
	Styles *output.Styles
}

// NewTextFormatter creates a text formatter over source, with optional
// styling (nil disables color).
func NewTextFormatter(source string, styles *output.Styles) *TextFormatter {
	return &TextFormatter{Source: source, Styles: styles}
}

// Format formats a single diagnostic, with source context when available.
func (tf *TextFormatter) Format(d diag.Diagnostic) string {
	header := fmt.Sprintf("%s:%d:%d: %s", string(d.Code), d.Span.Start.Line, d.Span.Start.Col, d.Message)
	if tf.Styles != nil {
		if d.IsError() {
			header = tf.Styles.Error(header)
		} else {
			header = tf.Styles.Warning(header)
		}
	}

	if tf.Source == "" {
		return header
	}

	line, ok := sourceLine(tf.Source, d.Span.Start.Line)
	if !ok {
		return header
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteByte('\n')
	fmt.Fprintf(&buf, "  %s\n", line)
	fmt.Fprintf(&buf, "  %s^\n", strings.Repeat(" ", max(0, d.Span.Start.Col-1)))
	return buf.String()
}

// FormatAll formats every diagnostic, separated by a newline. An entry with
// source context already ends in a newline, so it is followed by a blank
// line; message-only entries are on consecutive lines.
func (tf *TextFormatter) FormatAll(ds []diag.Diagnostic) string {
	if len(ds) == 0 {
		return ""
	}
	var buf bytes.Buffer
	for i, d := range ds {
		buf.WriteString(tf.Format(d))
		if i < len(ds)-1 {
			buf.WriteString("\n")
		}
	}
	return buf.String()
}

// sourceLine returns the 1-indexed line of source, without its trailing
// newline, or false if line is out of range.
func sourceLine(source string, line int) (string, bool) {
	lines := strings.Split(source, "\n")
	if line < 1 || line > len(lines) {
		return "", false
	}
	return lines[line-1], true
}

// JSONFormatter formats diagnostics as JSON, matching the wire shape
// spec.md's diagnostic model describes: code, message, severity, span.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter { return &JSONFormatter{} }

// DiagnosticJSON is the over-the-wire representation of a diag.Diagnostic.
type DiagnosticJSON struct {
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Severity string   `json:"severity"`
	Span     SpanJSON `json:"span"`
}

// SpanJSON is the over-the-wire representation of an ast.Span: start and
// end positions, each a {line, col} object.
type SpanJSON struct {
	Start PositionJSON `json:"start"`
	End   PositionJSON `json:"end"`
}

// PositionJSON is the over-the-wire representation of an ast.Pos.
type PositionJSON struct {
	Line int `json:"line"`
	Col  int `json:"col"`
}

func toJSON(d diag.Diagnostic) DiagnosticJSON {
	return DiagnosticJSON{
		Code:     string(d.Code),
		Message:  d.Message,
		Severity: string(d.Severity),
		Span:     spanToJSON(d.Span),
	}
}

func spanToJSON(s ast.Span) SpanJSON {
	return SpanJSON{
		Start: PositionJSON{Line: s.Start.Line, Col: s.Start.Col},
		End:   PositionJSON{Line: s.End.Line, Col: s.End.Col},
	}
}

// Format formats a single diagnostic as a JSON object.
func (jf *JSONFormatter) Format(d diag.Diagnostic) string {
	data, _ := json.Marshal(toJSON(d))
	return string(data)
}

// FormatAll formats every diagnostic as a JSON array.
func (jf *JSONFormatter) FormatAll(ds []diag.Diagnostic) string {
	out := make([]DiagnosticJSON, len(ds))
	for i, d := range ds {
		out[i] = toJSON(d)
	}
	data, _ := json.MarshalIndent(out, "", "  ")
	return string(data)
}

var (
	_ Formatter = (*TextFormatter)(nil)
	_ Formatter = (*JSONFormatter)(nil)
)
