package output

import (
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/reqfile/packages/http"
	"github.com/fatih/color"
	"github.com/tidwall/gjson"
)

type ConsoleFormatter struct {
	noColor    bool
	forceColor bool
	prettyJSON bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

// WithForceColor emits escapes even when stdout is not a terminal.
// WithNoColor takes precedence.
func WithForceColor(fc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.forceColor = fc
	}
}

// WithPrettyJSON re-indents response bodies that are valid JSON.
func WithPrettyJSON(p bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.prettyJSON = p
	}
}

func (f *ConsoleFormatter) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	switch {
	case f.noColor:
		c.DisableColor()
	case f.forceColor:
		c.EnableColor()
	}
	return c
}

// FormatStatus renders the coloured status line without a newline.
func (f *ConsoleFormatter) FormatStatus(code int) string {
	return f.paint(StatusBucket(code).Attribute()).Sprintf("Status: %d", code)
}

// FormatResponseHead renders the status line, timing, each header line and
// the blank separator line.
func (f *ConsoleFormatter) FormatResponseHead(resp *http.Response) string {
	var b strings.Builder
	b.WriteString(f.FormatStatus(resp.StatusCode))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Time: %dms\n", resp.DurationMs())
	for _, line := range resp.Headers {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

// FormatBody returns the body, re-indented when pretty printing is on and
// the body is JSON. A body counts as JSON when it parses and either the
// response says application/json or the body is an object or array.
func (f *ConsoleFormatter) FormatBody(resp *http.Response) string {
	if !f.prettyJSON || !gjson.Valid(resp.Body) {
		return resp.Body
	}
	if resp.IsJSON() || isContainer(resp.Body) {
		return gjson.Get(resp.Body, "@pretty").Raw
	}
	return resp.Body
}

func isContainer(body string) bool {
	trimmed := strings.TrimSpace(body)
	return strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")
}

// FormatResponse renders the full response: head followed by body.
func (f *ConsoleFormatter) FormatResponse(resp *http.Response) string {
	return f.FormatResponseHead(resp) + f.FormatBody(resp)
}

// FormatRequest renders the assembled request: request line, headers sorted
// by name, a blank line and the body when the verb sends one.
func (f *ConsoleFormatter) FormatRequest(req *http.Request) string {
	var b strings.Builder
	b.WriteString(f.paint(color.Bold).Sprintf("%s %s", req.Method, req.URL))
	b.WriteString("\n")
	for _, name := range req.HeaderNames() {
		fmt.Fprintf(&b, "%s: %s\n", name, req.Headers[name])
	}
	if req.Method.CarriesBody() && req.Body != "" {
		b.WriteString("\n")
		b.WriteString(req.Body)
		b.WriteString("\n")
	}
	return b.String()
}

func (f *ConsoleFormatter) FormatError(err error) string {
	return fmt.Sprintf("%s %v", f.paint(color.FgRed).Sprint("Error:"), err)
}
