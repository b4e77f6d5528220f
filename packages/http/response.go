package http

import (
	"strings"
	"time"
)

type Response struct {
	StatusCode int
	// Headers holds raw "name: value" lines, one per value. Lines are
	// sorted by name, not kept in arrival order; values of a repeated
	// header keep the order they were received in.
	Headers  []string
	Body     string
	Duration time.Duration
}

// Header returns the first value for key, ignoring case.
func (r *Response) Header(key string) string {
	for _, line := range r.Headers {
		name, value, ok := strings.Cut(line, ":")
		if ok && strings.EqualFold(strings.TrimSpace(name), key) {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

func (r *Response) ContentType() string {
	return r.Header("Content-Type")
}

func (r *Response) IsJSON() bool {
	return strings.Contains(r.ContentType(), "application/json")
}

func (r *Response) DurationMs() int64 {
	return r.Duration.Milliseconds()
}
