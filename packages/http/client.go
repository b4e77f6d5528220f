package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// DefaultTimeout of zero means the client never gives up on its own
	DefaultTimeout time.Duration = 0
)

// ErrBodyNotText is wrapped in a TransportError when the response body is
// not valid UTF-8.
var ErrBodyNotText = errors.New("response body is not valid UTF-8 text")

type Client struct {
	httpClient *http.Client
	timeout    time.Duration
	transport  http.RoundTripper
}

type ClientOption func(*Client)

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		timeout: DefaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.httpClient = &http.Client{
		Transport: c.transport,
		Timeout:   c.timeout,
	}

	return c
}

// WithTimeout bounds the whole exchange, body read included. Zero disables it.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithTransport replaces the round tripper, http.DefaultTransport when unset.
func WithTransport(rt http.RoundTripper) ClientOption {
	return func(c *Client) {
		c.transport = rt
	}
}

// Do sends req and reads the whole response. The measured duration runs
// from just before the request is issued until the body has been read.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	var body io.Reader
	if req.Method.CarriesBody() {
		body = strings.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method.String(), req.URL, body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	// Names are canonicalised by Header.Set, so when two names differ only
	// in case the one sorting last wins.
	for _, k := range req.HeaderNames() {
		v := req.Headers[k]
		if strings.EqualFold(k, "Host") {
			httpReq.Host = v
			continue
		}
		httpReq.Header.Set(k, v)
	}

	start := time.Now()
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	duration := time.Since(start)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("reading body: %w", err)}
	}

	if !utf8.Valid(respBody) {
		return nil, &TransportError{Err: ErrBodyNotText}
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    headerLines(httpResp.Header),
		Body:       string(respBody),
		Duration:   duration,
	}, nil
}

// headerLines flattens h into "name: value" lines. net/http keeps headers
// in a map, so names are sorted; values keep the order they arrived in.
// Names with no values are skipped.
func headerLines(h http.Header) []string {
	names := make([]string, 0, len(h))
	for k := range h {
		names = append(names, k)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		for _, v := range h[name] {
			lines = append(lines, name+": "+v)
		}
	}
	return lines
}
