package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/test", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message": "hello"}`))
	}))
	defer server.Close()

	req := NewRequest(GET, server.URL+"/test").SetHeader("accept", "application/json")
	resp, err := NewClient().Do(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, `{"message": "hello"}`, resp.Body)
	assert.Contains(t, resp.Headers, "Content-Type: application/json")
	assert.Equal(t, "application/json", resp.ContentType())
	assert.True(t, resp.IsJSON())
}

func TestClient_BodyOnlyForBodyVerbs(t *testing.T) {
	tests := []struct {
		verb     Verb
		expected string
	}{
		{GET, ""},
		{OPTIONS, ""},
		{POST, `{"name": "test"}`},
		{PUT, `{"name": "test"}`},
		{DELETE, `{"name": "test"}`},
		{PATCH, `{"name": "test"}`},
	}

	for _, tt := range tests {
		t.Run(tt.verb.String(), func(t *testing.T) {
			var received string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.verb.String(), r.Method)
				b, _ := io.ReadAll(r.Body)
				received = string(b)
				w.WriteHeader(http.StatusNoContent)
			}))
			defer server.Close()

			req := NewRequest(tt.verb, server.URL).SetBody(`{"name": "test"}`)
			resp, err := NewClient().Do(context.Background(), req)

			require.NoError(t, err)
			assert.Equal(t, http.StatusNoContent, resp.StatusCode)
			assert.Equal(t, tt.expected, received)
		})
	}
}

func TestClient_Head(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "HEAD", r.Method)
		w.Header().Set("X-Served-By", "yes")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	resp, err := NewClient().Do(context.Background(), NewRequest(HEAD, server.URL))

	require.NoError(t, err)
	assert.Equal(t, "", resp.Body)
	assert.Equal(t, "yes", resp.Header("x-served-by"))
}

func TestClient_HostHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "api.internal", r.Host)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	req := NewRequest(GET, server.URL).SetHeader("host", "api.internal")
	_, err := NewClient().Do(context.Background(), req)
	require.NoError(t, err)
}

func TestClient_CaseCollidingHeaders(t *testing.T) {
	for i := 0; i < 20; i++ {
		var got []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Values("Accept")
			w.WriteHeader(http.StatusOK)
		}))

		req := NewRequest(GET, server.URL).
			SetHeader("Accept", "text/plain").
			SetHeader("accept", "application/json")
		_, err := NewClient().Do(context.Background(), req)
		server.Close()

		require.NoError(t, err)
		assert.Equal(t, []string{"application/json"}, got)
	}
}

func TestClient_RepeatedHeadersKeepOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Set-Cookie", "b=2")
		w.Header().Add("Set-Cookie", "a=1")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	resp, err := NewClient().Do(context.Background(), NewRequest(GET, server.URL))
	require.NoError(t, err)

	var cookies []string
	for _, line := range resp.Headers {
		if strings.HasPrefix(line, "Set-Cookie:") {
			cookies = append(cookies, line)
		}
	}
	assert.Equal(t, []string{"Set-Cookie: b=2", "Set-Cookie: a=1"}, cookies)
}

func TestClient_DurationIncludesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.(http.Flusher).Flush()
		time.Sleep(100 * time.Millisecond)
		_, _ = w.Write([]byte("late"))
	}))
	defer server.Close()

	resp, err := NewClient().Do(context.Background(), NewRequest(GET, server.URL))

	require.NoError(t, err)
	assert.Equal(t, "late", resp.Body)
	assert.GreaterOrEqual(t, resp.DurationMs(), int64(100))
}

func TestClient_WithTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(WithTimeout(50 * time.Millisecond))
	_, err := client.Do(context.Background(), NewRequest(GET, server.URL))

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Contains(t, err.Error(), "Client.Timeout exceeded")
}

func TestClient_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient().Do(ctx, NewRequest(GET, "http://127.0.0.1:1"))

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestClient_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewClient().Do(context.Background(), NewRequest(GET, url))

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Contains(t, err.Error(), "request failed")
}

func TestClient_InvalidURL(t *testing.T) {
	_, err := NewClient().Do(context.Background(), NewRequest(GET, "localhost:5000/"))

	var te *TransportError
	assert.ErrorAs(t, err, &te)
}

func TestClient_BodyNotText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write([]byte{0xff, 0xfe, 0xfd})
	}))
	defer server.Close()

	_, err := NewClient().Do(context.Background(), NewRequest(GET, server.URL))

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.ErrorIs(t, err, ErrBodyNotText)
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestClient_WithTransport(t *testing.T) {
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusTeapot,
			Header:     http.Header{"X-Empty": nil, "X-Set": {"1"}},
			Body:       io.NopCloser(strings.NewReader("short and stout")),
			Request:    r,
		}, nil
	})

	resp, err := NewClient(WithTransport(rt)).Do(context.Background(), NewRequest(GET, "http://teapot.local/"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	assert.Equal(t, []string{"X-Set: 1"}, resp.Headers)
	assert.Equal(t, "short and stout", resp.Body)
}

func TestHeaderLines(t *testing.T) {
	h := http.Header{
		"B":     {"2"},
		"A":     {"1", "1b"},
		"Empty": {},
		"Blank": {""},
	}

	assert.Equal(t, []string{"A: 1", "A: 1b", "B: 2", "Blank: "}, headerLines(h))
}

func TestResponse_Header(t *testing.T) {
	resp := &Response{Headers: []string{"Content-Type: text/plain", "X-Trace: a:b"}}
	assert.Equal(t, "text/plain", resp.Header("content-type"))
	assert.Equal(t, "a:b", resp.Header("X-Trace"))
	assert.Equal(t, "", resp.Header("Missing"))
	assert.False(t, resp.IsJSON())
}
