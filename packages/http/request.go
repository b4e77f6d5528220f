package http

import (
	"sort"

	"github.com/abdul-hamid-achik/reqfile/packages/core/parser"
)

// Request is a complete, ready to send request.
type Request struct {
	Method  Verb
	URL     string
	Headers map[string]string
	Body    string
}

func NewRequest(method Verb, requestURL string) *Request {
	return &Request{
		Method:  method,
		URL:     requestURL,
		Headers: make(map[string]string),
	}
}

func (r *Request) SetHeader(key, value string) *Request {
	r.Headers[key] = value
	return r
}

func (r *Request) SetBody(body string) *Request {
	r.Body = body
	return r
}

// HeaderNames returns the header names in sorted order.
func (r *Request) HeaderNames() []string {
	names := make([]string, 0, len(r.Headers))
	for k := range r.Headers {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// BuildRequest turns a merged descriptor into a Request. Fields are checked
// in the order host, path, method and the first one missing is reported.
// The URL is host followed by path with nothing added or removed.
func BuildRequest(d parser.Descriptor) (*Request, error) {
	if d.Host == nil {
		return nil, &MissingFieldError{Field: "host"}
	}
	if d.Path == nil {
		return nil, &MissingFieldError{Field: "path"}
	}
	if d.Method == nil {
		return nil, &MissingFieldError{Field: "method"}
	}

	verb, ok := ParseVerb(*d.Method)
	if !ok {
		return nil, &MissingFieldError{Field: "method", Value: *d.Method}
	}

	r := NewRequest(verb, *d.Host+*d.Path)
	r.SetBody(d.BodyOr(""))
	for k, v := range d.Headers {
		r.SetHeader(k, v)
	}

	return r, nil
}
