package http

import "strings"

// Verb is one of the HTTP methods reqfile can send.
type Verb string

const (
	GET     Verb = "GET"
	HEAD    Verb = "HEAD"
	POST    Verb = "POST"
	PUT     Verb = "PUT"
	DELETE  Verb = "DELETE"
	OPTIONS Verb = "OPTIONS"
	PATCH   Verb = "PATCH"
)

// Verbs lists every supported verb.
var Verbs = []Verb{GET, HEAD, POST, PUT, DELETE, OPTIONS, PATCH}

// ParseVerb matches s against the verb set ignoring case. Surrounding
// whitespace is not trimmed.
func ParseVerb(s string) (Verb, bool) {
	candidate := Verb(strings.ToUpper(s))
	for _, v := range Verbs {
		if v == candidate {
			return v, true
		}
	}
	return "", false
}

// CarriesBody reports whether the body is sent with this verb.
// GET, HEAD and OPTIONS go out without one.
func (v Verb) CarriesBody() bool {
	switch v {
	case POST, PUT, DELETE, PATCH:
		return true
	default:
		return false
	}
}

func (v Verb) String() string {
	return string(v)
}
