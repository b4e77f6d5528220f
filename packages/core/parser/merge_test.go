package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, input string) Descriptor {
	t.Helper()
	d, err := Parse(input, "test.toml", FormatTOML)
	require.NoError(t, err, "sample descriptor should have been parsed")
	return d
}

func TestMerge_OverlayReplacesValue(t *testing.T) {
	base := mustParse(t, `
method = "GET"
host = "http://localhost:5000"
`)
	overlay := mustParse(t, `method = "POST"`)

	merged := Merge(base, overlay)
	assert.Equal(t, "POST", *merged.Method)
	assert.Equal(t, "http://localhost:5000", *merged.Host)
}

func TestMerge_ScalarPrecedence(t *testing.T) {
	a := Descriptor{Method: String("GET"), Host: String("http://a"), Path: String("/a"), Body: String("a")}
	b := Descriptor{Method: String("PUT"), Body: String("b")}

	merged := Merge(a, b)
	assert.Equal(t, "PUT", *merged.Method)
	assert.Equal(t, "http://a", *merged.Host)
	assert.Equal(t, "/a", *merged.Path)
	assert.Equal(t, "b", *merged.Body)

	merged = Merge(b, a)
	assert.Equal(t, "GET", *merged.Method)
	assert.Equal(t, "a", *merged.Body)
}

func TestMerge_NeitherPresentStaysAbsent(t *testing.T) {
	merged := Merge(Descriptor{}, Descriptor{Host: String("http://a")})
	assert.Nil(t, merged.Method)
	assert.Nil(t, merged.Path)
	assert.Nil(t, merged.Body)
}

func TestMerge_HeadersUnion(t *testing.T) {
	base := mustParse(t, `
method = "GET"
host = "http://localhost:5000"

[headers]
accept = "application/json"
x-shared = "base"
`)
	overlay := mustParse(t, `
path = "/resource"

[headers]
authorization = "simple_token"
x-shared = "overlay"
`)

	merged := Merge(base, overlay)
	assert.Equal(t, "/resource", *merged.Path)
	assert.Equal(t, map[string]string{
		"accept":        "application/json",
		"authorization": "simple_token",
		"x-shared":      "overlay",
	}, merged.Headers)
}

func TestMerge_HeadersNeverNil(t *testing.T) {
	merged := Merge(Descriptor{}, Descriptor{})
	require.NotNil(t, merged.Headers)
	assert.Empty(t, merged.Headers)
	assert.False(t, merged.IsEmpty())
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	base := Descriptor{Method: String("GET"), Headers: map[string]string{"a": "1"}}
	overlay := Descriptor{Method: String("POST"), Headers: map[string]string{"b": "2"}}

	merged := Merge(base, overlay)
	merged.Headers["c"] = "3"
	*merged.Method = "PATCH"

	assert.Equal(t, map[string]string{"a": "1"}, base.Headers)
	assert.Equal(t, map[string]string{"b": "2"}, overlay.Headers)
	assert.Equal(t, "GET", *base.Method)
	assert.Equal(t, "POST", *overlay.Method)
}
