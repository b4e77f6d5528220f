package parser

// Descriptor is a partially specified request as read from one file.
// A nil field means the file did not set it.
type Descriptor struct {
	Method  *string           `toml:"method" yaml:"method"`
	Host    *string           `toml:"host" yaml:"host"`
	Path    *string           `toml:"path" yaml:"path"`
	Body    *string           `toml:"body" yaml:"body"`
	Headers map[string]string `toml:"headers" yaml:"headers"`
}

// Format selects the decoder used for a request file.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// String returns a pointer to s, for building descriptors in code.
func String(s string) *string {
	return &s
}

// getString returns the pointed-to value, or the default if nil
func getString(s *string, defaultVal string) string {
	if s == nil {
		return defaultVal
	}
	return *s
}

// BodyOr returns the body, or defaultVal when absent.
func (d Descriptor) BodyOr(defaultVal string) string {
	return getString(d.Body, defaultVal)
}

// IsEmpty reports whether no field is set.
func (d Descriptor) IsEmpty() bool {
	return d.Method == nil && d.Host == nil && d.Path == nil && d.Body == nil && d.Headers == nil
}
