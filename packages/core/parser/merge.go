package parser

// Merge layers overlay on top of base and returns a new descriptor.
// Scalars set in overlay win; otherwise base is kept. Headers are the union
// of both sides with overlay winning per name. The result always carries a
// non-nil header map and shares no map with either input.
func Merge(base, overlay Descriptor) Descriptor {
	result := Descriptor{
		Method:  pick(overlay.Method, base.Method),
		Host:    pick(overlay.Host, base.Host),
		Path:    pick(overlay.Path, base.Path),
		Body:    pick(overlay.Body, base.Body),
		Headers: make(map[string]string, len(base.Headers)+len(overlay.Headers)),
	}

	for k, v := range base.Headers {
		result.Headers[k] = v
	}
	for k, v := range overlay.Headers {
		result.Headers[k] = v
	}

	return result
}

// pick returns a copy of the first non-nil value.
func pick(preferred, fallback *string) *string {
	if preferred != nil {
		return String(*preferred)
	}
	if fallback != nil {
		return String(*fallback)
	}
	return nil
}
